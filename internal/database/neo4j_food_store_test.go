package database

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

func TestFoodFromRecord(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	food, err := foodFromRecord(map[string]interface{}{
		"id":         "abc",
		"name":       "Francesinha",
		"calories":   int64(250),
		"protein":    14.5,
		"carbs":      nil,
		"fats":       13.0,
		"fiber":      int64(1),
		"serving":    "",
		"category":   "pratos",
		"created_at": created,
	})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	want := models.CustomFood{
		ID:        "abc",
		Name:      "Francesinha",
		Calories:  250,
		Protein:   14.5,
		Fats:      13,
		Fiber:     1,
		Serving:   "100g",
		Category:  "pratos",
		CreatedAt: created,
	}
	if food != want {
		t.Fatalf("foodFromRecord = %+v, want %+v", food, want)
	}

	if _, err := foodFromRecord(map[string]interface{}{"name": "sem id"}); err == nil {
		t.Fatalf("a node without id must be rejected")
	}
	if _, err := foodFromRecord(map[string]interface{}{"id": "neg", "name": "Bolo", "calories": 300.0, "fats": -2.0}); err == nil {
		t.Fatalf("a node with a negative nutrient must be rejected")
	}
}

func TestImportFoodsQueryGuardsNutrients(t *testing.T) {
	t.Parallel()

	query := importFoodsQuery()
	for _, want := range []string{
		"calories IS NOT NULL AND calories >= 0",
		"coalesce(toFloat(row.protein), 0.0) AS protein",
		"AND protein >= 0",
		"AND carbs >= 0",
		"AND fats >= 0",
		"AND fiber >= 0",
		"f.fiber = fiber",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("import query is missing %q:\n%s", want, query)
		}
	}
	if strings.Index(query, "AND fiber >= 0") > strings.Index(query, "MERGE") {
		t.Fatalf("nutrient guards must filter rows before MERGE:\n%s", query)
	}
}

func TestOpenFoodStoreDrivers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := OpenFoodStore(ctx, StoreConfig{Driver: "none"}, logger.Nop())
	if err != nil || store != nil {
		t.Fatalf("none driver should return a nil store, got %v %v", store, err)
	}
	if _, err := OpenFoodStore(ctx, StoreConfig{Driver: "mongodb"}, logger.Nop()); err == nil {
		t.Fatalf("unknown driver should fail")
	}

	store, err = OpenFoodStore(ctx, StoreConfig{Driver: "sqlite", DSN: t.TempDir() + "/foods.db"}, logger.Nop())
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	defer store.Close(ctx)
	if _, ok := store.(*GormFoodStore); !ok {
		t.Fatalf("sqlite driver should open a gorm store, got %T", store)
	}
}

// Live test against a real graph; set TEST_NEO4J_URI (and credentials) to run it.
func TestNeo4jFoodStoreLive(t *testing.T) {
	uri := os.Getenv("TEST_NEO4J_URI")
	if uri == "" {
		t.Skip("TEST_NEO4J_URI not set")
	}
	ctx := context.Background()
	client, err := NewNeo4jClient(Config{
		URI:      uri,
		Username: os.Getenv("TEST_NEO4J_USERNAME"),
		Password: os.Getenv("TEST_NEO4J_PASSWORD"),
		Database: os.Getenv("TEST_NEO4J_DATABASE"),
	}, logger.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	store, err := NewNeo4jFoodStore(ctx, client, logger.Nop())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	defer store.Close(ctx)

	name := "Bolo Teste " + time.Now().Format("150405.000")
	food := &models.CustomFood{Name: name, Calories: 300}
	if err := store.Create(ctx, food); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() {
		_ = client.ExecuteWrite(ctx, `MATCH (f:Food {id: $id}) DETACH DELETE f`, map[string]interface{}{"id": food.ID})
	}()

	got, err := store.Get(ctx, food.ID)
	if err != nil || got.Name != name {
		t.Fatalf("get: %+v %v", got, err)
	}
	found, err := store.Search(ctx, name, 5)
	if err != nil || len(found) == 0 {
		t.Fatalf("search: %v %v", found, err)
	}
	if _, err := store.Get(ctx, "missing-id"); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}
