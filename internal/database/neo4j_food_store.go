package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

const foodReturnClause = `
	RETURN f.id AS id, f.name AS name, f.calories AS calories, f.protein AS protein,
	       f.carbs AS carbs, f.fats AS fats, f.fiber AS fiber, f.serving AS serving,
	       f.category AS category, f.created_at AS created_at`

// Neo4jFoodStore keeps user-submitted foods as (:Food) nodes
type Neo4jFoodStore struct {
	client *Neo4jClient
	log    *logger.Logger
}

// NewNeo4jFoodStore creates the schema (constraint and index) if missing
func NewNeo4jFoodStore(ctx context.Context, client *Neo4jClient, log *logger.Logger) (*Neo4jFoodStore, error) {
	s := &Neo4jFoodStore{client: client, log: log.With("service", "Neo4jFoodStore")}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the uniqueness constraint on id and the lookup index on name_key
func (s *Neo4jFoodStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE CONSTRAINT food_id IF NOT EXISTS FOR (f:Food) REQUIRE f.id IS UNIQUE`,
		`CREATE INDEX food_name_key IF NOT EXISTS FOR (f:Food) ON (f.name_key)`,
	}
	for _, stmt := range statements {
		if err := s.client.ExecuteWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("failed to create food schema: %w", err)
		}
	}
	return nil
}

// Importer returns a CSV importer writing into the same graph
func (s *Neo4jFoodStore) Importer() *FoodImporter {
	return NewFoodImporter(s.client, s.log)
}

func (s *Neo4jFoodStore) Create(ctx context.Context, food *models.CustomFood) error {
	if err := ValidateCustomFood(food); err != nil {
		return err
	}
	id := uuid.NewString()
	createdAt := time.Now().UTC().Truncate(time.Millisecond)

	query := `
		CREATE (f:Food {
			id: $id,
			name: $name,
			name_key: $nameKey,
			calories: $calories,
			protein: $protein,
			carbs: $carbs,
			fats: $fats,
			fiber: $fiber,
			serving: $serving,
			category: $category,
			created_at: $createdAt
		})
		RETURN f.id AS id
	`
	params := map[string]interface{}{
		"id":        id,
		"name":      food.Name,
		"nameKey":   NameKey(food.Name),
		"calories":  food.Calories,
		"protein":   food.Protein,
		"carbs":     food.Carbs,
		"fats":      food.Fats,
		"fiber":     food.Fiber,
		"serving":   food.Serving,
		"category":  food.Category,
		"createdAt": createdAt,
	}
	if err := s.client.ExecuteWrite(ctx, query, params); err != nil {
		return fmt.Errorf("failed to create food node: %w", err)
	}
	food.ID = id
	food.CreatedAt = createdAt
	s.log.Info("custom food stored", "id", id, "name", food.Name)
	return nil
}

func (s *Neo4jFoodStore) Get(ctx context.Context, id string) (*models.CustomFood, error) {
	results, err := s.client.ExecuteRead(ctx, `MATCH (f:Food {id: $id})`+foodReturnClause, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrFoodNotFound
	}
	food, err := foodFromRecord(results[0])
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *Neo4jFoodStore) Search(ctx context.Context, query string, limit int) ([]models.CustomFood, error) {
	key := NameKey(query)
	if key == "" {
		return nil, nil
	}
	cypher := `
		MATCH (f:Food)
		WHERE f.name_key CONTAINS $key
		WITH f ORDER BY size(f.name_key) ASC, f.created_at ASC
		LIMIT $limit` + foodReturnClause
	results, err := s.client.ExecuteRead(ctx, cypher, map[string]interface{}{
		"key":   key,
		"limit": int64(clampLimit(limit)),
	})
	if err != nil {
		return nil, err
	}

	foods := make([]models.CustomFood, 0, len(results))
	for _, r := range results {
		food, err := foodFromRecord(r)
		if err != nil {
			s.log.Warn("skipping unreadable food node", "error", err)
			continue
		}
		foods = append(foods, food)
	}
	return foods, nil
}

func (s *Neo4jFoodStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *Neo4jFoodStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

// foodFromRecord maps one row of foodReturnClause into a CustomFood
func foodFromRecord(r map[string]interface{}) (models.CustomFood, error) {
	id, _ := r["id"].(string)
	name, _ := r["name"].(string)
	if id == "" || name == "" {
		return models.CustomFood{}, fmt.Errorf("food node without id or name")
	}
	food := models.CustomFood{
		ID:       id,
		Name:     name,
		Calories: toFloat(r["calories"]),
		Protein:  toFloat(r["protein"]),
		Carbs:    toFloat(r["carbs"]),
		Fats:     toFloat(r["fats"]),
		Fiber:    toFloat(r["fiber"]),
	}
	food.Serving, _ = r["serving"].(string)
	food.Category, _ = r["category"].(string)
	if food.Serving == "" {
		food.Serving = "100g"
	}
	if t, ok := r["created_at"].(time.Time); ok {
		food.CreatedAt = t.UTC()
	}
	if err := food.Record().Validate(); err != nil {
		return models.CustomFood{}, fmt.Errorf("food node %s: %w", id, err)
	}
	return food, nil
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
