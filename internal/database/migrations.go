package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/yishak-cs/calboost/internal/logger"
)

// FoodImporter loads user-food seed files into Neo4j
type FoodImporter struct {
	client *Neo4jClient
	log    *logger.Logger
}

// NewFoodImporter creates a new CSV importer
func NewFoodImporter(client *Neo4jClient, log *logger.Logger) *FoodImporter {
	return &FoodImporter{client: client, log: log}
}

// ImportCustomFoods merges every valid row of the CSV at csvURL into (:Food) nodes.
// Expected headers: name, calories, protein, carbs, fats, fiber, serving, category.
// Rows are keyed by normalized name, so re-importing the same file is idempotent.
func (i *FoodImporter) ImportCustomFoods(ctx context.Context, csvURL string) (int, error) {
	i.log.Info("starting food CSV import", "url", csvURL)

	results, err := i.client.ExecuteWriteWithResult(ctx, importFoodsQuery(), map[string]interface{}{
		"csvURL": csvURL,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import foods: %w", err)
	}

	imported := 0
	if len(results) > 0 {
		imported = int(toFloat(results[0]["imported_foods"]))
	}
	i.log.Info("food CSV import completed", "imported", imported)
	return imported, nil
}

// importNutrientColumns are the optional CSV columns; blanks read as 0
var importNutrientColumns = []string{"protein", "carbs", "fats", "fiber"}

// importFoodsQuery builds the LOAD CSV statement. Rows without a name, without calories,
// or with any negative nutrient are skipped.
func importFoodsQuery() string {
	var with, where, set strings.Builder
	for _, col := range importNutrientColumns {
		fmt.Fprintf(&with, ", coalesce(toFloat(row.%s), 0.0) AS %s", col, col)
		fmt.Fprintf(&where, " AND %s >= 0", col)
		fmt.Fprintf(&set, ",\n\t\t\tf.%s = %s", col, col)
	}
	return `
		LOAD CSV WITH HEADERS FROM $csvURL AS row
		WITH row, trim(coalesce(row.name, '')) AS name, toFloat(row.calories) AS calories` + with.String() + `
		WHERE name <> '' AND calories IS NOT NULL AND calories >= 0` + where.String() + `
		MERGE (f:Food {name_key: toLower(name)})
		ON CREATE SET f.id = randomUUID(), f.created_at = datetime()
		SET f.name = name,
			f.calories = calories` + set.String() + `,
			f.serving = coalesce(row.serving, '100g'),
			f.category = coalesce(row.category, '')
		RETURN count(f) AS imported_foods
	`
}

// GetImportStatus returns the current state of the database
func (i *FoodImporter) GetImportStatus(ctx context.Context) (map[string]int, error) {
	query := `
		MATCH (f:Food)
		RETURN count(f) AS foods, count(DISTINCT f.category) AS categories
	`

	results, err := i.client.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	status := map[string]int{"foods": 0, "categories": 0}
	if len(results) > 0 {
		status["foods"] = int(toFloat(results[0]["foods"]))
		status["categories"] = int(toFloat(results[0]["categories"]))
	}
	return status, nil
}
