package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yishak-cs/calboost/internal/models"
)

var (
	// ErrFoodNotFound is returned when a custom food id does not exist
	ErrFoodNotFound = errors.New("food not found")
	// ErrInvalidFood is returned when a custom food fails validation
	ErrInvalidFood = errors.New("invalid food")
)

// CustomFoodStore persists user-submitted foods
type CustomFoodStore interface {
	// Create validates and stores the food, filling ID and CreatedAt
	Create(ctx context.Context, food *models.CustomFood) error
	// Get returns one food by id or ErrFoodNotFound
	Get(ctx context.Context, id string) (*models.CustomFood, error)
	// Search returns foods whose name contains query (case-insensitive), shortest names first
	Search(ctx context.Context, query string, limit int) ([]models.CustomFood, error)
	// Health checks the backing connection
	Health(ctx context.Context) error
	Close(ctx context.Context) error
}

// NameKey is the normalized form of a food name used for lookups
func NameKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ValidateCustomFood trims fields and checks the nutrient invariants
func ValidateCustomFood(food *models.CustomFood) error {
	if food == nil {
		return fmt.Errorf("%w: empty food", ErrInvalidFood)
	}
	food.Name = strings.TrimSpace(food.Name)
	food.Serving = strings.TrimSpace(food.Serving)
	food.Category = strings.TrimSpace(food.Category)
	if food.Serving == "" {
		food.Serving = "100g"
	}
	if err := food.Record().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFood, err)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
