package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SourceKind identifies where a FoodRecord came from
type SourceKind string

const (
	SourceLocal         SourceKind = "local"
	SourceRemote        SourceKind = "remote"
	SourceUserSubmitted SourceKind = "user-submitted"
)

// DefaultServingGrams is used whenever a source does not provide a serving size
const DefaultServingGrams = 100.0

// FoodRecord is the canonical nutrient entity. All nutrient values are per 100 grams.
type FoodRecord struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Category            string     `json:"category,omitempty"`
	CaloriesPer100      float64    `json:"calories_per_100"`
	ProteinPer100       float64    `json:"protein_per_100"`
	CarbsPer100         float64    `json:"carbs_per_100"`
	FatsPer100          float64    `json:"fats_per_100"`
	FiberPer100         float64    `json:"fiber_per_100"`
	DefaultServingGrams float64    `json:"default_serving_grams"`
	Source              SourceKind `json:"source_kind"`
}

// NutrientData holds absolute nutrient amounts for an actual quantity
type NutrientData struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the element-wise sum of two nutrient amounts
func (n NutrientData) Add(o NutrientData) NutrientData {
	return NutrientData{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Rounded rounds calories to the nearest integer and grams to one decimal place
func (n NutrientData) Rounded() NutrientData {
	return NutrientData{
		Calories: math.Round(n.Calories),
		Protein:  RoundTenth(n.Protein),
		Carbs:    RoundTenth(n.Carbs),
		Fats:     RoundTenth(n.Fats),
		Fiber:    RoundTenth(n.Fiber),
	}
}

// Scale converts the per-100 values of the record into amounts for the given grams.
// Calories are rounded to the nearest integer, everything else to one decimal.
func (r FoodRecord) Scale(grams float64) NutrientData {
	if grams <= 0 {
		return NutrientData{}
	}
	factor := grams / 100
	return NutrientData{
		Calories: r.CaloriesPer100 * factor,
		Protein:  r.ProteinPer100 * factor,
		Carbs:    r.CarbsPer100 * factor,
		Fats:     r.FatsPer100 * factor,
		Fiber:    r.FiberPer100 * factor,
	}.Rounded()
}

// ServingGrams returns the record's default serving, falling back to 100g
func (r FoodRecord) ServingGrams() float64 {
	if r.DefaultServingGrams > 0 {
		return r.DefaultServingGrams
	}
	return DefaultServingGrams
}

// Validate checks the non-negativity invariant of the nutrient fields
func (r FoodRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("food name is required")
	}
	values := map[string]float64{
		"calories": r.CaloriesPer100,
		"protein":  r.ProteinPer100,
		"carbs":    r.CarbsPer100,
		"fats":     r.FatsPer100,
		"fiber":    r.FiberPer100,
	}
	for field, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a non-negative number", field)
		}
	}
	return nil
}

// CustomFood is a user-submitted food as persisted by a CustomFoodStore
type CustomFood struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Fiber     float64   `json:"fiber"`
	Serving   string    `json:"serving"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Record converts a stored custom food into the canonical shape
func (f CustomFood) Record() FoodRecord {
	return FoodRecord{
		ID:                  f.ID,
		Name:                f.Name,
		Category:            f.Category,
		CaloriesPer100:      f.Calories,
		ProteinPer100:       f.Protein,
		CarbsPer100:         f.Carbs,
		FatsPer100:          f.Fats,
		FiberPer100:         f.Fiber,
		DefaultServingGrams: ParseServingGrams(f.Serving),
		Source:              SourceUserSubmitted,
	}
}

// ParseServingGrams reads a serving label such as "150g", "150 g" or "150".
// Anything that is not a gram (or ml) amount falls back to 100.
func ParseServingGrams(serving string) float64 {
	s := strings.TrimSpace(strings.ToLower(serving))
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == ',') {
		end++
	}
	if end == 0 {
		return DefaultServingGrams
	}
	switch strings.TrimSpace(s[end:]) {
	case "", "g", "gr", "grama", "gramas", "ml":
	default:
		return DefaultServingGrams
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s[:end], ",", "."), 64)
	if err != nil || v <= 0 {
		return DefaultServingGrams
	}
	return v
}

// FormatGrams renders a gram quantity the way servings are displayed ("150g", "12.5g")
func FormatGrams(grams float64) string {
	return strconv.FormatFloat(RoundTenth(grams), 'f', -1, 64) + "g"
}

// RoundTenth rounds to one decimal place
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
