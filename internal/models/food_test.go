package models

import (
	"math"
	"testing"
)

func TestScaleRoundsCaloriesToInteger(t *testing.T) {
	t.Parallel()

	rec := FoodRecord{Name: "Peito de Frango", CaloriesPer100: 165, ProteinPer100: 31, FatsPer100: 3.6}

	for _, g := range []float64{50, 100, 150, 1000} {
		got := rec.Scale(g)
		want := math.Round(165 * g / 100)
		if got.Calories != want {
			t.Fatalf("grams=%v: calories got=%v want=%v", g, got.Calories, want)
		}
	}

	got := rec.Scale(150)
	if got.Protein != 46.5 || got.Fats != 5.4 {
		t.Fatalf("unexpected macros at 150g: %+v", got)
	}
}

func TestScaleIsDeterministic(t *testing.T) {
	t.Parallel()

	rec := FoodRecord{Name: "Arroz Branco", CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatsPer100: 0.3, FiberPer100: 0.4}
	if a, b := rec.Scale(173), rec.Scale(173); a != b {
		t.Fatalf("scale not idempotent: %+v vs %+v", a, b)
	}
	if got := rec.Scale(0); got != (NutrientData{}) {
		t.Fatalf("zero grams should yield zero nutrients, got %+v", got)
	}
}

func TestValidateRejectsNegativeNutrients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     FoodRecord
		wantErr bool
	}{
		{"ok", FoodRecord{Name: "Mel", CaloriesPer100: 304}, false},
		{"missing name", FoodRecord{CaloriesPer100: 10}, true},
		{"negative fats", FoodRecord{Name: "x", CaloriesPer100: 10, FatsPer100: -1}, true},
		{"nan calories", FoodRecord{Name: "x", CaloriesPer100: math.NaN()}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.rec.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestParseServingGrams(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"150g":     150,
		" 200 g ":  200,
		"12,5g":    12.5,
		"1 tigela": 100,
		"250ml":    250,
		"porção":   100,
		"":         100,
		"0g":       100,
	}
	for in, want := range tests {
		if got := ParseServingGrams(in); got != want {
			t.Fatalf("ParseServingGrams(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCustomFoodRecord(t *testing.T) {
	t.Parallel()

	rec := CustomFood{ID: "1", Name: "Bolo da Avó", Calories: 350, Protein: 5, Serving: "80g"}.Record()
	if rec.Source != SourceUserSubmitted {
		t.Fatalf("unexpected source: %s", rec.Source)
	}
	if rec.DefaultServingGrams != 80 {
		t.Fatalf("unexpected serving: %v", rec.DefaultServingGrams)
	}
	if rec.FatsPer100 != 0 {
		t.Fatalf("absent nutrients should default to zero")
	}
}

func TestStructuredMentionLabel(t *testing.T) {
	t.Parallel()

	m := StructuredFoodMention{Name: "arroz branco", Quantity: 150, Unit: "g"}
	if got := m.Label(); got != "arroz branco (150g)" {
		t.Fatalf("unexpected label: %q", got)
	}
}
