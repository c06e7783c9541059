package models

// Mention is a candidate food phrase extracted from a free-text description
type Mention struct {
	Phrase  string `json:"phrase"`
	Ordinal int    `json:"ordinal"`
}

// StructuredFoodMention is one item of the language model's structured extraction.
// Quantity is always positive and expressed in grams.
type StructuredFoodMention struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Label renders the mention as "name (150g)"
func (m StructuredFoodMention) Label() string {
	return m.Name + " (" + FormatGrams(m.Quantity) + ")"
}

// ResolvedFood is one mention after a successful nutrient lookup
type ResolvedFood struct {
	Name       string     `json:"name"`
	Phrase     string     `json:"phrase"`
	Calories   float64    `json:"calories"`
	Protein    float64    `json:"protein"`
	Carbs      float64    `json:"carbs"`
	Fats       float64    `json:"fats"`
	Fiber      float64    `json:"fiber"`
	Serving    string     `json:"serving"`
	Confidence float64    `json:"confidence"`
	Source     SourceKind `json:"source_kind"`
}

// Nutrients returns the absolute amounts carried by the resolved item
func (f ResolvedFood) Nutrients() NutrientData {
	return NutrientData{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fats: f.Fats, Fiber: f.Fiber}
}

// MealAggregate is the result of resolving one meal description.
// Totals only ever include ResolvedFoods.
type MealAggregate struct {
	ResolvedFoods     []ResolvedFood `json:"foods"`
	UnresolvedPhrases []string       `json:"not_found"`
	LowConfidence     []string       `json:"low_confidence"`
	TotalCalories     float64        `json:"total_calories"`
	TotalProtein      float64        `json:"total_protein"`
	TotalCarbs        float64        `json:"total_carbs"`
	TotalFats         float64        `json:"total_fats"`
	TotalFiber        float64        `json:"total_fiber"`
}

// AnalysisSource tells where the totals of a MealAnalysis came from
type AnalysisSource string

const (
	SourceRemoteDatabase AnalysisSource = "remote_database"
	SourceLocalDatabase  AnalysisSource = "local_database"
	SourceModelEstimate  AnalysisSource = "model_estimate"
)

// MealAnalysis is the result of the AI-assisted paths (photo or text)
type MealAnalysis struct {
	FoodItems     []string       `json:"foodItems"`
	TotalCalories float64        `json:"totalCalories"`
	Protein       float64        `json:"protein"`
	Carbs         float64        `json:"carbs"`
	Fats          float64        `json:"fats"`
	Fiber         float64        `json:"fiber"`
	Confidence    float64        `json:"confidence"`
	Description   string         `json:"description"`
	Source        AnalysisSource `json:"source"`
	Unresolved    []string       `json:"unresolved"`
	LowConfidence []string       `json:"lowConfidence"`
}

// PresetMeal is a ready-made meal with totals for the whole portion
type PresetMeal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Fiber       float64  `json:"fiber"`
	Portion     string   `json:"portion"`
	FoodItems   []string `json:"foodItems"`
}
