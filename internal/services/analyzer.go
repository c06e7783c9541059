package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yishak-cs/calboost/internal/llm"
	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// MaxImageBytes is the largest decoded image accepted for analysis
const MaxImageBytes = 20 * 1024 * 1024

const extractionPrompt = `Você é um assistente especializado em nutrição. Extraia todos os alimentos mencionados na descrição do utilizador e estime quantidades realistas em gramas.

Retorne um JSON com array "foods" contendo objetos com:
- name: nome do alimento (mantenha em português)
- quantity: quantidade estimada em gramas (número)
- unit: sempre "g" para gramas

Se o utilizador não especificar quantidade, use porções típicas:
- Frango/carne: 150g
- Arroz/massa: 150g
- Batata: 200g
- Vegetais: 100g
- Peixe: 150g

Exemplo de resposta:
{
  "foods": [
    {"name": "frango estufado", "quantity": 150, "unit": "g"},
    {"name": "arroz branco", "quantity": 150, "unit": "g"}
  ]
}

Retorne APENAS o JSON, sem texto adicional.`

const imagePrompt = `Analise esta imagem de refeição e retorne um JSON com:
- foodItems: array de strings com os alimentos identificados
- totalCalories: número total estimado de calorias
- protein: gramas de proteína
- carbs: gramas de carboidratos
- fats: gramas de gorduras
- fiber: gramas de fibra (opcional)
- confidence: nível de confiança da análise (0-100)
- description: descrição breve da refeição

Seja preciso e realista nas estimativas. Retorne APENAS o JSON, sem texto adicional.`

// MealAnalyzer runs the model-assisted paths: photo analysis and structured text extraction
type MealAnalyzer struct {
	client         llm.Client
	adapter        *NutrientAdapter
	maxConcurrency int
	log            *logger.Logger
}

// NewMealAnalyzer accepts a nil client; every call then fails with KindNotConfigured
func NewMealAnalyzer(client llm.Client, adapter *NutrientAdapter, maxConcurrency int, log *logger.Logger) *MealAnalyzer {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &MealAnalyzer{
		client:         client,
		adapter:        adapter,
		maxConcurrency: maxConcurrency,
		log:            log.With("service", "MealAnalyzer"),
	}
}

// ValidateImageDataURI checks the data-URI prefix and the decoded size bound
func ValidateImageDataURI(image string) error {
	if !strings.HasPrefix(image, "data:image/") {
		return ValidationError(MsgInvalidImageFormat)
	}
	comma := strings.IndexByte(image, ',')
	if comma < 0 {
		return ValidationError(MsgInvalidImageFormat)
	}
	if DecodedImageSize(image[comma+1:]) > MaxImageBytes {
		return ValidationError(MsgImageTooLarge)
	}
	return nil
}

// DecodedImageSize computes the byte size of a base64 payload without decoding it
func DecodedImageSize(payload string) int {
	n := len(payload)
	padding := 0
	for i := n - 1; i >= 0 && i >= n-2 && payload[i] == '='; i-- {
		padding++
	}
	return n*3/4 - padding
}

type imageAnalysisPayload struct {
	FoodItems     []string `json:"foodItems"`
	TotalCalories *float64 `json:"totalCalories"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fats          float64  `json:"fats"`
	Fiber         float64  `json:"fiber"`
	Confidence    float64  `json:"confidence"`
	Description   string   `json:"description"`
}

// AnalyzeImage asks the vision model for a complete analysis. Malformed output fails the whole call.
func (a *MealAnalyzer) AnalyzeImage(ctx context.Context, image string) (*models.MealAnalysis, error) {
	if err := ValidateImageDataURI(image); err != nil {
		return nil, err
	}
	if a.client == nil {
		return nil, newAnalysisError(KindNotConfigured, MsgNotConfigured, nil)
	}

	content, err := a.client.CompleteJSON(ctx, []llm.Message{llm.UserImageMessage(imagePrompt, image)})
	if err != nil {
		return nil, classifyModelError(err, MsgImagePayload)
	}

	var payload imageAnalysisPayload
	if err := decodeStrict(content, &payload); err != nil {
		a.log.Warn("image analysis unreadable", "error", err)
		return nil, newAnalysisError(KindMalformedResponse, MsgMalformedResponse, err)
	}
	items := make([]string, 0, len(payload.FoodItems))
	for _, it := range payload.FoodItems {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return nil, newAnalysisError(KindMalformedResponse, MsgMalformedResponse, errors.New("no food items in model response"))
	}
	if payload.TotalCalories == nil || !(*payload.TotalCalories > 0) || math.IsInf(*payload.TotalCalories, 0) {
		return nil, newAnalysisError(KindMalformedResponse, MsgMalformedResponse, errors.New("invalid total calories in model response"))
	}

	totals := models.NutrientData{
		Calories: *payload.TotalCalories,
		Protein:  math.Max(payload.Protein, 0),
		Carbs:    math.Max(payload.Carbs, 0),
		Fats:     math.Max(payload.Fats, 0),
		Fiber:    math.Max(payload.Fiber, 0),
	}.Rounded()

	confidence := normalizeModelConfidence(payload.Confidence)
	lowConfidence := []string{}
	if confidence < lowConfidenceThreshold {
		lowConfidence = append(lowConfidence, items...)
	}
	return &models.MealAnalysis{
		FoodItems:     items,
		TotalCalories: totals.Calories,
		Protein:       totals.Protein,
		Carbs:         totals.Carbs,
		Fats:          totals.Fats,
		Fiber:         totals.Fiber,
		Confidence:    confidence,
		Description:   strings.TrimSpace(payload.Description),
		Source:        models.SourceModelEstimate,
		Unresolved:    []string{},
		LowConfidence: lowConfidence,
	}, nil
}

type extractionPayload struct {
	Foods []struct {
		Name     string   `json:"name"`
		Quantity *float64 `json:"quantity"`
		Unit     string   `json:"unit"`
	} `json:"foods"`
}

// ExtractFoods asks the model for a structured food list. Missing quantities get a default portion.
func (a *MealAnalyzer) ExtractFoods(ctx context.Context, description string) ([]models.StructuredFoodMention, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ValidationError(MsgInvalidDescription)
	}
	if a.client == nil {
		return nil, newAnalysisError(KindNotConfigured, MsgNotConfigured, nil)
	}

	content, err := a.client.CompleteJSON(ctx, []llm.Message{
		llm.SystemMessage(extractionPrompt),
		llm.UserMessage(description),
	})
	if err != nil {
		return nil, classifyModelError(err, MsgDescriptionPayload)
	}

	var payload extractionPayload
	if err := decodeStrict(content, &payload); err != nil {
		a.log.Warn("food extraction unreadable", "error", err)
		return nil, newAnalysisError(KindMalformedResponse, MsgMalformedResponse, err)
	}

	foods := make([]models.StructuredFoodMention, 0, len(payload.Foods))
	for _, f := range payload.Foods {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		qty := DefaultPortionGrams(name)
		if f.Quantity != nil && *f.Quantity > 0 && !math.IsInf(*f.Quantity, 0) {
			if scale, ok := gramsPerUnit(f.Unit); ok {
				qty = *f.Quantity * scale
			} else {
				a.log.Debug("non-mass unit replaced by default portion", "food", name, "unit", f.Unit)
			}
		}
		foods = append(foods, models.StructuredFoodMention{Name: name, Quantity: qty, Unit: "g"})
	}
	if len(foods) == 0 {
		return nil, newAnalysisError(KindNoFoods, MsgNoFoods, nil)
	}
	return foods, nil
}

type analysisSlot struct {
	food models.ResolvedFood
	ok   bool
}

// AnalyzeDescription extracts foods with the model and resolves each one against the remote backend.
// A remote miss keeps the item in FoodItems, lists it in Unresolved and adds nothing to the totals.
func (a *MealAnalyzer) AnalyzeDescription(ctx context.Context, description string) (*models.MealAnalysis, error) {
	foods, err := a.ExtractFoods(ctx, description)
	if err != nil {
		return nil, err
	}

	lookup, source := a.adapter.ResolveRemote, models.SourceRemoteDatabase
	if !a.adapter.RemoteEnabled() {
		lookup, source = a.adapter.ResolveLocal, models.SourceLocalDatabase
	}

	slots := make([]analysisSlot, len(foods))
	var g errgroup.Group
	g.SetLimit(a.maxConcurrency)
	for i, f := range foods {
		i, f := i, f
		g.Go(func() error {
			if res, ok := lookup(ctx, f.Name, f.Quantity); ok {
				slots[i] = analysisSlot{food: res.ResolvedFood(f.Name), ok: true}
			}
			return nil
		})
	}
	_ = g.Wait()

	labels := make([]string, len(foods))
	resolved := make([]models.ResolvedFood, 0, len(foods))
	unresolved := make([]string, 0)
	confidenceSum := 0.0
	for i, f := range foods {
		labels[i] = f.Label()
		if slots[i].ok {
			resolved = append(resolved, slots[i].food)
			confidenceSum += slots[i].food.Confidence
		} else {
			unresolved = append(unresolved, f.Name)
		}
	}

	agg := aggregateFoods(resolved, unresolved)
	confidence := 0.0
	if len(resolved) > 0 {
		confidence = roundConfidence(confidenceSum / float64(len(resolved)))
	}
	a.log.Info("description analyzed",
		"foods", len(foods),
		"resolved", len(resolved),
		"unresolved", len(unresolved),
		"calories", agg.TotalCalories,
	)
	return &models.MealAnalysis{
		FoodItems:     labels,
		TotalCalories: agg.TotalCalories,
		Protein:       agg.TotalProtein,
		Carbs:         agg.TotalCarbs,
		Fats:          agg.TotalFats,
		Fiber:         agg.TotalFiber,
		Confidence:    confidence,
		Description:   strings.Join(labels, ", "),
		Source:        source,
		Unresolved:    agg.UnresolvedPhrases,
		LowConfidence: agg.LowConfidence,
	}, nil
}

// portionClasses hold the default portion per coarse food class, checked in order
var portionClasses = []struct {
	grams    float64
	keywords []string
}{
	{200, []string{"batata"}},
	{150, []string{"peixe", "salmão", "atum", "bacalhau", "pescada", "sardinha", "dourada", "robalo"}},
	{150, []string{"frango", "carne", "vaca", "porco", "peru", "borrego", "bife", "febras", "costeletas"}},
	{150, []string{"arroz", "massa", "esparguete", "cuscuz", "quinoa"}},
	{100, []string{"brócolos", "legumes", "vegetais", "salada", "cenoura", "espinafres", "couve", "alface", "tomate", "feijão verde"}},
}

// DefaultPortionGrams estimates a serving when the model gives no quantity
func DefaultPortionGrams(name string) float64 {
	key := normalizeTerm(name)
	for _, c := range portionClasses {
		for _, kw := range c.keywords {
			if strings.Contains(key, kw) {
				return c.grams
			}
		}
	}
	return models.DefaultServingGrams
}

// gramsPerUnit converts a mass unit to grams. Counts and volumes ("unidades", "ml") are not mass.
func gramsPerUnit(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "g", "gr", "grs", "grama", "gramas", "gram", "grams":
		return 1, true
	case "kg", "quilo", "quilos", "quilograma", "quilogramas":
		return 1000, true
	}
	return 0, false
}

// decodeStrict parses one JSON object, rejecting unknown fields and trailing data.
// Markdown code fences around the object are removed first.
func decodeStrict(content string, out any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(stripCodeFence(content))))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON object")
	}
	return nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

// normalizeModelConfidence maps a 0..100 (or 0..1) score into 0..1
func normalizeModelConfidence(c float64) float64 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	if c > 1 {
		c /= 100
	}
	if c > 1 {
		c = 1
	}
	return roundConfidence(c)
}

func classifyModelError(err error, payloadMsg string) *AnalysisError {
	var se *llm.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newAnalysisError(KindUpstreamAuth, MsgUpstreamAuth, err)
		case http.StatusTooManyRequests:
			return newAnalysisError(KindRateLimited, MsgRateLimited, err)
		case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
			return newAnalysisError(KindPayloadTooLarge, payloadMsg, err)
		default:
			return newAnalysisError(KindUpstream, fmt.Sprintf("Erro da OpenAI (%d). Tente novamente", se.StatusCode), err)
		}
	}
	if errors.Is(err, llm.ErrEmptyResponse) {
		return newAnalysisError(KindMalformedResponse, MsgMalformedResponse, err)
	}
	return newAnalysisError(KindUpstream, MsgUpstream, err)
}
