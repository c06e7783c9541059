package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

const (
	DefaultUSDABaseURL = "https://api.nal.usda.gov/fdc/v1"
	usdaDataTypes      = "Foundation,SR Legacy"
)

// USDAFood is one search hit of FoodData Central. Nutrient values are per 100g.
type USDAFood struct {
	FdcID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	FoodNutrients []USDANutrient `json:"foodNutrients"`
}

type USDANutrient struct {
	NutrientID     int     `json:"nutrientId"`
	NutrientName   string  `json:"nutrientName"`
	NutrientNumber string  `json:"nutrientNumber"`
	UnitName       string  `json:"unitName"`
	Value          float64 `json:"value"`
}

type usdaSearchResponse struct {
	TotalHits int        `json:"totalHits"`
	Foods     []USDAFood `json:"foods"`
}

// USDAStatusError is returned for non-2xx answers of the search API
type USDAStatusError struct {
	StatusCode int
	Body       string
}

func (e *USDAStatusError) Error() string {
	return fmt.Sprintf("usda http %d: %s", e.StatusCode, e.Body)
}

// USDAConfig configures the FoodData Central client
type USDAConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// USDAService talks to the FoodData Central search API
type USDAService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewUSDAService(cfg USDAConfig, log *logger.Logger) *USDAService {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultUSDABaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &USDAService{
		apiKey:     cfg.APIKey,
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("service", "USDAService"),
	}
}

// SearchFoods runs one search and returns the raw hits in API order
func (s *USDAService) SearchFoods(ctx context.Context, query string, pageSize int) ([]USDAFood, error) {
	if pageSize <= 0 {
		pageSize = 5
	}
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("dataType", usdaDataTypes)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/foods/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usda search: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("usda read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &USDAStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out usdaSearchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("usda decode: %w", err)
	}
	s.log.Debug("usda search", "query", query, "hits", len(out.Foods), "took", time.Since(start).String())
	return out.Foods, nil
}

type usdaNutrientKey struct {
	id     int
	number string
}

// energy is reported under 1008 in SR Legacy and often only as Atwater energy (2047, 2048) in Foundation foods
var usdaEnergyKeys = []usdaNutrientKey{{1008, "208"}, {2047, "957"}, {2048, "958"}}

// nutrient ids of the current FoodData Central schema, with the legacy numbers as fallback
var usdaNutrientFields = []struct {
	key usdaNutrientKey
	set func(*models.FoodRecord, float64)
}{
	{usdaNutrientKey{1003, "203"}, func(r *models.FoodRecord, v float64) { r.ProteinPer100 = v }},
	{usdaNutrientKey{1005, "205"}, func(r *models.FoodRecord, v float64) { r.CarbsPer100 = v }},
	{usdaNutrientKey{1004, "204"}, func(r *models.FoodRecord, v float64) { r.FatsPer100 = v }},
	{usdaNutrientKey{1079, "291"}, func(r *models.FoodRecord, v float64) { r.FiberPer100 = v }},
}

// FoodRecordFromUSDA maps a search hit into the canonical shape.
// ok is false when the hit carries no energy value.
func FoodRecordFromUSDA(food USDAFood) (models.FoodRecord, bool) {
	rec := models.FoodRecord{
		ID:                  "usda-" + strconv.FormatInt(food.FdcID, 10),
		Name:                strings.TrimSpace(food.Description),
		Category:            "other",
		DefaultServingGrams: models.DefaultServingGrams,
		Source:              models.SourceRemote,
	}
	energy, ok := usdaEnergy(food.FoodNutrients)
	if !ok {
		return models.FoodRecord{}, false
	}
	rec.CaloriesPer100 = energy
	for _, f := range usdaNutrientFields {
		if v, ok := usdaNutrientValue(food.FoodNutrients, f.key); ok {
			f.set(&rec, v)
		}
	}
	return rec, true
}

func usdaEnergy(nutrients []USDANutrient) (float64, bool) {
	for _, key := range usdaEnergyKeys {
		if v, ok := usdaNutrientValue(nutrients, key); ok {
			return v, true
		}
	}
	return 0, false
}

// usdaNutrientValue finds a non-negative value by id, then by legacy number
func usdaNutrientValue(nutrients []USDANutrient, key usdaNutrientKey) (float64, bool) {
	for _, n := range nutrients {
		if n.NutrientID == key.id && n.Value >= 0 {
			return n.Value, true
		}
	}
	for _, n := range nutrients {
		if n.NutrientNumber == key.number && n.Value >= 0 {
			return n.Value, true
		}
	}
	return 0, false
}

// FirstUsableFood returns the first hit that reports energy
func FirstUsableFood(foods []USDAFood) (models.FoodRecord, bool) {
	for _, f := range foods {
		if rec, ok := FoodRecordFromUSDA(f); ok {
			return rec, true
		}
	}
	return models.FoodRecord{}, false
}
