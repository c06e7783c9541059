package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/calboost/internal/database"
	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
	"github.com/yishak-cs/calboost/internal/services"
)

const (
	msgUnknownFailure   = "Erro desconhecido ao processar a refeição"
	msgStoreDisabled    = "Base de dados de alimentos personalizados indisponível"
	msgInvalidFood      = "Alimento inválido: nome e calorias (>= 0) são obrigatórios"
	msgFoodNotFound     = "Alimento não encontrado"
	msgMealNotFound     = "Refeição não encontrada"
	msgInvalidGrams     = `Parâmetro "grams" inválido`
	msgStoreUnavailable = "Base de dados indisponível"
)

// searchResultLimit caps the combined food search
const searchResultLimit = 5

// APIHandler handles all API requests
type APIHandler struct {
	resolver *services.MealResolver
	analyzer *services.MealAnalyzer
	adapter  *services.NutrientAdapter
	presets  *services.PresetMealCatalog
	store    database.CustomFoodStore
	log      *logger.Logger
}

// NewAPIHandler creates a new API handler. store may be nil when custom foods are disabled.
func NewAPIHandler(resolver *services.MealResolver, analyzer *services.MealAnalyzer, adapter *services.NutrientAdapter, store database.CustomFoodStore, log *logger.Logger) *APIHandler {
	return &APIHandler{
		resolver: resolver,
		analyzer: analyzer,
		adapter:  adapter,
		presets:  services.DefaultPresetMealCatalog(),
		store:    store,
		log:      log.With("component", "APIHandler"),
	}
}

// SetupRoutes configures all API routes
func (h *APIHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/analyze-meal", h.AnalyzeMeal)
		api.POST("/resolve-meal", h.ResolveMeal)

		api.GET("/nutrient-search", h.SearchNutrients)
		api.POST("/nutrient-search", h.LookupNutrients)

		api.GET("/foods", h.SearchCustomFoods)
		api.POST("/foods", h.CreateCustomFood)
		api.GET("/foods/catalog", h.ListCatalog)
		api.GET("/foods/popular", h.PopularFoods)
		api.GET("/foods/catalog/:id/nutrition", h.CatalogNutrition)
		api.GET("/foods/:id", h.GetCustomFood)

		api.GET("/meals", h.ListPresetMeals)
		api.GET("/meals/:id", h.GetPresetMeal)

		api.GET("/health", h.Health)
	}
}

type analyzeMealRequest struct {
	Image       interface{} `json:"image"`
	Description interface{} `json:"description"`
}

// AnalyzeMeal handles photo or description analysis. A photo wins when both are sent.
func (h *APIHandler) AnalyzeMeal(c *gin.Context) {
	var req analyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgMissingInput})
		return
	}

	if present(req.Image) {
		image, ok := req.Image.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgInvalidImageFormat})
			return
		}
		if err := services.ValidateImageDataURI(image); err != nil {
			h.writeError(c, err)
			return
		}
		analysis, err := h.analyzer.AnalyzeImage(c.Request.Context(), image)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, analysis)
		return
	}

	if present(req.Description) {
		description, ok := req.Description.(string)
		if !ok || strings.TrimSpace(description) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgInvalidDescription})
			return
		}
		analysis, err := h.analyzer.AnalyzeDescription(c.Request.Context(), description)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, analysis)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgMissingInput})
}

type resolveMealRequest struct {
	Description string `json:"description"`
}

// ResolveMeal runs the pure-text path against the local backend
func (h *APIHandler) ResolveMeal(c *gin.Context) {
	var req resolveMealRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgInvalidDescription})
		return
	}
	c.JSON(http.StatusOK, h.resolver.ResolveMeal(c.Request.Context(), req.Description))
}

type foodCandidate struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	SourceKind  models.SourceKind   `json:"sourceKind"`
	Category    string              `json:"category,omitempty"`
	Nutrients   models.NutrientData `json:"nutrients"`
}

// SearchNutrients lists up to five candidates, local before remote
func (h *APIHandler) SearchNutrients(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgMissingQuery})
		return
	}
	quantity := 100
	if q, ok := leadingInt(c.Query("quantity")); ok && q > 0 {
		quantity = q
	}

	records := h.adapter.Search(c.Request.Context(), query, searchResultLimit)
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": services.MsgNoFoodFound, "foods": []foodCandidate{}})
		return
	}

	foods := make([]foodCandidate, 0, len(records))
	for _, r := range records {
		foods = append(foods, foodCandidate{
			ID:          r.ID,
			Description: r.Name,
			SourceKind:  r.Source,
			Category:    r.Category,
			Nutrients:   r.Scale(float64(quantity)),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"query":    query,
		"quantity": quantity,
		"foods":    foods,
	})
}

type lookupNutrientsRequest struct {
	FoodName string  `json:"foodName"`
	Quantity float64 `json:"quantity"`
}

// LookupNutrients resolves one food name (local first, then remote) at the given quantity
func (h *APIHandler) LookupNutrients(c *gin.Context) {
	var req lookupNutrientsRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.FoodName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgMissingFoodName})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 100
	}

	res, ok := h.adapter.Resolve(c.Request.Context(), req.FoodName, req.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.MsgNutrientsNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"foodName":   req.FoodName,
		"quantity":   req.Quantity,
		"nutrients":  res.Nutrients,
		"matchedAs":  res.Record.Name,
		"sourceKind": res.Record.Source,
		"confidence": res.Confidence,
	})
}

type createFoodRequest struct {
	Name     string   `json:"name" binding:"required"`
	Calories *float64 `json:"calories" binding:"required,gte=0"`
	Protein  float64  `json:"protein" binding:"gte=0"`
	Carbs    float64  `json:"carbs" binding:"gte=0"`
	Fats     float64  `json:"fats" binding:"gte=0"`
	Fiber    float64  `json:"fiber" binding:"gte=0"`
	Serving  string   `json:"serving"`
	Category string   `json:"category"`
}

// CreateCustomFood stores a user-submitted food
func (h *APIHandler) CreateCustomFood(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgStoreDisabled})
		return
	}
	var req createFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFood})
		return
	}

	food := &models.CustomFood{
		Name:     req.Name,
		Calories: *req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		Fiber:    req.Fiber,
		Serving:  req.Serving,
		Category: req.Category,
	}
	if err := h.store.Create(c.Request.Context(), food); err != nil {
		if errors.Is(err, database.ErrInvalidFood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFood})
			return
		}
		h.log.Error("failed to store custom food", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreUnavailable})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// SearchCustomFoods lists user-submitted foods whose name contains query
func (h *APIHandler) SearchCustomFoods(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgStoreDisabled})
		return
	}
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.MsgMissingQuery})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	foods, err := h.store.Search(c.Request.Context(), query, limit)
	if err != nil {
		h.log.Error("failed to search custom foods", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreUnavailable})
		return
	}
	if foods == nil {
		foods = []models.CustomFood{}
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "foods": foods, "count": len(foods)})
}

// GetCustomFood returns one user-submitted food
func (h *APIHandler) GetCustomFood(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgStoreDisabled})
		return
	}
	food, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgFoodNotFound})
		return
	}
	if err != nil {
		h.log.Error("failed to load custom food", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStoreUnavailable})
		return
	}
	c.JSON(http.StatusOK, food)
}

// ListCatalog lists the curated table, optionally by category
func (h *APIHandler) ListCatalog(c *gin.Context) {
	foods := h.adapter.Curated().List(c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

// CatalogNutrition scales one curated food to ?grams= (default: its serving)
func (h *APIHandler) CatalogNutrition(c *gin.Context) {
	rec, ok := h.adapter.Curated().ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgFoodNotFound})
		return
	}
	grams := rec.ServingGrams()
	if raw := c.Query("grams"); raw != "" {
		g, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || g <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidGrams})
			return
		}
		grams = g
	}
	c.JSON(http.StatusOK, gin.H{
		"food":      rec,
		"grams":     grams,
		"nutrients": rec.Scale(grams),
	})
}

// popularFoodsLimit is how many table entries PopularFoods returns by default
const popularFoodsLimit = 10

// PopularFoods lists the head of the curated table
func (h *APIHandler) PopularFoods(c *gin.Context) {
	n := popularFoodsLimit
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		n = l
	}
	foods := h.adapter.Curated().Popular(n)
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

// ListPresetMeals lists ready-made meals, optionally by ?category= and ?query=
func (h *APIHandler) ListPresetMeals(c *gin.Context) {
	meals := h.presets.Find(c.Query("category"), c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}

// GetPresetMeal returns one ready-made meal
func (h *APIHandler) GetPresetMeal(c *gin.Context) {
	meal, ok := h.presets.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgMealNotFound})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// Health checks the custom food store
func (h *APIHandler) Health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"remote": h.adapter.RemoteEnabled(),
		"store":  "disabled",
	}
	if h.store != nil {
		if err := h.store.Health(c.Request.Context()); err != nil {
			h.log.Warn("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "unavailable"})
			return
		}
		status["store"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}

func (h *APIHandler) writeError(c *gin.Context, err error) {
	if ae, ok := services.AsAnalysisError(err); ok {
		if ae.Kind != services.KindValidation {
			h.log.Error("meal analysis failed", "kind", string(ae.Kind), "error", err)
		}
		c.JSON(ae.Kind.HTTPStatus(), gin.H{"error": ae.Message})
		return
	}
	h.log.Error("meal analysis failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgUnknownFailure})
}

// present mirrors a truthiness check on decoded JSON: absent, null, "" and false are not input
func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	default:
		return true
	}
}

// leadingInt reads the optional sign and leading digits of s, so "150g" is 150
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
