package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yishak-cs/calboost/internal/database"
	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// FoodMatch is a catalog hit together with how well the query matched it
type FoodMatch struct {
	Record     models.FoodRecord
	Kind       MatchKind
	Confidence float64
}

// FoodCatalog is a local backend: something that can turn a phrase into a FoodRecord
type FoodCatalog interface {
	Lookup(ctx context.Context, query string) (FoodMatch, bool, error)
}

// CuratedCatalog is the built-in read-only food table
type CuratedCatalog struct {
	records []models.FoodRecord
	names   []string
	byID    map[string]int
}

// NewCuratedCatalog indexes the given records; the slice order is the tie-break order
func NewCuratedCatalog(records []models.FoodRecord) *CuratedCatalog {
	c := &CuratedCatalog{
		records: make([]models.FoodRecord, len(records)),
		names:   make([]string, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(c.records, records)
	for i, r := range c.records {
		c.names[i] = normalizeTerm(r.Name)
		c.byID[r.ID] = i
	}
	return c
}

// DefaultCuratedCatalog returns the built-in Portuguese food table
func DefaultCuratedCatalog() *CuratedCatalog {
	return NewCuratedCatalog(curatedFoods)
}

func (c *CuratedCatalog) Lookup(_ context.Context, query string) (FoodMatch, bool, error) {
	m, ok := bestNameMatch(c.names, normalizeTerm(query))
	if !ok {
		return FoodMatch{}, false, nil
	}
	return FoodMatch{Record: c.records[m.Index], Kind: m.Kind, Confidence: m.Confidence}, true, nil
}

// Search lists every record whose name contains query, best tier first then shortest name
func (c *CuratedCatalog) Search(query string, limit int) []models.FoodRecord {
	key := normalizeTerm(query)
	type hit struct {
		idx  int
		kind MatchKind
	}
	var hits []hit
	for i, name := range c.names {
		if kind := matchName(name, key); kind != MatchNone {
			hits = append(hits, hit{i, kind})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].kind != hits[j].kind {
			return hits[i].kind > hits[j].kind
		}
		return utf8.RuneCountInString(c.names[hits[i].idx]) < utf8.RuneCountInString(c.names[hits[j].idx])
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]models.FoodRecord, 0, len(hits))
	for _, h := range hits {
		out = append(out, c.records[h.idx])
	}
	return out
}

// ByID returns one curated record
func (c *CuratedCatalog) ByID(id string) (models.FoodRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.FoodRecord{}, false
	}
	return c.records[i], true
}

// List returns the table, optionally filtered by category (case-insensitive)
func (c *CuratedCatalog) List(category string) []models.FoodRecord {
	category = strings.TrimSpace(category)
	out := make([]models.FoodRecord, 0, len(c.records))
	for _, r := range c.records {
		if category == "" || strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// Popular returns the first n entries of the table, which lists everyday foods first
func (c *CuratedCatalog) Popular(n int) []models.FoodRecord {
	if n <= 0 || n > len(c.records) {
		n = len(c.records)
	}
	out := make([]models.FoodRecord, n)
	copy(out, c.records[:n])
	return out
}

// PresetMealCatalog is the read-only library of ready-made meals
type PresetMealCatalog struct {
	meals []models.PresetMeal
	byID  map[string]int
}

func NewPresetMealCatalog(meals []models.PresetMeal) *PresetMealCatalog {
	c := &PresetMealCatalog{
		meals: make([]models.PresetMeal, len(meals)),
		byID:  make(map[string]int, len(meals)),
	}
	copy(c.meals, meals)
	for i, m := range c.meals {
		c.byID[m.ID] = i
	}
	return c
}

// DefaultPresetMealCatalog returns the built-in Portuguese meal library
func DefaultPresetMealCatalog() *PresetMealCatalog {
	return NewPresetMealCatalog(presetMeals)
}

// ByID returns one preset meal
func (c *PresetMealCatalog) ByID(id string) (models.PresetMeal, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.PresetMeal{}, false
	}
	return c.meals[i], true
}

// Find filters by category (case-insensitive, empty for all) and by a query matched
// against the name, the description and every food item. Library order is kept.
func (c *PresetMealCatalog) Find(category, query string) []models.PresetMeal {
	category = strings.TrimSpace(category)
	query = normalizeTerm(query)
	out := make([]models.PresetMeal, 0, len(c.meals))
	for _, m := range c.meals {
		if category != "" && !strings.EqualFold(m.Category, category) {
			continue
		}
		if query != "" && !presetMealMatches(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func presetMealMatches(m models.PresetMeal, query string) bool {
	if strings.Contains(normalizeTerm(m.Name), query) || strings.Contains(normalizeTerm(m.Description), query) {
		return true
	}
	for _, item := range m.FoodItems {
		if strings.Contains(normalizeTerm(item), query) {
			return true
		}
	}
	return false
}

// customLookupLimit bounds how many stored foods are ranked per lookup
const customLookupLimit = 20

// CustomFoodCatalog exposes user-submitted foods as a local backend
type CustomFoodCatalog struct {
	store database.CustomFoodStore
	log   *logger.Logger
}

func NewCustomFoodCatalog(store database.CustomFoodStore, log *logger.Logger) *CustomFoodCatalog {
	return &CustomFoodCatalog{store: store, log: log}
}

func (c *CustomFoodCatalog) Lookup(ctx context.Context, query string) (FoodMatch, bool, error) {
	key := normalizeTerm(query)
	if key == "" {
		return FoodMatch{}, false, nil
	}

	foods, err := c.store.Search(ctx, key, customLookupLimit)
	if err != nil {
		return FoodMatch{}, false, err
	}
	if m, ok := bestCustomMatch(foods, key, false); ok {
		return m, true, nil
	}

	tokens := queryTokens(key)
	if len(tokens) < 2 {
		return FoodMatch{}, false, nil
	}
	for _, tok := range tokens {
		foods, err := c.store.Search(ctx, tok, customLookupLimit)
		if err != nil {
			return FoodMatch{}, false, err
		}
		if m, ok := bestCustomMatch(foods, tok, true); ok {
			return m, true, nil
		}
	}
	return FoodMatch{}, false, nil
}

// Search returns stored foods as canonical records
func (c *CustomFoodCatalog) Search(ctx context.Context, query string, limit int) ([]models.FoodRecord, error) {
	foods, err := c.store.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.FoodRecord, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Record())
	}
	return out, nil
}

func bestCustomMatch(foods []models.CustomFood, query string, asToken bool) (FoodMatch, bool) {
	if len(foods) == 0 {
		return FoodMatch{}, false
	}
	names := make([]string, len(foods))
	for i, f := range foods {
		names[i] = normalizeTerm(f.Name)
	}
	m, ok := bestInTier(names, query, asToken)
	if !ok {
		return FoodMatch{}, false
	}
	return FoodMatch{Record: foods[m.Index].Record(), Kind: m.Kind, Confidence: m.Confidence}, true
}

// CompositeCatalog asks every catalog and keeps the best tier, then the best confidence.
// Ties go to the catalog listed first.
type CompositeCatalog struct {
	catalogs []FoodCatalog
	log      *logger.Logger
}

func NewCompositeCatalog(log *logger.Logger, catalogs ...FoodCatalog) *CompositeCatalog {
	var kept []FoodCatalog
	for _, c := range catalogs {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &CompositeCatalog{catalogs: kept, log: log}
}

// Lookup never fails: a broken catalog is logged and skipped
func (c *CompositeCatalog) Lookup(ctx context.Context, query string) (FoodMatch, bool, error) {
	var best FoodMatch
	found := false
	for _, cat := range c.catalogs {
		m, ok, err := cat.Lookup(ctx, query)
		if err != nil {
			c.log.Warn("catalog lookup failed", "query", query, "error", err)
			continue
		}
		if !ok {
			continue
		}
		if !found || m.Kind > best.Kind || (m.Kind == best.Kind && m.Confidence > best.Confidence) {
			best, found = m, true
		}
	}
	return best, found, nil
}
