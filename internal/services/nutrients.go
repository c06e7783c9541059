package services

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// baseRemoteConfidence is the score of a remote hit found through an exact translation
const baseRemoteConfidence = 0.85

// RemoteSource searches a food-composition database
type RemoteSource interface {
	SearchFoods(ctx context.Context, query string, pageSize int) ([]USDAFood, error)
}

// RemoteBackend resolves phrases against the remote source through the translator.
// Successful lookups are cached per query and concurrent lookups of one query share a request.
type RemoteBackend struct {
	source     RemoteSource
	translator *Translator
	cache      LookupCache
	group      singleflight.Group
	timeout    time.Duration
	log        *logger.Logger
}

func NewRemoteBackend(source RemoteSource, translator *Translator, cache LookupCache, timeout time.Duration, log *logger.Logger) *RemoteBackend {
	if translator == nil {
		translator = DefaultTranslator()
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &RemoteBackend{
		source:     source,
		translator: translator,
		cache:      cache,
		timeout:    timeout,
		log:        log.With("service", "RemoteBackend"),
	}
}

// Lookup never fails: transport errors, bad statuses and empty results are all a miss.
// Kind on the returned match is the translation tier.
func (b *RemoteBackend) Lookup(ctx context.Context, query string) (FoodMatch, bool) {
	key := normalizeTerm(query)
	if key == "" || b.source == nil {
		return FoodMatch{}, false
	}
	translated, kind := b.translator.TranslateWithKind(key)
	confidence := remoteConfidence(kind)

	if b.cache != nil {
		if rec, ok := b.cache.Get(ctx, key); ok {
			return FoodMatch{Record: rec, Kind: kind, Confidence: confidence}, true
		}
	}

	v, err, _ := b.group.Do(key, func() (interface{}, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()

		foods, err := b.source.SearchFoods(lctx, translated, 5)
		if err != nil {
			return nil, err
		}
		rec, ok := FirstUsableFood(foods)
		if !ok {
			return nil, nil
		}
		if b.cache != nil {
			b.cache.Set(lctx, key, rec)
		}
		return rec, nil
	})
	if err != nil {
		b.log.Warn("remote lookup failed", "query", key, "translated", translated, "error", err)
		return FoodMatch{}, false
	}
	rec, ok := v.(models.FoodRecord)
	if !ok {
		b.log.Debug("remote lookup miss", "query", key, "translated", translated)
		return FoodMatch{}, false
	}
	return FoodMatch{Record: rec, Kind: kind, Confidence: confidence}, true
}

// Candidates lists up to limit usable remote records for query, in API order
func (b *RemoteBackend) Candidates(ctx context.Context, query string, limit int) []models.FoodRecord {
	key := normalizeTerm(query)
	if key == "" || b.source == nil || limit <= 0 {
		return nil
	}
	lctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	foods, err := b.source.SearchFoods(lctx, b.translator.Translate(key), limit)
	if err != nil {
		b.log.Warn("remote search failed", "query", key, "error", err)
		return nil
	}
	var out []models.FoodRecord
	for _, f := range foods {
		if rec, ok := FoodRecordFromUSDA(f); ok {
			out = append(out, rec)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func remoteConfidence(kind MatchKind) float64 {
	factor := 0.75
	switch kind {
	case MatchExact:
		factor = 1
	case MatchPrefix:
		factor = 0.95
	case MatchSubstring:
		factor = 0.9
	}
	return roundConfidence(baseRemoteConfidence * factor)
}

// NutrientResult is a resolved record scaled to an actual quantity
type NutrientResult struct {
	Record     models.FoodRecord
	Grams      float64
	Nutrients  models.NutrientData
	Confidence float64
	Kind       MatchKind
}

// ResolvedFood renders the result as one meal item for the given phrase
func (r NutrientResult) ResolvedFood(phrase string) models.ResolvedFood {
	return models.ResolvedFood{
		Name:       r.Record.Name,
		Phrase:     phrase,
		Calories:   r.Nutrients.Calories,
		Protein:    r.Nutrients.Protein,
		Carbs:      r.Nutrients.Carbs,
		Fats:       r.Nutrients.Fats,
		Fiber:      r.Nutrients.Fiber,
		Serving:    models.FormatGrams(r.Grams),
		Confidence: r.Confidence,
		Source:     r.Record.Source,
	}
}

// NutrientAdapter is the single entry point for turning a food name into nutrients.
// The local backend (curated table plus user foods) and the remote backend are picked by the caller.
type NutrientAdapter struct {
	curated *CuratedCatalog
	custom  *CustomFoodCatalog
	local   FoodCatalog
	remote  *RemoteBackend
	log     *logger.Logger
}

// NewNutrientAdapter wires the backends; custom and remote may be nil
func NewNutrientAdapter(curated *CuratedCatalog, custom *CustomFoodCatalog, remote *RemoteBackend, log *logger.Logger) *NutrientAdapter {
	if curated == nil {
		curated = DefaultCuratedCatalog()
	}
	catalogs := []FoodCatalog{curated}
	if custom != nil {
		catalogs = append(catalogs, custom)
	}
	return &NutrientAdapter{
		curated: curated,
		custom:  custom,
		local:   NewCompositeCatalog(log, catalogs...),
		remote:  remote,
		log:     log,
	}
}

// Curated exposes the built-in table
func (a *NutrientAdapter) Curated() *CuratedCatalog { return a.curated }

// RemoteEnabled reports whether a remote backend is configured
func (a *NutrientAdapter) RemoteEnabled() bool { return a.remote != nil }

// ResolveLocal looks query up in the local backend. grams <= 0 uses the record's default serving.
func (a *NutrientAdapter) ResolveLocal(ctx context.Context, query string, grams float64) (NutrientResult, bool) {
	m, ok, err := a.local.Lookup(ctx, query)
	if err != nil || !ok {
		return NutrientResult{}, false
	}
	return scaleMatch(m, grams), true
}

// ResolveRemote looks query up in the remote backend through the translator
func (a *NutrientAdapter) ResolveRemote(ctx context.Context, query string, grams float64) (NutrientResult, bool) {
	if a.remote == nil {
		return NutrientResult{}, false
	}
	m, ok := a.remote.Lookup(ctx, query)
	if !ok {
		return NutrientResult{}, false
	}
	return scaleMatch(m, grams), true
}

// Resolve tries the local backend first and falls back to the remote one
func (a *NutrientAdapter) Resolve(ctx context.Context, query string, grams float64) (NutrientResult, bool) {
	if r, ok := a.ResolveLocal(ctx, query, grams); ok {
		return r, true
	}
	return a.ResolveRemote(ctx, query, grams)
}

// Search lists local candidates (curated, then user foods) followed by remote ones, capped at limit
func (a *NutrientAdapter) Search(ctx context.Context, query string, limit int) []models.FoodRecord {
	if limit <= 0 {
		limit = 5
	}
	out := a.curated.Search(query, limit)
	if a.custom != nil && len(out) < limit {
		custom, err := a.custom.Search(ctx, query, limit-len(out))
		if err != nil {
			a.log.Warn("custom food search failed", "query", query, "error", err)
		}
		out = append(out, custom...)
	}
	if a.remote != nil && len(out) < limit {
		out = append(out, a.remote.Candidates(ctx, query, limit-len(out))...)
	}
	return out
}

func scaleMatch(m FoodMatch, grams float64) NutrientResult {
	if grams <= 0 {
		grams = m.Record.ServingGrams()
	}
	return NutrientResult{
		Record:     m.Record,
		Grams:      grams,
		Nutrients:  m.Record.Scale(grams),
		Confidence: m.Confidence,
		Kind:       m.Kind,
	}
}
