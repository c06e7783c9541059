package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// lowConfidenceThreshold flags items whose match is too weak to trust without review
const lowConfidenceThreshold = 0.5

// defaultMaxConcurrency caps per-request lookups when no limit is configured
const defaultMaxConcurrency = 8

// MealResolver turns a free-text description into totals using the local backend
type MealResolver struct {
	adapter        *NutrientAdapter
	maxConcurrency int
	log            *logger.Logger
}

func NewMealResolver(adapter *NutrientAdapter, maxConcurrency int, log *logger.Logger) *MealResolver {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &MealResolver{
		adapter:        adapter,
		maxConcurrency: maxConcurrency,
		log:            log.With("service", "MealResolver"),
	}
}

type lookupSlot struct {
	phrase string
	food   models.ResolvedFood
	ok     bool
}

// ResolveMeal never fails. Unmatched phrases land in UnresolvedPhrases and add nothing to the totals.
func (r *MealResolver) ResolveMeal(ctx context.Context, description string) *models.MealAggregate {
	mentions := ExtractMentions(description)
	slots := make([]lookupSlot, len(mentions))

	var g errgroup.Group
	g.SetLimit(r.maxConcurrency)
	for i, phrase := range mentions {
		i, phrase := i, phrase
		g.Go(func() error {
			slots[i].phrase = phrase
			res, ok := r.adapter.ResolveLocal(ctx, phrase, 0)
			if ok {
				slots[i].food = res.ResolvedFood(phrase)
				slots[i].ok = true
			}
			return nil
		})
	}
	_ = g.Wait()

	foods := make([]models.ResolvedFood, 0, len(slots))
	unresolved := make([]string, 0)
	for _, s := range slots {
		if s.ok {
			foods = append(foods, s.food)
		} else {
			unresolved = append(unresolved, s.phrase)
		}
	}

	agg := aggregateFoods(foods, unresolved)
	r.log.Debug("meal resolved",
		"mentions", len(mentions),
		"resolved", len(agg.ResolvedFoods),
		"unresolved", len(agg.UnresolvedPhrases),
		"calories", agg.TotalCalories,
	)
	return agg
}

// aggregateFoods sums resolved items only and rounds the totals
func aggregateFoods(foods []models.ResolvedFood, unresolved []string) *models.MealAggregate {
	var total models.NutrientData
	lowConfidence := make([]string, 0)
	for _, f := range foods {
		total = total.Add(f.Nutrients())
		if f.Confidence < lowConfidenceThreshold {
			lowConfidence = append(lowConfidence, f.Phrase)
		}
	}
	total = total.Rounded()

	if foods == nil {
		foods = []models.ResolvedFood{}
	}
	if unresolved == nil {
		unresolved = []string{}
	}
	return &models.MealAggregate{
		ResolvedFoods:     foods,
		UnresolvedPhrases: unresolved,
		LowConfidence:     lowConfidence,
		TotalCalories:     total.Calories,
		TotalProtein:      total.Protein,
		TotalCarbs:        total.Carbs,
		TotalFats:         total.Fats,
		TotalFiber:        total.Fiber,
	}
}
