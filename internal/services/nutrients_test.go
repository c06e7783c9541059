package services

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// fakeRemote answers searches from a fixed map keyed by translated query
type fakeRemote struct {
	mu    sync.Mutex
	foods map[string][]USDAFood
	err   error
	gate  chan struct{}
	calls map[string]int
}

func newFakeRemote(foods map[string][]USDAFood) *fakeRemote {
	return &fakeRemote{foods: foods, calls: map[string]int{}}
}

func (f *fakeRemote) SearchFoods(ctx context.Context, query string, pageSize int) ([]USDAFood, error) {
	f.mu.Lock()
	f.calls[query]++
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.foods[query], nil
}

func (f *fakeRemote) callCount(query string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[query]
}

func usdaFood(id int64, desc string, kcal, protein, carbs, fats float64) USDAFood {
	return USDAFood{FdcID: id, Description: desc, FoodNutrients: []USDANutrient{
		{NutrientID: 1008, Value: kcal},
		{NutrientID: 1003, Value: protein},
		{NutrientID: 1005, Value: carbs},
		{NutrientID: 1004, Value: fats},
	}}
}

func testRemoteFoods() map[string][]USDAFood {
	return map[string][]USDAFood{
		"chicken grilled":   {usdaFood(1, "Chicken, grilled", 165, 31, 0, 3.6)},
		"white rice cooked": {usdaFood(2, "Rice, white, cooked", 130, 2.7, 28, 0.3)},
		"chicken":           {usdaFood(3, "Chicken, raw", 120, 22, 0, 2.6)},
	}
}

func newTestRemoteBackend(t *testing.T, src RemoteSource) *RemoteBackend {
	t.Helper()
	cache, err := NewMemoryCache(16)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return NewRemoteBackend(src, DefaultTranslator(), cache, time.Second, logger.Nop())
}

func TestRemoteBackendTranslatesAndCaches(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(testRemoteFoods())
	b := newTestRemoteBackend(t, src)
	ctx := context.Background()

	m, ok := b.Lookup(ctx, "Frango Grelhado")
	if !ok {
		t.Fatalf("expected a remote hit")
	}
	if m.Record.Name != "Chicken, grilled" || m.Record.Source != models.SourceRemote {
		t.Fatalf("unexpected record %+v", m.Record)
	}
	if m.Confidence != 0.85 || m.Kind != MatchExact {
		t.Fatalf("exact translation should score 0.85, got %v (%s)", m.Confidence, m.Kind)
	}

	if _, ok := b.Lookup(ctx, "frango grelhado"); !ok {
		t.Fatalf("second lookup should hit the cache")
	}
	if n := src.callCount("chicken grilled"); n != 1 {
		t.Fatalf("expected one remote call, got %d", n)
	}
}

func TestRemoteBackendMissesAreNotCached(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(testRemoteFoods())
	b := newTestRemoteBackend(t, src)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, ok := b.Lookup(ctx, "xyzabc-unknown-food"); ok {
			t.Fatalf("unknown food should miss")
		}
	}
	if n := src.callCount("xyzabc-unknown-food"); n != 2 {
		t.Fatalf("misses must not be cached, got %d calls", n)
	}
}

func TestRemoteBackendErrorIsMiss(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(nil)
	src.err = errors.New("connection refused")
	b := newTestRemoteBackend(t, src)

	if _, ok := b.Lookup(context.Background(), "arroz branco"); ok {
		t.Fatalf("transport errors must resolve to not found")
	}
}

func TestRemoteBackendSharesInFlightLookups(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(testRemoteFoods())
	src.gate = make(chan struct{})
	b := NewRemoteBackend(src, DefaultTranslator(), nil, 5*time.Second, logger.Nop())

	const n = 8
	var wg sync.WaitGroup
	results := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = b.Lookup(context.Background(), "frango")
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	for i, ok := range results {
		if !ok {
			t.Fatalf("lookup %d missed", i)
		}
	}
	if c := src.callCount("chicken"); c != 1 {
		t.Fatalf("concurrent lookups should share one request, got %d", c)
	}
}

func TestRemoteConfidenceByTranslationTier(t *testing.T) {
	t.Parallel()
	tests := map[MatchKind]float64{
		MatchExact:     0.85,
		MatchPrefix:    0.81,
		MatchSubstring: 0.77,
		MatchNone:      0.64,
	}
	for kind, want := range tests {
		if got := remoteConfidence(kind); got != want {
			t.Fatalf("remoteConfidence(%s) = %v, want %v", kind, got, want)
		}
	}
}

func TestNutrientAdapterScaling(t *testing.T) {
	t.Parallel()
	a := NewNutrientAdapter(nil, nil, nil, logger.Nop())
	ctx := context.Background()

	for _, grams := range []float64{50, 100, 150, 1000} {
		res, ok := a.ResolveLocal(ctx, "peito de frango", grams)
		if !ok {
			t.Fatalf("expected a local hit")
		}
		want := float64(int(165*grams/100 + 0.5))
		if res.Nutrients.Calories != want {
			t.Fatalf("calories at %vg = %v, want %v", grams, res.Nutrients.Calories, want)
		}
	}

	res, _ := a.ResolveLocal(ctx, "batata", 0)
	if res.Grams != 200 || res.Nutrients.Calories != 154 {
		t.Fatalf("zero grams should use the default serving, got %+v", res)
	}
}

func TestNutrientAdapterIdempotent(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(testRemoteFoods())
	a := NewNutrientAdapter(nil, nil, newTestRemoteBackend(t, src), logger.Nop())
	ctx := context.Background()

	for _, q := range []string{"arroz branco", "frango grelhado"} {
		first, ok1 := a.ResolveRemote(ctx, q, 150)
		second, ok2 := a.ResolveRemote(ctx, q, 150)
		if !ok1 || !ok2 || !reflect.DeepEqual(first, second) {
			t.Fatalf("remote %q not idempotent: %+v vs %+v", q, first, second)
		}
		first, _ = a.ResolveLocal(ctx, q, 150)
		second, _ = a.ResolveLocal(ctx, q, 150)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("local %q not idempotent: %+v vs %+v", q, first, second)
		}
	}
}

func TestNutrientAdapterResolveFallsBackToRemote(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(map[string][]USDAFood{
		"lamb": {usdaFood(7, "Lamb, roasted", 294, 25, 0, 21)},
	})
	a := NewNutrientAdapter(nil, nil, newTestRemoteBackend(t, src), logger.Nop())

	res, ok := a.Resolve(context.Background(), "borrego", 100)
	if !ok || res.Record.Source != models.SourceRemote || res.Nutrients.Calories != 294 {
		t.Fatalf("expected a remote fallback, got %+v ok=%v", res, ok)
	}

	res, ok = a.Resolve(context.Background(), "salmão", 100)
	if !ok || res.Record.Source != models.SourceLocal {
		t.Fatalf("local hits should win, got %+v ok=%v", res, ok)
	}
}

func TestNutrientAdapterSearchCapsResults(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(map[string][]USDAFood{
		"cheese": {
			usdaFood(10, "Cheese, cheddar", 403, 25, 1.3, 33),
			usdaFood(11, "Cheese, feta", 264, 14, 4, 21),
			usdaFood(12, "Cheese, brie", 334, 21, 0.5, 28),
			usdaFood(13, "Cheese, gouda", 356, 25, 2.2, 27),
		},
	})
	a := NewNutrientAdapter(nil, nil, newTestRemoteBackend(t, src), logger.Nop())

	got := a.Search(context.Background(), "queijo", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}
	if got[0].Source != models.SourceLocal || got[1].Source != models.SourceLocal || got[2].Source != models.SourceRemote {
		t.Fatalf("local results must come first: %+v", got)
	}
}

func TestResolveRemoteSkipsHitsWithoutEnergy(t *testing.T) {
	t.Parallel()
	src := newFakeRemote(map[string][]USDAFood{
		"chicken": {
			{FdcID: 1, Description: "Chicken, breast, raw", FoodNutrients: []USDANutrient{{NutrientID: 1003, Value: 22.5}}},
			usdaFood(2, "Chicken, grilled", 165, 31, 0, 3.6),
		},
	})
	adapter := NewNutrientAdapter(nil, nil, newTestRemoteBackend(t, src), logger.Nop())

	res, ok := adapter.ResolveRemote(context.Background(), "frango", 150)
	if !ok {
		t.Fatalf("expected a remote hit")
	}
	if res.Record.ID != "usda-2" || res.Nutrients.Calories != 247.5 {
		t.Fatalf("resolved %+v with %+v", res.Record, res.Nutrients)
	}
}
