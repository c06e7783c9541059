package services

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/yishak-cs/calboost/internal/llm"
	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

// fakeLLM returns canned content and records what it was asked
type fakeLLM struct {
	mu       sync.Mutex
	content  string
	err      error
	messages [][]llm.Message
}

func (f *fakeLLM) CompleteJSON(_ context.Context, messages []llm.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, messages)
	return f.content, f.err
}

const smallImage = "data:image/png;base64,iVBORw0KGgo="

func newTestAnalyzer(client llm.Client, remote RemoteSource) *MealAnalyzer {
	var backend *RemoteBackend
	if remote != nil {
		backend = NewRemoteBackend(remote, DefaultTranslator(), nil, 0, logger.Nop())
	}
	adapter := NewNutrientAdapter(nil, nil, backend, logger.Nop())
	return NewMealAnalyzer(client, adapter, 4, logger.Nop())
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	ae, ok := AsAnalysisError(err)
	if !ok {
		t.Fatalf("expected an AnalysisError of kind %s, got %v", want, err)
	}
	if ae.Kind != want {
		t.Fatalf("kind = %s, want %s (%v)", ae.Kind, want, err)
	}
}

func TestAnalyzeImage(t *testing.T) {
	t.Parallel()

	client := &fakeLLM{content: "```json\n" + `{"foodItems":["bife","batatas fritas"],"totalCalories":720.4,"protein":38.25,"carbs":55,"fats":35,"confidence":85,"description":"Bife com batatas"}` + "\n```"}
	got, err := newTestAnalyzer(client, nil).AnalyzeImage(context.Background(), smallImage)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !reflect.DeepEqual(got.FoodItems, []string{"bife", "batatas fritas"}) {
		t.Fatalf("food items = %v", got.FoodItems)
	}
	if got.TotalCalories != 720 || got.Confidence != 0.85 || got.Source != models.SourceModelEstimate {
		t.Fatalf("unexpected analysis %+v", got)
	}
	if len(got.LowConfidence) != 0 || got.Unresolved == nil {
		t.Fatalf("unexpected flags %+v", got)
	}

	if msgs := client.messages[0]; len(msgs) != 1 || msgs[0].Role != "user" {
		t.Fatalf("image analysis should send one user message, got %+v", msgs)
	}
}

func TestAnalyzeImageMalformedResponses(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not json":        "Desculpe, não consigo analisar.",
		"unknown field":   `{"foodItems":["arroz"],"totalCalories":200,"calories":200}`,
		"no food items":   `{"foodItems":[],"totalCalories":200}`,
		"zero calories":   `{"foodItems":["arroz"],"totalCalories":0}`,
		"missing total":   `{"foodItems":["arroz"]}`,
		"trailing object": `{"foodItems":["arroz"],"totalCalories":200}{"x":1}`,
	}
	for name, content := range tests {
		name, content := name, content
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestAnalyzer(&fakeLLM{content: content}, nil).AnalyzeImage(context.Background(), smallImage)
			requireKind(t, err, KindMalformedResponse)
		})
	}
}

func TestAnalyzeImageUpstreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   Kind
		msg    string
	}{
		{http.StatusUnauthorized, KindUpstreamAuth, MsgUpstreamAuth},
		{http.StatusTooManyRequests, KindRateLimited, MsgRateLimited},
		{http.StatusBadRequest, KindPayloadTooLarge, MsgImagePayload},
		{http.StatusBadGateway, KindUpstream, ""},
	}
	for _, tt := range tests {
		client := &fakeLLM{err: &llm.StatusError{StatusCode: tt.status, Body: "{}"}}
		_, err := newTestAnalyzer(client, nil).AnalyzeImage(context.Background(), smallImage)
		requireKind(t, err, tt.want)
		ae, _ := AsAnalysisError(err)
		if tt.msg != "" && ae.Message != tt.msg {
			t.Fatalf("status %d message = %q", tt.status, ae.Message)
		}
		if tt.want.HTTPStatus() != http.StatusInternalServerError {
			t.Fatalf("upstream failures must map to 500")
		}
	}

	_, err := newTestAnalyzer(&fakeLLM{err: errors.New("dial tcp: timeout")}, nil).AnalyzeImage(context.Background(), smallImage)
	requireKind(t, err, KindUpstream)
}

func TestAnalyzeImageValidation(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(&fakeLLM{}, nil)

	_, err := a.AnalyzeImage(context.Background(), "http://example.com/a.png")
	requireKind(t, err, KindValidation)

	_, err = newTestAnalyzer(nil, nil).AnalyzeImage(context.Background(), smallImage)
	requireKind(t, err, KindNotConfigured)
}

func TestImageSizeBoundary(t *testing.T) {
	t.Parallel()

	// 27962028 base64 chars with one padding char decode to exactly 20MB
	atLimit := "data:image/jpeg;base64," + strings.Repeat("A", 27962027) + "="
	if err := ValidateImageDataURI(atLimit); err != nil {
		t.Fatalf("image at the limit should be accepted: %v", err)
	}
	overLimit := "data:image/jpeg;base64," + strings.Repeat("A", 27962028)
	err := ValidateImageDataURI(overLimit)
	requireKind(t, err, KindValidation)
	if ae, _ := AsAnalysisError(err); ae.Message != MsgImageTooLarge {
		t.Fatalf("unexpected message %q", ae.Message)
	}

	if got := DecodedImageSize("QUJD"); got != 3 {
		t.Fatalf("DecodedImageSize(QUJD) = %d", got)
	}
	if got := DecodedImageSize("QUI="); got != 2 {
		t.Fatalf("DecodedImageSize(QUI=) = %d", got)
	}
	if got := DecodedImageSize("QQ=="); got != 1 {
		t.Fatalf("DecodedImageSize(QQ==) = %d", got)
	}
}

func TestAnalyzeDescription(t *testing.T) {
	t.Parallel()

	client := &fakeLLM{content: `{"foods":[
		{"name":"frango grelhado","quantity":150,"unit":"g"},
		{"name":"arroz branco","unit":"g"},
		{"name":"comida misteriosa","quantity":80,"unit":"g"}
	]}`}
	remote := newFakeRemote(testRemoteFoods())

	got, err := newTestAnalyzer(client, remote).AnalyzeDescription(context.Background(), "frango grelhado com arroz e uma comida misteriosa")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	wantItems := []string{"frango grelhado (150g)", "arroz branco (150g)", "comida misteriosa (80g)"}
	if !reflect.DeepEqual(got.FoodItems, wantItems) {
		t.Fatalf("food items = %v, want %v", got.FoodItems, wantItems)
	}
	if got.TotalCalories != 443 {
		t.Fatalf("total calories = %v, want 443", got.TotalCalories)
	}
	if !reflect.DeepEqual(got.Unresolved, []string{"comida misteriosa"}) {
		t.Fatalf("unresolved = %v", got.Unresolved)
	}
	if got.Source != models.SourceRemoteDatabase || got.Confidence != 0.85 {
		t.Fatalf("unexpected provenance %+v", got)
	}
	if got.Description != strings.Join(wantItems, ", ") {
		t.Fatalf("description = %q", got.Description)
	}
	if msgs := client.messages[0]; len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Content != "frango grelhado com arroz e uma comida misteriosa" {
		t.Fatalf("unexpected prompt %+v", msgs)
	}
}

func TestAnalyzeDescriptionFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := newTestAnalyzer(&fakeLLM{content: `{"foods":[]}`}, nil).AnalyzeDescription(ctx, "nada")
	requireKind(t, err, KindNoFoods)

	_, err = newTestAnalyzer(&fakeLLM{content: `{"alimentos":[]}`}, nil).AnalyzeDescription(ctx, "nada")
	requireKind(t, err, KindMalformedResponse)

	_, err = newTestAnalyzer(&fakeLLM{}, nil).AnalyzeDescription(ctx, "   ")
	requireKind(t, err, KindValidation)

	_, err = newTestAnalyzer(&fakeLLM{err: &llm.StatusError{StatusCode: http.StatusBadRequest}}, nil).AnalyzeDescription(ctx, "arroz")
	requireKind(t, err, KindPayloadTooLarge)
	if ae, _ := AsAnalysisError(err); ae.Message != MsgDescriptionPayload {
		t.Fatalf("unexpected message %q", ae.Message)
	}
}

func TestAnalyzeDescriptionWithoutRemoteUsesLocalTable(t *testing.T) {
	t.Parallel()

	client := &fakeLLM{content: `{"foods":[{"name":"brócolos","quantity":200,"unit":"g"}]}`}
	got, err := newTestAnalyzer(client, nil).AnalyzeDescription(context.Background(), "brócolos")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.TotalCalories != 68 || len(got.Unresolved) != 0 {
		t.Fatalf("unexpected analysis %+v", got)
	}
	if got.Source != models.SourceLocalDatabase {
		t.Fatalf("source = %q, want %q", got.Source, models.SourceLocalDatabase)
	}
}

func TestExtractFoodsConvertsUnits(t *testing.T) {
	t.Parallel()

	client := &fakeLLM{content: `{"foods":[
		{"name":"frango","quantity":2,"unit":"unidades"},
		{"name":"arroz","quantity":0.2,"unit":"kg"},
		{"name":"batata","quantity":300,"unit":"Gramas"},
		{"name":"leite","quantity":250,"unit":"ml"}
	]}`}
	foods, err := newTestAnalyzer(client, nil).ExtractFoods(context.Background(), "dois frangos, arroz, batata e leite")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := []float64{150, 200, 300, DefaultPortionGrams("leite")}
	if len(foods) != len(want) {
		t.Fatalf("foods = %+v", foods)
	}
	for i, f := range foods {
		if f.Quantity != want[i] || f.Unit != "g" {
			t.Fatalf("food %d = %+v, want %vg", i, f, want[i])
		}
	}
}

func TestDefaultPortionGrams(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"Batata cozida":      200,
		"frango estufado":    150,
		"salmão":             150,
		"arroz de pato":      150,
		"salada mista":       100,
		"gelado de baunilha": 100,
	}
	for name, want := range tests {
		if got := DefaultPortionGrams(name); got != want {
			t.Fatalf("DefaultPortionGrams(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNormalizeModelConfidence(t *testing.T) {
	t.Parallel()

	tests := map[float64]float64{0: 0, -3: 0, 0.7: 0.7, 85: 0.85, 100: 1, 250: 1}
	for in, want := range tests {
		if got := normalizeModelConfidence(in); got != want {
			t.Fatalf("normalizeModelConfidence(%v) = %v, want %v", in, got, want)
		}
	}
}
