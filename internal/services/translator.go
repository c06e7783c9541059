package services

import (
	"strings"
	"unicode/utf8"
)

// Translation maps one Portuguese food term to the English query used against FoodData Central
type Translation struct {
	Term  string
	Query string
}

// defaultTranslations is ordered; the order only matters for equal-length ties.
var defaultTranslations = []Translation{
	// carnes e peixe
	{"frango", "chicken"},
	{"frango estufado", "chicken stewed"},
	{"frango grelhado", "chicken grilled"},
	{"frango assado", "chicken roasted"},
	{"peru", "turkey"},
	{"vaca", "beef"},
	{"porco", "pork"},
	{"borrego", "lamb"},
	{"peixe", "fish"},
	{"salmão", "salmon"},
	{"salmão grelhado", "salmon grilled"},
	{"atum", "tuna"},
	{"bacalhau", "cod"},

	// acompanhamentos
	{"arroz", "rice"},
	{"arroz branco", "white rice cooked"},
	{"arroz integral", "brown rice cooked"},
	{"massa", "pasta"},
	{"batata", "potato"},
	{"batata doce", "sweet potato"},
	{"batata-doce", "sweet potato"},
	{"batatas fritas", "french fries"},

	// vegetais
	{"brócolos", "broccoli"},
	{"cenoura", "carrot"},
	{"tomate", "tomato"},
	{"alface", "lettuce"},
	{"cebola", "onion"},
	{"alho", "garlic"},
	{"espinafres", "spinach"},
	{"couve", "cabbage"},

	// leguminosas
	{"feijão", "beans"},
	{"grão", "chickpeas"},
	{"lentilhas", "lentils"},

	// laticínios
	{"leite", "milk"},
	{"queijo", "cheese"},
	{"iogurte", "yogurt"},
	{"manteiga", "butter"},

	// outros
	{"ovo", "egg"},
	{"ovos", "eggs"},
	{"pão", "bread"},
	{"azeite", "olive oil"},
	{"óleo", "oil"},
}

// Translator maps local-language food names to the remote source's vocabulary
type Translator struct {
	entries []Translation
}

// NewTranslator builds a translator over the given dictionary
func NewTranslator(entries []Translation) *Translator {
	normalized := make([]Translation, 0, len(entries))
	for _, e := range entries {
		term := normalizeTerm(e.Term)
		if term == "" || strings.TrimSpace(e.Query) == "" {
			continue
		}
		normalized = append(normalized, Translation{Term: term, Query: strings.TrimSpace(e.Query)})
	}
	return &Translator{entries: normalized}
}

// DefaultTranslator returns a translator over the built-in Portuguese dictionary
func DefaultTranslator() *Translator {
	return NewTranslator(defaultTranslations)
}

// Translate never fails: unknown terms come back unchanged
func (t *Translator) Translate(term string) string {
	out, _ := t.TranslateWithKind(term)
	return out
}

// TranslateWithKind returns the translated query and how the dictionary matched.
// Priority is exact, then the longest term the input starts with, then the longest
// term the input contains. Equal lengths fall back to dictionary order.
func (t *Translator) TranslateWithKind(term string) (string, MatchKind) {
	key := normalizeTerm(term)
	if key == "" {
		return term, MatchNone
	}

	best := -1
	bestKind := MatchNone
	bestLen := 0
	for i, e := range t.entries {
		var kind MatchKind
		switch {
		case key == e.Term:
			return e.Query, MatchExact
		case strings.HasPrefix(key, e.Term):
			kind = MatchPrefix
		case strings.Contains(key, e.Term):
			kind = MatchSubstring
		default:
			continue
		}
		n := utf8.RuneCountInString(e.Term)
		if kind > bestKind || (kind == bestKind && n > bestLen) {
			best, bestKind, bestLen = i, kind, n
		}
	}
	if best < 0 {
		return term, MatchNone
	}
	return t.entries[best].Query, bestKind
}

// Len reports the dictionary size
func (t *Translator) Len() int {
	return len(t.entries)
}
