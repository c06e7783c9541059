package services

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MatchKind ranks how well a query matched a candidate name. Higher is better.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchToken
	MatchSubstring
	MatchPrefix
	MatchExact
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchSubstring:
		return "substring"
	case MatchToken:
		return "token"
	default:
		return "none"
	}
}

// normalizeTerm lowercases, trims and collapses inner whitespace
func normalizeTerm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// matchName reports how query (already normalized) sits inside name (already normalized)
func matchName(name, query string) MatchKind {
	if query == "" || name == "" {
		return MatchNone
	}
	switch {
	case name == query:
		return MatchExact
	case strings.HasPrefix(name, query):
		return MatchPrefix
	case strings.Contains(name, query):
		return MatchSubstring
	default:
		return MatchNone
	}
}

// matchConfidence turns a match tier into a 0..1 score using the share of the
// candidate name that the matched text covers.
func matchConfidence(kind MatchKind, matched, name string) float64 {
	nameLen := utf8.RuneCountInString(name)
	if nameLen == 0 {
		return 0
	}
	r := float64(utf8.RuneCountInString(matched)) / float64(nameLen)
	if r > 1 {
		r = 1
	}
	var c float64
	switch kind {
	case MatchExact:
		return 1
	case MatchPrefix:
		c = 0.5 + 0.5*r
	case MatchSubstring:
		c = 0.4 + 0.5*r
	case MatchToken:
		c = 0.2 + 0.4*r
	default:
		return 0
	}
	return roundConfidence(c)
}

func roundConfidence(c float64) float64 {
	return float64(int(c*100+0.5)) / 100
}

// nameMatch is the best candidate picked by bestNameMatch
type nameMatch struct {
	Index      int
	Kind       MatchKind
	Confidence float64
}

// bestNameMatch finds the best candidate for query among names (both normalized).
// Tiers are exact, prefix, substring and finally single words of the query.
// Within a tier the shortest name wins, then the earliest one.
func bestNameMatch(names []string, query string) (nameMatch, bool) {
	if m, ok := bestInTier(names, query, false); ok {
		return m, true
	}

	tokens := queryTokens(query)
	if len(tokens) < 2 {
		return nameMatch{}, false
	}
	for _, tok := range tokens {
		if m, ok := bestInTier(names, tok, true); ok {
			return m, true
		}
	}
	return nameMatch{}, false
}

func bestInTier(names []string, query string, asToken bool) (nameMatch, bool) {
	best := nameMatch{Index: -1}
	bestLen := 0
	for i, name := range names {
		kind := matchName(name, query)
		if kind == MatchNone {
			continue
		}
		if asToken {
			kind = MatchToken
		}
		n := utf8.RuneCountInString(name)
		if best.Index < 0 || kind > best.Kind || (kind == best.Kind && n < bestLen) {
			best = nameMatch{Index: i, Kind: kind}
			bestLen = n
		}
	}
	if best.Index < 0 {
		return nameMatch{}, false
	}
	best.Confidence = matchConfidence(best.Kind, query, names[best.Index])
	return best, true
}

// queryTokens returns the words of a query long enough to be meaningful, longest first
func queryTokens(query string) []string {
	var tokens []string
	for _, w := range strings.Fields(query) {
		if utf8.RuneCountInString(w) >= minMentionRunes {
			tokens = append(tokens, w)
		}
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return utf8.RuneCountInString(tokens[i]) > utf8.RuneCountInString(tokens[j])
	})
	return tokens
}
