package services

import (
	"strings"
	"unicode/utf8"

	"github.com/yishak-cs/calboost/internal/models"
)

// minMentionRunes is the shortest phrase kept as a food mention
const minMentionRunes = 3

var mentionPunctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", ";", "")

// connectorWords split a description into separate food mentions
var connectorWords = map[string]struct{}{
	"com":         {},
	"e":           {},
	"mais":        {},
	"acompanhado": {},
	"de":          {},
}

// actionWords are verbs and meal names that never belong to a food mention
var actionWords = map[string]struct{}{
	"comi":    {},
	"almocei": {},
	"jantei":  {},
	"tomei":   {},
	"bebi":    {},
	"pequeno": {},
	"almoço":  {},
}

// ExtractMentions splits a free-text meal description into food phrases,
// in the order they appear in the text.
func ExtractMentions(description string) []string {
	mentions := ExtractMentionsWithPosition(description)
	out := make([]string, 0, len(mentions))
	for _, m := range mentions {
		out = append(out, m.Phrase)
	}
	return out
}

// ExtractMentionsWithPosition is ExtractMentions keeping the ordinal of each mention
func ExtractMentionsWithPosition(description string) []models.Mention {
	clean := mentionPunctuation.Replace(strings.ToLower(description))

	var (
		phrases []string
		current []string
	)
	flush := func() {
		phrase := strings.TrimSpace(strings.Join(current, " "))
		current = current[:0]
		if utf8.RuneCountInString(phrase) >= minMentionRunes {
			phrases = append(phrases, phrase)
		}
	}

	for _, word := range strings.Fields(clean) {
		if _, ok := actionWords[word]; ok {
			continue
		}
		if _, ok := connectorWords[word]; ok {
			flush()
			continue
		}
		current = append(current, word)
	}
	flush()

	mentions := make([]models.Mention, 0, len(phrases))
	for i, p := range phrases {
		mentions = append(mentions, models.Mention{Phrase: p, Ordinal: i})
	}
	return mentions
}
