package cards

import (
	"slices"
	"strings"
)

// FilterOptions selects cards out of a batch. Empty fields match everything.
type FilterOptions struct {
	Types     []CardType
	Rarities  []Rarity
	Languages []string
	// FreeWords are whitespace separated words that must all appear in the
	// title, subtype or card text, ignoring case.
	FreeWords string
}

func Filter(cards []CardDescription, opt FilterOptions) []CardDescription {
	var out []CardDescription
	for i := range cards {
		if opt.matches(&cards[i]) {
			out = append(out, cards[i])
		}
	}
	return out
}

func oneOf[T ~string](v T, set []T) bool {
	return len(set) == 0 || slices.ContainsFunc(set, func(s T) bool {
		return strings.EqualFold(string(s), string(v))
	})
}

func (opt FilterOptions) matches(c *CardDescription) bool {
	if !oneOf(c.Type, opt.Types) || !oneOf(c.EffectiveRarity(), opt.Rarities) {
		return false
	}
	if len(opt.Languages) > 0 && !slices.Contains(opt.Languages, c.TemplateLanguage) {
		return false
	}
	text := strings.ToLower(strings.Join([]string{c.Title, c.Subtype, c.EffectText, c.PendulumEffectText}, "\n"))
	for _, w := range strings.Fields(strings.ToLower(opt.FreeWords)) {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
