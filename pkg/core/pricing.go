package core

import "strings"

// Nominal USD prices per million output tokens, used only to break ranking
// ties in model comparisons. Values follow the providers' public rate cards.
var costPerMTok = map[string]float64{
	"claude-opus-4-5":   25.0,
	"claude-sonnet-4-5": 15.0,
	"claude-haiku-4-5":  5.0,
	"gpt-4o":            10.0,
	"gpt-4o-mini":       0.6,
	"gemini-2.0-flash":  0.4,
}

// Cost returns the nominal cost per million tokens for a model. Dated model
// identifiers (e.g. claude-sonnet-4-5-20250929) resolve through their family
// prefix. The second return is false for unknown models.
func Cost(model string) (float64, bool) {
	if cost, ok := costPerMTok[model]; ok {
		return cost, true
	}
	for family, cost := range costPerMTok {
		if strings.HasPrefix(model, family) {
			return cost, true
		}
	}
	return 0, false
}
