package scorer

import (
	"context"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// CharacteristicsMatch scores the fraction of expected characteristics found
// as case-insensitive substrings of the response. Prompts without expected
// characteristics score a fixed neutral value.
type CharacteristicsMatch struct{}

func (CharacteristicsMatch) Name() string {
	return "characteristics_match"
}

func (CharacteristicsMatch) Score(_ context.Context, spec core.PromptSpec, response string) (float64, error) {
	if len(spec.ExpectedCharacteristics) == 0 {
		return 4.0, nil
	}
	return core.ClampScore(matchFraction(response, spec.ExpectedCharacteristics) * core.MaxScore), nil
}
