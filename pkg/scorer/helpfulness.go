package scorer

import (
	"context"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

var helpfulMarkers = []string{"you can", "here", "following", "steps", "recommend", "suggest"}

// Helpfulness checks for actionable phrasing.
type Helpfulness struct{}

func (Helpfulness) Name() string {
	return "helpfulness"
}

func (Helpfulness) Score(_ context.Context, _ core.PromptSpec, response string) (float64, error) {
	if containsAny(response, helpfulMarkers) {
		return 4.5, nil
	}
	return 3.5, nil
}
