package scorer

import (
	"context"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// Completeness scores responses by length relative to fixed thresholds. An
// empty response always scores the floor.
type Completeness struct {
	ShortThreshold int
	FullThreshold  int
}

func (c Completeness) Name() string {
	return "completeness"
}

func (c Completeness) Score(_ context.Context, _ core.PromptSpec, response string) (float64, error) {
	short := c.ShortThreshold
	if short <= 0 {
		short = 50
	}
	full := c.FullThreshold
	if full <= 0 {
		full = 200
	}

	switch {
	case len(response) == 0:
		return core.MinScore, nil
	case len(response) > full:
		return 4.5, nil
	case len(response) > short:
		return 3.5, nil
	default:
		return 2.0, nil
	}
}
