package scorer

import (
	"context"
	"strings"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// Format rewards responses with visible structure.
type Format struct{}

func (Format) Name() string {
	return "format"
}

func (Format) Score(_ context.Context, _ core.PromptSpec, response string) (float64, error) {
	if strings.ContainsAny(response, "\n.") {
		return 4.0, nil
	}
	return 3.0, nil
}
