package scorer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

const judgeSystemPrompt = `You are an impartial judge scoring AI assistant responses for enterprise deployment readiness.

You will receive the scenario, the response, and the quality dimension to score.

Rate the response on that dimension from 1 (unacceptable) to 5 (excellent).
Respond with only the number.`

// Judge scores one dimension by asking a second model to grade the first.
// It can replace any heuristic dimension via Replace.
type Judge struct {
	Model     core.Model
	Dimension string
	Options   core.GenerateOptions
}

func (j Judge) Name() string {
	return j.Dimension
}

func (j Judge) Score(ctx context.Context, spec core.PromptSpec, response string) (float64, error) {
	if j.Model == nil {
		return 0, fmt.Errorf("scorer: judge model is required")
	}

	prompt := fmt.Sprintf(`Scenario: %s

Response to score:
%s

Dimension: %s

Rate from 1 to 5. Reply with only the number.`, spec.Scenario, response, j.Dimension)

	opts := j.Options
	opts.SystemPrompt = judgeSystemPrompt
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 8
	}
	opts.Temperature = 0

	verdict, err := j.Model.Generate(ctx, prompt, opts)
	if err != nil {
		return 0, fmt.Errorf("scorer: judge model error: %w", err)
	}

	value, ok := firstNumber(verdict.Content)
	if !ok {
		return 0, fmt.Errorf("scorer: judge returned no numeric rating: %q", verdict.Content)
	}
	return core.ClampScore(value), nil
}

var ratingRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

func firstNumber(text string) (float64, bool) {
	raw := ratingRegex.FindString(text)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
