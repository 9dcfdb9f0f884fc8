package core

import "context"

// DimensionOverall is the reserved aggregate key for the overall score.
const DimensionOverall = "overall"

// Dimension scores a model response on one quality axis. Implementations must
// be deterministic and return values in [MinScore, MaxScore].
type Dimension interface {
	Name() string
	Score(ctx context.Context, spec PromptSpec, response string) (float64, error)
}

// ClampScore bounds a raw heuristic value to the score domain.
func ClampScore(value float64) float64 {
	if value < MinScore {
		return MinScore
	}
	if value > MaxScore {
		return MaxScore
	}
	return value
}
