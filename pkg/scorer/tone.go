package scorer

import (
	"context"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

var (
	professionalMarkers = []string{"please", "would", "could", "thank", "regarding", "however"}
	casualMarkers       = []string{"totally", "gonna", "wanna", "yeah"}
)

// ProfessionalTone starts at a neutral baseline, rewards professional
// phrasing, and penalizes casual markers.
type ProfessionalTone struct{}

func (ProfessionalTone) Name() string {
	return "professional_tone"
}

func (ProfessionalTone) Score(_ context.Context, _ core.PromptSpec, response string) (float64, error) {
	score := 3.0
	if containsAny(response, professionalMarkers) {
		score += 1.0
	}
	if containsAny(response, casualMarkers) {
		score -= 1.0
	}
	return core.ClampScore(score), nil
}
