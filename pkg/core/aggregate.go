package core

import (
	"fmt"
	"math"
	"sort"
)

// AggregateScores computes mean/min/max per dimension across the prompt
// results of a use case, plus an "overall" entry holding the mean of the
// dimension means and a qualitative assessment.
func AggregateScores(results []PromptResult) map[string]AggregateScore {
	byDimension := map[string][]float64{}
	for _, result := range results {
		for dimension, score := range result.Scores {
			byDimension[dimension] = append(byDimension[dimension], score)
		}
	}

	aggregate := make(map[string]AggregateScore, len(byDimension)+1)
	dimensions := make([]string, 0, len(byDimension))
	for dimension := range byDimension {
		dimensions = append(dimensions, dimension)
	}
	sort.Strings(dimensions)

	means := make([]float64, 0, len(dimensions))
	for _, dimension := range dimensions {
		scores := byDimension[dimension]
		entry := AggregateScore{
			Mean: round2(mean(scores)),
			Min:  round2(minOf(scores)),
			Max:  round2(maxOf(scores)),
		}
		aggregate[dimension] = entry
		means = append(means, entry.Mean)
	}

	overall := round2(mean(means))
	aggregate[DimensionOverall] = AggregateScore{
		Mean:       overall,
		Assessment: Assessment(overall),
	}
	return aggregate
}

// Assessment maps an overall mean to its qualitative label. The thresholds
// are fixed; downstream report consumers key on these exact strings.
func Assessment(score float64) string {
	switch {
	case score >= 4.5:
		return "Excellent"
	case score >= 4.0:
		return "Very Good"
	case score >= 3.5:
		return "Good"
	case score >= 3.0:
		return "Acceptable"
	default:
		return "Needs Improvement"
	}
}

// Recommendation renders the deployment recommendation for a use case from
// its overall mean. Template selection follows the assessment thresholds.
func Recommendation(overall float64, useCase string) string {
	switch {
	case overall >= 4.5:
		return fmt.Sprintf("The model is an excellent fit for %s. Deploy with confidence.", useCase)
	case overall >= 4.0:
		return fmt.Sprintf("The model performs very well for %s. Recommended for production use with standard monitoring.", useCase)
	case overall >= 3.5:
		return fmt.Sprintf("The model is suitable for %s with some customization. Consider prompt engineering optimization.", useCase)
	case overall >= 3.0:
		return fmt.Sprintf("The model can handle %s but may need significant prompt tuning and evaluation.", useCase)
	default:
		return fmt.Sprintf("Consider alternative approaches or significant customization for %s.", useCase)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
