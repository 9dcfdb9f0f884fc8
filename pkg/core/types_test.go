package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluationReportJSONShape(t *testing.T) {
	report := EvaluationReport{
		EvaluationDate:         "2026-08-30T10:00:00Z",
		TotalUseCasesEvaluated: 1,
		Results: []EvaluationResult{
			{
				UseCase:     "Customer Support Automation",
				Description: "Handling customer inquiries",
				Model:       "claude-sonnet-4-5",
				Timestamp:   "2026-08-30T10:00:05Z",
				PromptResults: []PromptResult{
					{
						Scenario:                "Password reset",
						Prompt:                  "How do I reset my password?",
						Response:                "You can reset it from the login page.",
						ResponseTime:            1.25,
						Scores:                  map[string]float64{"completeness": 3.5, "safety": 5.0},
						ExpectedCharacteristics: []string{"empathy"},
					},
				},
				AggregateScores: map[string]AggregateScore{
					"completeness":   {Mean: 3.5, Min: 3.5, Max: 3.5},
					DimensionOverall: {Mean: 4.25, Assessment: "Very Good"},
				},
				Recommendation: "The model performs very well for Customer Support Automation. Recommended for production use with standard monitoring.",
			},
		},
	}
	report.Summarize()

	data, err := json.Marshal(report)
	require.NoError(t, err)

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "evaluation_date")
	require.Contains(t, raw, "total_use_cases_evaluated")
	require.Contains(t, raw, "results")
	require.Contains(t, raw, "summary")

	var decoded EvaluationReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report.EvaluationDate, decoded.EvaluationDate)
	require.Len(t, decoded.Results, 1)
	require.Equal(t, report.Results[0].UseCase, decoded.Results[0].UseCase)
	require.Equal(t, 4.25, decoded.Results[0].OverallMean())
	require.NotNil(t, decoded.Summary)
	require.Equal(t, "Customer Support Automation", decoded.Summary.BestUseCase)
	require.Equal(t, 1, decoded.Summary.EvaluationCount)
}

func TestPromptResultErrorOmitted(t *testing.T) {
	data, err := json.Marshal(PromptResult{Scenario: "ok"})
	require.NoError(t, err)
	require.NotContains(t, string(data), `"error"`)

	data, err = json.Marshal(PromptResult{Scenario: "failed", Error: "model error: timeout"})
	require.NoError(t, err)
	require.Contains(t, string(data), `"error":"model error: timeout"`)
}

func TestSummarizePicksBestUseCase(t *testing.T) {
	report := EvaluationReport{
		Results: []EvaluationResult{
			{UseCase: "A", AggregateScores: map[string]AggregateScore{DimensionOverall: {Mean: 3.2}}},
			{UseCase: "B", AggregateScores: map[string]AggregateScore{DimensionOverall: {Mean: 4.4}}},
			{UseCase: "C", AggregateScores: map[string]AggregateScore{DimensionOverall: {Mean: 4.0}}},
		},
	}
	report.Summarize()

	require.NotNil(t, report.Summary)
	require.Equal(t, "B", report.Summary.BestUseCase)
	require.Equal(t, 3, report.Summary.EvaluationCount)
	require.InDelta(t, 3.87, report.Summary.AverageOverallScore, 0.001)
}

func TestComparisonReportJSONShape(t *testing.T) {
	report := ComparisonReport{
		ComparisonDate: "2026-08-30T10:00:00Z",
		UseCaseComparisons: []UseCaseComparison{
			{
				UseCase: "Contract Analysis",
				Models: []ModelStanding{
					{ModelName: "claude-opus-4-5", OverallScore: 4.6, Assessment: "Excellent", CostPerMTok: 25.0},
					{ModelName: "claude-haiku-4-5", OverallScore: 4.1, Assessment: "Very Good", CostPerMTok: 5.0},
				},
				BestModel: "claude-opus-4-5",
			},
		},
		Summary: ComparisonSummary{
			TotalUseCasesCompared: 1,
			ModelWins:             map[string]int{"claude-opus-4-5": 1},
			OverallBestModel:      "claude-opus-4-5",
		},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "comparison_date")
	require.Contains(t, raw, "use_case_comparisons")
	require.Contains(t, raw, "summary")

	var decoded ComparisonReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "claude-opus-4-5", decoded.Summary.OverallBestModel)
	require.Equal(t, 1, decoded.Summary.ModelWins["claude-opus-4-5"])
	require.Equal(t, "claude-opus-4-5", decoded.UseCaseComparisons[0].BestModel)
}
