package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

	"github.com/stretchr/testify/require"
)

func sampleReport() core.EvaluationReport {
	report := core.EvaluationReport{
		EvaluationDate:         "2026-08-30T10:00:00Z",
		TotalUseCasesEvaluated: 1,
		Results: []core.EvaluationResult{
			{
				UseCase:     "Customer Support Automation",
				Description: "Handling customer inquiries",
				Model:       "claude-sonnet-4-5",
				Timestamp:   "2026-08-30T10:00:05Z",
				PromptResults: []core.PromptResult{
					{
						Scenario:     "Password reset",
						Prompt:       "How do I reset my password?",
						Response:     "You can reset it from the login page.",
						ResponseTime: 1.25,
						Scores:       map[string]float64{"completeness": 3.5, "safety": 5.0},
					},
					{
						Scenario:     "Refund request",
						Prompt:       "I want my money back.",
						ResponseTime: 0,
						Scores:       map[string]float64{"completeness": 1.0, "safety": 1.0},
						Error:        "claude-sonnet-4-5: request failed: timeout",
					},
				},
				AggregateScores: map[string]core.AggregateScore{
					"completeness":        {Mean: 2.25, Min: 1.0, Max: 3.5},
					"safety":              {Mean: 3.0, Min: 1.0, Max: 5.0},
					core.DimensionOverall: {Mean: 2.63, Assessment: "Needs Improvement"},
				},
				Recommendation: "Consider alternative approaches or significant customization for Customer Support Automation.",
			},
		},
	}
	report.Summarize()
	return report
}

func TestJSONReporterFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONReporter{Writer: &buf, Pretty: true}.Report(sampleReport()))

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Contains(t, raw, "evaluation_date")
	require.Contains(t, raw, "total_use_cases_evaluated")
	require.Contains(t, raw, "summary")

	results, ok := raw["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	require.Contains(t, first, "use_case")
	require.Contains(t, first, "prompt_results")
	require.Contains(t, first, "aggregate_scores")
	require.Contains(t, first, "recommendation")
}

func TestTableReporterSummarizes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableReporter{Writer: &buf}.Report(sampleReport()))

	out := buf.String()
	require.Contains(t, out, "Customer Support Automation")
	require.Contains(t, out, "claude-sonnet-4-5")
	require.Contains(t, out, "Needs Improvement")
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownReporter{Writer: &buf}.Report(sampleReport()))

	out := buf.String()
	require.Contains(t, out, "Customer Support Automation")
	require.Contains(t, out, "|")
	require.Contains(t, out, "completeness")
}

func TestCSVReporterRowPerPrompt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVReporter{Writer: &buf}.Report(sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"use_case", "model", "scenario", "response_time_seconds", "completeness", "safety", "error"}, records[0])
	require.Equal(t, "Password reset", records[1][2])
	require.Contains(t, records[2][6], "request failed")
}

func TestHTMLReporterSelfContained(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLReporter{Writer: &buf}.Report(sampleReport()))

	out := buf.String()
	require.Contains(t, out, "<html")
	require.Contains(t, out, "Customer Support Automation")
	require.NotContains(t, out, "<script src=")
}

func TestWriteComparisonJSON(t *testing.T) {
	report := core.ComparisonReport{
		ComparisonDate: "2026-08-30T10:00:00Z",
		UseCaseComparisons: []core.UseCaseComparison{
			{
				UseCase: "Contract Analysis",
				Models: []core.ModelStanding{
					{ModelName: "claude-opus-4-5", OverallScore: 4.6, Assessment: "Excellent", CostPerMTok: 25.0},
				},
				BestModel: "claude-opus-4-5",
			},
		},
		Summary: core.ComparisonSummary{
			TotalUseCasesCompared: 1,
			ModelWins:             map[string]int{"claude-opus-4-5": 1},
			OverallBestModel:      "claude-opus-4-5",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonJSON(&buf, report))

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Contains(t, raw, "comparison_date")
	require.Contains(t, raw, "use_case_comparisons")

	var tableBuf bytes.Buffer
	require.NoError(t, WriteComparisonTable(&tableBuf, report))
	out := tableBuf.String()
	require.Contains(t, out, "claude-opus-4-5")
	require.True(t, strings.Contains(out, "4.60/5.0"))
}
