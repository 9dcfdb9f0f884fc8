package reporter

import (
	"fmt"
	"io"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.EvaluationReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Use Case Evaluation Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Date: %s\n- Use cases evaluated: %d\n\n",
		report.EvaluationDate, report.TotalUseCasesEvaluated); err != nil {
		return err
	}

	for _, result := range report.Results {
		overall := result.AggregateScores[core.DimensionOverall]
		if _, err := fmt.Fprintf(r.Writer, "## %s\n\n", result.UseCase); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.Writer, "- Model: %s\n- Overall: %.2f/5.0 (%s)\n- Recommendation: %s\n\n",
			result.Model, overall.Mean, overall.Assessment, result.Recommendation); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(r.Writer, "| Dimension | Mean | Min | Max |\n|---|---|---|---|\n"); err != nil {
			return err
		}
		for _, dimension := range sortedDimensions(result.AggregateScores) {
			agg := result.AggregateScores[dimension]
			if _, err := fmt.Fprintf(r.Writer, "| %s | %.2f | %.2f | %.2f |\n",
				dimension, agg.Mean, agg.Min, agg.Max); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(r.Writer, "\n| Scenario | Response Time | Error |\n|---|---|---|\n"); err != nil {
			return err
		}
		for _, prompt := range result.PromptResults {
			if _, err := fmt.Fprintf(r.Writer, "| %s | %.2fs | %s |\n",
				escapePipe(prompt.Scenario), prompt.ResponseTime, escapePipe(prompt.Error)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.Writer); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		switch r {
		case '|':
			out = append(out, '\\', r)
		case '\n', '\r':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
