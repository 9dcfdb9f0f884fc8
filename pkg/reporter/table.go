package reporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// TableReporter prints a console summary: one row per use case plus a
// dimension breakdown table.
type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.EvaluationReport) error {
	summary := tablewriter.NewWriter(r.Writer)
	summary.Header([]string{"Use Case", "Model", "Overall", "Assessment", "Tests"})
	for _, result := range report.Results {
		overall := result.AggregateScores[core.DimensionOverall]
		summary.Append([]string{
			result.UseCase,
			result.Model,
			fmt.Sprintf("%.2f/5.0", overall.Mean),
			overall.Assessment,
			fmt.Sprintf("%d", len(result.PromptResults)),
		})
	}
	summary.Render()

	for _, result := range report.Results {
		fmt.Fprintf(r.Writer, "\n%s — %s\n", result.UseCase, result.Recommendation)
		dims := tablewriter.NewWriter(r.Writer)
		dims.Header([]string{"Dimension", "Mean", "Min", "Max"})
		for _, dimension := range sortedDimensions(result.AggregateScores) {
			agg := result.AggregateScores[dimension]
			dims.Append([]string{
				dimension,
				fmt.Sprintf("%.2f", agg.Mean),
				fmt.Sprintf("%.2f", agg.Min),
				fmt.Sprintf("%.2f", agg.Max),
			})
		}
		dims.Render()
	}
	return nil
}

func sortedDimensions(aggregate map[string]core.AggregateScore) []string {
	dimensions := make([]string, 0, len(aggregate))
	for dimension := range aggregate {
		if dimension == core.DimensionOverall {
			continue
		}
		dimensions = append(dimensions, dimension)
	}
	sort.Strings(dimensions)
	return dimensions
}
