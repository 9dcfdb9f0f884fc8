package reporter

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// CSVReporter writes one row per prompt, with a column per dimension. The
// column set is the union of dimensions across the report, sorted.
type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.EvaluationReport) error {
	dimensions := collectDimensions(report)

	writer := csv.NewWriter(r.Writer)
	header := append([]string{"use_case", "model", "scenario", "response_time_seconds"}, dimensions...)
	header = append(header, "error")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range report.Results {
		for _, prompt := range result.PromptResults {
			record := []string{
				result.UseCase,
				result.Model,
				prompt.Scenario,
				strconv.FormatFloat(prompt.ResponseTime, 'f', 2, 64),
			}
			for _, dimension := range dimensions {
				record = append(record, strconv.FormatFloat(prompt.Scores[dimension], 'f', 2, 64))
			}
			record = append(record, prompt.Error)
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func collectDimensions(report core.EvaluationReport) []string {
	seen := map[string]bool{}
	for _, result := range report.Results {
		for _, prompt := range result.PromptResults {
			for dimension := range prompt.Scores {
				seen[dimension] = true
			}
		}
	}
	dimensions := make([]string, 0, len(seen))
	for dimension := range seen {
		dimensions = append(dimensions, dimension)
	}
	sort.Strings(dimensions)
	return dimensions
}
