package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// WriteComparisonJSON writes the model_comparison_report.json document.
func WriteComparisonJSON(w io.Writer, report core.ComparisonReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// WriteComparisonTable prints per-use-case rankings and overall insights.
func WriteComparisonTable(w io.Writer, report core.ComparisonReport) error {
	for _, comparison := range report.UseCaseComparisons {
		if _, err := fmt.Fprintf(w, "\n%s (best: %s)\n", comparison.UseCase, comparison.BestModel); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "Model", "Overall", "Assessment", "Cost/MTok"})
		for rank, standing := range comparison.Models {
			cost := "-"
			if standing.CostPerMTok > 0 {
				cost = fmt.Sprintf("$%.2f", standing.CostPerMTok)
			}
			table.Append([]string{
				fmt.Sprintf("%d", rank+1),
				standing.ModelName,
				fmt.Sprintf("%.2f/5.0", standing.OverallScore),
				standing.Assessment,
				cost,
			})
		}
		table.Render()
	}

	if _, err := fmt.Fprintf(w, "\nUse cases compared: %d\nOverall best model: %s\n",
		report.Summary.TotalUseCasesCompared, report.Summary.OverallBestModel); err != nil {
		return err
	}
	models := make([]string, 0, len(report.Summary.ModelWins))
	for model := range report.Summary.ModelWins {
		models = append(models, model)
	}
	sort.Strings(models)
	for _, model := range models {
		if _, err := fmt.Fprintf(w, "  %s: %d win(s)\n", model, report.Summary.ModelWins[model]); err != nil {
			return err
		}
	}
	return nil
}
