package reporter

import (
	"encoding/json"
	"io"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// JSONReporter writes the evaluation_report.json document. Field names and
// nesting are fixed for downstream report consumers.
type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(report core.EvaluationReport) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
