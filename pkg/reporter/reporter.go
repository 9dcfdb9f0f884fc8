package reporter

import "github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

// Reporter writes an evaluation report.
type Reporter interface {
	Report(report core.EvaluationReport) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)
