package reporter

import (
	"html/template"
	"io"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// HTMLReporter renders a self-contained page with per-dimension score bars.
type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

type htmlDimension struct {
	Name    string
	Mean    float64
	Min     float64
	Max     float64
	Percent int
}

type htmlResult struct {
	UseCase        string
	Model          string
	Overall        float64
	Assessment     string
	Recommendation string
	Dimensions     []htmlDimension
	Prompts        []core.PromptResult
}

func (r HTMLReporter) Report(report core.EvaluationReport) error {
	title := r.Title
	if title == "" {
		title = "Use Case Evaluation Report"
	}

	results := make([]htmlResult, 0, len(report.Results))
	for _, result := range report.Results {
		overall := result.AggregateScores[core.DimensionOverall]
		view := htmlResult{
			UseCase:        result.UseCase,
			Model:          result.Model,
			Overall:        overall.Mean,
			Assessment:     overall.Assessment,
			Recommendation: result.Recommendation,
			Prompts:        result.PromptResults,
		}
		for _, dimension := range sortedDimensions(result.AggregateScores) {
			agg := result.AggregateScores[dimension]
			view.Dimensions = append(view.Dimensions, htmlDimension{
				Name:    dimension,
				Mean:    agg.Mean,
				Min:     agg.Min,
				Max:     agg.Max,
				Percent: int(agg.Mean / core.MaxScore * 100),
			})
		}
		results = append(results, view)
	}

	data := struct {
		Title   string
		Report  core.EvaluationReport
		Results []htmlResult
	}{
		Title:   title,
		Report:  report,
		Results: results,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
    .bar { background: #eee; height: 14px; width: 200px; }
    .bar span { background: #4a7; display: block; height: 14px; }
    .recommendation { font-style: italic; margin: 8px 0; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Date:</strong> {{ .Report.EvaluationDate }}</div>
    <div><strong>Use cases evaluated:</strong> {{ .Report.TotalUseCasesEvaluated }}</div>
  </div>
  {{ range .Results }}
  <h2>{{ .UseCase }}</h2>
  <div class="meta">
    <div><strong>Model:</strong> {{ .Model }}</div>
    <div><strong>Overall:</strong> {{ printf "%.2f" .Overall }}/5.0 ({{ .Assessment }})</div>
    <div class="recommendation">{{ .Recommendation }}</div>
  </div>
  <table>
    <tr><th>Dimension</th><th>Mean</th><th>Min</th><th>Max</th><th></th></tr>
    {{ range .Dimensions }}
    <tr>
      <td>{{ .Name }}</td>
      <td>{{ printf "%.2f" .Mean }}</td>
      <td>{{ printf "%.2f" .Min }}</td>
      <td>{{ printf "%.2f" .Max }}</td>
      <td><div class="bar"><span style="width: {{ .Percent }}%"></span></div></td>
    </tr>
    {{ end }}
  </table>
  <table>
    <tr><th>Scenario</th><th>Response Time</th><th>Error</th></tr>
    {{ range .Prompts }}
    <tr>
      <td>{{ .Scenario }}</td>
      <td>{{ printf "%.2fs" .ResponseTime }}</td>
      <td>{{ .Error }}</td>
    </tr>
    {{ end }}
  </table>
  {{ end }}
</body>
</html>
`
