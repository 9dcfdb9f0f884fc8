package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/catalog"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/reporter"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/scorer"
)

func newEvalCommand() *cobra.Command {
	var (
		provider     string
		modelName    string
		mockResponse string
		catalogPath  string
		useCaseName  string
		outputPath   string
		format       string
		workers      int
		minDelay     time.Duration
		useCache     bool
		temperature  float64
		maxTokens    int
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate use cases against a model",
		RunE: func(cmd *cobra.Command, args []string) error {
			providerResolved := resolveString(provider, appConfig.Provider)
			if providerResolved == "" {
				providerResolved = "anthropic"
			}
			modelResolved := resolveString(modelName, appConfig.Model.Name)
			mockResolved := resolveString(mockResponse, appConfig.Model.MockResponse)
			catalogResolved := resolveString(catalogPath, appConfig.Catalog)
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatJSON
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			if outputResolved == "" {
				outputResolved = "evaluation_report.json"
			}
			workerCount := resolveInt(workers, appConfig.Workers, 1)

			useCases, err := loadCatalog(catalogResolved)
			if err != nil {
				return err
			}
			if useCaseName != "" {
				uc, ok := catalog.ByName(useCases, useCaseName)
				if !ok {
					return fmt.Errorf("use case %q not found", useCaseName)
				}
				useCases = []core.UseCase{uc}
			}

			evalModel, err := buildModelWithFallback(providerResolved, modelResolved, mockResolved)
			if err != nil {
				return err
			}
			if useCache {
				evalModel, err = wrapWithCache(evalModel, appConfig.CacheDir)
				if err != nil {
					return err
				}
			}

			var pacer core.Pacer
			if providerResolved != "mock" {
				delay := minDelay
				if delay <= 0 && appConfig.MinDelayMillis > 0 {
					delay = time.Duration(appConfig.MinDelayMillis) * time.Millisecond
				}
				if delay <= 0 {
					delay = 500 * time.Millisecond
				}
				pacer = core.NewPacer(delay)
			}

			eval := core.Evaluator{
				Model:      evalModel,
				Dimensions: scorer.DefaultSet(),
				Options: core.GenerateOptions{
					Temperature: float32(temperature),
					MaxTokens:   maxTokens,
				},
				Pacer:   pacer,
				Workers: workerCount,
				Logger:  logger,
			}

			report := core.EvaluationReport{
				EvaluationDate:         time.Now().Format(time.RFC3339),
				TotalUseCasesEvaluated: len(useCases),
			}
			for _, uc := range useCases {
				progress := newProgressBar(progressWriter(cmd), uc.Name, len(uc.Prompts))
				progress.Update(0)
				eval.Progress = func(completed, total int) {
					progress.Update(completed)
				}
				result, err := eval.EvaluateUseCase(cmd.Context(), uc)
				if err != nil {
					return err
				}
				report.Results = append(report.Results, result)
			}
			report.Summarize()

			if err := writeReport(report, outputResolved, formatResolved); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report saved to: %s\n", outputResolved)

			// Console summary, matching the report file regardless of format.
			return reporter.TableReporter{Writer: cmd.OutOrStdout()}.Report(report)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "model provider (anthropic, openai, ollama, gemini, mock)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name (provider default when empty)")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock response")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "use-case catalog file (built-in catalog when empty)")
	cmd.Flags().StringVar(&useCaseName, "use-case", "", "evaluate a single use case by name")
	cmd.Flags().StringVar(&outputPath, "output", "", "report file path (- for stdout)")
	cmd.Flags().StringVar(&format, "format", "", "report format (json, table, html, markdown, csv)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent prompts per use case")
	cmd.Flags().DurationVar(&minDelay, "min-delay", 0, "minimum delay between API calls")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache model responses on disk")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "model temperature (0 = default)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "max completion tokens (0 = default)")

	return cmd
}

func writeReport(report core.EvaluationReport, output, format string) error {
	var writer io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	rep, err := buildReporter(format, writer)
	if err != nil {
		return err
	}
	return rep.Report(report)
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
