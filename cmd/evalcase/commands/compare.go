package commands

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/catalog"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/reporter"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/scorer"
)

var defaultCompareModels = []string{
	"claude-sonnet-4-5-20250929",
	"claude-haiku-4-5-20251001",
	"claude-opus-4-5-20251101",
}

func newCompareCommand() *cobra.Command {
	var (
		provider    string
		models      []string
		catalogPath string
		outputPath  string
		workers     int
		minDelay    time.Duration
		useCache    bool
	)

	cmd := &cobra.Command{
		Use:   "compare [use case name]",
		Short: "Compare models across use cases",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providerResolved := resolveString(provider, appConfig.Provider)
			if providerResolved == "" {
				providerResolved = "anthropic"
			}
			modelsResolved := models
			if len(modelsResolved) == 0 {
				modelsResolved = appConfig.Models
			}
			if len(modelsResolved) == 0 {
				modelsResolved = defaultCompareModels
			}
			catalogResolved := resolveString(catalogPath, appConfig.Catalog)
			outputResolved := resolveString(outputPath, appConfig.Output)
			if outputResolved == "" {
				outputResolved = "model_comparison_report.json"
			}
			workerCount := resolveInt(workers, appConfig.Workers, 1)

			useCases, err := loadCatalog(catalogResolved)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				name := strings.Join(args, " ")
				uc, ok := catalog.ByName(useCases, name)
				if !ok {
					return fmt.Errorf("use case %q not found", name)
				}
				useCases = []core.UseCase{uc}
			}

			compareModels := make([]core.Model, 0, len(modelsResolved))
			for _, modelName := range modelsResolved {
				m, err := buildModelWithFallback(providerResolved, modelName, "")
				if err != nil {
					return err
				}
				if useCache {
					m, err = wrapWithCache(m, appConfig.CacheDir)
					if err != nil {
						return err
					}
				}
				compareModels = append(compareModels, m)
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

			comparator := core.Comparator{
				Models:     compareModels,
				Dimensions: scorer.DefaultSet(),
				Pacer:      pacer,
				Workers:    workerCount,
				Logger:     logger,
			}

			totalPrompts := 0
			for _, uc := range useCases {
				totalPrompts += len(uc.Prompts)
			}
			// Per-use-case progress counts restart; keep a running base per
			// model so each bar spans the whole run.
			type modelProgress struct {
				bar        *progressBar
				base, last int
			}
			bars := map[string]*modelProgress{}
			var barsMu sync.Mutex
			comparator.Progress = func(model string, completed, total int) {
				barsMu.Lock()
				defer barsMu.Unlock()
				p, ok := bars[model]
				if !ok {
					p = &modelProgress{bar: newProgressBar(progressWriter(cmd), model, totalPrompts)}
					bars[model] = p
				}
				if completed < p.last {
					p.base += p.last
				}
				p.last = completed
				p.bar.Update(p.base + completed)
			}

			report, runs, err := comparator.Compare(cmd.Context(), useCases)
			if err != nil {
				return err
			}

			for _, run := range runs {
				path := fmt.Sprintf("evaluation_%s.json", safeFileName(run.Model))
				if err := writeReport(run.Report, path, reporter.FormatJSON); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Model report saved to: %s\n", path)
			}

			file, err := os.Create(outputResolved)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := reporter.WriteComparisonJSON(file, report); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comparison report saved to: %s\n", outputResolved)

			return reporter.WriteComparisonTable(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "model provider for all compared models")
	cmd.Flags().StringSliceVar(&models, "models", nil, "models to compare")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "use-case catalog file (built-in catalog when empty)")
	cmd.Flags().StringVar(&outputPath, "output", "", "comparison report file path")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent prompts per use case")
	cmd.Flags().DurationVar(&minDelay, "min-delay", 0, "minimum delay between API calls")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache model responses on disk")

	return cmd
}
