package core

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// ModelRun holds one model's full evaluation report within a comparison.
type ModelRun struct {
	Model  string
	Report EvaluationReport
}

// Comparator evaluates the same use cases against several models and ranks
// them per use case. Models run sequentially; their runs are independent.
type Comparator struct {
	Models     []Model
	Dimensions []Dimension
	Options    GenerateOptions
	Pacer      Pacer
	Workers    int
	Logger     *zap.Logger
	Progress   func(model string, completed, total int)
}

// Compare runs the full evaluation pipeline once per model and produces a
// ranked side-by-side comparison plus each model's own report.
func (c *Comparator) Compare(ctx context.Context, useCases []UseCase) (ComparisonReport, []ModelRun, error) {
	runs := make([]ModelRun, 0, len(c.Models))

	for _, model := range c.Models {
		eval := Evaluator{
			Model:      model,
			Dimensions: c.Dimensions,
			Options:    c.Options,
			Pacer:      c.Pacer,
			Workers:    c.Workers,
			Logger:     c.Logger,
		}
		if c.Progress != nil {
			name := model.Name()
			eval.Progress = func(completed, total int) {
				c.Progress(name, completed, total)
			}
		}

		report := EvaluationReport{
			EvaluationDate:         time.Now().Format(time.RFC3339),
			TotalUseCasesEvaluated: len(useCases),
		}
		for _, uc := range useCases {
			result, err := eval.EvaluateUseCase(ctx, uc)
			if err != nil {
				return ComparisonReport{}, nil, err
			}
			report.Results = append(report.Results, result)
		}
		report.Summarize()
		runs = append(runs, ModelRun{Model: model.Name(), Report: report})
	}

	return buildComparison(useCases, runs), runs, nil
}

// buildComparison ranks models per use case: overall mean descending, ties
// broken by lower nominal cost, then by model name for a total order.
func buildComparison(useCases []UseCase, runs []ModelRun) ComparisonReport {
	comparisons := make([]UseCaseComparison, 0, len(useCases))
	wins := map[string]int{}

	for i, uc := range useCases {
		standings := make([]ModelStanding, 0, len(runs))
		for _, run := range runs {
			result := run.Report.Results[i]
			dims := make(map[string]float64, len(result.AggregateScores))
			for dimension, agg := range result.AggregateScores {
				if dimension == DimensionOverall {
					continue
				}
				dims[dimension] = agg.Mean
			}
			standing := ModelStanding{
				ModelName:       run.Model,
				OverallScore:    result.OverallMean(),
				Assessment:      result.AggregateScores[DimensionOverall].Assessment,
				Recommendation:  result.Recommendation,
				DimensionScores: dims,
			}
			if cost, ok := Cost(run.Model); ok {
				standing.CostPerMTok = cost
			}
			standings = append(standings, standing)
		}

		sort.SliceStable(standings, func(a, b int) bool {
			if standings[a].OverallScore != standings[b].OverallScore {
				return standings[a].OverallScore > standings[b].OverallScore
			}
			costA, okA := Cost(standings[a].ModelName)
			costB, okB := Cost(standings[b].ModelName)
			if okA != okB {
				return okA
			}
			if okA && costA != costB {
				return costA < costB
			}
			return standings[a].ModelName < standings[b].ModelName
		})

		comparison := UseCaseComparison{
			UseCase: uc.Name,
			Models:  standings,
		}
		if len(standings) > 0 {
			comparison.BestModel = standings[0].ModelName
			wins[comparison.BestModel]++
		}
		comparisons = append(comparisons, comparison)
	}

	return ComparisonReport{
		ComparisonDate:     time.Now().Format(time.RFC3339),
		UseCaseComparisons: comparisons,
		Summary: ComparisonSummary{
			TotalUseCasesCompared: len(comparisons),
			ModelWins:             wins,
			OverallBestModel:      bestByWins(wins),
		},
	}
}

// bestByWins picks the model with the most use-case wins, breaking ties by
// name so the result is deterministic.
func bestByWins(wins map[string]int) string {
	best := ""
	bestCount := -1
	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if wins[name] > bestCount {
			best = name
			bestCount = wins[name]
		}
	}
	return best
}
