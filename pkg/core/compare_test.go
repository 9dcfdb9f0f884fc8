package core_test

import (
	"context"
	"testing"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

	"github.com/stretchr/testify/require"
)

type scriptedModel struct {
	name  string
	reply string
}

func (m scriptedModel) Name() string {
	return m.name
}

func (m scriptedModel) Generate(context.Context, string, core.GenerateOptions) (core.Response, error) {
	return core.Response{Content: m.reply}, nil
}

// contentScore maps each model's scripted reply to a fixed score, so rankings
// in these tests are fully controlled.
type contentScore struct {
	dimension string
	table     map[string]float64
}

func (c contentScore) Name() string {
	return c.dimension
}

func (c contentScore) Score(_ context.Context, _ core.PromptSpec, response string) (float64, error) {
	return c.table[response], nil
}

func TestCompareRanksByOverallScore(t *testing.T) {
	comparator := core.Comparator{
		Models: []core.Model{
			scriptedModel{name: "gpt-4o-mini", reply: "mini"},
			scriptedModel{name: "claude-opus-4-5", reply: "opus"},
		},
		Dimensions: []core.Dimension{
			contentScore{dimension: "quality", table: map[string]float64{"opus": 4.8, "mini": 3.0}},
		},
	}

	useCases := []core.UseCase{testUseCase(2)}
	report, runs, err := comparator.Compare(context.Background(), useCases)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Len(t, report.UseCaseComparisons, 1)

	comparison := report.UseCaseComparisons[0]
	require.Equal(t, "claude-opus-4-5", comparison.BestModel)
	require.Equal(t, "claude-opus-4-5", comparison.Models[0].ModelName)
	require.Equal(t, 4.8, comparison.Models[0].OverallScore)
	require.Equal(t, "Excellent", comparison.Models[0].Assessment)
	require.Equal(t, "gpt-4o-mini", comparison.Models[1].ModelName)

	require.Equal(t, 1, report.Summary.TotalUseCasesCompared)
	require.Equal(t, 1, report.Summary.ModelWins["claude-opus-4-5"])
	require.Equal(t, "claude-opus-4-5", report.Summary.OverallBestModel)
}

func TestCompareBreaksTiesByCost(t *testing.T) {
	comparator := core.Comparator{
		Models: []core.Model{
			scriptedModel{name: "claude-opus-4-5", reply: "same"},
			scriptedModel{name: "claude-haiku-4-5", reply: "same"},
		},
		Dimensions: []core.Dimension{
			contentScore{dimension: "quality", table: map[string]float64{"same": 4.0}},
		},
	}

	report, _, err := comparator.Compare(context.Background(), []core.UseCase{testUseCase(1)})
	require.NoError(t, err)

	// Equal scores: the cheaper model wins.
	models := report.UseCaseComparisons[0].Models
	require.Equal(t, "claude-haiku-4-5", models[0].ModelName)
	require.Equal(t, "claude-opus-4-5", models[1].ModelName)
	require.Equal(t, 5.0, models[0].CostPerMTok)
}

func TestCompareUnknownCostRanksLast(t *testing.T) {
	comparator := core.Comparator{
		Models: []core.Model{
			scriptedModel{name: "custom-finetune", reply: "same"},
			scriptedModel{name: "claude-opus-4-5", reply: "same"},
		},
		Dimensions: []core.Dimension{
			contentScore{dimension: "quality", table: map[string]float64{"same": 4.0}},
		},
	}

	report, _, err := comparator.Compare(context.Background(), []core.UseCase{testUseCase(1)})
	require.NoError(t, err)

	models := report.UseCaseComparisons[0].Models
	require.Equal(t, "claude-opus-4-5", models[0].ModelName)
	require.Equal(t, "custom-finetune", models[1].ModelName)
	require.Zero(t, models[1].CostPerMTok)
}

func TestCompareEachRunHasFullReport(t *testing.T) {
	comparator := core.Comparator{
		Models: []core.Model{
			scriptedModel{name: "a-model", reply: "same"},
			scriptedModel{name: "b-model", reply: "same"},
		},
		Dimensions: []core.Dimension{
			contentScore{dimension: "quality", table: map[string]float64{"same": 3.5}},
		},
	}

	useCases := []core.UseCase{testUseCase(2), {
		Name:        "Contract Analysis",
		Description: "Reviewing agreements",
		Prompts:     []core.PromptSpec{{Scenario: "nda", Prompt: "Summarize this NDA."}},
	}}

	_, runs, err := comparator.Compare(context.Background(), useCases)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		require.Equal(t, 2, run.Report.TotalUseCasesEvaluated)
		require.Len(t, run.Report.Results, 2)
		require.NotNil(t, run.Report.Summary)
		require.Equal(t, run.Model, run.Report.Results[0].Model)
	}
}

func TestCompareProgressIncludesModelName(t *testing.T) {
	seen := map[string]int{}
	comparator := core.Comparator{
		Models: []core.Model{
			scriptedModel{name: "a-model", reply: "same"},
			scriptedModel{name: "b-model", reply: "same"},
		},
		Dimensions: []core.Dimension{
			contentScore{dimension: "quality", table: map[string]float64{"same": 3.5}},
		},
		Progress: func(model string, completed, total int) {
			seen[model]++
		},
	}

	_, _, err := comparator.Compare(context.Background(), []core.UseCase{testUseCase(3)})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a-model": 3, "b-model": 3}, seen)
}
