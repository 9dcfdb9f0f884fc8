package core

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Evaluator runs a use case's prompts through a model and scores every
// response. Prompt results are always emitted in catalog order, regardless
// of how many workers executed them.
type Evaluator struct {
	Model      Model
	Dimensions []Dimension
	Options    GenerateOptions
	Pacer      Pacer
	Workers    int
	Logger     *zap.Logger
	Progress   func(completed, total int)
}

// EvaluateUseCase evaluates all prompts of a use case and aggregates the
// scores. A failed call is recorded as a floor-score sentinel and never
// aborts the rest of the use case; only context cancellation does.
func (e *Evaluator) EvaluateUseCase(ctx context.Context, uc UseCase) (EvaluationResult, error) {
	if e.Model == nil || len(e.Dimensions) == 0 {
		return EvaluationResult{}, errors.New("evaluator: model and dimensions are required")
	}

	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(uc.Prompts) {
		workers = len(uc.Prompts)
	}

	results := make([]PromptResult, len(uc.Prompts))
	jobs := make(chan int)
	var wg sync.WaitGroup
	var completed atomic.Int64

	worker := func() {
		defer wg.Done()
		for idx := range jobs {
			if ctx.Err() != nil {
				return
			}
			results[idx] = e.runPrompt(ctx, uc.Prompts[idx])
			if e.Progress != nil {
				e.Progress(int(completed.Add(1)), len(uc.Prompts))
			}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	for idx := range uc.Prompts {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return EvaluationResult{}, ctx.Err()
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return EvaluationResult{}, err
	}

	aggregate := AggregateScores(results)
	return EvaluationResult{
		UseCase:         uc.Name,
		Description:     uc.Description,
		Model:           e.Model.Name(),
		Timestamp:       time.Now().Format(time.RFC3339),
		PromptResults:   results,
		AggregateScores: aggregate,
		Recommendation:  Recommendation(aggregate[DimensionOverall].Mean, uc.Name),
	}, nil
}

func (e *Evaluator) runPrompt(ctx context.Context, spec PromptSpec) PromptResult {
	if e.Pacer != nil {
		if err := e.Pacer.Wait(ctx); err != nil {
			return e.sentinel(spec, 0, err)
		}
	}

	start := time.Now()
	response, err := e.Model.Generate(ctx, spec.Prompt, e.Options)
	elapsed := time.Since(start)
	if err != nil {
		e.logSkip(spec.Scenario, err)
		return e.sentinel(spec, elapsed, err)
	}

	scores := make(map[string]float64, len(e.Dimensions))
	for _, dimension := range e.Dimensions {
		value, err := dimension.Score(ctx, spec, response.Content)
		if err != nil {
			e.logSkip(spec.Scenario, err)
			value = MinScore
		}
		scores[dimension.Name()] = ClampScore(value)
	}

	return PromptResult{
		Scenario:                spec.Scenario,
		Prompt:                  spec.Prompt,
		Response:                response.Content,
		ResponseTime:            round2(elapsed.Seconds()),
		Scores:                  scores,
		ExpectedCharacteristics: spec.ExpectedCharacteristics,
	}
}

// sentinel records a skipped prompt at the score floor so aggregates remain
// computable without the failure dominating or vanishing from the report.
func (e *Evaluator) sentinel(spec PromptSpec, elapsed time.Duration, err error) PromptResult {
	scores := make(map[string]float64, len(e.Dimensions))
	for _, dimension := range e.Dimensions {
		scores[dimension.Name()] = MinScore
	}
	return PromptResult{
		Scenario:                spec.Scenario,
		Prompt:                  spec.Prompt,
		ResponseTime:            round2(elapsed.Seconds()),
		Scores:                  scores,
		ExpectedCharacteristics: spec.ExpectedCharacteristics,
		Error:                   err.Error(),
	}
}

func (e *Evaluator) logSkip(scenario string, err error) {
	if e.Logger == nil {
		return
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		e.Logger.Warn("prompt skipped",
			zap.String("scenario", scenario),
			zap.String("model", transport.Model),
			zap.Error(transport.Err))
		return
	}
	e.Logger.Warn("prompt skipped", zap.String("scenario", scenario), zap.Error(err))
}
