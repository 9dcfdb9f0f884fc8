package core

import "time"

// Score bounds for every dimension. A failed prompt is recorded at MinScore so
// aggregates stay computable without leaving the score domain.
const (
	MinScore = 1.0
	MaxScore = 5.0
)

// PromptSpec is a single test scenario within a use case.
type PromptSpec struct {
	Scenario                string   `json:"scenario" yaml:"scenario"`
	Prompt                  string   `json:"prompt" yaml:"prompt"`
	ExpectedCharacteristics []string `json:"expected_characteristics" yaml:"expected_characteristics"`
}

// UseCase is a named enterprise scenario with its test prompts.
type UseCase struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Prompts     []PromptSpec     `json:"test_prompts" yaml:"test_prompts"`
	Metadata    *UseCaseMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// UseCaseMetadata carries business context for a use case.
type UseCaseMetadata struct {
	TypicalVolume     string   `json:"typical_volume" yaml:"typical_volume"`
	BusinessImpact    string   `json:"business_impact" yaml:"business_impact"`
	KeyConsiderations []string `json:"key_considerations" yaml:"key_considerations"`
	IntegrationPoints []string `json:"integration_points" yaml:"integration_points"`
}

// Response is a model response plus basic telemetry.
type Response struct {
	Content    string        `json:"content" yaml:"content"`
	TokenUsage TokenUsage    `json:"token_usage" yaml:"token_usage"`
	Latency    time.Duration `json:"latency" yaml:"latency"`
}

// TokenUsage captures token accounting for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens"`
	TotalTokens      int `json:"total_tokens" yaml:"total_tokens"`
}

// PromptResult is the scored outcome for one prompt.
type PromptResult struct {
	Scenario                string             `json:"scenario" yaml:"scenario"`
	Prompt                  string             `json:"prompt" yaml:"prompt"`
	Response                string             `json:"response" yaml:"response"`
	ResponseTime            float64            `json:"response_time" yaml:"response_time"`
	Scores                  map[string]float64 `json:"scores" yaml:"scores"`
	ExpectedCharacteristics []string           `json:"expected_characteristics" yaml:"expected_characteristics"`
	Error                   string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// AggregateScore holds per-dimension statistics across a use case. The
// "overall" entry carries a qualitative assessment instead of min/max.
type AggregateScore struct {
	Mean       float64 `json:"mean" yaml:"mean"`
	Min        float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max        float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Assessment string  `json:"assessment,omitempty" yaml:"assessment,omitempty"`
}

// EvaluationResult is the full outcome for one use case against one model.
type EvaluationResult struct {
	UseCase         string                    `json:"use_case" yaml:"use_case"`
	Description     string                    `json:"description" yaml:"description"`
	Model           string                    `json:"model" yaml:"model"`
	Timestamp       string                    `json:"timestamp" yaml:"timestamp"`
	PromptResults   []PromptResult            `json:"prompt_results" yaml:"prompt_results"`
	AggregateScores map[string]AggregateScore `json:"aggregate_scores" yaml:"aggregate_scores"`
	Recommendation  string                    `json:"recommendation" yaml:"recommendation"`
}

// OverallMean returns the overall aggregate mean, or 0 when absent.
func (r EvaluationResult) OverallMean() float64 {
	return r.AggregateScores[DimensionOverall].Mean
}

// EvaluationReport is the evaluation_report.json envelope.
type EvaluationReport struct {
	EvaluationDate         string             `json:"evaluation_date" yaml:"evaluation_date"`
	TotalUseCasesEvaluated int                `json:"total_use_cases_evaluated" yaml:"total_use_cases_evaluated"`
	Results                []EvaluationResult `json:"results" yaml:"results"`
	Summary                *ReportSummary     `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ReportSummary condenses a report into headline numbers.
type ReportSummary struct {
	AverageOverallScore float64 `json:"average_overall_score" yaml:"average_overall_score"`
	BestUseCase         string  `json:"best_use_case" yaml:"best_use_case"`
	EvaluationCount     int     `json:"evaluation_count" yaml:"evaluation_count"`
}

// Summarize fills the report summary from its results.
func (r *EvaluationReport) Summarize() {
	if len(r.Results) == 0 {
		return
	}
	var sum float64
	best := r.Results[0]
	for _, result := range r.Results {
		overall := result.OverallMean()
		sum += overall
		if overall > best.OverallMean() {
			best = result
		}
	}
	r.Summary = &ReportSummary{
		AverageOverallScore: round2(sum / float64(len(r.Results))),
		BestUseCase:         best.UseCase,
		EvaluationCount:     len(r.Results),
	}
}

// ModelStanding is one model's entry in a per-use-case ranking.
type ModelStanding struct {
	ModelName       string             `json:"model_name" yaml:"model_name"`
	OverallScore    float64            `json:"overall_score" yaml:"overall_score"`
	Assessment      string             `json:"assessment" yaml:"assessment"`
	Recommendation  string             `json:"recommendation" yaml:"recommendation"`
	DimensionScores map[string]float64 `json:"dimension_scores" yaml:"dimension_scores"`
	CostPerMTok     float64            `json:"cost_per_mtok,omitempty" yaml:"cost_per_mtok,omitempty"`
}

// UseCaseComparison ranks all compared models for a single use case.
type UseCaseComparison struct {
	UseCase   string          `json:"use_case" yaml:"use_case"`
	Models    []ModelStanding `json:"models" yaml:"models"`
	BestModel string          `json:"best_model" yaml:"best_model"`
}

// ComparisonSummary holds cross-use-case insights.
type ComparisonSummary struct {
	TotalUseCasesCompared int            `json:"total_use_cases_compared" yaml:"total_use_cases_compared"`
	ModelWins             map[string]int `json:"model_wins" yaml:"model_wins"`
	OverallBestModel      string         `json:"overall_best_model" yaml:"overall_best_model"`
}

// ComparisonReport is the model_comparison_report.json envelope.
type ComparisonReport struct {
	ComparisonDate     string              `json:"comparison_date" yaml:"comparison_date"`
	UseCaseComparisons []UseCaseComparison `json:"use_case_comparisons" yaml:"use_case_comparisons"`
	Summary            ComparisonSummary   `json:"summary" yaml:"summary"`
}

// GenerateOptions controls model generation behavior.
type GenerateOptions struct {
	Temperature  float32  `json:"temperature" yaml:"temperature"`
	MaxTokens    int      `json:"max_tokens" yaml:"max_tokens"`
	TopP         float32  `json:"top_p" yaml:"top_p"`
	Stop         []string `json:"stop" yaml:"stop"`
	SystemPrompt string   `json:"system_prompt,omitempty" yaml:"system_prompt,omitempty"`
}
