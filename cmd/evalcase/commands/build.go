package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/cache"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/catalog"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/model"
)

func buildModel(provider, modelName, mockResponse string) (core.Model, error) {
	switch provider {
	case "mock":
		return model.MockModel{NameValue: modelName, ResponseText: mockResponse}, nil
	case "anthropic":
		anthropicModel, err := model.NewAnthropicModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		cfg := appConfig.Anthropic
		anthropicModel.Retry = retryFromConfig(cfg.ProviderConfig)
		if cfg.MaxTokens > 0 {
			anthropicModel.MaxTokens = cfg.MaxTokens
		}
		return anthropicModel, nil
	case "openai":
		openaiModel, err := model.NewOpenAIModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		openaiModel.Retry = retryFromConfig(appConfig.OpenAI)
		return openaiModel, nil
	case "ollama":
		ollamaModel := model.NewOllamaModel(appConfig.Ollama.BaseURL, modelName)
		if appConfig.Ollama.TimeoutSeconds > 0 {
			ollamaModel.Retry = retryFromConfig(appConfig.Ollama.ProviderConfig)
		}
		return ollamaModel, nil
	case "gemini":
		geminiModel, err := model.NewGeminiModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		if appConfig.Gemini.TimeoutSeconds > 0 {
			geminiModel.Retry = retryFromConfig(appConfig.Gemini)
		}
		return geminiModel, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// buildModelWithFallback falls back to mock mode when the provider has no
// credential. This happens at startup only; mid-run auth failures surface as
// skipped prompts like any other call failure.
func buildModelWithFallback(provider, modelName, mockResponse string) (core.Model, error) {
	m, err := buildModel(provider, modelName, mockResponse)
	if err == nil {
		return m, nil
	}
	var authErr *core.AuthError
	if errors.As(err, &authErr) {
		logger.Warn("no credential found, running in mock mode",
			zap.String("provider", authErr.Provider))
		return model.MockModel{NameValue: modelName}, nil
	}
	return nil, err
}

func retryFromConfig(cfg ProviderConfig) model.RetryPolicy {
	return model.RetryPolicy{
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.MaxRetries,
		Backoff:    time.Duration(cfg.BackoffMillis) * time.Millisecond,
	}
}

func loadCatalog(path string) ([]core.UseCase, error) {
	if path == "" {
		useCases := catalog.Builtin()
		if err := catalog.Validate(useCases); err != nil {
			return nil, err
		}
		return useCases, nil
	}
	return catalog.Load(path)
}

func wrapWithCache(m core.Model, dir string) (core.Model, error) {
	c, err := cache.New(dir, 0)
	if err != nil {
		return nil, err
	}
	return model.CachedModel{Model: m, Cache: c}, nil
}

func safeFileName(name string) string {
	lowered := strings.ToLower(name)
	var builder strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			builder.WriteRune(r)
		default:
			builder.WriteRune('_')
		}
	}
	return builder.String()
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
