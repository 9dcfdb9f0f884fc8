package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Provider       string          `mapstructure:"provider"`
	Catalog        string          `mapstructure:"catalog"`
	Output         string          `mapstructure:"output"`
	Format         string          `mapstructure:"format"`
	Workers        int             `mapstructure:"workers"`
	MinDelayMillis int             `mapstructure:"min_delay_millis"`
	CacheDir       string          `mapstructure:"cache_dir"`
	Models         []string        `mapstructure:"models"`
	Model          ModelConfig     `mapstructure:"model"`
	OpenAI         ProviderConfig  `mapstructure:"openai"`
	Anthropic      AnthropicConfig `mapstructure:"anthropic"`
	Ollama         OllamaConfig    `mapstructure:"ollama"`
	Gemini         ProviderConfig  `mapstructure:"gemini"`
}

type ModelConfig struct {
	Name         string `mapstructure:"name"`
	MockResponse string `mapstructure:"mock_response"`
}

type ProviderConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type AnthropicConfig struct {
	ProviderConfig `mapstructure:",squash"`
	MaxTokens      int `mapstructure:"max_tokens"`
}

type OllamaConfig struct {
	ProviderConfig `mapstructure:",squash"`
	BaseURL        string `mapstructure:"base_url"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".evalcase")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
