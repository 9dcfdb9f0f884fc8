package cache

import (
	"testing"
	"time"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	opts := core.GenerateOptions{Temperature: 0.7, MaxTokens: 512}
	resp := core.Response{
		Content:    "cached answer",
		TokenUsage: core.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		Latency:    250 * time.Millisecond,
	}

	_, ok := c.Get("claude-sonnet-4-5", "prompt", opts)
	require.False(t, ok)

	require.NoError(t, c.Set("claude-sonnet-4-5", "prompt", opts, resp))

	got, ok := c.Get("claude-sonnet-4-5", "prompt", opts)
	require.True(t, ok)
	require.Equal(t, resp.Content, got.Content)
	require.Equal(t, resp.TokenUsage, got.TokenUsage)
}

func TestCacheKeyIncludesModelAndOptions(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	opts := core.GenerateOptions{Temperature: 0.7}
	require.NoError(t, c.Set("model-a", "prompt", opts, core.Response{Content: "a"}))

	_, ok := c.Get("model-b", "prompt", opts)
	require.False(t, ok)

	_, ok = c.Get("model-a", "prompt", core.GenerateOptions{Temperature: 0.2})
	require.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c, err := New(t.TempDir(), time.Nanosecond)
	require.NoError(t, err)

	opts := core.GenerateOptions{}
	require.NoError(t, c.Set("model", "prompt", opts, core.Response{Content: "stale"}))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("model", "prompt", opts)
	require.False(t, ok)
}
