package model

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/cache"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestMockModelDeterministic(t *testing.T) {
	mock := MockModel{}

	first, err := mock.Generate(context.Background(), "How do I reset my password?", core.GenerateOptions{})
	require.NoError(t, err)
	second, err := mock.Generate(context.Background(), "How do I reset my password?", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, first.Content, second.Content)
	require.Contains(t, first.Content, "[Mock Response]")
	require.Contains(t, first.Content, "How do I reset my password?")
}

func TestMockModelTruncatesPreview(t *testing.T) {
	mock := MockModel{}
	long := strings.Repeat("x", 200)

	resp, err := mock.Generate(context.Background(), long, core.GenerateOptions{})
	require.NoError(t, err)
	require.Contains(t, resp.Content, strings.Repeat("x", 50)+"...")
	require.NotContains(t, resp.Content, strings.Repeat("x", 51))
}

func TestMockModelFixedResponse(t *testing.T) {
	mock := MockModel{NameValue: "mock-custom", ResponseText: "canned"}
	require.Equal(t, "mock-custom", mock.Name())

	resp, err := mock.Generate(context.Background(), "anything", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "canned", resp.Content)
}

func TestGenerateWithRetriesRecovers(t *testing.T) {
	attempts := 0
	call := func(context.Context) (core.Response, error) {
		attempts++
		if attempts < 2 {
			return core.Response{}, errors.New("transient failure")
		}
		return core.Response{Content: "ok"}, nil
	}

	policy := RetryPolicy{Timeout: time.Second, MaxRetries: 2, Backoff: time.Millisecond}
	resp, err := generateWithRetries(context.Background(), "test-model", policy, call)
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Content)
	require.Equal(t, 2, attempts)
}

func TestGenerateWithRetriesExhausts(t *testing.T) {
	attempts := 0
	call := func(context.Context) (core.Response, error) {
		attempts++
		return core.Response{}, errors.New("persistent failure")
	}

	policy := RetryPolicy{Timeout: time.Second, MaxRetries: 2, Backoff: time.Millisecond}
	_, err := generateWithRetries(context.Background(), "test-model", policy, call)
	require.Error(t, err)
	require.Equal(t, 3, attempts)

	var transport *core.TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, "test-model", transport.Model)
}

func TestGenerateWithRetriesStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	call := func(callCtx context.Context) (core.Response, error) {
		return core.Response{}, callCtx.Err()
	}

	policy := RetryPolicy{Timeout: time.Second, MaxRetries: 5, Backoff: time.Minute}
	_, err := generateWithRetries(ctx, "test-model", policy, call)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRetryPolicyDefaults(t *testing.T) {
	p := RetryPolicy{}.normalized()
	require.Equal(t, 30*time.Second, p.Timeout)
	require.Equal(t, 2, p.MaxRetries)
	require.Equal(t, 500*time.Millisecond, p.Backoff)

	p = RetryPolicy{MaxRetries: -1}.normalized()
	require.Equal(t, 0, p.MaxRetries)
}

type countingModel struct {
	calls int
}

func (m *countingModel) Name() string {
	return "counting"
}

func (m *countingModel) Generate(context.Context, string, core.GenerateOptions) (core.Response, error) {
	m.calls++
	return core.Response{Content: "fresh"}, nil
}

func TestCachedModelAvoidsRepeatCalls(t *testing.T) {
	store, err := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	inner := &countingModel{}
	cached := CachedModel{Model: inner, Cache: store}
	opts := core.GenerateOptions{Temperature: 0.7, MaxTokens: 100}

	first, err := cached.Generate(context.Background(), "same prompt", opts)
	require.NoError(t, err)
	second, err := cached.Generate(context.Background(), "same prompt", opts)
	require.NoError(t, err)
	require.Equal(t, first.Content, second.Content)
	require.Equal(t, 1, inner.calls)

	// Different options miss the cache.
	_, err = cached.Generate(context.Background(), "same prompt", core.GenerateOptions{Temperature: 0.2})
	require.NoError(t, err)
	require.Equal(t, 2, inner.calls)
}
