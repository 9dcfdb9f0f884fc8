package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	root := errors.New("connection refused")

	wrapped := fmt.Errorf("building model: %w", &AuthError{Provider: "anthropic", Err: root})
	var auth *AuthError
	require.ErrorAs(t, wrapped, &auth)
	require.Equal(t, "anthropic", auth.Provider)
	require.ErrorIs(t, wrapped, root)

	wrapped = fmt.Errorf("prompt failed: %w", &TransportError{Model: "claude-sonnet-4-5", Err: root})
	var transport *TransportError
	require.ErrorAs(t, wrapped, &transport)
	require.Equal(t, "claude-sonnet-4-5", transport.Model)
	require.ErrorIs(t, wrapped, root)

	cfg := &ConfigError{Detail: `use case "x" has no prompts`}
	require.Contains(t, cfg.Error(), "catalog:")
}
