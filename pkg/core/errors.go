package core

import "fmt"

// AuthError indicates a missing or rejected credential. It is only
// recoverable at startup, by switching the run into mock mode.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: authentication failed", e.Provider)
	}
	return fmt.Sprintf("%s: authentication failed: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError indicates a per-call network or API failure. The caller
// skips the affected prompt and continues the run.
type TransportError struct {
	Model string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Model, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigError indicates a malformed use-case catalog entry. The catalog is
// validated upfront, so a ConfigError aborts the run before any calls.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "catalog: " + e.Detail
}
