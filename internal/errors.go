package internal

import (
	"context"
	"errors"
	"fmt"
)

// EmptyInputError is returned when blank or whitespace-only text is passed
// to an operation that requires non-empty text.
type EmptyInputError struct {
	Field string // Name of the offending input, e.g. "text"
}

func (e *EmptyInputError) Error() string {
	if e.Field == "" {
		return "no input provided"
	}
	return fmt.Sprintf("no input provided: %s is empty", e.Field)
}

// ProviderError wraps any failure of a downstream service: network, auth,
// unsupported language or script pair, rate limit or timeout.
type ProviderError struct {
	Provider string // Provider name, e.g. "google", "openai"
	Op       string // Operation, e.g. "translate", "synthesize"
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Provider, e.Op)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the provider call ran out of time.
func (e *ProviderError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// NewProviderError builds a ProviderError. A nil cause stays nil so callers
// can write `return NewProviderError(name, op, err)` unconditionally.
func NewProviderError(provider, op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	var ee *EmptyInputError
	if errors.As(err, &ee) {
		return err
	}
	return &ProviderError{Provider: provider, Op: op, Err: err}
}

// IsEmptyInput reports whether err is, or wraps, an EmptyInputError.
func IsEmptyInput(err error) bool {
	var ee *EmptyInputError
	return errors.As(err, &ee)
}

// IsProviderError reports whether err is, or wraps, a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
