// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"
)

// ConfigurationError reports missing credentials. It is never retried.
type ConfigurationError struct {
	// Missing lists the names of the absent settings (e.g. GOOGLE_API_KEY).
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s must be set", strings.Join(e.Missing, " and "))
}

// ProviderError is a request-level failure signaled by the search API
// itself: quota exhaustion, a rejected request, or a server error.
// The retriever retries these.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("search provider returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("search provider returned HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// UnexpectedError wraps any failure that did not come from the provider's
// error model, such as a network fault or a malformed response. Never retried.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
