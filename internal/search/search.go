// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search retrieves web search results in pages, retrying whole
// attempts when the provider reports a request-level failure.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/websearch/pkg/types"
)

// PageSize is the largest number of items the provider returns per request.
const PageSize = 10

// maxReachable is the deepest result the provider will page to.
const maxReachable = 100

// PageRequest describes one page fetch. Start is 1-based.
type PageRequest struct {
	Query string
	Start int
	Num   int
}

// Provider fetches a single page of results. Implementations return
// *ProviderError for failures the API itself reports; any other error is
// treated as unexpected.
type Provider interface {
	FetchPage(ctx context.Context, req PageRequest) ([]types.SearchResult, error)
}

// Retriever runs the paginated search with a fixed-delay retry policy.
type Retriever struct {
	Credentials types.Credentials
	Provider    Provider

	// RetryDelay is the wait between attempts. Zero retries immediately.
	RetryDelay time.Duration

	// Logger receives progress diagnostics. Nil disables them.
	Logger *zap.Logger
}

// CheckCredentials returns a *ConfigurationError naming every missing credential.
func CheckCredentials(creds types.Credentials) error {
	var missing []string
	if creds.APIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	if creds.SearchEngineID == "" {
		missing = append(missing, "GOOGLE_SEARCH_CX")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRetryable
	outcomeFatal
)

// attemptResult is what one full pagination run produced.
type attemptResult struct {
	kind    outcome
	results []types.SearchResult
	err     error
}

// Retrieve returns up to maxResults results for query, making at most
// maxRetries attempts. A provider error on any page abandons the attempt and,
// budget permitting, restarts pagination from the first page after
// RetryDelay. Any other error is returned at once.
func (r *Retriever) Retrieve(ctx context.Context, query string, maxResults, maxRetries int) ([]types.SearchResult, error) {
	if err := CheckCredentials(r.Credentials); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty")
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("max results must be positive, got %d", maxResults)
	}
	if maxRetries < 1 {
		return nil, fmt.Errorf("max retries must be at least 1, got %d", maxRetries)
	}

	log := r.logger()
	if maxResults > maxReachable {
		log.Warn("provider cannot page past result 100, clamping",
			zap.Int("requested", maxResults), zap.Int("max_results", maxReachable))
		maxResults = maxReachable
	}

	for attempt := 1; ; attempt++ {
		log.Info("searching",
			zap.String("query", query),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries))

		res := r.attempt(ctx, query, maxResults)
		switch res.kind {
		case outcomeSuccess:
			if len(res.results) == 0 {
				log.Info("no results found")
			} else {
				log.Info("found results", zap.Int("count", len(res.results)))
			}
			return res.results, nil
		case outcomeFatal:
			log.Error("unexpected error", zap.Error(res.err))
			return nil, res.err
		}

		log.Warn("attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(res.err))
		if attempt >= maxRetries {
			log.Error("all attempts failed", zap.Int("max_retries", maxRetries))
			return nil, res.err
		}

		log.Info("waiting before retry", zap.Duration("delay", r.RetryDelay))
		if err := r.wait(ctx); err != nil {
			return nil, &UnexpectedError{Err: err}
		}
	}
}

// attempt fetches pages from offset 1 until maxResults items are collected
// or the provider returns an empty page. A short page does not end the
// attempt; the provider may filter a page and still have more behind it.
func (r *Retriever) attempt(ctx context.Context, query string, maxResults int) attemptResult {
	results := make([]types.SearchResult, 0, maxResults)
	for offset := 0; offset < maxResults; offset += PageSize {
		req := PageRequest{
			Query: query,
			Start: offset + 1,
			Num:   min(PageSize, maxResults-offset),
		}
		items, err := r.Provider.FetchPage(ctx, req)
		if err != nil {
			kind, err := classify(err)
			return attemptResult{kind: kind, err: err}
		}
		results = append(results, items...)
		if len(items) == 0 || len(results) >= maxResults {
			break
		}
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return attemptResult{kind: outcomeSuccess, results: results}
}

// classify decides whether err is worth another attempt. Errors outside the
// provider's taxonomy are wrapped in *UnexpectedError.
func classify(err error) (outcome, error) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return outcomeRetryable, err
	}
	var ce *ConfigurationError
	var ue *UnexpectedError
	if errors.As(err, &ce) || errors.As(err, &ue) {
		return outcomeFatal, err
	}
	return outcomeFatal, &UnexpectedError{Err: err}
}

func (r *Retriever) wait(ctx context.Context) error {
	if r.RetryDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.RetryDelay):
		return nil
	}
}

func (r *Retriever) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
