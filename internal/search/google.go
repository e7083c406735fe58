// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/pdiddy/websearch/pkg/types"
)

// GoogleProvider fetches pages from the Google Custom Search JSON API.
type GoogleProvider struct {
	service *customsearch.Service
	creds   types.Credentials
}

// GoogleOptions configures NewGoogleProvider.
type GoogleOptions struct {
	// Client carries the requests. It must not add its own authentication.
	Client *http.Client

	// UserAgent is appended to the library's User-Agent header.
	UserAgent string

	// Endpoint overrides the API base URL. Tests point it at an httptest server.
	Endpoint string
}

// NewGoogleProvider builds a provider for creds. Missing credentials yield a
// *ConfigurationError and no service is created.
func NewGoogleProvider(ctx context.Context, creds types.Credentials, opts GoogleOptions) (*GoogleProvider, error) {
	if err := CheckCredentials(creds); err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	// The API key travels as a per-call query parameter so that any
	// client, including test clients, can be supplied here.
	clientOpts := []option.ClientOption{option.WithHTTPClient(client)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	svc, err := customsearch.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating custom search service: %w", err)
	}
	svc.UserAgent = opts.UserAgent

	return &GoogleProvider{service: svc, creds: creds}, nil
}

// FetchPage issues one cse.list request.
func (p *GoogleProvider) FetchPage(ctx context.Context, req PageRequest) ([]types.SearchResult, error) {
	resp, err := p.service.Cse.List().
		Q(req.Query).
		Cx(p.creds.SearchEngineID).
		Start(int64(req.Start)).
		Num(int64(req.Num)).
		Context(ctx).
		Do(googleapi.QueryParameter("key", p.creds.APIKey))
	if err != nil {
		return nil, classifyGoogleError(err)
	}

	results := make([]types.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		results = append(results, types.SearchResult{
			URL:     item.Link,
			Title:   item.Title,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

// classifyGoogleError maps API-reported failures to *ProviderError and
// everything else to *UnexpectedError.
func classifyGoogleError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &ProviderError{
			StatusCode: gerr.Code,
			Message:    gerr.Message,
			Err:        err,
		}
	}
	return &UnexpectedError{Err: err}
}
