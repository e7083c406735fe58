// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/websearch/internal/httputil"
	"github.com/pdiddy/websearch/internal/search"
)

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}
	query := strings.Join(args, " ")
	ctx := context.Background()

	provider, err := search.NewGoogleProvider(ctx, cfg.Credentials, search.GoogleOptions{
		Client:    httputil.NewClient(cfg.Search.HTTPConfig, a.log.Named("http")),
		UserAgent: cfg.Search.UserAgent,
		Endpoint:  endpoint,
	})
	if err != nil {
		return err
	}

	r := &search.Retriever{
		Credentials: cfg.Credentials,
		Provider:    provider,
		RetryDelay:  cfg.Search.RetryDelay,
		Logger:      a.log,
	}
	results, err := r.Retrieve(ctx, query, cfg.Search.MaxResults, cfg.Search.MaxRetries)
	if err != nil {
		return err
	}

	return search.Format(cfg.Output, results, cmd.OutOrStdout())
}
