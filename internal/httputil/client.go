// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the HTTP client used to reach the search provider.
package httputil

import (
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/websearch/pkg/types"
)

// redactedParams are query parameters never written to logs.
var redactedParams = []string{"key"}

// NewClient returns an HTTP client that applies cfg.Timeout and logs each
// round trip at debug level. A zero timeout leaves requests unbounded.
func NewClient(cfg types.HTTPConfig, log *zap.Logger) *http.Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &loggingTransport{
			next: http.DefaultTransport,
			log:  log,
		},
	}
}

type loggingTransport struct {
	next http.RoundTripper
	log  *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", RedactURL(req.URL)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		t.log.Debug("http request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	t.log.Debug("http request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

// RedactURL renders u with credential query parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
