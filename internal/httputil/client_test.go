// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/websearch/pkg/types"
)

func TestNewClientLogsRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer ts.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second}, zap.New(core))

	resp, err := client.Get(ts.URL + "/customsearch/v1?q=go&key=secret")
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.NotContains(t, fields["url"], "secret")
	assert.Contains(t, fields["url"], "key=REDACTED")
}

func TestNewClientLogsFailures(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := NewClient(types.HTTPConfig{}, zap.New(core))

	_, err := client.Get(addr)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("http request failed").Len())
}

func TestNewClientTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	client := NewClient(types.HTTPConfig{Timeout: 50 * time.Millisecond}, nil)
	_, err := client.Get(ts.URL)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Client.Timeout") || strings.Contains(err.Error(), "deadline"),
		"got %v", err)
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no query", "https://example.com/path", "https://example.com/path"},
		{"no key", "https://example.com/?q=go", "https://example.com/?q=go"},
		{"key masked", "https://example.com/?key=abc&q=go", "https://example.com/?key=REDACTED&q=go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, RedactURL(u))
		})
	}
	assert.Equal(t, "", RedactURL(nil))
}
