// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/websearch/pkg/types"
)

var sampleResults = []types.SearchResult{
	{URL: "https://go.dev/", Title: "The Go Programming Language", Snippet: "Build simple, secure, scalable systems."},
	{URL: "https://go.dev/doc/effective_go", Title: "Effective Go"},
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatText(sampleResults, &buf))

	want := `
=== Result 1 ===
URL: https://go.dev/
Title: The Go Programming Language
Snippet: Build simple, secure, scalable systems.

=== Result 2 ===
URL: https://go.dev/doc/effective_go
Title: Effective Go
Snippet: N/A
`
	assert.Equal(t, want, buf.String())
}

func TestFormatTextAllFieldsMissing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatText([]types.SearchResult{{}}, &buf))

	assert.Contains(t, buf.String(), "URL: N/A\nTitle: N/A\nSnippet: N/A\n")
}

func TestFormatTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatText(nil, &buf))
	assert.Empty(t, buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResults, &buf))

	assert.JSONEq(t, `[
	  {"url": "https://go.dev/", "title": "The Go Programming Language", "snippet": "Build simple, secure, scalable systems."},
	  {"url": "https://go.dev/doc/effective_go", "title": "Effective Go"}
	]`, buf.String())
}

func TestFormatJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResults, &buf))

	assert.YAMLEq(t, `
- url: https://go.dev/
  title: The Go Programming Language
  snippet: Build simple, secure, scalable systems.
- url: https://go.dev/doc/effective_go
  title: Effective Go
`, buf.String())
}

func TestFormatDispatch(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains string
		errMsg   string
	}{
		{"default is text", "", "=== Result 1 ===", ""},
		{"text", FormatNameText, "Snippet: N/A", ""},
		{"json", FormatNameJSON, `"url": "https://go.dev/"`, ""},
		{"yaml", FormatNameYAML, "title: Effective Go", ""},
		{"unknown", "xml", "", "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Format(tt.format, sampleResults, &buf)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}
