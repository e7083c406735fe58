// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for websearch.
package types

// NotAvailable is displayed in place of a result field the provider did not return.
const NotAvailable = "N/A"

// SearchResult is one normalized record returned by the search provider.
// Any field may be empty when the provider response omitted it.
type SearchResult struct {
	// URL is the link to the result page.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Title is the page title as returned by the provider.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Snippet is the short text excerpt shown under the title.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// DisplayURL returns URL, or NotAvailable when it is empty.
func (r SearchResult) DisplayURL() string { return orNotAvailable(r.URL) }

// DisplayTitle returns Title, or NotAvailable when it is empty.
func (r SearchResult) DisplayTitle() string { return orNotAvailable(r.Title) }

// DisplaySnippet returns Snippet, or NotAvailable when it is empty.
func (r SearchResult) DisplaySnippet() string { return orNotAvailable(r.Snippet) }

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
