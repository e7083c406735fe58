// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/websearch/pkg/types"
)

// Output formats accepted by Format.
const (
	FormatNameText = "text"
	FormatNameJSON = "json"
	FormatNameYAML = "yaml"
)

// Format writes results to w in the named format.
func Format(name string, results []types.SearchResult, w io.Writer) error {
	switch name {
	case "", FormatNameText:
		return FormatText(results, w)
	case FormatNameJSON:
		return FormatJSON(results, w)
	case FormatNameYAML:
		return FormatYAML(results, w)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", name)
	}
}

// FormatText writes one block per result, substituting N/A for absent
// fields. An empty result set writes nothing.
func FormatText(results []types.SearchResult, w io.Writer) error {
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "\n=== Result %d ===\nURL: %s\nTitle: %s\nSnippet: %s\n",
			i+1, r.DisplayURL(), r.DisplayTitle(), r.DisplaySnippet()); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	if results == nil {
		results = []types.SearchResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// FormatYAML writes results as a YAML sequence to w.
func FormatYAML(results []types.SearchResult, w io.Writer) error {
	if results == nil {
		results = []types.SearchResult{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
