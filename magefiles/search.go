//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a query against the live API, e.g.
// `mage search "golang generics"`. Requires GOOGLE_API_KEY and GOOGLE_SEARCH_CX.
func Search(query string) error {
	mg.Deps(Build)
	if query == "" {
		return fmt.Errorf("query is empty")
	}
	return sh.RunV(filepath.Join(binDir, binName), query)
}
