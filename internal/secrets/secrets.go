// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text
// files: the filename is the key name, the trimmed file contents are the
// value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key files recognized by the CLI.
const (
	// KeyEmail is the contact email sent with E-utilities requests.
	KeyEmail = "ncbi-email"

	// KeyAPIKey is the NCBI API key for higher rate limits.
	KeyAPIKey = "ncbi-api-key"
)

// Load reads every regular file in dir into a key/value map. A missing
// directory is not an error and yields an empty map. Dotfiles,
// subdirectories, and files with only whitespace are ignored; an
// unreadable file produces a warning on stderr but does not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	switch {
	case os.IsNotExist(err):
		return map[string]string{}, nil
	case err != nil:
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, readErr := os.ReadFile(filepath.Join(dir, name))
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, readErr)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			loaded[name] = value
		}
	}
	return loaded, nil
}
