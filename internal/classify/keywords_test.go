// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordsExtendsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("academic:\n  - polytechnic\ncommercial:\n  - biosciences\n"), 0o644))

	kw, err := LoadKeywords(path)
	require.NoError(t, err)

	assert.Contains(t, kw.Academic, "polytechnic")
	assert.Contains(t, kw.Commercial, "biosciences")
	// Defaults survive the extension.
	assert.Contains(t, kw.Academic, "university")
	assert.Contains(t, kw.Commercial, "pharmaceutical")

	c := New(kw)
	assert.True(t, c.IsNonAcademic("Nordic Biosciences, Copenhagen"))
	assert.False(t, c.IsNonAcademic("Helsinki Polytechnic, Biosciences Unit"))
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	_, err := LoadKeywords(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadKeywordsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("academic: [unclosed"), 0o644))

	_, err := LoadKeywords(path)
	assert.Error(t, err)
}
