package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCandidates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ids.txt")
	content := `# allowed service identities
spiffe://example.org/svc/api

spiffe://example.org/svc/web
   spiffe://example.org
# trailing comment
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := readCandidates(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"spiffe://example.org/svc/api",
		"spiffe://example.org/svc/web",
		"spiffe://example.org",
	}, got)
}

func TestReadCandidates_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := readCandidates(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
