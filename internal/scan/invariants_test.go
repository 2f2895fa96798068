package scan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sufield/idcheck/internal/scan"
)

// Invariant: every valid verdict round-trips. Reconstructing the ID from its
// extracted components and validating again must produce the same components.
func TestInvariant_ValidResultsRoundTrip(t *testing.T) {
	t.Parallel()

	valid := []string{
		"spiffe://foo",
		"spiffe://foo/bar",
		"spiffe://foo.bar/..Baz/.buZ",
		"spiffe://example.org/ns/default/sa/api-client",
		"spiffe://a-b_c.d/X/y/Z9",
	}

	for _, id := range valid {
		res := scan.Validate(id)
		require.True(t, res.Valid, "input %q", id)

		rebuilt := scan.Prefix + res.Authority + res.Path
		assert.Equal(t, id, rebuilt)

		again := scan.Validate(rebuilt)
		assert.Equal(t, res, again)
	}
}

// Invariant: valid authorities are non-empty and stay within their character
// class; valid paths are empty or slash-led, never slash-terminated, with no
// empty, ".", or ".." segments.
func TestInvariant_ComponentShape(t *testing.T) {
	t.Parallel()

	const authorityClass = "abcdefghijklmnopqrstuvwxyz0123456789.-_"

	valid := []string{
		"spiffe://foo",
		"spiffe://foo/bar",
		"spiffe://foo.bar/Baz/buZ",
		"spiffe://9_-./segment",
	}

	for _, id := range valid {
		res := scan.Validate(id)
		require.True(t, res.Valid, "input %q", id)

		assert.NotEmpty(t, res.Authority)
		for _, c := range res.Authority {
			assert.Contains(t, authorityClass, string(c))
		}

		if res.Path == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(res.Path, "/"))
		assert.False(t, strings.HasSuffix(res.Path, "/"))
		for _, seg := range strings.Split(res.Path[1:], "/") {
			assert.NotEmpty(t, seg)
			assert.NotEqual(t, ".", seg)
			assert.NotEqual(t, "..", seg)
		}
	}
}

// Invariant: the scheme is case-sensitive. Uppercasing any prefix character of
// an otherwise valid ID invalidates it.
func TestInvariant_SchemeCaseSensitivity(t *testing.T) {
	t.Parallel()

	const id = "spiffe://foo/bar"
	require.True(t, scan.Validate(id).Valid)

	for i := 0; i < len(scan.Prefix); i++ {
		upper := strings.ToUpper(string(id[i]))
		if upper == string(id[i]) {
			continue
		}
		mutated := id[:i] + upper + id[i+1:]
		assert.False(t, scan.Validate(mutated).Valid, "mutated %q", mutated)
	}
}

// Invariant: a single forbidden character anywhere in the authority or path
// rejects the whole input, regardless of position.
func TestInvariant_ForbiddenCharacterAnywhere(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{":", "@", "%", "?", "#", " ", "é", "\t"} {
		authority := "spiffe://fo" + bad + "o/bar"
		assert.False(t, scan.Validate(authority).Valid, "authority with %q", bad)

		path := "spiffe://foo/ba" + bad + "r"
		assert.False(t, scan.Validate(path).Valid, "path with %q", bad)
	}

	// Uppercase is forbidden in the authority but not the path.
	assert.False(t, scan.Validate("spiffe://fOo/bar").Valid)
	assert.True(t, scan.Validate("spiffe://foo/bAr").Valid)
}
