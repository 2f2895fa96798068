//go:build debug

package assert

import "fmt"

// Invariant checks an invariant condition and panics if violated in debug builds.
// Invariants represent conditions that must always be true for the system to be
// correct, including postconditions established by a constructor or function.
// Use this for internal sanity checks only, never for rejecting external input:
// a malformed candidate ID is an expected verdict, not an invariant violation.
//
// Examples:
//
//	// Constructor postcondition
//	assert.Invariant(trustDomain != nil, "ID must have a trust domain")
//
//	// Structural property the scanner established
//	assert.Invariant(path == "" || path[0] == '/', "non-empty path must start with /")
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}
