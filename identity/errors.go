package identity

import "errors"

// Sentinel errors for identifier failures
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrInvalidID is the single error kind for a string that does not satisfy
	// the SPIFFE ID grammar. Grammar violations are deliberately not
	// subclassified; callers needing diagnostics must inspect the input
	// themselves.
	ErrInvalidID = errors.New("not a valid SPIFFE ID")

	// ErrInvalidTrustDomain indicates a trust domain name is empty or outside
	// the authority character class.
	ErrInvalidTrustDomain = errors.New("not a valid trust domain name")
)
