// Package idcheck validates SPIFFE ID strings against the grammar
// spiffe://<authority>[/<path>] using a single character-by-character scan,
// with no regular expressions and no URI parsing libraries.
//
// Quick start:
//
//	id, err := idcheck.Parse("spiffe://example.org/ns/prod/sa/api")
//	if err != nil {
//	    // errors.Is(err, identity.ErrInvalidID) is the only failure kind
//	    return err
//	}
//	fmt.Println(id.TrustDomain()) // example.org
//	fmt.Println(id.Path())        // /ns/prod/sa/api
//
// For callers that want the raw verdict instead of an error:
//
//	res := idcheck.Validate(candidate)
//	if res.Valid {
//	    fmt.Println(res.Authority, res.Path)
//	}
//
// Validation is pure and stateless: safe to call concurrently, never panics,
// and treats malformed input as an expected verdict rather than a fault.
// There is deliberately no normalization or percent-decoding; an input that
// would need either is rejected.
package idcheck

import (
	"github.com/sufield/idcheck/identity"
	"github.com/sufield/idcheck/internal/scan"
)

// Prefix is the literal scheme prefix every SPIFFE ID begins with.
const Prefix = scan.Prefix

// Result is the verdict of validating one candidate ID.
//
// Valid discriminates: when false, Authority and Path are empty; when true,
// Authority is non-empty and Path is "" or starts with '/' and never ends
// with one.
type Result struct {
	Valid     bool
	Authority string
	Path      string
}

// Validate checks s against the SPIFFE ID grammar and returns the verdict
// with the extracted components on success.
func Validate(s string) Result {
	res := scan.Validate(s)
	return Result{Valid: res.Valid, Authority: res.Authority, Path: res.Path}
}

// IsValid reports whether s is a well-formed SPIFFE ID.
func IsValid(s string) bool {
	return scan.Validate(s).Valid
}

// Parse validates s and returns its parsed form.
//
// The only error is identity.ErrInvalidID; grammar violations are not
// subclassified.
func Parse(s string) (*identity.ID, error) {
	res := scan.Validate(s)
	if !res.Valid {
		return nil, identity.ErrInvalidID
	}
	td := identity.NewTrustDomainFromName(res.Authority)
	return identity.NewIDFromComponents(td, res.Path), nil
}

// MustParse is Parse for fixtures and tests: it panics on invalid input.
// Never use it on untrusted data; the validating entry points are Parse,
// Validate, and IsValid.
func MustParse(s string) *identity.ID {
	id, err := Parse(s)
	if err != nil {
		panic("idcheck: MustParse of invalid ID " + s)
	}
	return id
}
