// Package identity holds the value objects a validated SPIFFE ID decomposes
// into: a trust domain and a path, plus the sentinel errors callers check
// against.
//
// Nothing in this package parses or validates raw input. Constructors take
// components the scanner has already accepted; the package only models them.
// This keeps grammar policy in exactly one place (internal/scan) and leaves
// these types free of failure modes.
package identity
