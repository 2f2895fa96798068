package identity

import "github.com/sufield/idcheck/internal/assert"

// ID represents a validated SPIFFE ID as its parsed components.
//
// Format: spiffe://<trust-domain>[/<path>]
// Example: spiffe://example.org/ns/prod/sa/api-client
//
// The path is either "" (an authority-only ID) or begins with '/' and never
// ends with one; its segments are non-empty and never "." or "..". Those
// properties come from the scanner, not from this type.
type ID struct {
	trustDomain *TrustDomain
	path        string
	uri         string // Cached string representation
}

// NewIDFromComponents creates an ID from scanner-validated components.
// TrustDomain must not be nil; path is "" or slash-led as the scanner emits it.
func NewIDFromComponents(trustDomain *TrustDomain, path string) *ID {
	assert.Invariant(trustDomain != nil, "ID must have a trust domain")
	assert.Invariant(path == "" || path[0] == '/', "non-empty path must start with /")

	uri := "spiffe://" + trustDomain.String() + path
	return &ID{
		trustDomain: trustDomain,
		path:        path,
		uri:         uri,
	}
}

// String returns the ID as its URI string.
func (i *ID) String() string {
	return i.uri
}

// TrustDomain returns the trust domain component.
func (i *ID) TrustDomain() *TrustDomain {
	return i.trustDomain
}

// Path returns the path component, "" for an authority-only ID.
func (i *ID) Path() string {
	return i.path
}

// Equals checks if two IDs are equal by comparing their URI strings.
func (i *ID) Equals(other *ID) bool {
	if other == nil {
		return false
	}
	return i.uri == other.uri
}

// MemberOf checks if this ID belongs to the given trust domain.
func (i *ID) MemberOf(td *TrustDomain) bool {
	return i.trustDomain.Equals(td)
}
