package identity

// TrustDomain represents the authority component of a SPIFFE ID: the namespace
// that scopes the identities under it (e.g. example.org).
//
// It is a minimal value object over an already-validated name. Validation is
// the scanner's job; a TrustDomain in hand is evidence the name passed it.
type TrustDomain struct {
	name string
}

// NewTrustDomainFromName creates a TrustDomain from an already-validated name.
// Name must be non-empty and within the authority character class; the scanner
// guarantees both for anything it accepts.
func NewTrustDomainFromName(name string) *TrustDomain {
	return &TrustDomain{name: name}
}

// String returns the trust domain name.
func (td *TrustDomain) String() string {
	return td.name
}

// Equals checks if two trust domains are equal. Comparison is case-sensitive;
// the authority character class is lowercase-only, so case never varies for
// scanner-produced values.
func (td *TrustDomain) Equals(other *TrustDomain) bool {
	if other == nil {
		return false
	}
	return td.name == other.name
}
