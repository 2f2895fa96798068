package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sufield/idcheck/identity"
)

func TestNewIDFromComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		trustDomain string
		path        string
		wantURI     string
	}{
		{
			name:        "authority with path",
			trustDomain: "example.org",
			path:        "/workload/server",
			wantURI:     "spiffe://example.org/workload/server",
		},
		{
			name:        "authority only",
			trustDomain: "example.org",
			path:        "",
			wantURI:     "spiffe://example.org",
		},
		{
			name:        "nested path",
			trustDomain: "prod.example.org",
			path:        "/ns/prod/sa/api",
			wantURI:     "spiffe://prod.example.org/ns/prod/sa/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			// Arrange
			td := identity.NewTrustDomainFromName(tt.trustDomain)

			// Act
			id := identity.NewIDFromComponents(td, tt.path)

			// Assert
			require.NotNil(t, id)
			assert.Equal(t, tt.wantURI, id.String())
			assert.Equal(t, tt.path, id.Path())
			assert.Equal(t, td, id.TrustDomain())
		})
	}
}

func TestID_Equals(t *testing.T) {
	t.Parallel()

	td := identity.NewTrustDomainFromName("example.org")
	a := identity.NewIDFromComponents(td, "/svc/api")
	b := identity.NewIDFromComponents(identity.NewTrustDomainFromName("example.org"), "/svc/api")
	c := identity.NewIDFromComponents(td, "/svc/web")

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestID_MemberOf(t *testing.T) {
	t.Parallel()

	td := identity.NewTrustDomainFromName("example.org")
	other := identity.NewTrustDomainFromName("other.org")
	id := identity.NewIDFromComponents(td, "/svc/api")

	assert.True(t, id.MemberOf(td))
	assert.True(t, id.MemberOf(identity.NewTrustDomainFromName("example.org")))
	assert.False(t, id.MemberOf(other))
	assert.False(t, id.MemberOf(nil))
}

func TestTrustDomain_Equals(t *testing.T) {
	t.Parallel()

	a := identity.NewTrustDomainFromName("example.org")
	b := identity.NewTrustDomainFromName("example.org")
	c := identity.NewTrustDomainFromName("example.com")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
	assert.Equal(t, "example.org", a.String())
}
