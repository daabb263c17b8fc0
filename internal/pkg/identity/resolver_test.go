package identity

import (
	"testing"

	"wisenotes-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCallerID(t *testing.T) {
	resolver := NewClaimsResolver("user_id")

	id, err := resolver.ResolveCallerID(Claims{"user_id": "user-42"})
	require.NoError(t, err)
	assert.Equal(t, "user-42", id)
}

func TestResolveCallerIDFailures(t *testing.T) {
	resolver := NewClaimsResolver("user_id")

	testCases := []struct {
		name   string
		claims Claims
	}{
		{name: "nil claims", claims: nil},
		{name: "missing claim", claims: Claims{"sub": "user-42"}},
		{name: "non-string claim", claims: Claims{"user_id": 42}},
		{name: "empty claim", claims: Claims{"user_id": ""}},
		{name: "whitespace claim", claims: Claims{"user_id": "   "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.ResolveCallerID(tc.claims)
			assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		})
	}
}

func TestResolverUsesConfiguredClaimKey(t *testing.T) {
	resolver := NewClaimsResolver("sub")

	id, err := resolver.ResolveCallerID(Claims{"sub": "abc", "user_id": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
