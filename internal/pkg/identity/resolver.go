package identity

import (
	"strings"

	"wisenotes-be/internal/pkg/apperr"
)

// Claims is the verified claim set attached to a request by the
// authentication middleware. The core never inspects the token itself.
type Claims map[string]interface{}

// Resolver extracts the stable caller identifier from verified claims.
// Keeping this behind an interface keeps the services free of any
// concrete authentication framework.
type Resolver interface {
	ResolveCallerID(claims Claims) (string, error)
}

type claimsResolver struct {
	claimKey string
}

// NewClaimsResolver returns a Resolver reading the identifier from the
// given claim key (e.g. "user_id" or "sub").
func NewClaimsResolver(claimKey string) Resolver {
	return &claimsResolver{claimKey: claimKey}
}

func (r *claimsResolver) ResolveCallerID(claims Claims) (string, error) {
	if claims == nil {
		return "", apperr.ErrUnauthenticated
	}

	raw, ok := claims[r.claimKey]
	if !ok {
		return "", apperr.ErrUnauthenticated
	}

	id, ok := raw.(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", apperr.ErrUnauthenticated
	}

	return id, nil
}
