// Package auth is the seam between the hosted identity provider and the
// catalog API. Tokens are verified by go-chi/jwtauth; everything past the
// verifier works with a typed Claims value instead of raw claim maps.
package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth"
)

// Role is a capability claim carried by an authenticated caller.
type Role string

// Known roles.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Claims is the verified identity of a caller: a subject plus zero or more
// role claims. The token format and issuer stay behind the verifier.
type Claims struct {
	Subject string
	Roles   []Role
}

// HasRole reports whether the claim set carries the role.
func (c Claims) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NewVerifier builds the token authority used by the HTTP verifier
// middleware. HS256 with a shared secret; the hosted provider's RS256 keys
// slot in the same way when configured.
func NewVerifier(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// Verifier returns the chi middleware that extracts and verifies the token.
// It never rejects on its own; RequireRole does the gating.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verifier(ja)
}

// FromContext resolves the verified claims for a request. The zero Claims
// value comes back for anonymous requests.
func FromContext(ctx context.Context) Claims {
	token, claimMap, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Claims{}
	}
	return fromClaimMap(claimMap)
}

// fromClaimMap lifts the raw claim map into typed Claims. Roles are read
// from the "roles" claim, falling back to "cognito:groups" (the hosted
// provider's group claim).
func fromClaimMap(claimMap map[string]interface{}) Claims {
	claims := Claims{}

	if sub, ok := claimMap["sub"].(string); ok {
		claims.Subject = sub
	}

	raw, ok := claimMap["roles"]
	if !ok {
		raw = claimMap["cognito:groups"]
	}
	if list, ok := raw.([]interface{}); ok {
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				claims.Roles = append(claims.Roles, Role(s))
			}
		}
	}

	return claims
}

// RequireRole gates a route on a role claim: 401 without a verified
// identity, 403 without the role.
func RequireRole(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claimMap, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			claims := fromClaimMap(claimMap)
			if !claims.HasRole(role) {
				http.Error(w, "insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
