package idp

import (
	"github.com/golang-jwt/jwt/v5"
)

// ClaimSubject is the standard OIDC subject claim name.
const ClaimSubject = "sub"

// Claims is an open, provider-defined claim set as returned by a userinfo
// endpoint or decoded from an ID token. Keys are claim names.
type Claims map[string]any

// SubjectSource is anything that can yield a stable subject identifier.
// Normalizers are polymorphic over this capability: Claims implements it,
// and callers with pre-parsed token types can implement it directly.
type SubjectSource interface {
	Subject() (string, bool)
}

// Subject returns the subject claim, if present and a non-empty string.
func (c Claims) Subject() (string, bool) {
	return c.String(ClaimSubject)
}

// String returns the named claim when it is a non-empty string.
func (c Claims) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// FromJWT adapts claims lifted from an already-verified ID token to the
// Claims shape, so token-sourced and userinfo-sourced claims feed the
// same normalizer. The input is copied, not aliased.
func FromJWT(mc jwt.MapClaims) Claims {
	claims := make(Claims, len(mc))
	for k, v := range mc {
		claims[k] = v
	}
	return claims
}
