package idp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"golang.org/x/oauth2"
)

// GenerateState creates a cryptographically secure random state string
// for CSRF protection in authorization flows.
// Returns a 32-byte hex-encoded string (64 characters).
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateNonce creates a cryptographically secure random nonce for
// OIDC replay protection.
// Returns a 16-byte hex-encoded string (32 characters).
func GenerateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// PKCE holds a Proof Key for Code Exchange challenge/verifier pair.
// Public-client descriptors (ClientAuthMethod none) expect the engine to
// attach the challenge to the authorization request and present the
// verifier during the exchange.
type PKCE struct {
	// CodeVerifier is the random secret, sent during the exchange.
	CodeVerifier string

	// CodeChallenge is the SHA-256 hash of the verifier, sent in the
	// authorization URL.
	CodeChallenge string

	// CodeChallengeMethod is always "S256".
	CodeChallengeMethod string
}

// NewPKCE generates a new PKCE challenge/verifier pair using S256.
// The verifier is a 32-byte random value, base64url-encoded.
func NewPKCE() (*PKCE, error) {
	verifier := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, verifier); err != nil {
		return nil, err
	}

	verifierStr := base64.RawURLEncoding.EncodeToString(verifier)
	h := sha256.Sum256([]byte(verifierStr))
	challenge := base64.RawURLEncoding.EncodeToString(h[:])

	return &PKCE{
		CodeVerifier:        verifierStr,
		CodeChallenge:       challenge,
		CodeChallengeMethod: "S256",
	}, nil
}

// AuthCodeOptions returns the authorization-request parameters carrying
// the challenge, ready to pass to Descriptor.AuthCodeURL.
func (p *PKCE) AuthCodeOptions() []oauth2.AuthCodeOption {
	return []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("code_challenge", p.CodeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", p.CodeChallengeMethod),
	}
}

// ExchangeOptions returns the token-request parameters carrying the
// verifier, for the engine's code exchange.
func (p *PKCE) ExchangeOptions() []oauth2.AuthCodeOption {
	return []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("code_verifier", p.CodeVerifier),
	}
}
