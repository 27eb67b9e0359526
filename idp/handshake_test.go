package idp

import (
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"testing"
)

func TestGenerateState_Length(t *testing.T) {
	state, err := GenerateState()
	if err != nil {
		t.Fatal(err)
	}
	if len(state) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(state))
	}
	other, _ := GenerateState()
	if state == other {
		t.Error("states must be random")
	}
}

func TestGenerateNonce_Length(t *testing.T) {
	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	if len(nonce) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(nonce))
	}
}

func TestNewPKCE_ChallengeMatchesVerifier(t *testing.T) {
	pkce, err := NewPKCE()
	if err != nil {
		t.Fatal(err)
	}
	if pkce.CodeChallengeMethod != "S256" {
		t.Errorf("method = %s", pkce.CodeChallengeMethod)
	}
	h := sha256.Sum256([]byte(pkce.CodeVerifier))
	if want := base64.RawURLEncoding.EncodeToString(h[:]); pkce.CodeChallenge != want {
		t.Errorf("challenge = %s, want %s", pkce.CodeChallenge, want)
	}
}

func TestPKCE_AuthCodeOptions(t *testing.T) {
	pkce, err := NewPKCE()
	if err != nil {
		t.Fatal(err)
	}

	d := oauthTestDescriptor()
	raw := d.AuthCodeURL("s", pkce.AuthCodeOptions()...)
	u, _ := url.Parse(raw)
	q := u.Query()

	if q.Get("code_challenge") != pkce.CodeChallenge {
		t.Errorf("code_challenge = %s", q.Get("code_challenge"))
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("code_challenge_method = %s", q.Get("code_challenge_method"))
	}
}
