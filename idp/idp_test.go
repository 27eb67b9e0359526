package idp

import (
	"testing"

	"github.com/kbukum/idkit/errors"
)

func TestNegotiateScope(t *testing.T) {
	tests := []struct {
		name   string
		caller string
		def    string
		want   string
	}{
		{"absent uses default", "", "openid email", "openid email"},
		{"blank uses default", "   ", "openid email", "openid email"},
		{"caller replaces default", "openid profile", "openid email", "openid profile"},
		{"no merging", "wallet", "openid email", "wallet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NegotiateScope(tt.caller, tt.def); got != tt.want {
				t.Errorf("NegotiateScope(%q, %q) = %q, want %q", tt.caller, tt.def, got, tt.want)
			}
		})
	}
}

func TestUserConfig_Validate_MissingClientID(t *testing.T) {
	for _, clientID := range []string{"", "   "} {
		err := UserConfig{ClientID: clientID}.Validate()
		if err == nil {
			t.Fatalf("expected error for client_id %q", clientID)
		}
		if !errors.IsConfiguration(err) {
			t.Errorf("expected configuration error, got %v", err)
		}
		appErr, _ := errors.AsAppError(err)
		if appErr.Code != errors.ErrCodeConfigMissingField {
			t.Errorf("expected CONFIG_MISSING_FIELD, got %s", appErr.Code)
		}
	}
}

func TestUserConfig_Validate_BadRedirectURL(t *testing.T) {
	err := UserConfig{ClientID: "abc", RedirectURL: "not a url"}.Validate()
	if err == nil {
		t.Fatal("expected error for malformed redirect_url")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestUserConfig_Validate_Success(t *testing.T) {
	cfg := UserConfig{
		ClientID:    "abc123",
		Scope:       "openid profile",
		RedirectURL: "https://app.example.com/callback",
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
