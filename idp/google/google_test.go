package google

import (
	"testing"

	"github.com/kbukum/idkit/errors"
	"github.com/kbukum/idkit/idp"
)

func validConfig() idp.UserConfig {
	return idp.UserConfig{ClientID: "goog-client", ClientSecret: "goog-secret"}
}

func TestNew_Defaults(t *testing.T) {
	d, err := New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.ID != "google" {
		t.Errorf("id = %s", d.ID)
	}
	if d.Issuer != "https://accounts.google.com" {
		t.Errorf("issuer = %s", d.Issuer)
	}
	if d.ClientAuthMethod != idp.AuthMethodClientSecretPost {
		t.Errorf("client auth = %s", d.ClientAuthMethod)
	}
	if d.Authorization.Params["scope"] != "openid email profile" {
		t.Errorf("scope = %q", d.Authorization.Params["scope"])
	}
}

func TestNew_MissingSecret(t *testing.T) {
	d, err := New(idp.UserConfig{ClientID: "goog-client"})
	if err == nil {
		t.Fatal("expected configuration error for missing client_secret")
	}
	if d != nil {
		t.Error("no descriptor may be produced on configuration error")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestNew_MissingClientID(t *testing.T) {
	_, err := New(idp.UserConfig{ClientSecret: "s"})
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestNew_ScopeOverride(t *testing.T) {
	cfg := validConfig()
	cfg.Scope = "openid email https://www.googleapis.com/auth/calendar"
	d, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Authorization.Params["scope"]; got != cfg.Scope {
		t.Errorf("scope = %q, want caller scope verbatim", got)
	}
}

func TestNormalize_StandardClaims(t *testing.T) {
	d, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}

	identity, err := d.Normalize(idp.Claims{
		"sub":            "108",
		"name":           "Alice Doe",
		"email":          "alice@gmail.com",
		"picture":        "https://lh3.googleusercontent.com/a/img",
		"email_verified": true,
		"hd":             "example.com",
	})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if identity.ID != "108" {
		t.Errorf("id = %s", identity.ID)
	}
	if identity.Name != "Alice Doe" || identity.Email != "alice@gmail.com" {
		t.Errorf("identity = %+v", identity)
	}
	if identity.Image != "https://lh3.googleusercontent.com/a/img" {
		t.Errorf("image = %s", identity.Image)
	}
	if identity.Extensions["hd"] != "example.com" {
		t.Errorf("expected hd passed through, got %v", identity.Extensions)
	}
	if identity.Extensions["email_verified"] != true {
		t.Errorf("expected email_verified passed through, got %v", identity.Extensions)
	}
}

func TestNormalize_MissingSubject(t *testing.T) {
	d, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Normalize(idp.Claims{"email": "alice@gmail.com"})
	if !errors.IsProtocolCompliance(err) {
		t.Errorf("expected protocol-compliance error, got %v", err)
	}
}
