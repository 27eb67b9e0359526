package idp

import (
	"strings"

	"github.com/kbukum/idkit/errors"
	"github.com/kbukum/idkit/validation"
)

// Protocol identifies the protocol family a provider speaks.
type Protocol string

const (
	// ProtocolOAuth2 is plain OAuth 2.0 without the identity layer.
	ProtocolOAuth2 Protocol = "oauth2"
	// ProtocolOIDC is OpenID Connect on top of OAuth 2.0.
	ProtocolOIDC Protocol = "oidc"
)

// ClientAuthMethod is the token-endpoint client authentication policy,
// using the registered OIDC method names.
type ClientAuthMethod string

const (
	// AuthMethodNone marks a public client (PKCE-based, no secret).
	AuthMethodNone ClientAuthMethod = "none"
	// AuthMethodClientSecretBasic sends the secret via HTTP basic auth.
	AuthMethodClientSecretBasic ClientAuthMethod = "client_secret_basic"
	// AuthMethodClientSecretPost sends the secret in the request body.
	AuthMethodClientSecretPost ClientAuthMethod = "client_secret_post"
)

// UserConfig is the caller-supplied configuration for one provider.
// It is supplied once at application configuration time and never mutated.
type UserConfig struct {
	// ClientID is the OAuth2 client identifier. Required.
	ClientID string `yaml:"client_id" mapstructure:"client_id" validate:"required"`

	// ClientSecret is the client secret for confidential provider kinds.
	// Public (PKCE) kinds ignore it.
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`

	// Scope, when non-empty, fully replaces the provider kind's default
	// scope. No merging is performed.
	Scope string `yaml:"scope" mapstructure:"scope"`

	// RedirectURL is the callback URL pre-registered with the provider.
	// Opaque here; threaded through to the authorization request.
	RedirectURL string `yaml:"redirect_url" mapstructure:"redirect_url" validate:"omitempty,url"`

	// Extra carries core-recognized override fields that individual
	// provider kinds may consult.
	Extra map[string]string `yaml:"extra" mapstructure:"extra"`
}

// Validate checks the fields every provider kind requires.
// A missing client_id is a configuration error; the descriptor must not
// be produced.
func (c UserConfig) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return errors.MissingField("client_id")
	}
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("", err.Error()).WithCause(err)
	}
	return nil
}

// Branding is opaque display metadata for login UIs. Not semantically
// load-bearing.
type Branding struct {
	LogoURL         string `json:"logo_url,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
}

// Endpoint is an endpoint location together with the default query
// parameters a provider kind attaches to it.
type Endpoint struct {
	URL    string
	Params map[string]string
}

// Descriptor is the immutable configuration record one provider kind
// contributes to the authentication core. It is constructed once at
// startup and never mutated afterwards.
type Descriptor struct {
	// ID is the fixed identifier of the provider kind ("keyp", "google").
	// Never derived from caller input.
	ID string

	// DisplayName is the human-readable provider name.
	DisplayName string

	// Protocol is the protocol family.
	Protocol Protocol

	// Issuer is the provider's issuer URL.
	Issuer string

	// DiscoveryURL locates the OIDC discovery document.
	DiscoveryURL string

	// Authorization is the authorization endpoint with its default
	// parameters, including the negotiated scope.
	Authorization Endpoint

	// TokenURL is the token endpoint.
	TokenURL string

	// UserinfoURL is the userinfo endpoint.
	UserinfoURL string

	// ClientAuthMethod is fixed per provider kind, not per call.
	ClientAuthMethod ClientAuthMethod

	// Normalize maps the provider's raw claims into the canonical
	// Identity. Pure; safe for concurrent use.
	Normalize Normalizer

	// Branding is opaque display metadata.
	Branding Branding

	// Config retains the original caller configuration for the core's
	// own bookkeeping.
	Config UserConfig
}

// Builder constructs a Descriptor from caller configuration.
// Provider kinds expose a Builder so they can be registered uniformly.
type Builder func(cfg UserConfig) (*Descriptor, error)

// NegotiateScope resolves the scope for the authorization request.
// A non-empty caller scope fully replaces the default; otherwise the
// default is used verbatim. An empty or blank caller scope counts as
// absent.
func NegotiateScope(caller, def string) string {
	if strings.TrimSpace(caller) == "" {
		return def
	}
	return caller
}
