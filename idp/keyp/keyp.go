// Package keyp contributes the Keyp wallet-identity provider kind.
//
// Keyp is an OIDC provider for wallet-based onboarding: a public client
// relying on PKCE, so no client secret is ever configured. Besides the
// standard profile claims it surfaces the user's wallet address, which
// is passed through into Identity.Extensions.
//
// The only deployment-sensitive value is the API domain the discovery
// document and endpoints are derived from; override it with
// WithAPIDomain for non-production deployments.
package keyp

import (
	"fmt"

	"github.com/kbukum/idkit/idp"
)

const (
	// ID is the fixed provider identifier.
	ID = "keyp"

	// DisplayName is the human-readable provider name.
	DisplayName = "Keyp"

	// DefaultAPIDomain is the production API domain.
	DefaultAPIDomain = "api.usekeyp.com"

	// DefaultScope is requested when the caller supplies no scope.
	DefaultScope = "openid email"
)

// Provider claim names.
const (
	claimName  = "username"
	claimEmail = "email"
	claimImage = "imageSrc"
)

// Option adjusts deployment-scoped construction values.
type Option func(*options)

type options struct {
	apiDomain string
}

// WithAPIDomain overrides the API domain the endpoints are derived
// from. An empty value keeps the production default.
func WithAPIDomain(domain string) Option {
	return func(o *options) {
		if domain != "" {
			o.apiDomain = domain
		}
	}
}

// Builder returns an idp.Builder carrying the given options, for
// uniform registration via Registry.Build.
func Builder(opts ...Option) idp.Builder {
	return func(cfg idp.UserConfig) (*idp.Descriptor, error) {
		return New(cfg, opts...)
	}
}

// New builds the immutable Keyp descriptor from caller configuration.
// The descriptor requires no further mutation before being handed to
// the OAuth engine; no network I/O occurs here.
func New(cfg idp.UserConfig, opts ...Option) (*idp.Descriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{apiDomain: DefaultAPIDomain}
	for _, opt := range opts {
		opt(&o)
	}

	issuer := fmt.Sprintf("https://%s/oidc", o.apiDomain)
	scope := idp.NegotiateScope(cfg.Scope, DefaultScope)

	return &idp.Descriptor{
		ID:           ID,
		DisplayName:  DisplayName,
		Protocol:     idp.ProtocolOIDC,
		Issuer:       issuer,
		DiscoveryURL: issuer + "/.well-known/openid-configuration",
		Authorization: idp.Endpoint{
			URL: issuer + "/auth",
			Params: map[string]string{
				"scope":         scope,
				"response_type": "code",
			},
		},
		TokenURL:    issuer + "/token",
		UserinfoURL: issuer + "/me",
		// Public client: the engine must use PKCE, never a secret.
		ClientAuthMethod: idp.AuthMethodNone,
		Normalize: idp.MappedNormalizer(ID, idp.ClaimMapping{
			Name:  claimName,
			Email: claimEmail,
			Image: claimImage,
		}),
		Branding: idp.Branding{
			LogoURL:         "https://docs.usekeyp.com/img/logo.png",
			BackgroundColor: "#204DCC",
			TextColor:       "#ffffff",
		},
		Config: cfg,
	}, nil
}
