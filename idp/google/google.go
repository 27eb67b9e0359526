// Package google contributes the Google provider kind: a standard OIDC
// provider with a confidential client, so a client secret is required.
package google

import (
	"github.com/kbukum/idkit/errors"
	"github.com/kbukum/idkit/idp"
	"github.com/kbukum/idkit/validation"
)

const (
	// ID is the fixed provider identifier.
	ID = "google"

	// DisplayName is the human-readable provider name.
	DisplayName = "Google"

	// DefaultScope is requested when the caller supplies no scope.
	DefaultScope = "openid email profile"
)

// Endpoint locations are fixed; Google does not vary them by deployment.
const (
	issuer       = "https://accounts.google.com"
	discoveryURL = "https://accounts.google.com/.well-known/openid-configuration"
	authURL      = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL     = "https://oauth2.googleapis.com/token"
	userinfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Builder returns an idp.Builder for uniform registration via
// Registry.Build.
func Builder() idp.Builder {
	return New
}

// New builds the immutable Google descriptor from caller configuration.
func New(cfg idp.UserConfig) (*idp.Descriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v := validation.New().Required("client_secret", cfg.ClientSecret); v.HasErrors() {
		return nil, errors.MissingField("client_secret")
	}

	scope := idp.NegotiateScope(cfg.Scope, DefaultScope)

	return &idp.Descriptor{
		ID:           ID,
		DisplayName:  DisplayName,
		Protocol:     idp.ProtocolOIDC,
		Issuer:       issuer,
		DiscoveryURL: discoveryURL,
		Authorization: idp.Endpoint{
			URL: authURL,
			Params: map[string]string{
				"scope":         scope,
				"response_type": "code",
			},
		},
		TokenURL:         tokenURL,
		UserinfoURL:      userinfoURL,
		ClientAuthMethod: idp.AuthMethodClientSecretPost,
		Normalize: idp.MappedNormalizer(ID, idp.ClaimMapping{
			Name:  "name",
			Email: "email",
			Image: "picture",
		}),
		Branding: idp.Branding{
			LogoURL:         "https://developers.google.com/identity/images/g-logo.png",
			BackgroundColor: "#ffffff",
			TextColor:       "#000000",
		},
		Config: cfg,
	}, nil
}
