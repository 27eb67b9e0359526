package idp

import (
	"sort"
	"strings"

	"golang.org/x/oauth2"
)

// OAuth2Config translates the descriptor into the *oauth2.Config shape
// consumed by the external token-exchange engine. The negotiated scope
// string is split on whitespace into the Scopes slice.
func (d *Descriptor) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     d.Config.ClientID,
		ClientSecret: d.Config.ClientSecret,
		RedirectURL:  d.Config.RedirectURL,
		Scopes:       strings.Fields(d.Authorization.Params["scope"]),
		Endpoint: oauth2.Endpoint{
			AuthURL:   d.Authorization.URL,
			TokenURL:  d.TokenURL,
			AuthStyle: authStyle(d.ClientAuthMethod),
		},
	}
}

// AuthCodeURL builds the authorization request URL with the
// descriptor's default parameters (minus scope, which OAuth2Config
// already carries) followed by any caller-supplied options. Parameters
// are applied in sorted key order so the result is deterministic.
func (d *Descriptor) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	keys := make([]string, 0, len(d.Authorization.Params))
	for k := range d.Authorization.Params {
		if k != "scope" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	all := make([]oauth2.AuthCodeOption, 0, len(keys)+len(opts))
	for _, k := range keys {
		all = append(all, oauth2.SetAuthURLParam(k, d.Authorization.Params[k]))
	}
	all = append(all, opts...)

	return d.OAuth2Config().AuthCodeURL(state, all...)
}

func authStyle(method ClientAuthMethod) oauth2.AuthStyle {
	switch method {
	case AuthMethodClientSecretBasic:
		return oauth2.AuthStyleInHeader
	case AuthMethodClientSecretPost:
		return oauth2.AuthStyleInParams
	default:
		// Public clients send no secret; parameters-only is the safe style.
		return oauth2.AuthStyleInParams
	}
}
