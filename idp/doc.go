// Package idp defines the pluggable identity-provider configuration
// contract: descriptor construction and claim normalization.
//
// A provider kind (see idp/keyp, idp/google) contributes a Descriptor:
// an immutable record of protocol family, issuer, endpoint locations,
// negotiated scope, client authentication policy, display branding, and a
// pure Normalize function that maps the provider's raw claims into the
// canonical Identity shape. The surrounding OAuth engine consumes the
// descriptor: it fetches the discovery document, redirects to the
// authorization endpoint, exchanges the code, retrieves claims, and then
// calls Normalize. This package performs no network I/O of its own.
//
//	desc, err := keyp.New(idp.UserConfig{ClientID: "abc123"})
//	if err != nil {
//	    // configuration error: this provider stays unregistered,
//	    // others remain usable
//	}
//	reg := idp.NewRegistry(log)
//	reg.Register(desc)
//
//	// later, once per completed login attempt:
//	identity, err := desc.Normalize(claims)
package idp
