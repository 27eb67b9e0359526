package idp

import (
	"github.com/kbukum/idkit/errors"
)

// Identity is the canonical, provider-agnostic representation of a
// logged-in user. Optional fields are empty when the provider did not
// supply the corresponding claim.
type Identity struct {
	// ID is the provider's stable subject identifier, verbatim.
	ID string `json:"id"`

	// Name is the preferred display name, if any.
	Name string `json:"name,omitempty"`

	// Email is the user's email address, if any.
	Email string `json:"email,omitempty"`

	// Image is the avatar URL, if any.
	Image string `json:"image,omitempty"`

	// Extensions holds provider-specific claims the core passes through
	// rather than drops (e.g. a wallet address). Never nil after Normalize.
	Extensions map[string]any `json:"extensions"`
}

// Normalizer maps a raw claim set into the canonical Identity.
// Implementations must be pure: deterministic, no input mutation, no I/O.
// Missing optional claims map to absent fields, never errors; a missing
// subject is a protocol-compliance failure.
type Normalizer func(claims Claims) (Identity, error)

// ClaimMapping names the provider claims feeding the fixed identity
// fields. Subject defaults to "sub". Empty mapping entries leave the
// corresponding field absent.
type ClaimMapping struct {
	Subject string
	Name    string
	Email   string
	Image   string
}

// MappedNormalizer builds a Normalizer from a claim mapping. Claims
// outside the mapping are passed through into Extensions under their
// provider key. providerID is used only for error attribution.
func MappedNormalizer(providerID string, m ClaimMapping) Normalizer {
	subjectKey := m.Subject
	if subjectKey == "" {
		subjectKey = ClaimSubject
	}

	return func(claims Claims) (Identity, error) {
		sub, ok := claims.String(subjectKey)
		if !ok {
			return Identity{}, errors.MissingSubject(providerID)
		}

		identity := Identity{
			ID:         sub,
			Extensions: make(map[string]any),
		}

		mapped := map[string]bool{subjectKey: true}
		if m.Name != "" {
			mapped[m.Name] = true
			identity.Name, _ = claims.String(m.Name)
		}
		if m.Email != "" {
			mapped[m.Email] = true
			identity.Email, _ = claims.String(m.Email)
		}
		if m.Image != "" {
			mapped[m.Image] = true
			identity.Image, _ = claims.String(m.Image)
		}

		for k, v := range claims {
			if !mapped[k] {
				identity.Extensions[k] = v
			}
		}

		return identity, nil
	}
}

// Subject extracts the subject identifier from any claim source,
// reporting a protocol-compliance error when absent.
func Subject(providerID string, src SubjectSource) (string, error) {
	sub, ok := src.Subject()
	if !ok {
		return "", errors.MissingSubject(providerID)
	}
	return sub, nil
}
