// Package errors provides the error taxonomy for identity-provider
// configuration and claim normalization.
//
// Two kinds matter to integrators:
//
//   - Configuration errors (CONFIG_*): raised when a provider descriptor
//     cannot be built from the caller-supplied configuration. Fatal to that
//     provider's registration, harmless to the rest of the process.
//   - Protocol-compliance errors (CLAIMS_*): raised when a provider's raw
//     claim set violates the OIDC contract (e.g. no subject). Scoped to a
//     single authentication attempt.
//
// Both kinds are carried by *AppError, which wraps a machine-readable code,
// a human-readable message, optional details, and a recommended HTTP status
// for the layer that eventually renders the failure.
//
//	if errors.IsConfiguration(err) {
//	    log.Error("provider disabled", logger.Fields("reason", err.Error()))
//	}
package errors
