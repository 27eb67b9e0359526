package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors, raised at descriptor build time.
const (
	// ErrCodeConfigMissingField indicates a required configuration field is absent or empty.
	ErrCodeConfigMissingField ErrorCode = "CONFIG_MISSING_FIELD"
	// ErrCodeConfigInvalid indicates a configuration value is present but unusable.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// Protocol-compliance errors, raised at claim normalization time.
const (
	// ErrCodeClaimsMissingSubject indicates the provider's claim set has no subject identifier.
	ErrCodeClaimsMissingSubject ErrorCode = "CLAIMS_MISSING_SUBJECT"
)

// General errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// configurationCodes are the codes classified as configuration errors.
var configurationCodes = map[ErrorCode]bool{
	ErrCodeConfigMissingField: true,
	ErrCodeConfigInvalid:      true,
}

// protocolCodes are the codes classified as protocol-compliance errors.
var protocolCodes = map[ErrorCode]bool{
	ErrCodeClaimsMissingSubject: true,
}

// IsConfigurationCode reports whether the code denotes a configuration error.
func IsConfigurationCode(code ErrorCode) bool {
	return configurationCodes[code]
}

// IsProtocolCode reports whether the code denotes a protocol-compliance error.
func IsProtocolCode(code ErrorCode) bool {
	return protocolCodes[code]
}
