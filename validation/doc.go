// Package validation provides input validation for provider configuration.
//
// Two styles are supported:
//
//   - Struct tags via Validate(), backed by go-playground/validator:
//     `validate:"required,url"` etc. Field names in error messages follow
//     the struct's mapstructure tag so they match configuration keys.
//   - A fluent Validator for checks that don't fit struct tags:
//     validation.New().Required("client_id", cfg.ClientID).Validate()
//
// Both styles return *errors.AppError with per-field details.
package validation
