// Package validator provides struct validation for loaded configuration.
//
// This package wraps go-playground/validator to provide:
//   - Tag-driven validation of the config struct at startup
//   - Human-readable error messages keyed by config key
//
// # Usage
//
//	if err := validator.Validate(cfg); err != nil {
//	    // err is a validator.ValidationErrors
//	}
//
// # Custom Validations
//
// Custom validations can be registered in the init() function.
// The validator instance is package-level and thread-safe.
package validator
