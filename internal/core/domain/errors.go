// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Validation errors, surfaced through the validator's ValidationError
	ErrEmptyInput    = errors.New("URL cannot be empty")
	ErrInputTooShort = errors.New("URL is too short")
	ErrRepeatedInput = errors.New("URL looks like repeated keyboard input")
	ErrMissingScheme = errors.New("URL is missing a scheme")
	ErrMalformedURL  = errors.New("URL format is invalid")
	ErrEmptyHost     = errors.New("URL host cannot be empty")
	ErrInvalidHost   = errors.New("URL host is not a valid domain, localhost or IPv4 address")

	// Feature extraction errors
	ErrUnknownFeatureSet = errors.New("unknown feature-set version")

	// Model errors
	ErrFeatureDimension = errors.New("feature vector dimension mismatch")
)
