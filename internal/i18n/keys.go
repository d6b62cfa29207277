// Package i18n provides internationalization support for the suppository service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyUnknownBase indicates a base name missing from the catalog.
	ErrKeyUnknownBase = "error.unknown_base"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Warning message translation keys, one per model.WarningCode.
const (
	// WarnKeyPrefix is prepended to a warning code to form its catalog key.
	WarnKeyPrefix = "warning."
	// WarnKeyNegativeRequiredBase flags a negative required base.
	WarnKeyNegativeRequiredBase = "warning.negative_required_base"
	// WarnKeyDisplacementExceedsBlank flags an implausibly large displacement.
	WarnKeyDisplacementExceedsBlank = "warning.displacement_exceeds_blank"
	// WarnKeySuspectedRatioInversion flags a reciprocal declared ratio.
	WarnKeySuspectedRatioInversion = "warning.suspected_ratio_inversion"
)
