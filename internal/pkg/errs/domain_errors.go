package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Credential errors
	ErrCredentialsMissing       = errors.New("credentials missing")
	ErrCredentialsInvalidFormat = errors.New("credentials invalid format")
	ErrDecryptionFailed         = errors.New("decryption failed")

	// Catalog discovery errors
	ErrCatalogTargetNotFound = errors.New("catalog target not found")

	// Upstream PMS errors
	ErrUpstreamRateLimited = errors.New("upstream rate limited")
	ErrUpstreamServerError = errors.New("upstream server error")
	ErrUpstreamClientError = errors.New("upstream client error")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrCircuitOpen         = errors.New("circuit breaker open")

	// Reconciliation errors
	ErrReconciliationPartial = errors.New("reconciliation aborted on partial snapshot")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Webhook errors
	ErrWebhookUnauthorized = errors.New("webhook authentication failed")
	ErrWebhookBadPayload   = errors.New("webhook payload malformed")
)

// Retryable reports whether an upstream failure is worth another attempt
// within the same call. Client errors other than 429 are permanent.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrUpstreamRateLimited),
		errors.Is(err, ErrUpstreamServerError),
		errors.Is(err, ErrUpstreamTimeout):
		return true
	default:
		return false
	}
}
