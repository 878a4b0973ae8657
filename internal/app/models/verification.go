package models

type VerificationOutcome string

const (
	OutcomeMatched     VerificationOutcome = "matched"
	OutcomeNotMatched  VerificationOutcome = "not_matched"
	OutcomeQueryFailed VerificationOutcome = "query_failed"
)

// VerificationResult is transient: it lives for one request/response
// cycle and is never persisted.
type VerificationResult struct {
	Outcome     VerificationOutcome
	DisplayName string
	// Cause is only set on OutcomeQueryFailed. It is logged, never
	// exposed to the end user.
	Cause error
}
