package entities

// OutcomeKind tags the result of a dispatch/retrieval run
type OutcomeKind string

const (
	// OutcomeSuccess carries retrieved facts for the answer generator
	OutcomeSuccess OutcomeKind = "SUCCESS"

	// OutcomeNotFound means the query ran but the primary entity does not
	// exist. Not an error state; the payload still goes to the generator.
	OutcomeNotFound OutcomeKind = "NOT_FOUND"

	// OutcomeValidationError carries a user-facing prompt for a missing or
	// unparsable argument. Terminal, never retried.
	OutcomeValidationError OutcomeKind = "VALIDATION_ERROR"

	// OutcomeStoreError means the store kept failing after retries
	OutcomeStoreError OutcomeKind = "STORE_ERROR"

	// OutcomeUnrecognized means no intent cleared the confidence bar or the
	// intent has no retrieval rule. Terminal, no store call is made.
	OutcomeUnrecognized OutcomeKind = "UNRECOGNIZED"
)

// RetrievalOutcome is the tagged result of running a retrieval capability.
// Message holds user-visible text for the terminal kinds; Facts holds the
// structured payload handed to the answer generator.
type RetrievalOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message,omitempty"`
	Facts   any         `json:"facts,omitempty"`
}
