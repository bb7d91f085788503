package services

// User-visible messages. Every pipeline run resolves to one of these or to
// generated answer text; raw errors never reach the user.
const (
	// MessageUnrecognized is returned when no intent clears the confidence
	// bar or the intent has no dispatch rule.
	MessageUnrecognized = "Sorry, I didn't understand. Ask about appointments, staff, or patient records."

	// MessageInternalError is returned for unexpected failures
	MessageInternalError = "Internal error, please try again later."

	// MessageStoreUnavailable is returned when the record store keeps
	// failing after retries.
	MessageStoreUnavailable = "The record system is unavailable right now. Please try again later."

	// MessagePatientNotFound is both shown on its own and handed to the
	// generator as the facts payload when a patient lookup misses.
	MessagePatientNotFound = "Patient not found."

	// MessageUnparsableDate is returned when a date argument cannot be read
	MessageUnparsableDate = "Couldn't parse the date."

	// MessageGeneratorUnavailable is returned when records were retrieved
	// but the answer generator failed.
	MessageGeneratorUnavailable = "Sorry, I couldn't generate an answer at this time."
)
