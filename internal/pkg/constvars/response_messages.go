package constvars

// End-user fulfillment texts. The conversational platform speaks these
// verbatim, so they carry no internal detail.
const (
	WebhookRunningMessage = "Webhook is running successfully!"

	VerificationPromptMessage = "Please provide your policy number, insurance provider, and date of birth to proceed with verification."

	// VerificationConfirmedFormat expects provider then policy number.
	VerificationConfirmedFormat = "Thank you. Your insurance with %s and policy number %s has been verified."

	// VerificationConfirmedWithNameFormat expects patient display name,
	// provider, then policy number.
	VerificationConfirmedWithNameFormat = "Thank you, %s. Your insurance with %s and policy number %s has been verified."

	VerificationNotFoundMessage = "We could not find a patient with the information you provided. Please check your details and try again."

	VerificationTroubleMessage = "Sorry, I am having trouble connecting to the database. Please try again later."
)

const (
	TagValidCode   = "valid_code"
	TagInvalidCode = "invalid_code"
)
