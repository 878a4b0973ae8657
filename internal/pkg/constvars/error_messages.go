package constvars

// Client-facing generic messages.
const (
	ErrClientSomethingWrongWithApplication = "Oops something wrong with the application, please contact admin!"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
)

// Developer messages, logged only.
const (
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevReadRequestBody        = "Failed to read request body"
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevDBFailedToFindDocument = "Failed to find document in database"
	ErrDevDBStoreNotConnected    = "Record store is not connected, running in degraded mode"
)
