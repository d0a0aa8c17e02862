package apperror

// Codes returned in the error envelope.
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeValidation             = "VALIDATION_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeConflict               = "CONFLICT"
	CodePasswordChangeRequired = "PASSWORD_CHANGE_REQUIRED"
	CodeInternalError          = "INTERNAL_ERROR"
)
