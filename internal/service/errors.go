package service

// ValidationError rejects caller-supplied input. Handlers map it to a 400
// response carrying the message verbatim; every other error is a server
// fault and must not leak its cause.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	// ErrUsernameRequired rejects user creation with an empty username.
	ErrUsernameRequired = &ValidationError{"username required"}
	// ErrFieldsRequired rejects an exercise missing description or duration.
	ErrFieldsRequired = &ValidationError{"description and duration required"}
	// ErrUserNotFound rejects a reference to a user that does not exist.
	// Deliberately a validation error, not a missing-resource one: existing
	// API consumers receive a 400 here.
	ErrUserNotFound = &ValidationError{"user not found"}
	// ErrInvalidDuration rejects a duration that does not parse as a number.
	ErrInvalidDuration = &ValidationError{"duration must be a number"}
	// ErrInvalidDate rejects an unparseable exercise date.
	ErrInvalidDate = &ValidationError{"Invalid Date"}
	// ErrInvalidFromDate rejects an unparseable "from" bound on a log query.
	ErrInvalidFromDate = &ValidationError{"Invalid from date"}
	// ErrInvalidToDate rejects an unparseable "to" bound on a log query.
	ErrInvalidToDate = &ValidationError{"Invalid to date"}
)
