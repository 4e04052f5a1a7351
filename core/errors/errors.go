package errors

import "fmt"

// ErrorCode is the stable numeric code returned to API clients.
type ErrorCode int

const (
	// ErrValidation covers business-rule failures: length bounds, bad color,
	// username taken, wrong credentials, attendance out of range, end before start.
	ErrValidation ErrorCode = 1
	// ErrStore is a database or connectivity failure. Internals never leak to the caller.
	ErrStore ErrorCode = 2
	// ErrPermission means the user holds insufficient privilege for the requested action.
	ErrPermission ErrorCode = 3
	// ErrMalformed covers unparseable requests: missing fields, bad date text,
	// partial owner-invite edits.
	ErrMalformed ErrorCode = 4
	// ErrUnknown is reserved for otherwise-successful store calls that affected
	// zero rows with no more specific cause.
	ErrUnknown ErrorCode = 9
)

// AppError carries the code taxonomy through the service layer so controllers
// can branch exhaustively instead of probing free-form fields.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
