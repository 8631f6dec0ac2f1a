package apperr

import "fmt"

const (
	MsgInvalidInput  = `Invalid JSON format. Use {"data": ["A","1","B","2"]}`
	MsgRemoteFailure = "Failed to process data. Please check your input."
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewInvalidInput wraps a parse failure with the static message shown to users.
func NewInvalidInput(err error) *ValidationError {
	return NewValidationWrap(MsgInvalidInput, err)
}

// RemoteError reports a failed call to the remote classifier.
// Status is zero when no response was received.
type RemoteError struct {
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote classifier returned status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("remote classifier request failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func NewRemote(status int, err error) *RemoteError {
	return &RemoteError{Status: status, Err: err}
}
