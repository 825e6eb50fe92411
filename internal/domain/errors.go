package domain

import "errors"

var (
	// ErrUnreadableDocument indicates a file could not be opened or parsed as PDF
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrNotFound indicates the requested document is not in the store
	ErrNotFound = errors.New("not found")

	// ErrAdapterFailure indicates an external capability failed or returned malformed data
	ErrAdapterFailure = errors.New("adapter failure")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// AdapterError ties an external capability failure to the adapter that produced it.
type AdapterError struct {
	Adapter string
	Err     error
}

func (e *AdapterError) Error() string {
	return e.Adapter + ": " + e.Err.Error()
}

func (e *AdapterError) Unwrap() []error {
	return []error{ErrAdapterFailure, e.Err}
}

// NewAdapterError wraps err as a failure of the named adapter.
func NewAdapterError(adapter string, err error) error {
	if err == nil {
		return nil
	}
	return &AdapterError{Adapter: adapter, Err: err}
}
