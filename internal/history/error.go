package history

import "errors"

var (
	// ErrBadSnapshot is an error that occurs when a persisted history
	// snapshot cannot be used, because its payload is of an unsupported
	// version or otherwise inconsistent.
	ErrBadSnapshot = errors.New("unusable history snapshot")
)
