package address

import "errors"

var (
	// ErrUnknownScheme is an error that occurs when a [Scheme] prefix is
	// present but not one of the recognized scheme names.
	ErrUnknownScheme = errors.New("unknown url scheme")

	// ErrSchemeNameEmpty is an error that occurs when a remote [Scheme]
	// carries no connection name.
	ErrSchemeNameEmpty = errors.New("scheme name cannot be empty")

	// ErrSchemeNameInvalid is an error that occurs when a remote [Scheme]
	// connection name holds anything but alphanumeric characters and dashes.
	ErrSchemeNameInvalid = errors.New("scheme name can only contain alphanumeric characters and dashes")

	// ErrInvalidText is an error that occurs when decoded [URL] bytes are not
	// valid platform path text.
	ErrInvalidText = errors.New("invalid path text")
)
