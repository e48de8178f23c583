package element

import "github.com/nsgo-dev/nsgo/internal/errors"

// Sentinel errors. Errors returned by a Registry match these with errors.Is
// and carry the element name in their message.
var (
	// ErrDuplicateRegistration is returned when an exact name is registered twice.
	ErrDuplicateRegistration = errors.New("E200")

	// ErrUnknownElement is returned when no entry matches a name.
	ErrUnknownElement = errors.New("E201")

	// ErrViewResolution is returned when an element's resolver fails. The
	// resolver's error is reachable with errors.Unwrap.
	ErrViewResolution = errors.New("E202")

	// ErrInvalidRegistration is returned for an empty name or nil resolver.
	ErrInvalidRegistration = errors.New("E203")
)
