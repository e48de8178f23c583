// Package errors provides structured, coded error messages for nsgo.
//
// Every error carries a code (e.g. "E201") registered in this package. The
// code maps to:
//   - A category (element, inject, manifest, config, cli)
//   - A short message describing the failure
//   - A longer explanation
//
// Errors compare by code, so a freshly built error matches a package-level
// sentinel built from the same code:
//
//	var ErrUnknownElement = errors.New("E201")
//
//	err := errors.New("E201").WithDetail("No known component for element Foo.")
//	stderrors.Is(err, ErrUnknownElement) // true
//
// Format renders an error for terminal output:
//
//	ERROR E201: Unknown element
//
//	  No known component for element Foo.
//
//	  Hint: Register the element before the template that uses it is built
package errors
