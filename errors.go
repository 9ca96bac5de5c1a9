package storekey

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Reader], [BorrowReader], and the top-level decode functions.
// Use errors.Is to test for these; wrapped I/O errors should be tested with errors.As
// against the concrete error returned by the underlying io.Reader.
var (
	// ErrUnexpectedEnd is returned when a Reader or BorrowReader runs out of input before a
	// value's encoding is fully consumed.
	ErrUnexpectedEnd = errors.New("storekey: unexpected end of input")

	// ErrBytesRemaining is returned by Decode and DecodeBorrow when the source still has
	// unread bytes after the root value has been fully decoded. This is how the format
	// detects over-reads and truncation despite carrying no length prefixes.
	ErrBytesRemaining = errors.New("storekey: bytes remaining after decoding value")

	// ErrInvalidUTF8 is returned when a string-typed field decodes to bytes that are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("storekey: decoded string is not valid UTF-8")
)

// InvalidFormatError reports that the decoded bytes do not represent a valid value of the
// requested type: an out-of-range tag or discriminant, or a code point outside the Unicode
// range.
type InvalidFormatError struct {
	Reason string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("storekey: invalid format: %s", e.Reason)
}

func invalidFormat(format string, args ...any) error {
	return InvalidFormatError{Reason: fmt.Sprintf(format, args...)}
}

// CustomError wraps a caller-supplied validation failure raised from within a user Encode
// or Decode implementation, keeping it distinguishable from the format's own error kinds.
type CustomError struct {
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}

// Custom returns an error of the "custom(message)" kind from spec section 6, for use by
// user-defined Codecs that need to reject a value for domain reasons unrelated to the wire
// format itself.
func Custom(message string) error {
	return CustomError{Message: message}
}
