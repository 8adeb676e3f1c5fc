// Package errs defines the sentinel errors and positional error types shared by
// every mapitem package.
//
// Sentinels are matched with errors.Is; positional context (byte offset, field
// name, item index) is recovered with errors.As on *FieldError and *ItemError.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is returned when a token string is longer than 12
	// characters or contains a character outside the token alphabet.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTruncatedInput is returned when fewer bytes remain than a fixed or
	// counted field requires.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrOversizedCount is returned when a declared element or byte count cannot
	// fit in the remaining input. It wraps ErrTruncatedInput.
	ErrOversizedCount = fmt.Errorf("%w: declared count exceeds remaining input", ErrTruncatedInput)

	// ErrUnknownItemType is returned for an item tag outside the closed item
	// type enumeration.
	ErrUnknownItemType = errors.New("unknown item type")

	// ErrCountMismatch is returned when a count that must mirror another
	// field's count disagrees with it.
	ErrCountMismatch = errors.New("count mismatch")

	// ErrNestingTooDeep is returned when compound items nest deeper than the
	// configured limit.
	ErrNestingTooDeep = errors.New("item nesting too deep")

	// ErrTooManyItems is returned when a stream holds more items than the
	// configured limit.
	ErrTooManyItems = errors.New("too many items")

	// ErrInvalidItem is returned when an item cannot be encoded because it
	// violates a structural precondition.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidHeaderSize is returned when a fixed-size header is parsed from
	// a buffer of the wrong size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagic is returned when a packed stream does not start with the
	// envelope magic number.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrChecksumMismatch is returned when an unpacked stream does not match
	// the checksum recorded in its envelope.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrInvalidOption is returned when a decoder or encoder option carries an
	// out-of-range value.
	ErrInvalidOption = errors.New("invalid option")
)
