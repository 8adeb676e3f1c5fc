package errs

import (
	"fmt"

	"github.com/arloliu/mapitem/format"
)

// FieldError reports a failure while reading or writing a single field.
type FieldError struct {
	// Offset is the absolute byte offset where the field starts.
	Offset int
	// Field is the name of the field being processed, e.g. "prefab.node_uids".
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ItemError reports a failure on one item of a stream.
type ItemError struct {
	// Index is the zero-based position of the item in the stream.
	Index int
	// Kind is the item's type, or zero when the tag itself could not be read.
	Kind format.ItemType
	// Offset is the absolute byte offset of the item's tag.
	Offset int
	Err    error
}

func (e *ItemError) Error() string {
	if e.Kind.IsValid() {
		return fmt.Sprintf("item %d (%s) at offset %d: %v", e.Index, e.Kind, e.Offset, e.Err)
	}

	return fmt.Sprintf("item %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
