// Package encoding provides the byte-level primitives of the map item format.
//
// A Reader is a cursor over an in-memory stream. It tracks the absolute byte
// offset and keeps the first error it meets, so record decoders read field
// after field and check Err once at the end:
//
//	r := encoding.NewReader(data)
//	uid := r.Uint64("uid")
//	nodes := encoding.ReadUint64s(r, "prefab.node_uids")
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// A Writer appends the inverse byte sequence to a pooled buffer.
//
// # Wire Rules
//
//   - Integers are fixed-width little-endian; floats are IEEE-754 binary32.
//   - Variable-length sequences are a u32 count followed by the elements.
//     ReadSeq checks the count against the remaining input before allocating.
//   - Non-token strings are a u32 byte length followed by the bytes.
//
// Every failed read is reported as an *errs.FieldError carrying the offset and
// field name, wrapping errs.ErrTruncatedInput or errs.ErrOversizedCount.
package encoding
