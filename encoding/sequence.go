package encoding

import (
	"github.com/arloliu/mapitem/token"
)

// Minimum encoded sizes of the built-in element types.
const (
	SizeUint8   = 1
	SizeUint16  = 2
	SizeUint32  = 4
	SizeUint64  = 8
	SizeFloat32 = 4
	SizeToken   = token.Size
	SizeCount   = 4
	SizeString  = SizeCount // empty string
)

// ReadSeq reads a counted sequence: a u32 count followed by count elements
// decoded by read. minElemSize is the smallest encoded size of one element
// and bounds the count against the remaining input before any allocation.
//
// An empty sequence decodes as nil. On failure ReadSeq returns nil and the
// Reader holds the error.
func ReadSeq[T any](r *Reader, field string, minElemSize int, read func(*Reader) T) []T {
	n := r.Count(field, minElemSize)
	return ReadSeqN(r, field, n, minElemSize, read)
}

// ReadSeqN reads exactly n elements whose count was carried by another field.
func ReadSeqN[T any](r *Reader, field string, n, minElemSize int, read func(*Reader) T) []T {
	if r.err != nil || n <= 0 {
		return nil
	}
	if !r.fits(r.off, field, uint64(n), minElemSize) {
		return nil
	}

	out := make([]T, n)
	for i := range out {
		out[i] = read(r)
		if r.err != nil {
			return nil
		}
	}

	return out
}

// WriteSeq writes a counted sequence, the inverse of ReadSeq.
func WriteSeq[T any](w *Writer, field string, s []T, write func(*Writer, T)) {
	w.Count(field, len(s))
	WriteSeqN(w, s, write)
}

// WriteSeqN writes the elements of s without a count.
func WriteSeqN[T any](w *Writer, s []T, write func(*Writer, T)) {
	for _, v := range s {
		write(w, v)
	}
}

// ReadUint64s reads a counted sequence of u64 values, typically uids.
func ReadUint64s(r *Reader, field string) []uint64 {
	return ReadSeq(r, field, SizeUint64, func(r *Reader) uint64 { return r.Uint64(field) })
}

// WriteUint64s writes a counted sequence of u64 values.
func WriteUint64s(w *Writer, field string, s []uint64) {
	w.Count(field, len(s))
	w.Grow(len(s) * SizeUint64)
	for _, v := range s {
		w.Uint64(v)
	}
}

// ReadFloat32s reads a counted sequence of f32 values.
func ReadFloat32s(r *Reader, field string) []float32 {
	return ReadSeq(r, field, SizeFloat32, func(r *Reader) float32 { return r.Float32(field) })
}

// WriteFloat32s writes a counted sequence of f32 values.
func WriteFloat32s(w *Writer, field string, s []float32) {
	w.Count(field, len(s))
	w.Grow(len(s) * SizeFloat32)
	for _, v := range s {
		w.Float32(v)
	}
}

// ReadTokens reads a counted sequence of tokens.
func ReadTokens(r *Reader, field string) []token.Token {
	return ReadSeq(r, field, SizeToken, func(r *Reader) token.Token { return r.Token(field) })
}

// WriteTokens writes a counted sequence of tokens.
func WriteTokens(w *Writer, field string, s []token.Token) {
	w.Count(field, len(s))
	w.Grow(len(s) * SizeToken)
	for _, v := range s {
		w.Token(v)
	}
}

// ReadStrings reads a counted sequence of length-prefixed strings.
func ReadStrings(r *Reader, field string) []string {
	return ReadSeq(r, field, SizeString, func(r *Reader) string { return r.String(field) })
}

// WriteStrings writes a counted sequence of length-prefixed strings.
func WriteStrings(w *Writer, field string, s []string) {
	WriteSeq(w, field, s, func(w *Writer, v string) { w.String(field, v) })
}
