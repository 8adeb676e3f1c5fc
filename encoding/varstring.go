package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/mapitem/errs"
)

// MaxStringLength is the largest byte length a u32 length prefix can carry.
const MaxStringLength = math.MaxUint32

// String reads a length-prefixed string:
//   - 4 bytes: byte length as u32
//   - N bytes: text, copied out of the input
//
// A length larger than the remaining input fails with errs.ErrOversizedCount
// before anything is copied.
func (r *Reader) String(field string) string {
	start := r.off
	n := r.Uint32(field)
	if r.err != nil {
		return ""
	}
	if !r.fits(start, field, uint64(n), 1) {
		return ""
	}

	return string(r.take(field, int(n)))
}

// String writes s with a u32 length prefix. It is the inverse of
// Reader.String; the text is written as raw bytes, never token encoded.
func (w *Writer) String(field string, s string) {
	if uint64(len(s)) > MaxStringLength {
		w.Fail(field, fmt.Errorf("%w: string of %d bytes overflows u32 length", errs.ErrInvalidItem, len(s)))
		w.Uint32(0)

		return
	}

	w.Grow(SizeCount + len(s))
	w.Uint32(uint32(len(s))) //nolint:gosec
	w.buf.B = append(w.buf.B, s...)
}
