package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/mapitem/endian"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/token"
)

// Reader decodes fixed-width fields from a byte slice.
//
// After the first failure every read returns the zero value and Err reports
// that failure.
//
// Note: The Reader is NOT thread-safe.
type Reader struct {
	data   []byte
	off    int
	depth  int
	err    error
	engine endian.EndianEngine
}

// NewReader creates a little-endian Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Err returns the first error met, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Offset returns the absolute offset of the next byte to read.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Done reports whether every byte has been consumed.
func (r *Reader) Done() bool {
	return r.off >= len(r.data)
}

// Fail records err for field at the current offset unless an error is already
// recorded.
func (r *Reader) Fail(field string, err error) {
	r.FailAt(r.off, field, err)
}

// FailAt records err for field at offset off unless an error is already
// recorded.
func (r *Reader) FailAt(off int, field string, err error) {
	if r.err != nil {
		return
	}

	r.err = &errs.FieldError{Offset: off, Field: field, Err: err}
}

// Depth returns the current nesting depth.
func (r *Reader) Depth() int {
	return r.depth
}

// Enter increments the nesting depth, failing with errs.ErrNestingTooDeep once
// it would exceed limit. Each successful Enter must be paired with Leave.
func (r *Reader) Enter(field string, limit int) bool {
	if r.err != nil {
		return false
	}
	if r.depth >= limit {
		r.Fail(field, fmt.Errorf("%w: limit is %d", errs.ErrNestingTooDeep, limit))
		return false
	}
	r.depth++

	return true
}

// Leave decrements the nesting depth.
func (r *Reader) Leave() {
	if r.depth > 0 {
		r.depth--
	}
}

// take consumes n bytes, or fails with errs.ErrTruncatedInput.
func (r *Reader) take(field string, n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > r.Remaining() {
		r.Fail(field, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedInput, n, r.Remaining()))
		return nil
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

// Bytes consumes n raw bytes. The result aliases the input.
func (r *Reader) Bytes(field string, n int) []byte {
	return r.take(field, n)
}

// Uint8 reads one byte.
func (r *Reader) Uint8(field string) uint8 {
	b := r.take(field, 1)
	if b == nil {
		return 0
	}

	return b[0]
}

// Uint16 reads a 16-bit unsigned integer.
func (r *Reader) Uint16(field string) uint16 {
	b := r.take(field, 2)
	if b == nil {
		return 0
	}

	return r.engine.Uint16(b)
}

// Uint32 reads a 32-bit unsigned integer.
func (r *Reader) Uint32(field string) uint32 {
	b := r.take(field, 4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// Uint64 reads a 64-bit unsigned integer.
func (r *Reader) Uint64(field string) uint64 {
	b := r.take(field, 8)
	if b == nil {
		return 0
	}

	return r.engine.Uint64(b)
}

// Float32 reads an IEEE-754 binary32 value. The bit pattern is kept as-is,
// NaN payloads included.
func (r *Reader) Float32(field string) float32 {
	return math.Float32frombits(r.Uint32(field))
}

// Token reads an 8-byte token.
func (r *Reader) Token(field string) token.Token {
	b := r.take(field, token.Size)
	if b == nil {
		return 0
	}

	return token.Decode(b)
}

// Count reads a u32 element count and checks that count elements of at least
// minElemSize bytes each fit in the remaining input. It returns 0 on failure.
func (r *Reader) Count(field string, minElemSize int) int {
	start := r.off
	count := r.Uint32(field)
	if r.err != nil {
		return 0
	}

	if !r.fits(start, field, uint64(count), minElemSize) {
		return 0
	}

	return int(count)
}

// fits fails with errs.ErrOversizedCount when n elements of minElemSize bytes
// cannot fit in the remaining input.
func (r *Reader) fits(off int, field string, n uint64, minElemSize int) bool {
	if minElemSize < 1 {
		minElemSize = 1
	}

	need := n * uint64(minElemSize) //nolint:gosec
	if need > uint64(r.Remaining()) { //nolint:gosec
		r.FailAt(off, field, fmt.Errorf("%w: %d elements of at least %d bytes, %d bytes remain",
			errs.ErrOversizedCount, n, minElemSize, r.Remaining()))

		return false
	}

	return true
}
