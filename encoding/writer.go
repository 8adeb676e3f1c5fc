package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/mapitem/endian"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/internal/pool"
	"github.com/arloliu/mapitem/token"
)

// Writer appends fixed-width fields to a byte buffer.
//
// Writes never fail for well-formed records. A count that does not fit in
// u32 is a precondition violation; it is recorded and reported by Err.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	buf    *pool.ByteBuffer
	pooled bool
	depth  int
	err    error
	engine endian.EndianEngine
}

// NewWriter creates a little-endian Writer backed by a pooled buffer. Call
// Release once the bytes have been copied out.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetStreamBuffer(),
		pooled: true,
		engine: endian.GetLittleEndianEngine(),
	}
}

// NewAppendWriter creates a Writer that appends to dst.
func NewAppendWriter(dst []byte) *Writer {
	return &Writer{
		buf:    &pool.ByteBuffer{B: dst},
		engine: endian.GetLittleEndianEngine(),
	}
}

// Bytes returns the written bytes. The slice is only valid until Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Err returns the first precondition violation met, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err for field unless an error is already recorded.
func (w *Writer) Fail(field string, err error) {
	if w.err != nil {
		return
	}

	w.err = &errs.FieldError{Offset: w.buf.Len(), Field: field, Err: err}
}

// Enter increments the nesting depth, failing with errs.ErrNestingTooDeep once
// it would exceed limit. Each successful Enter must be paired with Leave.
func (w *Writer) Enter(field string, limit int) bool {
	if w.err != nil {
		return false
	}
	if w.depth >= limit {
		w.Fail(field, fmt.Errorf("%w: limit is %d", errs.ErrNestingTooDeep, limit))
		return false
	}
	w.depth++

	return true
}

// Leave decrements the nesting depth.
func (w *Writer) Leave() {
	if w.depth > 0 {
		w.depth--
	}
}

// Release returns a pooled buffer. The Writer must not be used afterwards.
func (w *Writer) Release() {
	if w.pooled && w.buf != nil {
		pool.PutStreamBuffer(w.buf)
	}
	w.buf = nil
}

// Grow reserves room for n more bytes.
func (w *Writer) Grow(n int) {
	w.buf.Grow(n)
}

// Raw appends b unchanged.
func (w *Writer) Raw(b []byte) {
	w.buf.B = append(w.buf.B, b...)
}

// Uint8 appends one byte.
func (w *Writer) Uint8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

// Uint16 appends a 16-bit unsigned integer.
func (w *Writer) Uint16(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// Uint32 appends a 32-bit unsigned integer.
func (w *Writer) Uint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// Uint64 appends a 64-bit unsigned integer.
func (w *Writer) Uint64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// Float32 appends the bit pattern of v.
func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

// Token appends an 8-byte token.
func (w *Writer) Token(t token.Token) {
	w.Uint64(uint64(t))
}

// Count appends n as a u32 element count.
func (w *Writer) Count(field string, n int) {
	if uint64(n) > math.MaxUint32 { //nolint:gosec
		w.Fail(field, fmt.Errorf("%w: count %d overflows u32", errs.ErrInvalidItem, n))
		n = 0
	}

	w.Uint32(uint32(n)) //nolint:gosec
}
