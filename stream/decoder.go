package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/section"
)

// Decoder decodes one item stream.
//
// Note: The Decoder is NOT thread-safe and NOT reusable. Create a new decoder
// for every stream.
type Decoder struct {
	data []byte
	cfg  *Config
	used bool
}

// NewDecoder creates a decoder for data. With WithPackedInput the envelope is
// verified and unwrapped here.
//
// Returns:
//   - *Decoder: Decoder ready for Decode
//   - error: ErrInvalidOption for a bad option, or an envelope error
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.packed {
		data, err = Unpack(data)
		if err != nil {
			return nil, err
		}
	}

	return &Decoder{data: data, cfg: cfg}, nil
}

// Decode reads the file header and every item.
//
// Returns:
//   - Map: Decoded header and items
//   - error: A header *errs.FieldError, or an *errs.ItemError for the first
//     failing item; no partial result is returned
func (d *Decoder) Decode() (Map, error) {
	if d.used {
		return Map{}, errors.New("decoder already used")
	}
	d.used = true

	r := encoding.NewReader(d.data)

	var m Map
	m.Header.Read(r)
	if err := r.Err(); err != nil {
		return Map{}, fmt.Errorf("file header: %w", err)
	}

	codec := d.cfg.codec()
	for !r.Done() {
		off := r.Offset()
		if d.cfg.maxItems > 0 && len(m.Items) >= d.cfg.maxItems {
			return Map{}, &errs.ItemError{
				Index:  len(m.Items),
				Kind:   kindAt(d.data, off),
				Offset: off,
				Err:    fmt.Errorf("%w: limit is %d", errs.ErrTooManyItems, d.cfg.maxItems),
			}
		}

		it, err := codec.Decode(r)
		if err != nil {
			return Map{}, &errs.ItemError{Index: len(m.Items), Kind: kindAt(d.data, off), Offset: off, Err: err}
		}
		m.Items = append(m.Items, it)
	}

	return m, nil
}

// kindAt returns the item type tagged at off, or zero for an unknown tag.
func kindAt(data []byte, off int) format.ItemType {
	if off >= len(data) {
		return 0
	}

	kind := format.ItemType(data[off])
	if !kind.IsValid() {
		return 0
	}

	return kind
}

// Decode decodes a stream with a fresh decoder.
func Decode(data []byte, opts ...Option) (Map, error) {
	dec, err := NewDecoder(data, opts...)
	if err != nil {
		return Map{}, err
	}

	return dec.Decode()
}

// DecodeReaderAt reads size bytes from src and decodes them.
//
// Returns:
//   - Map: Decoded stream
//   - error: ErrTruncatedInput when src holds fewer than size bytes, or any
//     decode error
func DecodeReaderAt(src io.ReaderAt, size int64, opts ...Option) (Map, error) {
	if size < section.FileHeaderSize {
		return Map{}, fmt.Errorf("%w: stream of %d bytes has no file header", errs.ErrTruncatedInput, size)
	}
	if size > maxRawLength {
		return Map{}, fmt.Errorf("%w: stream of %d bytes", errs.ErrOversizedCount, size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(src, 0, size), buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Map{}, fmt.Errorf("%w: %w", errs.ErrTruncatedInput, err)
		}

		return Map{}, err
	}

	return Decode(buf, opts...)
}
