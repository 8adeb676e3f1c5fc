package stream

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
)

// Encoder serializes item streams. It holds only configuration and is safe
// for concurrent use.
type Encoder struct {
	cfg *Config
}

// NewEncoder creates an encoder.
//
// Returns:
//   - *Encoder: Configured encoder
//   - error: ErrInvalidOption for a bad option
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode writes header and items in input order and returns a freshly
// allocated stream, packed if the encoder was configured with compression.
// Duplicate uids are written as given.
//
// Returns:
//   - []byte: Encoded stream
//   - error: An *errs.ItemError for the first item that cannot be encoded
func (e *Encoder) Encode(header section.FileHeader, items []item.Item) ([]byte, error) {
	w := encoding.NewWriter()
	defer w.Release()

	if err := e.write(w, header, items); err != nil {
		return nil, err
	}

	if e.cfg.packOutput {
		return Pack(w.Bytes(), e.cfg.compression)
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// AppendEncode appends the encoded stream to dst. On failure dst is returned
// unchanged in length.
func (e *Encoder) AppendEncode(dst []byte, header section.FileHeader, items []item.Item) ([]byte, error) {
	if e.cfg.packOutput {
		w := encoding.NewWriter()
		defer w.Release()
		if err := e.write(w, header, items); err != nil {
			return dst, err
		}

		return AppendPack(dst, w.Bytes(), e.cfg.compression)
	}

	w := encoding.NewAppendWriter(dst)
	if err := e.write(w, header, items); err != nil {
		return dst, err
	}

	return w.Bytes(), nil
}

func (e *Encoder) write(w *encoding.Writer, header section.FileHeader, items []item.Item) error {
	header.Write(w)

	codec := e.cfg.codec()
	for i, it := range items {
		off := w.Len()
		if err := codec.Encode(w, it); err != nil {
			return &errs.ItemError{Index: i, Kind: kindOf(it), Offset: off, Err: err}
		}
	}

	return nil
}

// kindOf returns the kind of it. Kind never dereferences its receiver, so a
// typed nil item still reports its kind.
func kindOf(it item.Item) format.ItemType {
	if it == nil {
		return 0
	}

	return it.Kind()
}

// Encode encodes a stream with a fresh encoder.
func Encode(header section.FileHeader, items []item.Item, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(header, items)
}
