package section

import (
	"fmt"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
)

// EnvelopeHeader precedes a compressed item stream.
//
// Layout (24 bytes, little-endian):
//   - magic "MITM" (4 bytes)
//   - compression type (1 byte)
//   - version (1 byte)
//   - reserved, zero (2 bytes)
//   - raw stream length (8 bytes)
//   - xxHash64 of the raw stream (8 bytes)
type EnvelopeHeader struct {
	Compression format.CompressionType
	Version     uint8
	RawLength   uint64
	Checksum    uint64
}

// NewEnvelopeHeader creates a current-version header.
func NewEnvelopeHeader(compression format.CompressionType, rawLength int, checksum uint64) EnvelopeHeader {
	return EnvelopeHeader{
		Compression: compression,
		Version:     EnvelopeVersion,
		RawLength:   uint64(rawLength), //nolint:gosec
		Checksum:    checksum,
	}
}

// Parse parses the header from the start of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than EnvelopeHeaderSize,
//     ErrInvalidMagic for a wrong magic number, version or non-zero reserved field,
//     ErrUnsupportedCompression for an unknown compression type
func (h *EnvelopeHeader) Parse(data []byte) error {
	if len(data) < EnvelopeHeaderSize {
		return fmt.Errorf("%w: envelope needs %d bytes, have %d", errs.ErrInvalidHeaderSize, EnvelopeHeaderSize, len(data))
	}

	r := encoding.NewReader(data[:EnvelopeHeaderSize])
	magic := r.Uint32("envelope.magic")
	h.Compression = format.CompressionType(r.Uint8("envelope.compression"))
	h.Version = r.Uint8("envelope.version")
	reserved := r.Uint16("envelope.reserved")
	h.RawLength = r.Uint64("envelope.raw_length")
	h.Checksum = r.Uint64("envelope.checksum")
	if err := r.Err(); err != nil {
		return err
	}

	if magic != EnvelopeMagic {
		return fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagic, magic)
	}
	if h.Version != EnvelopeVersion {
		return fmt.Errorf("%w: unsupported envelope version %d", errs.ErrInvalidMagic, h.Version)
	}
	if reserved != 0 {
		return fmt.Errorf("%w: reserved field is 0x%04X", errs.ErrInvalidMagic, reserved)
	}
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, uint8(h.Compression))
	}

	return nil
}

// Write encodes the header to w.
func (h *EnvelopeHeader) Write(w *encoding.Writer) {
	w.Grow(EnvelopeHeaderSize)
	w.Uint32(EnvelopeMagic)
	w.Uint8(uint8(h.Compression))
	w.Uint8(h.Version)
	w.Uint16(0)
	w.Uint64(h.RawLength)
	w.Uint64(h.Checksum)
}

// Bytes serializes the header.
func (h *EnvelopeHeader) Bytes() []byte {
	w := encoding.NewAppendWriter(make([]byte, 0, EnvelopeHeaderSize))
	h.Write(w)

	return w.Bytes()
}

// HasEnvelopeMagic reports whether data starts with the envelope magic number.
func HasEnvelopeMagic(data []byte) bool {
	return len(data) >= 4 && data[0] == 'M' && data[1] == 'I' && data[2] == 'T' && data[3] == 'M'
}
