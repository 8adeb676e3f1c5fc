package stream

import (
	"fmt"

	"github.com/arloliu/mapitem/compress"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/internal/hash"
	"github.com/arloliu/mapitem/section"
)

// Pack wraps a raw stream in an envelope compressed with comp.
//
// Returns:
//   - []byte: Envelope header followed by the compressed stream
//   - error: ErrUnsupportedCompression for an unknown type, or a codec error
func Pack(raw []byte, comp format.CompressionType) ([]byte, error) {
	return AppendPack(nil, raw, comp)
}

// AppendPack appends the envelope of raw to dst.
func AppendPack(dst, raw []byte, comp format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(comp, "envelope")
	if err != nil {
		return dst, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return dst, fmt.Errorf("compress %s: %w", comp, err)
	}

	h := section.NewEnvelopeHeader(comp, len(raw), hash.Sum64(raw))
	dst = append(dst, h.Bytes()...)

	return append(dst, payload...), nil
}

// Unpack verifies an envelope and returns the raw stream it holds.
//
// Returns:
//   - []byte: Raw stream
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrUnsupportedCompression,
//     ErrTruncatedInput when the payload does not decompress to the recorded
//     length, or ErrChecksumMismatch
func Unpack(data []byte) ([]byte, error) {
	var h section.EnvelopeHeader
	if err := h.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload := data[section.EnvelopeHeaderSize:]
	if h.RawLength > uint64(maxRawLength) {
		return nil, fmt.Errorf("%w: envelope declares %d raw bytes", errs.ErrOversizedCount, h.RawLength)
	}

	raw, err := compress.DecompressSized(codec, payload, int(h.RawLength)) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %w", errs.ErrTruncatedInput, h.Compression, err)
	}

	if sum := hash.Sum64(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return raw, nil
}

// IsPacked reports whether data starts with an envelope.
func IsPacked(data []byte) bool {
	return section.HasEnvelopeMagic(data)
}

// maxRawLength bounds the raw length an envelope may declare.
const maxRawLength = 1 << 31
