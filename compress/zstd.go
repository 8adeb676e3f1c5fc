package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// built-in codecs. It suits map archives that are written once and loaded
// many times.
//
// The implementation is selected at build time, see the package docs.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(raw)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
