// Package compress provides the codecs used by the packed map envelope.
//
// A raw item stream is mostly tokens, uids and small floats, so it compresses
// well with general-purpose algorithms. The envelope records which codec was
// used in its header; the codecs here are looked up by that type:
//   - None: the stream is stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Codecs that can make use of the known decompressed length also implement
// SizedDecompressor; the envelope passes its raw length to them.
//
// # Zstandard backends
//
// By default Zstd uses the pure Go github.com/klauspost/compress/zstd with
// pooled encoders and decoders. Building with the gozstd tag and cgo enabled
// switches to github.com/valyala/gozstd. Both produce standard zstd frames,
// so envelopes written by one backend are readable by the other.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress
