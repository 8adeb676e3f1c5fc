// Package mapitem decodes and encodes the binary map item format: a file
// header followed by a stream of typed map items (roads, prefabs, companies,
// signs, ...) that share a common bounding-volume header.
//
// # Core Features
//
//   - Token codec for the base-38 packed identifiers used throughout the format
//   - Closed registry of 34 item types with exact byte-level body layouts
//   - All-or-nothing stream decoding with item index, kind and offset on error
//   - Byte-exact re-encoding of every decoded stream
//   - Optional packed envelope (None, Zstd, S2, LZ4) with xxHash64 checksum
//   - YAML dump and load of decoded maps
//
// # Basic Usage
//
//	m, err := mapitem.Decode(data)
//	if err != nil {
//	    var ie *errs.ItemError
//	    if errors.As(err, &ie) {
//	        log.Printf("item %d (%s) is broken: %v", ie.Index, ie.Kind, ie.Err)
//	    }
//	    return err
//	}
//
//	for _, it := range m.Items {
//	    if p, ok := it.(*item.Prefab); ok {
//	        fmt.Println(p.Model, len(p.NodeUIDs))
//	    }
//	}
//
//	out, err := mapitem.Encode(m.Header, m.Items)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The stream
// package holds the decoder and encoder, item the record types, token the
// identifier codec, and mapyaml the YAML conversion.
package mapitem

import (
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/mapyaml"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/stream"
	"github.com/arloliu/mapitem/token"
)

// Decode decodes a raw item stream, or a packed one when it starts with the
// envelope magic. A raw stream whose first four bytes happen to spell the
// magic is decoded as raw when it does not unpack.
//
// Parameters:
//   - data: Stream bytes
//   - opts: Decoder options (see stream.Option)
//
// Returns:
//   - stream.Map: Header and items
//   - error: *errs.ItemError for the first failing item, or an option,
//     header or envelope error
func Decode(data []byte, opts ...stream.Option) (stream.Map, error) {
	if !stream.IsPacked(data) {
		return stream.Decode(data, opts...)
	}

	packedOpts := append(opts[:len(opts):len(opts)], stream.WithPackedInput())
	m, err := stream.Decode(data, packedOpts...)
	if err == nil {
		return m, nil
	}

	if raw, rawErr := stream.Decode(data, opts...); rawErr == nil {
		return raw, nil
	}

	return stream.Map{}, err
}

// Encode encodes header and items into a raw stream.
//
// Example:
//
//	data, err := mapitem.Encode(m.Header, m.Items)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Encode(header section.FileHeader, items []item.Item, opts ...stream.Option) ([]byte, error) {
	return stream.Encode(header, items, opts...)
}

// EncodePacked encodes header and items and wraps them in an envelope
// compressed with comp.
func EncodePacked(header section.FileHeader, items []item.Item, comp format.CompressionType) ([]byte, error) {
	return stream.Encode(header, items, stream.WithCompression(comp))
}

// ParseToken encodes s as a token.
//
// Returns:
//   - token.Token: Encoded token
//   - error: ErrInvalidToken if s is longer than 12 characters or holds a
//     character outside [0-9a-zA-Z_]
func ParseToken(s string) (token.Token, error) {
	return token.FromString(s)
}

// MarshalYAML renders a decoded map as YAML.
func MarshalYAML(m stream.Map) ([]byte, error) {
	return mapyaml.Marshal(m)
}

// UnmarshalYAML parses a YAML dump into a map.
func UnmarshalYAML(data []byte) (stream.Map, error) {
	return mapyaml.Unmarshal(data)
}
