// Package stream decodes and encodes complete map item streams.
//
// A stream is a 16-byte section.FileHeader followed by item records until the
// end of the input; there is no item count. Decoding is all-or-nothing: the
// first failing item aborts the decode with an *errs.ItemError carrying the
// item's index, kind and offset.
//
// # Basic Usage
//
//	dec, err := stream.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	m, err := dec.Decode()
//	if err != nil {
//	    return err
//	}
//
//	enc, _ := stream.NewEncoder()
//	out, err := enc.Encode(m.Header, m.Items)
//
// # Packed Envelope
//
// Streams may be wrapped in a 24-byte envelope that records the compression
// codec, the raw length and an xxHash64 checksum of the raw stream. Use
// WithCompression on the encoder and WithPackedInput on the decoder, or call
// Pack and Unpack directly.
//
// # Thread Safety
//
// A Decoder is single-use and NOT thread-safe. An Encoder only holds
// configuration and may be shared between goroutines.
package stream
