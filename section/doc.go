// Package section implements the fixed-size sections of a map item stream:
// the FileHeader that opens the stream, the ItemHeader that prefixes every
// item record, and the EnvelopeHeader of a packed stream.
//
// Layouts (little-endian):
//
//	FileHeader  (16 bytes): u32 core_map_version, u64 game_id, u32 game_map_version
//	ItemHeader  (54 bytes): u8 tag, u64 uid, [5]f32 kdop_min, [5]f32 kdop_max,
//	                        u32 flags, u8 view_distance_div10
//	Envelope    (24 bytes): u32 magic "MITM", u8 compression, u8 version,
//	                        u16 reserved, u64 raw_length, u64 xxhash64
package section
