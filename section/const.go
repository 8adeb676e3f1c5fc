package section

// Fixed section sizes in bytes.
const (
	FileHeaderSize = 4 + 8 + 4 // core map version, game id token, game map version
	KDOPAxes       = 5
	KDOPSize       = 2 * KDOPAxes * 4
	ItemHeaderSize = 1 + 8 + KDOPSize + 4 + 1 // tag, uid, kdop, flags, view distance
)

// DefaultViewDistance is the view distance the game assigns to new items, in
// units of 10 meters.
const DefaultViewDistance = 40

// Packed envelope layout.
const (
	EnvelopeHeaderSize = 4 + 1 + 1 + 2 + 8 + 8 // magic, compression, version, reserved, raw length, checksum
	EnvelopeMagic      = 0x4D54494D            // "MITM" read as a little-endian u32
	EnvelopeVersion    = 1
)
