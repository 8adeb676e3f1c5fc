package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 checksum of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 checksum of s without copying it.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Digest accumulates a checksum over data written in several pieces.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// Write adds p to the checksum. It never fails.
func (d Digest) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

// Sum64 returns the checksum of everything written so far.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
