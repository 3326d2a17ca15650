package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// PointDigest accumulates an xxHash64 over an ordered sequence of (x, y) pairs.
//
// Each coordinate is written as the little-endian IEEE-754 bit pattern, so
// +0 and -0 hash differently and NaN payloads are preserved.
type PointDigest struct {
	d   *xxhash.Digest
	buf [16]byte
}

// NewPointDigest returns an empty digest.
func NewPointDigest() *PointDigest {
	return &PointDigest{d: xxhash.New()}
}

// Add appends one pair to the digest.
func (p *PointDigest) Add(x, y float64) {
	binary.LittleEndian.PutUint64(p.buf[:8], math.Float64bits(x))
	binary.LittleEndian.PutUint64(p.buf[8:], math.Float64bits(y))
	_, _ = p.d.Write(p.buf[:])
}

// Sum64 returns the digest of all pairs added so far.
func (p *PointDigest) Sum64() uint64 {
	return p.d.Sum64()
}
