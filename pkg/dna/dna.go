package dna

import (
	"crypto/md5"
	"encoding/hex"
	"io"
)

// Size dna length in bytes
const Size = 16

// DNA fixed width kitty dna
type DNA [Size]byte

// New derive dna from a randomness draw, the minter account and the draw
// context marker. Deterministic for a fixed triple.
func New(draw []byte, minter, marker string) DNA {
	h := md5.New()
	h.Write(draw)
	io.WriteString(h, minter)
	io.WriteString(h, marker)

	var d DNA
	copy(d[:], h.Sum(nil))
	return d
}

// ID hex encoded dna, used as the kitty id
func (d DNA) ID() string {
	return hex.EncodeToString(d[:])
}

// Leading the leading byte, source of derived attributes
func (d DNA) Leading() byte {
	return d[0]
}
