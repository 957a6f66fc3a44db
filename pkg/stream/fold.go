package stream

import (
	"errors"
	"fmt"
)

// BlockSize is the width of one output block in bytes.
const BlockSize = 16

// Block is the externally visible unit of the stream: a 128-bit value
// produced by folding 256 sifted bits.
type Block [BlockSize]byte

// ErrShortBitBuffer indicates a fold input with fewer than BitQuota bits.
var ErrShortBitBuffer = errors.New("stream: bit buffer shorter than 256 bits")

// Fold compresses a 256-entry bit buffer into a 16-byte block. The bits
// are packed most-significant-bit first into 32 bytes, then the two
// 16-byte halves are XORed position-wise. Folding is parity preserving
// per position: a single set input bit yields exactly one set output bit.
//
// Buffers longer than BitQuota are accepted and only the leading 256
// bits are used; shorter buffers are rejected, never padded. Only the low
// bit of each entry is significant.
func Fold(bits []byte) (Block, error) {
	if len(bits) < BitQuota {
		return Block{}, fmt.Errorf("%w: got %d", ErrShortBitBuffer, len(bits))
	}
	var packed [2 * BlockSize]byte
	for i := 0; i < BitQuota; i++ {
		packed[i/8] = packed[i/8]<<1 | bits[i]&1
	}
	return foldHalves(packed), nil
}

// foldHalves XORs the two 16-byte halves of a 32-byte buffer.
func foldHalves(buf [2 * BlockSize]byte) Block {
	var out Block
	for i := 0; i < BlockSize; i++ {
		out[i] = buf[i] ^ buf[i+BlockSize]
	}
	return out
}
