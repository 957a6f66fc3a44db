package stream

import (
	"errors"
	"fmt"

	"goldstream/pkg/ratchet"
)

// BitQuota is the number of accepted bits collected before folding.
// It is fixed by the fold stage's 256-bit input width.
const BitQuota = 256

// maxSiftSteps caps the ratchet loop for one block. The acceptance
// predicate holds for 128 of the 256 byte values, so a block needs about
// 512 steps on average; reaching the cap means the generator state is
// corrupt rather than unlucky.
const maxSiftSteps = 1 << 16

// ErrSiftOverrun indicates the sifting loop exceeded its iteration cap.
// This is an internal invariant violation and should never occur.
var ErrSiftOverrun = errors.New("stream: sifting exceeded iteration cap")

// Accepted reports whether a ratchet output byte passes the sifting
// predicate: bits 1 and 2 of the byte must be equal. The predicate holds
// for exactly half of all byte values, which keeps the sifting loop fast
// and bounded away from starvation.
func Accepted(b byte) bool {
	return (b>>1)&1 == (b>>2)&1
}

// CollectBits ratchets from (state, counter) until exactly BitQuota bits
// have been accepted. Each ratchet step exposes one candidate byte (the
// first byte of the new state); when the byte passes the acceptance
// predicate its low bit is appended to the output buffer.
//
// The returned state and counter are the values after the final ratchet
// step, so a caller can resume generation without replaying history.
func CollectBits(state ratchet.State, counter uint64) (bits []byte, _ ratchet.State, _ uint64, err error) {
	bits = make([]byte, 0, BitQuota)
	for steps := 0; len(bits) < BitQuota; steps++ {
		if steps >= maxSiftSteps {
			return nil, ratchet.State{}, 0, fmt.Errorf("%w after %d steps", ErrSiftOverrun, steps)
		}
		state, err = ratchet.Advance(state, counter)
		if err != nil {
			return nil, ratchet.State{}, 0, err
		}
		counter++
		if b := state[0]; Accepted(b) {
			bits = append(bits, b&1)
		}
	}
	return bits, state, counter, nil
}
