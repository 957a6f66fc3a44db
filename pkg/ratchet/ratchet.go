// Package ratchet implements the one-way state transition at the heart of
// the goldstream protocol:
//
//	S_{n+1} = SHA-256(S_n || BE32(counter))
//
// The transition is a pure function of (state, counter). It never exposes
// a prior state, so output material cannot be replayed across counter
// values. Counters are bound to 32 bits by the wire encoding; larger
// values are a contract violation, not a silent truncation.
package ratchet

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"
)

// StateSize is the width of the ratchet state in bytes.
const StateSize = sha256.Size

// MaxCounter is the largest counter value encodable in the 4-byte
// big-endian counter field.
const MaxCounter = math.MaxUint32

// ErrCounterRange indicates a counter that cannot be encoded in 4 bytes.
var ErrCounterRange = errors.New("ratchet: counter exceeds 32-bit range")

// State is a 256-bit ratchet state.
type State [StateSize]byte

// Initial derives the starting state for a stream from seed material.
func Initial(seed []byte) State {
	return State(sha256.Sum256(seed))
}

// Advance computes the next state from the current state and counter.
// It is pure and total for counters in [0, MaxCounter]; identical inputs
// produce byte-identical output on every platform.
func Advance(state State, counter uint64) (State, error) {
	if counter > MaxCounter {
		return State{}, ErrCounterRange
	}
	var buf [StateSize + 4]byte
	copy(buf[:StateSize], state[:])
	binary.BigEndian.PutUint32(buf[StateSize:], uint32(counter))
	return State(sha256.Sum256(buf[:])), nil
}
