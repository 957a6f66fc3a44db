// Package stream implements the goldstream deterministic block generator.
//
// A Stream is an unbounded, restartable cursor over 16-byte output blocks
// derived from a fixed seed. Each block is produced by three stages:
//
//  1. Ratchet: S_{n+1} = SHA-256(S_n || BE32(counter)), one step per
//     candidate byte.
//  2. Sift: the first byte of each new state is kept only when its bits 1
//     and 2 agree; the low bit of each accepted byte is collected until
//     256 bits are gathered.
//  3. Fold: the 256 bits are packed MSB-first into 32 bytes and the two
//     halves XORed into a 16-byte block.
//
// Two streams built from the same configuration always produce
// byte-identical sequences on every platform. That determinism is the
// entire point: seed-only distribution, procedural generation, and
// reproducible testing.
//
// NOT FOR CRYPTOGRAPHY: the stream is deterministic and public. It
// provides no secrecy or unpredictability and must never be used where a
// random number source is required. See the rng package for actual
// randomness.
package stream

import (
	"context"

	"goldstream/pkg/ratchet"
	"goldstream/pkg/seed"
	"goldstream/pkg/trace"
)

// Stream is a lazy cursor over the deterministic block sequence. It owns
// its (state, counter) pair exclusively; a single Stream must not be
// shared across goroutines, but independent instances are safe to drive
// concurrently with zero coordination.
type Stream struct {
	state   ratchet.State
	counter uint64
	blocks  uint64
}

// New constructs a stream from a seed configuration. The seed checksum is
// verified first and a mismatch fails closed: no stream is returned.
func New(cfg seed.Config) (*Stream, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &Stream{state: ratchet.Initial(cfg.Bytes())}, nil
}

// Resume reconstructs a cursor at a previously exported position. The
// caller is responsible for supplying a (state, counter) pair obtained
// from Pos on a stream of the same seed; arbitrary positions produce a
// well-defined but unrelated sequence.
func Resume(state ratchet.State, counter uint64) *Stream {
	return &Stream{state: state, counter: counter}
}

// Pos exports the current cursor position for later resumption.
func (s *Stream) Pos() (ratchet.State, uint64) {
	return s.state, s.counter
}

// Blocks returns how many blocks this cursor has produced or skipped.
func (s *Stream) Blocks() uint64 { return s.blocks }

// Next produces the next 16-byte block and advances the cursor.
func (s *Stream) Next(ctx context.Context) (Block, error) {
	log := trace.FromContext(ctx).WithPrefix("STREAM")

	bits, state, counter, err := CollectBits(s.state, s.counter)
	if err != nil {
		log.Error(err)
		return Block{}, err
	}
	block, err := Fold(bits)
	if err != nil {
		log.Error(err)
		return Block{}, err
	}
	s.state = state
	s.counter = counter
	s.blocks++
	log.Debugf("produced block %d at counter %d", s.blocks, s.counter)
	return block, nil
}

// Skip fast-forwards the cursor past k blocks. The resulting position is
// identical to calling Next k times and discarding the results, but no
// fold or output assembly is performed for the skipped elements.
func (s *Stream) Skip(ctx context.Context, k uint64) error {
	log := trace.FromContext(ctx).WithPrefix("STREAM")

	for i := uint64(0); i < k; i++ {
		_, state, counter, err := CollectBits(s.state, s.counter)
		if err != nil {
			log.Error(err)
			return err
		}
		s.state = state
		s.counter = counter
		s.blocks++
	}
	log.Debugf("skipped %d blocks, counter now %d", k, s.counter)
	return nil
}

// Read produces n blocks as a flat byte slice. Convenience wrapper used by
// the validation tooling to gather sample material.
func (s *Stream) Read(ctx context.Context, n int) ([]byte, error) {
	out := make([]byte, 0, n*BlockSize)
	for i := 0; i < n; i++ {
		block, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, block[:]...)
	}
	return out, nil
}
