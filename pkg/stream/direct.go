package stream

import (
	"context"
	"errors"

	"goldstream/pkg/ratchet"
	"goldstream/pkg/seed"
	"goldstream/pkg/trace"
)

// ErrSeedWidth indicates a direct-profile seed that is not exactly one
// ratchet state wide.
var ErrSeedWidth = errors.New("stream: direct profile requires a 32-byte seed")

// Direct is the unsifted profile of the protocol: each ratchet state is
// folded straight into a 16-byte key with no bit selection in between.
// The ratchet starts from the raw seed bytes and the counter from 1,
// matching the original hardened-key vector format.
//
// Direct trades the sifting stage's filtering for speed (one ratchet step
// per key instead of ~512) and exists for compatibility with consumers of
// the original vector sets. New applications should prefer Stream.
type Direct struct {
	state   ratchet.State
	counter uint64
}

// NewDirect constructs a direct-profile cursor, verifying the seed
// checksum first. The seed must be exactly one state wide.
func NewDirect(cfg seed.Config) (*Direct, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	raw := cfg.Bytes()
	if len(raw) != ratchet.StateSize {
		return nil, ErrSeedWidth
	}
	var state ratchet.State
	copy(state[:], raw)
	return &Direct{state: state, counter: 1}, nil
}

// Next ratchets once and folds the new state into a key.
func (d *Direct) Next(ctx context.Context) (Block, error) {
	log := trace.FromContext(ctx).WithPrefix("DIRECT")

	state, err := ratchet.Advance(d.state, d.counter)
	if err != nil {
		log.Error(err)
		return Block{}, err
	}
	d.state = state
	d.counter++
	log.Debugf("produced key at counter %d", d.counter-1)
	return foldHalves(state), nil
}
