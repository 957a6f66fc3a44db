// Package rng provides the only security-relevant randomness in
// goldstream. The deterministic stream in pkg/stream is public by design;
// whenever actual unpredictability is required (live key generation,
// nonce material, entropy mixing for comparisons in tests), callers must
// use a Source from this package instead.
//
// Sources combine via XOR mixing so that a weakness in any single
// provider does not compromise the output: the mix is at least as strong
// as the strongest contributing source.
package rng

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"sync"

	"goldstream/pkg/trace"
)

// Source is the interface for all random byte providers.
type Source interface {
	// Read fills p with random bytes and returns the number of bytes
	// written. The context carries the tracer and may cancel providers
	// that block.
	Read(ctx context.Context, p []byte) (n int, err error)

	// Name identifies the provider in logs and reports.
	Name() string
}

// CryptoSource reads from the operating system's cryptographically secure
// generator via crypto/rand. It is the primary provider.
type CryptoSource struct {
	// lock protects against concurrent access to the crypto RNG
	lock sync.Mutex
}

// Name implements Source.
func (r *CryptoSource) Name() string { return "crypto" }

// Read implements Source using the platform's strongest generator.
func (r *CryptoSource) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("CRYPTO-RNG")
	log.Debugf("Reading %d random bytes from crypto/rand", len(p))

	r.lock.Lock()
	defer r.lock.Unlock()

	n, err := crand.Read(p)
	if err != nil {
		log.Error(fmt.Errorf("crypto/rand read failed: %w", err))
		return n, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return n, nil
}

// MultiSource XORs the output of several providers. Even if all but one
// source is compromised or broken, the mixed output remains as good as
// the surviving source.
type MultiSource struct {
	// Sources is the set of providers to combine
	Sources []Source
	// lock protects against concurrent access
	lock sync.Mutex
}

// Name implements Source.
func (m *MultiSource) Name() string { return "multi" }

// Read implements Source by XOR-combining every provider's output.
func (m *MultiSource) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("MULTI-RNG")
	log.Debugf("Generating %d random bytes from %d sources", len(p), len(m.Sources))

	m.lock.Lock()
	defer m.lock.Unlock()

	acc := make([]byte, len(p))
	for _, s := range m.Sources {
		tmp := make([]byte, len(p))
		offset := 0
		for offset < len(p) {
			n, err := s.Read(ctx, tmp[offset:])
			if err != nil {
				log.Error(fmt.Errorf("source %s failed: %w", s.Name(), err))
				return 0, fmt.Errorf("source %s failed: %w", s.Name(), err)
			}
			if n == 0 {
				continue
			}
			offset += n
		}
		for i := range acc {
			acc[i] ^= tmp[i]
		}
	}

	copy(p, acc)
	return len(p), nil
}

// NewDefault creates the recommended provider: crypto/rand mixed with an
// independently keyed ChaCha20 stream.
func NewDefault() (Source, error) {
	chacha, err := NewChaCha20Source()
	if err != nil {
		return nil, err
	}
	return &MultiSource{
		Sources: []Source{
			&CryptoSource{},
			chacha,
		},
	}, nil
}
