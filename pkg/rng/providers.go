// Additional random byte providers used for entropy mixing.

package rng

import (
	"context"
	"crypto/cipher"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand"
	"sync"

	"goldstream/pkg/trace"

	"github.com/seehuhn/mt19937"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// chachaInfo binds derived ChaCha20 keys to this package.
const chachaInfo = "goldstream-rng-chacha20-v1"

// ChaCha20Source generates bytes from a ChaCha20 keystream. The key and
// nonce are derived with HKDF-SHA256, either from fresh crypto/rand
// entropy (NewChaCha20Source) or from caller-supplied seed material
// (NewChaCha20SourceFromSeed).
type ChaCha20Source struct {
	lock   sync.Mutex
	stream cipher.Stream
}

// NewChaCha20Source keys the stream from crypto/rand entropy.
func NewChaCha20Source() (*ChaCha20Source, error) {
	secret := make([]byte, 32)
	if _, err := crand.Read(secret); err != nil {
		return nil, fmt.Errorf("rng: chacha20 key entropy: %w", err)
	}
	return NewChaCha20SourceFromSeed(secret)
}

// NewChaCha20SourceFromSeed keys the stream deterministically from seed
// material. Deterministic seeding is for reproducible testing only and is
// never suitable for security purposes.
func NewChaCha20SourceFromSeed(secret []byte) (*ChaCha20Source, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("rng: chacha20 seed cannot be empty")
	}
	hk := hkdf.New(sha256.New, secret, nil, []byte(chachaInfo))
	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(hk, material); err != nil {
		return nil, fmt.Errorf("rng: chacha20 key derivation: %w", err)
	}
	stream, err := chacha20.NewUnauthenticatedCipher(
		material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("rng: chacha20 init: %w", err)
	}
	return &ChaCha20Source{stream: stream}, nil
}

// Name implements Source.
func (c *ChaCha20Source) Name() string { return "chacha20" }

// Read implements Source by emitting the next keystream bytes.
func (c *ChaCha20Source) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("CHACHA20-RNG")
	log.Debugf("Reading %d random bytes from ChaCha20 stream", len(p))

	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range p {
		p[i] = 0
	}
	c.stream.XORKeyStream(p, p)
	return len(p), nil
}

// MT19937Source generates bytes from a Mersenne Twister seeded with
// crypto/rand entropy. It is a mixing source only: MT19937 is not a
// cryptographically secure generator and must never stand alone.
type MT19937Source struct {
	lock    sync.Mutex
	wrapper *mrand.Rand
}

// NewMT19937Source creates a Mersenne Twister provider with a secure seed.
func NewMT19937Source() (*MT19937Source, error) {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("rng: mt19937 seed entropy: %w", err)
	}
	mt := mt19937.New()
	mt.Seed(int64(binary.LittleEndian.Uint64(seed[:])))
	return &MT19937Source{wrapper: mrand.New(mt)}, nil
}

// Name implements Source.
func (m *MT19937Source) Name() string { return "mt19937" }

// Read implements Source.
func (m *MT19937Source) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("MT19937-RNG")
	log.Debugf("Reading %d random bytes from MT19937 source", len(p))

	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range p {
		p[i] = byte(m.wrapper.Intn(256))
	}
	return len(p), nil
}
