// Package hybrid derives algorithm-specific seed material from
// deterministic stream blocks.
//
// A 16-byte stream block establishes reproducibility; a hash fan-out over
// (block, algorithm identifier, caller info, round index) stretches it
// to the seed length each post-quantum algorithm family requires. Seeds
// for different algorithms derived from the same block are unrelated
// beyond sharing that block as precursor.
//
// The derived material inherits the stream's determinism and therefore its
// warning: it is reproducible by anyone holding the seed constants and is
// only suitable for test vectors, interoperability fixtures, and other
// reproducible workloads — never for live key generation.
package hybrid

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"goldstream/pkg/stream"
	"goldstream/pkg/trace"
)

// Algorithm identifies a target post-quantum algorithm family. The string
// value is the identifier hashed into the derivation, so renaming a
// constant is a protocol change.
type Algorithm string

// Supported algorithm families.
const (
	Kyber512   Algorithm = "Kyber-512"
	Kyber768   Algorithm = "Kyber-768"
	Kyber1024  Algorithm = "Kyber-1024"
	Dilithium2 Algorithm = "Dilithium2"
	Dilithium3 Algorithm = "Dilithium3"
	Dilithium5 Algorithm = "Dilithium5"
	Sphincs128 Algorithm = "SPHINCS+-128f"
	Sphincs192 Algorithm = "SPHINCS+-192f"
	Sphincs256 Algorithm = "SPHINCS+-256f"
)

// seedLengths maps each family to its required seed length in bytes.
// Kyber and the lower Dilithium strengths take 32-byte seeds; Dilithium
// at maximum strength and the larger SPHINCS+ parameter sets take 64;
// SPHINCS+-128f takes 48.
var seedLengths = map[Algorithm]int{
	Kyber512:   32,
	Kyber768:   32,
	Kyber1024:  32,
	Dilithium2: 32,
	Dilithium3: 32,
	Dilithium5: 64,
	Sphincs128: 48,
	Sphincs192: 64,
	Sphincs256: 64,
}

// Algorithms lists the supported families in catalogue order.
func Algorithms() []Algorithm {
	return []Algorithm{
		Kyber512, Kyber768, Kyber1024,
		Dilithium2, Dilithium3, Dilithium5,
		Sphincs128, Sphincs192, Sphincs256,
	}
}

// SeedLength returns the required seed length for the family.
func (a Algorithm) SeedLength() (int, error) {
	n, ok := seedLengths[a]
	if !ok {
		return 0, fmt.Errorf("hybrid: unknown algorithm %q", a)
	}
	return n, nil
}

// Material pairs a derived seed with the unmodified stream block it was
// derived from. The block is retained for downstream auditing: given the
// block, any party can re-derive and check the seed.
type Material struct {
	Algorithm Algorithm
	Block     stream.Block
	Seed      []byte
}

// Expand derives seed material of the family's required length from a
// stream block. Output is accumulated as
//
//	SHA-256(block || algorithmID || info || BE32(round))
//
// for round = 0, 1, … and truncated to the required length. Identical
// inputs always produce identical output; distinct algorithms or info strings
// produce independent output.
func Expand(block stream.Block, alg Algorithm, info []byte) (Material, error) {
	need, err := alg.SeedLength()
	if err != nil {
		return Material{}, err
	}

	material := make([]byte, 0, len(block)+len(alg)+len(info)+4)
	material = append(material, block[:]...)
	material = append(material, alg...)
	material = append(material, info...)

	derived := make([]byte, 0, need+sha256.Size)
	var round [4]byte
	for r := uint32(0); len(derived) < need; r++ {
		binary.BigEndian.PutUint32(round[:], r)
		sum := sha256.Sum256(append(material, round[:]...))
		derived = append(derived, sum[:]...)
	}

	return Material{Algorithm: alg, Block: block, Seed: derived[:need]}, nil
}

// Derive pulls the next block from the stream and expands it for the
// given family, returning the (block, seed) pair.
func Derive(ctx context.Context, s *stream.Stream, alg Algorithm, info []byte) (Material, error) {
	log := trace.FromContext(ctx).WithPrefix("HYBRID")

	block, err := s.Next(ctx)
	if err != nil {
		log.Error(err)
		return Material{}, err
	}
	m, err := Expand(block, alg, info)
	if err != nil {
		log.Error(err)
		return Material{}, err
	}
	log.Debugf("derived %d-byte seed for %s", len(m.Seed), alg)
	return m, nil
}

// DeriveSequence produces n successive (block, seed) pairs for one
// family, consuming one stream block per pair.
func DeriveSequence(ctx context.Context, s *stream.Stream, alg Algorithm, info []byte, n int) ([]Material, error) {
	out := make([]Material, 0, n)
	for i := 0; i < n; i++ {
		m, err := Derive(ctx, s, alg, info)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
