// Package seed holds the fixed seed material that anchors every
// deterministic stream in goldstream.
//
// A seed is always paired with a SHA-256 checksum and the pair travels as
// an immutable Config value. Verification is fail-closed: a stream refuses
// to start when the seed does not hash to its pinned checksum, so a
// corrupted constant can never silently produce a divergent stream.
//
// The reference seed encodes the golden ratio (IEEE 754 double precision,
// little-endian, prefixed with eight zero bytes and repeated to 32 bytes).
// Alternate mathematical constants are provided for applications that want
// distinct streams with the same protocol.
package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// Hex-encoded seeds for the supported mathematical constants, with their
// pinned SHA-256 checksums. The checksums are part of the protocol: they
// guard against transcription errors in the constants themselves.
const (
	// GoldenRatioHex is the reference seed: φ = (1 + √5)/2.
	GoldenRatioHex      = "0000000000000000a8f4979b77e3f93fa8f4979b77e3f93fa8f4979b77e3f93f"
	GoldenRatioChecksum = "096412ca0482ab0f519bc0e4ded667475c45495047653a21aa11e2c7c578fa6f"

	// PiHex encodes π as a packed double, doubled to 16 bytes.
	PiHex      = "182d4454fb210940182d4454fb210940"
	PiChecksum = "227ebb48ba706361fe526a563d87a997d6d375207a6271c463921fb33d6616fd"

	// EHex encodes Euler's number e.
	EHex      = "6957148b0abf05406957148b0abf0540"
	EChecksum = "fcbd2511888986481149edd82b1ddc3481286e3824213bf8a4adae296fcbe84b"

	// Sqrt2Hex encodes √2.
	Sqrt2Hex      = "cd3b7f669ea0f63fcd3b7f669ea0f63f"
	Sqrt2Checksum = "1bdb01fdc285be0e2e24678ea065ae0c552c07e0c82a19e49a820539d90ad7d4"
)

var (
	// ErrChecksumMismatch indicates the seed bytes do not hash to the
	// expected checksum. Streams must not start in this condition.
	ErrChecksumMismatch = errors.New("seed: checksum verification failed")

	// ErrEmptySeed indicates a zero-length seed was supplied.
	ErrEmptySeed = errors.New("seed: seed cannot be empty")
)

// Config is an immutable (seed, checksum) pair. Construct one with
// NewConfig or one of the constant helpers; never mutate the returned
// value. Passing Config by value keeps stream instances independently
// testable with no ambient global state.
type Config struct {
	seed     []byte
	checksum string
}

// NewConfig builds a Config from a hex-encoded seed and its expected
// SHA-256 checksum (hex, lowercase). The checksum is not verified here;
// call Verify, or rely on the stream constructors which verify before use.
func NewConfig(seedHex, checksumHex string) (Config, error) {
	raw, err := hex.DecodeString(seedHex)
	if err != nil {
		return Config{}, fmt.Errorf("seed: invalid seed hex: %w", err)
	}
	if len(raw) == 0 {
		return Config{}, ErrEmptySeed
	}
	if _, err := hex.DecodeString(checksumHex); err != nil || len(checksumHex) != sha256.Size*2 {
		return Config{}, fmt.Errorf("seed: checksum must be %d hex characters", sha256.Size*2)
	}
	return Config{seed: raw, checksum: checksumHex}, nil
}

func mustConfig(seedHex, checksumHex string) Config {
	cfg, err := NewConfig(seedHex, checksumHex)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GoldenRatio returns the reference configuration.
func GoldenRatio() Config { return mustConfig(GoldenRatioHex, GoldenRatioChecksum) }

// Pi returns the π-seeded configuration.
func Pi() Config { return mustConfig(PiHex, PiChecksum) }

// E returns the e-seeded configuration.
func E() Config { return mustConfig(EHex, EChecksum) }

// Sqrt2 returns the √2-seeded configuration.
func Sqrt2() Config { return mustConfig(Sqrt2Hex, Sqrt2Checksum) }

// Verify checks the seed against its pinned checksum. A non-nil error
// means the configuration must not be used.
func (c Config) Verify() error {
	if len(c.seed) == 0 {
		return ErrEmptySeed
	}
	sum := sha256.Sum256(c.seed)
	if hex.EncodeToString(sum[:]) != c.checksum {
		return fmt.Errorf("%w: expected %s, got %s",
			ErrChecksumMismatch, c.checksum, hex.EncodeToString(sum[:]))
	}
	return nil
}

// Bytes returns a copy of the seed material.
func (c Config) Bytes() []byte {
	out := make([]byte, len(c.seed))
	copy(out, c.seed)
	return out
}

// Checksum returns the expected SHA-256 checksum in hex.
func (c Config) Checksum() string { return c.checksum }
