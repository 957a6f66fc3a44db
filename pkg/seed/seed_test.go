package seed

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

// TestGoldenRatioVerifies confirms the reference seed hashes to its
// pinned checksum.
func TestGoldenRatioVerifies(t *testing.T) {
	cfg := GoldenRatio()
	if err := cfg.Verify(); err != nil {
		t.Fatalf("golden ratio config failed verification: %v", err)
	}
	if got := len(cfg.Bytes()); got != 32 {
		t.Errorf("golden ratio seed length: got %d, want 32", got)
	}
	if cfg.Checksum() != GoldenRatioChecksum {
		t.Errorf("unexpected checksum: %s", cfg.Checksum())
	}
}

// TestAlternateConstantsVerify confirms every alternate constant seed
// hashes to its pinned checksum.
func TestAlternateConstantsVerify(t *testing.T) {
	for name, cfg := range map[string]Config{
		"pi":    Pi(),
		"e":     E(),
		"sqrt2": Sqrt2(),
	} {
		if err := cfg.Verify(); err != nil {
			t.Errorf("%s config failed verification: %v", name, err)
		}
	}
}

// TestCorruptedSeedFailsClosed flips one bit in every byte position of
// the reference seed and requires verification to fail each time.
func TestCorruptedSeedFailsClosed(t *testing.T) {
	raw, err := hex.DecodeString(GoldenRatioHex)
	if err != nil {
		t.Fatalf("decoding reference seed: %v", err)
	}
	for i := range raw {
		corrupted := make([]byte, len(raw))
		copy(corrupted, raw)
		corrupted[i] ^= 0x01

		cfg, err := NewConfig(hex.EncodeToString(corrupted), GoldenRatioChecksum)
		if err != nil {
			t.Fatalf("building corrupted config: %v", err)
		}
		if err := cfg.Verify(); !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("byte %d: expected checksum mismatch, got %v", i, err)
		}
	}
}

// TestNewConfigRejectsBadInput covers malformed hex, empty seeds, and
// malformed checksums.
func TestNewConfigRejectsBadInput(t *testing.T) {
	if _, err := NewConfig("zz", GoldenRatioChecksum); err == nil {
		t.Error("expected error for invalid seed hex")
	}
	if _, err := NewConfig("", GoldenRatioChecksum); !errors.Is(err, ErrEmptySeed) {
		t.Errorf("expected ErrEmptySeed, got %v", err)
	}
	if _, err := NewConfig(GoldenRatioHex, "abcd"); err == nil {
		t.Error("expected error for short checksum")
	}
	if _, err := NewConfig(GoldenRatioHex, fmt.Sprintf("%064s", "zz")); err == nil {
		t.Error("expected error for non-hex checksum")
	}
}

// TestBytesReturnsCopy ensures callers cannot mutate the seed through the
// accessor.
func TestBytesReturnsCopy(t *testing.T) {
	cfg := GoldenRatio()
	b := cfg.Bytes()
	b[0] ^= 0xFF
	if err := cfg.Verify(); err != nil {
		t.Errorf("mutating Bytes() result corrupted the config: %v", err)
	}
}
