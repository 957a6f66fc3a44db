package ratchet

import (
	"encoding/hex"
	"errors"
	"testing"
)

// TestAdvanceKnownVectors pins the transition function against values
// computed independently from the protocol definition.
func TestAdvanceKnownVectors(t *testing.T) {
	vectors := []struct {
		counter uint64
		want    string
	}{
		{0, "6db65fd59fd356f6729140571b5bcd6bb3b83492a16e1bf0a3884442fc3c8a0e"},
		{1, "2158a8906d5e2c2be001bac943ab9cab4063536e1c546b40221fdf8db031a4bb"},
	}
	var zero State
	for _, v := range vectors {
		next, err := Advance(zero, v.counter)
		if err != nil {
			t.Fatalf("Advance(zero, %d): %v", v.counter, err)
		}
		if got := hex.EncodeToString(next[:]); got != v.want {
			t.Errorf("Advance(zero, %d) = %s, want %s", v.counter, got, v.want)
		}
	}
}

// TestAdvanceDeterminism requires identical inputs to produce identical
// output and distinct counters to produce distinct output.
func TestAdvanceDeterminism(t *testing.T) {
	var state State
	copy(state[:], []byte("0123456789abcdef0123456789abcdef"))

	a, err := Advance(state, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Advance(state, 42)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("identical inputs produced different states")
	}

	c, err := Advance(state, 43)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("distinct counters produced identical states")
	}
}

// TestAdvanceCounterRange checks the 32-bit counter contract boundary.
func TestAdvanceCounterRange(t *testing.T) {
	var state State

	if _, err := Advance(state, MaxCounter); err != nil {
		t.Errorf("MaxCounter should be in range: %v", err)
	}
	if _, err := Advance(state, MaxCounter+1); !errors.Is(err, ErrCounterRange) {
		t.Errorf("expected ErrCounterRange, got %v", err)
	}
}

// TestInitial pins the starting state derived from the reference seed.
// The initial state is the SHA-256 of the seed, which is also the seed's
// integrity checksum.
func TestInitial(t *testing.T) {
	seed, _ := hex.DecodeString("0000000000000000a8f4979b77e3f93fa8f4979b77e3f93fa8f4979b77e3f93f")
	state := Initial(seed)
	want := "096412ca0482ab0f519bc0e4ded667475c45495047653a21aa11e2c7c578fa6f"
	if got := hex.EncodeToString(state[:]); got != want {
		t.Errorf("Initial = %s, want %s", got, want)
	}
}
