// Package entropy scores byte buffers for entropy quality and systematic
// bias. All functions are pure and safe for concurrent use on independent
// inputs.
//
// The metrics are screening tests in the spirit of the NIST statistical
// suite, not proofs of randomness: they catch broken generators and
// structural artifacts, nothing more. Every function rejects empty input
// with an explicit error instead of returning a degenerate metric.
package entropy

import (
	"errors"
	"math"
	"math/bits"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrEmptyInput indicates a metric was requested over an empty buffer.
var ErrEmptyInput = errors.New("entropy: empty input")

// Default pass thresholds.
const (
	// MinEntropyShortKey is the entropy floor for short deterministic
	// keys (32-64 bytes), where the sample is too small to approach 8.0.
	MinEntropyShortKey = 4.0
	// MinEntropyStream is the entropy floor for long aggregate streams.
	MinEntropyStream = 7.0
	// MaxMonobitBalance bounds |ones_ratio - 0.5|.
	MaxMonobitBalance = 0.05
	// Runs ratio acceptance window.
	MinRunsRatio = 0.9
	MaxRunsRatio = 1.1
	// MaxSerialCorrelation bounds |r| for lag-1 byte correlation.
	MaxSerialCorrelation = 0.1
)

// Shannon computes the Shannon entropy of the byte-frequency histogram in
// bits per byte. The result is bounded by 8.0.
func Shannon(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	n := float64(len(data))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}

// MonobitBalance returns the ratio of set bits and its distance from the
// ideal 0.5. Balanced data keeps the distance under MaxMonobitBalance.
func MonobitBalance(data []byte) (onesRatio, balance float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyInput
	}
	ones := 0
	for _, b := range data {
		ones += bits.OnesCount8(b)
	}
	onesRatio = float64(ones) / float64(len(data)*8)
	return onesRatio, math.Abs(onesRatio - 0.5), nil
}

// RunsRatio returns observed run count over the expected run count under
// independence, E[runs] = 2*n0*n1/n + 1. Values inside
// [MinRunsRatio, MaxRunsRatio] are consistent with independent bits.
func RunsRatio(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	n := len(data) * 8
	ones := 0
	runs := 1
	prev := data[0] >> 7
	for i := 0; i < n; i++ {
		bit := data[i/8] >> (7 - i%8) & 1
		ones += int(bit)
		if i > 0 && bit != prev {
			runs++
		}
		prev = bit
	}
	zeros := n - ones
	expected := 2*float64(zeros)*float64(ones)/float64(n) + 1
	return float64(runs) / expected, nil
}

// SerialCorrelation returns the lag-1 correlation coefficient between
// consecutive byte values. Independent bytes keep |r| under
// MaxSerialCorrelation; constant data reports 0 by convention.
func SerialCorrelation(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if len(data) < 2 {
		return 0, nil
	}
	values := make([]float64, len(data))
	for i, b := range data {
		values[i] = float64(b)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, err
	}
	var num, den float64
	for i, v := range values {
		if i < len(values)-1 {
			num += (v - mean) * (values[i+1] - mean)
		}
		den += (v - mean) * (v - mean)
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}

// ChiSquare computes the chi-square statistic of the 256-way byte
// histogram against a uniform distribution, along with the critical value
// the statistic must stay under. For samples of at least 256 bytes the
// critical value is the 95th percentile of χ²(255); smaller samples use
// the looser n*1.2 bound because the asymptotic distribution does not
// hold there.
func ChiSquare(data []byte) (statistic, critical float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyInput
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	expected := float64(len(data)) / 256
	for _, c := range counts {
		d := float64(c) - expected
		statistic += d * d / expected
	}
	if len(data) >= 256 {
		critical = distuv.ChiSquared{K: 255}.Quantile(0.95)
	} else {
		critical = float64(len(data)) * 1.2
	}
	return statistic, critical, nil
}

// ByteDiversity returns the fraction of the 256 possible byte values
// observed in the buffer.
func ByteDiversity(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	var seen [256]bool
	distinct := 0
	for _, b := range data {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	return float64(distinct) / 256, nil
}
