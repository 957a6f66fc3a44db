package entropy

import "math"

// Thresholds selects the entropy floor for a validation run. The other
// metric thresholds are fixed; only the entropy expectation depends on
// how much material is being judged.
type Thresholds struct {
	MinEntropy float64
}

// ShortKeyThresholds suits individual derived keys and other short
// buffers (32-64 bytes).
var ShortKeyThresholds = Thresholds{MinEntropy: MinEntropyShortKey}

// StreamThresholds suits long aggregate stream samples (kilobytes and up).
var StreamThresholds = Thresholds{MinEntropy: MinEntropyStream}

// Report aggregates every validator metric for one buffer, with a
// pass/fail flag per metric. It is a plain value: callers serialize it
// however their reporting layer requires.
type Report struct {
	Size int `json:"size"`

	Entropy   float64 `json:"entropy"`
	EntropyOK bool    `json:"entropy_ok"`

	OnesRatio      float64 `json:"ones_ratio"`
	MonobitBalance float64 `json:"monobit_balance"`
	MonobitOK      bool    `json:"monobit_ok"`

	RunsRatio float64 `json:"runs_ratio"`
	RunsOK    bool    `json:"runs_ok"`

	SerialCorrelation float64 `json:"serial_correlation"`
	CorrelationOK     bool    `json:"correlation_ok"`

	ChiSquare         float64 `json:"chi_square"`
	ChiSquareCritical float64 `json:"chi_square_critical"`
	ChiSquareOK       bool    `json:"chi_square_ok"`

	ByteDiversity float64 `json:"byte_diversity"`

	Biases   []BiasType `json:"biases,omitempty"`
	BiasFree bool       `json:"bias_free"`
}

// Pass reports whether every metric met its threshold.
func (r Report) Pass() bool {
	return r.EntropyOK && r.MonobitOK && r.RunsOK &&
		r.CorrelationOK && r.ChiSquareOK && r.BiasFree
}

// Analyze runs the full validator over a buffer and assembles a Report.
// Empty input is rejected, never scored.
func Analyze(data []byte, th Thresholds) (Report, error) {
	entropy, err := Shannon(data)
	if err != nil {
		return Report{}, err
	}
	onesRatio, balance, err := MonobitBalance(data)
	if err != nil {
		return Report{}, err
	}
	runs, err := RunsRatio(data)
	if err != nil {
		return Report{}, err
	}
	corr, err := SerialCorrelation(data)
	if err != nil {
		return Report{}, err
	}
	chi, critical, err := ChiSquare(data)
	if err != nil {
		return Report{}, err
	}
	diversity, err := ByteDiversity(data)
	if err != nil {
		return Report{}, err
	}
	biases, err := ZeroBias(data)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Size:              len(data),
		Entropy:           entropy,
		EntropyOK:         entropy >= th.MinEntropy,
		OnesRatio:         onesRatio,
		MonobitBalance:    balance,
		MonobitOK:         balance < MaxMonobitBalance,
		RunsRatio:         runs,
		RunsOK:            runs >= MinRunsRatio && runs <= MaxRunsRatio,
		SerialCorrelation: corr,
		CorrelationOK:     math.Abs(corr) < MaxSerialCorrelation,
		ChiSquare:         chi,
		ChiSquareCritical: critical,
		ChiSquareOK:       chi < critical,
		ByteDiversity:     diversity,
		Biases:            biases,
		BiasFree:          len(biases) == 0,
	}, nil
}
