package entropy

// BiasType names a structural artifact detected by the zero-bias scan.
type BiasType string

// Detectable bias patterns.
const (
	BiasLeadingZeros    BiasType = "leading_zeros"
	BiasTrailingZeros   BiasType = "trailing_zeros"
	BiasRepeatedPattern BiasType = "repeated_pattern"
	BiasLowDiversity    BiasType = "low_diversity"
	BiasAllZeros        BiasType = "all_zeros"
	BiasAllOnes         BiasType = "all_ones"
)

// lowDiversityFloor is the byte-diversity fraction below which a buffer
// is flagged, measured against min(len, 256) possible distinct values.
const lowDiversityFloor = 0.3

// ZeroBias scans a buffer for structural artifacts that entropy alone can
// miss: runs of leading or trailing zero bytes, a repeated byte at the
// head, collapsed byte diversity, and constant buffers. The returned
// slice names every detected bias and is empty for clean input.
func ZeroBias(data []byte) ([]BiasType, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var detected []BiasType

	if len(data) >= 4 && allEqual(data[:4], 0x00) {
		detected = append(detected, BiasLeadingZeros)
	}
	if len(data) >= 4 && allEqual(data[len(data)-4:], 0x00) {
		detected = append(detected, BiasTrailingZeros)
	}
	if len(data) >= 8 && allEqual(data[:8], data[0]) {
		detected = append(detected, BiasRepeatedPattern)
	}

	var seen [256]bool
	distinct := 0
	for _, b := range data {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	possible := len(data)
	if possible > 256 {
		possible = 256
	}
	if float64(distinct)/float64(possible) < lowDiversityFloor {
		detected = append(detected, BiasLowDiversity)
	}

	if allEqual(data, 0x00) {
		detected = append(detected, BiasAllZeros)
	}
	if allEqual(data, 0xFF) {
		detected = append(detected, BiasAllOnes)
	}

	return detected, nil
}

func allEqual(data []byte, v byte) bool {
	for _, b := range data {
		if b != v {
			return false
		}
	}
	return true
}
