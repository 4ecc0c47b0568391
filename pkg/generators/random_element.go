// Package generators implements the random hypergraph construction
// algorithms: Erdős–Rényi, Chung–Lu, and BTER, all built on the same
// prefix-sum sampling primitive and the buffered inclusion-insertion path
// of pkg/hypergraph.
package generators

import (
	"errors"
)

// ErrSamplingOutOfRange is returned when GetRandomElement is asked to place
// r outside the prefix-sum table's covered range.
var ErrSamplingOutOfRange = errors.New("generators: sampling value out of prefix-sum range")

// GetRandomElement samples an index into elements given a prefix-sum table
// probs where probs[0] == 0, probs[len(probs)-1] == 1, and probs[i] is the
// cumulative probability mass up to and including elements[i-1]. An
// exponential search bounds the range, then a linear scan from index 1
// finds the smallest i such that probs[i] > r, and elements[i-1], the
// element whose bin contains r, is returned (r == 1 is clamped to the last
// element).
//
// A boundary value equal to some probs[i] belongs to the upper bin: the
// scan keeps advancing while probs[i] <= r, so r landing exactly on an
// interior boundary resolves to the bin above it, matching the contract
// that GetRandomElement([0,1,2,3], [0,.25,.5,.75,1], 0.5) == 2.
func GetRandomElement(elements []int, probs []float64, r float64) (int, error) {
	n := len(probs)
	if n < 2 || len(elements) != n-1 {
		return 0, ErrSamplingOutOfRange
	}
	if r < probs[0] || r > probs[n-1] {
		return 0, ErrSamplingOutOfRange
	}

	hi := 1
	for hi < n-1 && probs[hi] <= r {
		hi *= 2
		if hi > n-1 {
			hi = n - 1
		}
	}

	i := 1
	for i <= hi && probs[i] <= r {
		i++
	}
	if i > n-1 {
		i = n - 1
	}
	if i < 1 {
		i = 1
	}
	return elements[i-1], nil
}
