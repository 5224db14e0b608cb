package calculator

import "math"

// Densify fills missing (NaN) values by forward-propagation, then fills any
// still-missing leading values by backward-propagation. The result is fully
// dense as long as the input holds at least one real value.
func Densify(prices []float64) []float64 {
	out := make([]float64, len(prices))
	copy(out, prices)

	last := math.NaN()
	for i, p := range out {
		if math.IsNaN(p) {
			out[i] = last
		} else {
			last = p
		}
	}

	next := math.NaN()
	for i := len(out) - 1; i >= 0; i-- {
		if math.IsNaN(out[i]) {
			out[i] = next
		} else {
			next = out[i]
		}
	}
	return out
}
