package fdiff

import "math"

// maxTolWidth caps tolerance-resolved windows. Orders at or below roughly -1
// produce weight tails that never decay, so the tolerance loop would not
// terminate without a bound.
const maxTolWidth = 100000

// Window specifies how the infinite fractional differencing kernel is
// truncated: either an explicit width, or a weight-magnitude tolerance that
// resolves the width automatically.
type Window struct {
	width int
	tol   float64
}

// FixedWindow returns a Window with an explicit width.
func FixedWindow(width int) Window {
	return Window{width: width}
}

// TolWindow returns a Window resolved from a weight-magnitude tolerance:
// weights are generated until the next weight magnitude drops below tol.
func TolWindow(tol float64) Window {
	return Window{tol: tol}
}

// IsFixed reports whether the window has an explicit width.
func (w Window) IsFixed() bool {
	return w.width > 0
}

// Weights generates the truncated convolution weights of the fractional
// differencing operator (1-L)^d, where L is the lag operator. Weights follow
// the binomial expansion via the recurrence
//
//	w_0 = 1
//	w_k = -w_{k-1} * (d - k + 1) / k
//
// indexed from the most recent observation backward. The truncation makes the
// operator an approximation of true fractional differencing; the approximation
// error is bounded by the sum of the dropped tail weights.
//
// Non-negative integer orders terminate exactly: the recurrence numerator hits
// zero at k = d+1 and every later weight is zero, recovering ordinary
// differencing (d=1 gives [1, -1], d=0 gives the identity [1, 0, ...]).
func Weights(d float64, window Window) ([]float64, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, ErrInvalidOrder
	}

	if window.IsFixed() {
		return fixedWeights(d, window.width), nil
	}
	if window.tol > 0 {
		return tolWeights(d, window.tol)
	}
	return nil, ErrInvalidWindow
}

func fixedWeights(d float64, width int) []float64 {
	weights := make([]float64, width)
	weights[0] = 1
	for k := 1; k < width; k++ {
		weights[k] = nextWeight(weights[k-1], d, k)
	}
	return weights
}

func tolWeights(d float64, tol float64) ([]float64, error) {
	weights := []float64{1}
	for k := 1; ; k++ {
		wk := nextWeight(weights[k-1], d, k)
		if math.Abs(wk) < tol {
			return weights, nil
		}
		if len(weights) >= maxTolWidth {
			return nil, ErrWindowUnbounded
		}
		weights = append(weights, wk)
	}
}

func nextWeight(prev, d float64, k int) float64 {
	wk := -prev * (d - float64(k) + 1) / float64(k)
	if wk == 0 {
		// Exact termination lands on negative zero; keep the sign clean.
		wk = 0
	}
	return wk
}
