package fdiff

import (
	"math"
	"time"

	"github.com/sartorproj/fracdiff/timeseries"
)

// Result holds a fractionally differenced series. Output values exist for
// every input position, but the first width-1 positions (insufficient history)
// and any position whose lookback window overlaps a missing input are
// undefined. Undefined is tracked with an explicit mask rather than a NaN
// sentinel so that it stays distinguishable from legitimate NaN arithmetic.
type Result struct {
	Values     []float64 // transformed values, meaningful only where Defined
	Defined    []bool
	Width      int // resolved window width
	Timestamps []time.Time
}

// Len returns the length of the result (same as the input series).
func (r *Result) Len() int {
	return len(r.Values)
}

// At returns the value at position i and whether it is defined.
func (r *Result) At(i int) (float64, bool) {
	if i < 0 || i >= len(r.Values) {
		return 0, false
	}
	if !r.Defined[i] {
		return 0, false
	}
	return r.Values[i], true
}

// DefinedCount returns the number of defined output positions.
func (r *Result) DefinedCount() int {
	count := 0
	for _, ok := range r.Defined {
		if ok {
			count++
		}
	}
	return count
}

// Masked returns the full-length output with NaN at undefined positions,
// for export alongside the input series.
func (r *Result) Masked() []float64 {
	out := make([]float64, len(r.Values))
	for i, v := range r.Values {
		if r.Defined[i] {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Trim returns the result as a series with the leading undefined warm-up
// prefix dropped. Any interior undefined position becomes a missing (NaN)
// observation in the returned series.
func (r *Result) Trim() *timeseries.Series {
	start := 0
	for start < len(r.Values) && !r.Defined[start] {
		start++
	}

	values := make([]float64, len(r.Values)-start)
	for i := start; i < len(r.Values); i++ {
		if r.Defined[i] {
			values[i-start] = r.Values[i]
		} else {
			values[i-start] = math.NaN()
		}
	}

	timestamps := make([]time.Time, len(values))
	if len(r.Timestamps) == len(r.Values) {
		copy(timestamps, r.Timestamps[start:])
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// Transform applies a weight sequence to the series as a causal FIR filter:
// for each position i >= len(weights)-1,
//
//	out[i] = sum_k weights[k] * series[i-k]
//
// The input series is never mutated. A single pass computes each output
// directly from the shared input buffer, so the transform runs in
// O(n*width) time with no allocation beyond the output buffers.
func Transform(series *timeseries.Series, weights []float64) (*Result, error) {
	width := len(weights)
	if width < 1 {
		return nil, ErrInvalidWindow
	}
	n := series.Len()
	if n < width {
		return nil, ErrSeriesTooShort
	}

	values := make([]float64, n)
	defined := make([]bool, n)

	// lastMissing tracks the most recent missing observation so that the
	// window-overlap check is O(1) per position.
	lastMissing := -1
	for i := 0; i < n; i++ {
		if math.IsNaN(series.Values[i]) {
			lastMissing = i
		}
		if i < width-1 {
			continue // not enough history yet
		}
		if lastMissing >= i-width+1 {
			continue // window overlaps a missing observation
		}

		acc := 0.0
		for k := 0; k < width; k++ {
			acc += weights[k] * series.Values[i-k]
		}
		values[i] = acc
		defined[i] = true
	}

	timestamps := make([]time.Time, 0)
	if len(series.Timestamps) == n {
		timestamps = make([]time.Time, n)
		copy(timestamps, series.Timestamps)
	}

	return &Result{
		Values:     values,
		Defined:    defined,
		Width:      width,
		Timestamps: timestamps,
	}, nil
}

// Diff fractionally differences the series at the given order, generating
// weights under the window policy and applying them in one call.
func Diff(series *timeseries.Series, d float64, window Window) (*Result, error) {
	weights, err := Weights(d, window)
	if err != nil {
		return nil, err
	}
	return Transform(series, weights)
}
