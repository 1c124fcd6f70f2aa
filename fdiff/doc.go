// Package fdiff implements truncated fractional differentiation of time series.
//
// The fractional differencing operator (1-L)^d expands into an infinite series
// of lag weights. This package truncates that series to a finite window, either by
// explicit width or by a weight-magnitude tolerance, and applies it as a
// causal sliding-window filter. Truncation trades a bounded amount of the long
// memory tail for finite computation; the approximation error is bounded by
// the sum of the dropped weights.
//
// # Generating Weights
//
//	// Exactly 100 weights
//	w, err := fdiff.Weights(0.4, fdiff.FixedWindow(100))
//
//	// As many weights as needed until |w_k| < 1e-4
//	w, err := fdiff.Weights(0.4, fdiff.TolWindow(1e-4))
//
// Weight generation is a pure function: identical inputs always produce
// identical output.
//
// # Applying the Transform
//
//	res, err := fdiff.Diff(series, 0.4, fdiff.FixedWindow(100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Full-length output; the first 99 positions are undefined
//	masked := res.Masked()
//
//	// Output with the undefined warm-up prefix dropped
//	trimmed := res.Trim()
//
// The output has the same length as the input. Positions without enough
// history, and positions whose lookback window overlaps a missing (NaN)
// input, are undefined: marked explicitly, not set to zero.
//
// # Orders
//
// Order 0 is the identity and order 1 is the ordinary first difference;
// non-integer orders interpolate between preserving memory and enforcing
// stationarity. Negative orders (fractional integration) are mathematically
// valid but their weights decay slowly or not at all, so tolerance-based
// windows may fail with ErrWindowUnbounded.
package fdiff
