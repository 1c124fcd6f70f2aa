// Package fracdiff provides fractional differentiation of time series.
//
// Fractional differentiation generalizes integer-order differencing (order 0 is
// the identity, order 1 is the ordinary first difference) to any real-valued
// order. A fractionally differenced series can be made stationary while
// preserving more of the original autocorrelation structure (memory) than
// integer differencing would, which is why the transform is popular as a
// feature-engineering step for financial time series.
//
// # Features
//
//   - Truncated (fixed-window) fractional differencing for arbitrary real orders
//   - Window selection by explicit width or by weight-magnitude tolerance
//   - Automatic search for the minimal order that makes a series stationary
//   - Statistical tests for stationarity (ADF, KPSS, Phillips-Perron)
//   - Autocorrelation analysis and memory-preservation diagnostics
//
// # Quick Start
//
// Apply a fixed order:
//
//	series := timeseries.New(values)
//	res, _ := fdiff.Diff(series, 0.5, fdiff.FixedWindow(100))
//	diffed := res.Trim()  // drop the undefined warm-up prefix
//
// Search for the minimal sufficient order:
//
//	cfg := autofdiff.DefaultConfig()
//	result, _ := autofdiff.Find(series, cfg, autofdiff.ADFOracle{})
//	fmt.Printf("minimal order: %.2f\n", result.Order)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - fdiff: Weight generation and the differencing transform
//   - autofdiff: Automatic minimal-order search
//   - stats: Stationarity tests and autocorrelation analysis
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Hosking, J. R. M. (1981). Fractional Differencing. Biometrika 68(1)
//   - López de Prado, M. (2018). Advances in Financial Machine Learning, ch. 5
package fracdiff
