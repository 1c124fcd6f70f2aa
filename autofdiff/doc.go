// Package autofdiff implements automatic selection of the minimal fractional
// differencing order that makes a time series stationary.
//
// The search repeatedly differences the series at candidate orders and asks a
// stationarity Oracle to judge each differenced series. The stationarity test
// is an injected capability, so the search control flow is independent of
// which statistical test is used.
//
// # Grid Scan
//
// The default strategy scans candidate orders in ascending order and returns
// the first one the oracle accepts:
//
//	cfg := autofdiff.DefaultConfig()
//	cfg.Upper = 1.0
//	cfg.Step = 0.05
//	cfg.Window = fdiff.FixedWindow(100)
//
//	result, err := autofdiff.Find(series, cfg, autofdiff.ADFOracle{})
//	if errors.Is(err, autofdiff.ErrNotFound) {
//	    // no order in [0, 1] suffices; widen the range
//	}
//
// The scan makes no monotonicity assumption. Candidate evaluations are
// independent, so cfg.Workers > 1 runs them concurrently with the same
// answer as the sequential scan.
//
// # Bisection
//
// When stationarity can be assumed monotone in the order, bisection needs far
// fewer oracle calls:
//
//	cfg.Bisect = true
//	cfg.BisectTol = 0.01
//	result, err := autofdiff.Find(series, cfg, autofdiff.ADFOracle{})
//
// The monotonicity assumption is usually but not provably satisfied; choosing
// bisection is the caller's trade-off, not a hidden default.
//
// # Oracles
//
// ADFOracle, KPSSOracle and PPOracle adapt the tests in the stats package.
// StrictOracle requires ADF and KPSS to agree. Any function with the right
// signature can serve via OracleFunc, which is also the natural hook for
// stubbing the oracle in tests.
package autofdiff
