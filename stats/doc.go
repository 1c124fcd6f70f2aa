// Package stats provides statistical tests and analysis functions for time series.
//
// This package includes stationarity tests and autocorrelation analysis used
// by the fractional differencing order search and its diagnostics.
//
// # Stationarity Tests
//
// Test whether a time series is stationary:
//
//	// Augmented Dickey-Fuller test
//	// H0: Series has unit root (non-stationary)
//	adf := stats.ADF(series, 0)
//	fmt.Printf("ADF: stat=%.4f, p=%.4f, stationary=%v\n",
//	    adf.Statistic, adf.PValue, adf.IsStationary)
//
//	// KPSS test
//	// H0: Series is stationary
//	kpss := stats.KPSS(series, "c", 0)
//	fmt.Printf("KPSS: stat=%.4f, p=%.4f, stationary=%v\n",
//	    kpss.Statistic, kpss.PValue, kpss.IsStationary)
//
//	// Phillips-Perron test
//	pp := stats.PhillipsPerron(series, 0)
//
// The tests return nil when the series is too short for the underlying
// regression (fewer than 10 usable observations).
//
// # Autocorrelation and Memory Diagnostics
//
// Analyze how much autocorrelation structure a transform preserved:
//
//	// Autocorrelation Function
//	acf := stats.ACF(series, 20)
//
//	// ACF with confidence bounds
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
//	// Correlation between original and differenced series
//	corr := stats.Correlation(series.Values, diffed.Values)
package stats
