package autofdiff

import (
	"fmt"

	"github.com/sartorproj/fracdiff/stats"
	"github.com/sartorproj/fracdiff/timeseries"
)

// Oracle decides whether a series is stationary at a significance level.
// Implementations must be side-effect free; the search may call them
// concurrently on read-only series.
type Oracle interface {
	IsStationary(series *timeseries.Series, alpha float64) (bool, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(series *timeseries.Series, alpha float64) (bool, error)

// IsStationary implements Oracle.
func (f OracleFunc) IsStationary(series *timeseries.Series, alpha float64) (bool, error) {
	return f(series, alpha)
}

// ADFOracle tests stationarity with the Augmented Dickey-Fuller test.
// The series counts as stationary when the unit-root null is rejected
// (p-value < alpha).
type ADFOracle struct {
	MaxLag int // 0 selects the default lag automatically
}

// IsStationary implements Oracle.
func (o ADFOracle) IsStationary(series *timeseries.Series, alpha float64) (bool, error) {
	res := stats.ADF(series, o.MaxLag)
	if res == nil {
		return false, fmt.Errorf("adf test needs more observations (n=%d)", series.Len())
	}
	return res.PValue < alpha, nil
}

// KPSSOracle tests stationarity with the KPSS test. The null hypothesis is
// stationarity, so the series counts as stationary when the null is NOT
// rejected (p-value >= alpha).
type KPSSOracle struct {
	Regression string // "c" (default) or "ct"
	Lags       int    // 0 selects the default lag automatically
}

// IsStationary implements Oracle.
func (o KPSSOracle) IsStationary(series *timeseries.Series, alpha float64) (bool, error) {
	regression := o.Regression
	if regression == "" {
		regression = "c"
	}
	res := stats.KPSS(series, regression, o.Lags)
	if res == nil {
		return false, fmt.Errorf("kpss test needs more observations (n=%d)", series.Len())
	}
	return res.PValue >= alpha, nil
}

// PPOracle tests stationarity with the Phillips-Perron test.
type PPOracle struct {
	Lags int
}

// IsStationary implements Oracle.
func (o PPOracle) IsStationary(series *timeseries.Series, alpha float64) (bool, error) {
	res := stats.PhillipsPerron(series, o.Lags)
	if res == nil {
		return false, fmt.Errorf("phillips-perron test needs more observations (n=%d)", series.Len())
	}
	return res.PValue < alpha, nil
}

// StrictOracle requires agreement of the ADF and KPSS tests. ADF alone can
// miss trend stationarity and KPSS alone can miss difference stationarity;
// requiring both gives a stricter stationarity verdict.
type StrictOracle struct {
	ADF  ADFOracle
	KPSS KPSSOracle
}

// IsStationary implements Oracle.
func (o StrictOracle) IsStationary(series *timeseries.Series, alpha float64) (bool, error) {
	adfOK, err := o.ADF.IsStationary(series, alpha)
	if err != nil {
		return false, err
	}
	kpssOK, err := o.KPSS.IsStationary(series, alpha)
	if err != nil {
		return false, err
	}
	return adfOK && kpssOK, nil
}
