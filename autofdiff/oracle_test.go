package autofdiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/fracdiff/timeseries"
)

// noiseSeries builds a deterministic noise-like series from a sine hash.
// The values are mean-reverting with no visible trend, so the unit-root
// tests should call it stationary.
func noiseSeries(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		v := math.Sin(float64(i+1)*12.9898) * 43758.5453
		values[i] = v - math.Floor(v) - 0.5
	}
	return timeseries.New(values)
}

// trendSeries layers the same noise on a linear trend; level non-stationary.
func trendSeries(n int) *timeseries.Series {
	noise := noiseSeries(n)
	values := make([]float64, n)
	for i := range values {
		values[i] = 0.05*float64(i) + noise.Values[i]
	}
	return timeseries.New(values)
}

func TestADFOracleStationaryNoise(t *testing.T) {
	ok, err := ADFOracle{}.IsStationary(noiseSeries(200), 0.05)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestADFOracleTrendingSeries(t *testing.T) {
	ok, err := ADFOracle{}.IsStationary(trendSeries(200), 0.05)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestADFOracleShortSeries(t *testing.T) {
	_, err := ADFOracle{}.IsStationary(timeseries.New([]float64{1, 2, 3}), 0.05)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more observations")
}

func TestKPSSOracleStationaryNoise(t *testing.T) {
	ok, err := KPSSOracle{}.IsStationary(noiseSeries(200), 0.05)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKPSSOracleTrendingSeries(t *testing.T) {
	ok, err := KPSSOracle{}.IsStationary(trendSeries(200), 0.05)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKPSSOracleTrendRegression(t *testing.T) {
	// Detrending first makes the trend series look stationary.
	ok, err := KPSSOracle{Regression: "ct"}.IsStationary(trendSeries(200), 0.05)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKPSSOracleShortSeries(t *testing.T) {
	_, err := KPSSOracle{}.IsStationary(timeseries.New([]float64{1, 2, 3}), 0.05)
	require.Error(t, err)
}

func TestPPOracleStationaryNoise(t *testing.T) {
	ok, err := PPOracle{}.IsStationary(noiseSeries(200), 0.05)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPPOracleShortSeries(t *testing.T) {
	_, err := PPOracle{}.IsStationary(timeseries.New([]float64{1, 2, 3}), 0.05)
	require.Error(t, err)
}

func TestStrictOracle(t *testing.T) {
	oracle := StrictOracle{}

	ok, err := oracle.IsStationary(noiseSeries(200), 0.05)
	require.NoError(t, err)
	assert.True(t, ok, "both tests agree on noise")

	ok, err = oracle.IsStationary(trendSeries(200), 0.05)
	require.NoError(t, err)
	assert.False(t, ok, "both tests agree on a trend")
}

func TestStrictOracleShortSeries(t *testing.T) {
	_, err := StrictOracle{}.IsStationary(timeseries.New([]float64{1, 2, 3}), 0.05)
	require.Error(t, err)
}

func TestOracleFunc(t *testing.T) {
	called := false
	oracle := OracleFunc(func(_ *timeseries.Series, alpha float64) (bool, error) {
		called = true
		return alpha > 0, nil
	})

	ok, err := oracle.IsStationary(noiseSeries(20), 0.05)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, called)
}
