package autofdiff

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/fracdiff/fdiff"
	"github.com/sartorproj/fracdiff/timeseries"
)

// countingOracle reports stationarity from the acceptAfter-th call on.
// Valid only for sequential scans, where calls arrive in ascending order.
type countingOracle struct {
	calls       int
	acceptAfter int
}

func (o *countingOracle) IsStationary(_ *timeseries.Series, _ float64) (bool, error) {
	o.calls++
	return o.calls >= o.acceptAfter, nil
}

// rampOracle is a stateless stub keyed on the magnitude of the last value.
// On a linear ramp, higher orders shrink the output, so this behaves
// monotonically in the order and is safe for parallel and bisection tests.
func rampOracle(threshold float64) OracleFunc {
	return func(s *timeseries.Series, _ float64) (bool, error) {
		last := s.Values[s.Len()-1]
		return math.Abs(last) < threshold, nil
	}
}

func ramp(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return timeseries.New(values)
}

func TestFindGridScan(t *testing.T) {
	// Integrated noise; the oracle reports stationarity from order 0.6 on.
	series := timeseries.New([]float64{1, 2, 4, 7, 11, 16})
	oracle := &countingOracle{acceptAfter: 4}

	cfg := DefaultConfig()
	cfg.Candidates = []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}
	cfg.Window = fdiff.FixedWindow(2)

	result, err := Find(series, cfg, oracle)
	require.NoError(t, err)

	assert.Equal(t, 0.6, result.Order)
	assert.Equal(t, 4, result.Evaluated)
	assert.Equal(t, 2, result.Window)
	require.NotNil(t, result.Diffed)
	assert.Equal(t, series.Len(), result.Diffed.Len())
}

func TestFindGridScanBounds(t *testing.T) {
	series := ramp(30)

	cfg := DefaultConfig()
	cfg.Lower = 0
	cfg.Upper = 1
	cfg.Step = 0.25
	cfg.Window = fdiff.FixedWindow(3)

	result, err := Find(series, cfg, rampOracle(6))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, result.Order, 1e-12)
}

func TestFindParallelMatchesSequential(t *testing.T) {
	series := ramp(30)

	cfg := DefaultConfig()
	cfg.Step = 0.25
	cfg.Window = fdiff.FixedWindow(3)

	sequential, err := Find(series, cfg, rampOracle(6))
	require.NoError(t, err)

	cfg.Workers = 4
	parallel, err := Find(series, cfg, rampOracle(6))
	require.NoError(t, err)

	assert.Equal(t, sequential.Order, parallel.Order)
	assert.Equal(t, sequential.Window, parallel.Window)
}

func TestFindNotFound(t *testing.T) {
	series := ramp(20)

	cfg := DefaultConfig()
	cfg.Step = 0.5
	cfg.Window = fdiff.FixedWindow(3)

	never := OracleFunc(func(*timeseries.Series, float64) (bool, error) {
		return false, nil
	})

	_, err := Find(series, cfg, never)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindOracleFailureAborts(t *testing.T) {
	series := ramp(20)

	cfg := DefaultConfig()
	cfg.Step = 0.5
	cfg.Window = fdiff.FixedWindow(3)

	oracleErr := errors.New("test statistic diverged")
	failing := OracleFunc(func(*timeseries.Series, float64) (bool, error) {
		return false, oracleErr
	})

	_, err := Find(series, cfg, failing)
	require.Error(t, err)
	assert.ErrorIs(t, err, oracleErr, "oracle failure must propagate, not count as non-stationary")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFindBisect(t *testing.T) {
	series := ramp(30)

	cfg := DefaultConfig()
	cfg.Bisect = true
	cfg.BisectTol = 0.3
	cfg.Window = fdiff.FixedWindow(3)

	result, err := Find(series, cfg, rampOracle(6))
	require.NoError(t, err)

	// Bracket narrows 0..1 -> 0.5..1 -> 0.5..0.75; the upper end is returned.
	assert.InDelta(t, 0.75, result.Order, 1e-12)
	assert.Equal(t, 4, result.Evaluated)
}

func TestFindBisectLowerAlreadyStationary(t *testing.T) {
	series := ramp(30)

	cfg := DefaultConfig()
	cfg.Bisect = true
	cfg.Window = fdiff.FixedWindow(3)

	result, err := Find(series, cfg, rampOracle(1e6))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Order)
	assert.Equal(t, 2, result.Evaluated)
}

func TestFindBisectNotFound(t *testing.T) {
	series := ramp(30)

	cfg := DefaultConfig()
	cfg.Bisect = true
	cfg.Window = fdiff.FixedWindow(3)

	_, err := Find(series, cfg, rampOracle(1e-9))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindRejectsMissingObservations(t *testing.T) {
	series := timeseries.New([]float64{1, 2, math.NaN(), 4, 5, 6, 7, 8, 9, 10})

	_, err := Find(series, DefaultConfig(), rampOracle(6))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestFindNilOracle(t *testing.T) {
	_, err := Find(ramp(20), DefaultConfig(), nil)
	require.Error(t, err)
}

func TestFindInvalidStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Step = 0

	_, err := Find(ramp(20), cfg, rampOracle(6))
	require.Error(t, err)
}

func TestFindInvalidBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lower = 1
	cfg.Upper = 0

	_, err := Find(ramp(20), cfg, rampOracle(6))
	require.Error(t, err)
}

func TestCandidatesGrid(t *testing.T) {
	cfg := &Config{Lower: 0, Upper: 1, Step: 0.2}
	candidates, err := cfg.candidates()
	require.NoError(t, err)

	require.Len(t, candidates, 6)
	assert.Equal(t, 0.0, candidates[0])
	assert.InDelta(t, 1.0, candidates[5], 1e-9, "upper bound on the grid is included")
}

func TestCandidatesExplicitSorted(t *testing.T) {
	cfg := &Config{Candidates: []float64{0.5, 0.1, 0.9}}
	candidates, err := cfg.candidates()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, candidates)
}
