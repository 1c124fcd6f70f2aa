package fdiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/fracdiff/timeseries"
)

func TestTransformFirstDifference(t *testing.T) {
	// Order 1 on a linear ramp: undefined first entry, constant 1 thereafter.
	series := timeseries.New([]float64{0, 1, 2, 3, 4, 5})
	weights, err := Weights(1, FixedWindow(2))
	require.NoError(t, err)

	res, err := Transform(series, weights)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Len())
	assert.Equal(t, 2, res.Width)

	_, ok := res.At(0)
	assert.False(t, ok, "position 0 has insufficient history")

	for i := 1; i < 6; i++ {
		v, ok := res.At(i)
		require.True(t, ok, "position %d", i)
		assert.InDelta(t, 1.0, v, 1e-12, "position %d", i)
	}
}

func TestTransformIdentity(t *testing.T) {
	values := []float64{3.5, -1, 0, 42, 7.25}
	series := timeseries.New(values)
	weights, err := Weights(0, FixedWindow(3))
	require.NoError(t, err)

	res, err := Transform(series, weights)
	require.NoError(t, err)

	for i := 2; i < len(values); i++ {
		v, ok := res.At(i)
		require.True(t, ok)
		assert.InDelta(t, values[i], v, 1e-12, "identity must reproduce the input at %d", i)
	}
}

func TestTransformHalfOrderConstantSeries(t *testing.T) {
	// On a constant series every defined output is the sum of the weights.
	series := timeseries.New([]float64{1, 1, 1, 1, 1})
	weights, err := Weights(0.5, FixedWindow(3))
	require.NoError(t, err)

	res, err := Transform(series, weights)
	require.NoError(t, err)

	want := 1 - 0.5 - 0.125
	for i := 2; i < 5; i++ {
		v, ok := res.At(i)
		require.True(t, ok)
		assert.InDelta(t, want, v, 1e-12)
	}
}

func TestTransformMissingPropagation(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, math.NaN(), 5, 6, 7})
	weights, err := Weights(1, FixedWindow(2))
	require.NoError(t, err)

	res, err := Transform(series, weights)
	require.NoError(t, err)

	// Undefined: warm-up (0), and every window overlapping index 3.
	for _, i := range []int{0, 3, 4} {
		_, ok := res.At(i)
		assert.False(t, ok, "position %d must be undefined", i)
	}
	for _, i := range []int{1, 2, 5, 6} {
		v, ok := res.At(i)
		require.True(t, ok, "position %d must be defined", i)
		assert.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestTransformSeriesTooShort(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})
	weights, err := Weights(0.5, FixedWindow(5))
	require.NoError(t, err)

	_, err = Transform(series, weights)
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestTransformEmptyWeights(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})
	_, err := Transform(series, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	values := []float64{1, 2, 4, 7, 11, 16}
	series := timeseries.New(values)
	original := append([]float64(nil), values...)

	weights, err := Weights(0.5, FixedWindow(3))
	require.NoError(t, err)
	_, err = Transform(series, weights)
	require.NoError(t, err)

	assert.Equal(t, original, series.Values)
}

func TestResultMasked(t *testing.T) {
	series := timeseries.New([]float64{0, 1, 2, 3})
	res, err := Diff(series, 1, FixedWindow(2))
	require.NoError(t, err)

	masked := res.Masked()
	require.Len(t, masked, 4)
	assert.True(t, math.IsNaN(masked[0]))
	for i := 1; i < 4; i++ {
		assert.InDelta(t, 1.0, masked[i], 1e-12)
	}
}

func TestResultTrim(t *testing.T) {
	series := timeseries.New([]float64{0, 1, 2, 3, 4})
	res, err := Diff(series, 1, FixedWindow(3))
	require.NoError(t, err)

	trimmed := res.Trim()
	assert.Equal(t, 3, trimmed.Len(), "warm-up prefix of width-1 dropped")
	for _, v := range trimmed.Values {
		assert.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestResultTrimInteriorMissing(t *testing.T) {
	series := timeseries.New([]float64{0, 1, 2, math.NaN(), 4, 5, 6})
	res, err := Diff(series, 1, FixedWindow(2))
	require.NoError(t, err)

	trimmed := res.Trim()
	require.Equal(t, 6, trimmed.Len())
	assert.Equal(t, 2, trimmed.MissingCount(), "interior undefined positions become missing")
}

func TestResultDefinedCount(t *testing.T) {
	series := timeseries.New([]float64{0, 1, 2, 3, 4, 5})
	res, err := Diff(series, 0.5, FixedWindow(4))
	require.NoError(t, err)
	assert.Equal(t, 3, res.DefinedCount())
}

func TestDiffInvalidOrder(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})
	_, err := Diff(series, math.NaN(), FixedWindow(2))
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
