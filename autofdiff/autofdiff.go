// Package autofdiff implements automatic fractional differencing order selection.
package autofdiff

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sartorproj/fracdiff/fdiff"
	"github.com/sartorproj/fracdiff/timeseries"
)

// ErrNotFound reports that no candidate order in the searched range made the
// series stationary. This is a normal outcome of an exhaustive scan, distinct
// from an oracle failure.
var ErrNotFound = errors.New("autofdiff: no order in the searched range achieves stationarity")

// Config holds configuration for the order search.
type Config struct {
	Lower float64 // Lower bound of the order range, inclusive (default: 0)
	Upper float64 // Upper bound of the order range, inclusive (default: 1)
	Step  float64 // Grid step between candidates (default: 0.1)

	// Candidates overrides Lower/Upper/Step with an explicit candidate set.
	// The set is scanned in ascending order.
	Candidates []float64

	Window fdiff.Window // Truncation policy (default: FixedWindow(10))
	Alpha  float64      // Significance level passed to the oracle (default: 0.05)

	// Workers sets grid-scan parallelism. Candidate evaluations are
	// independent, so values above 1 evaluate them concurrently; the result
	// is identical to the sequential scan. Default: 1.
	Workers int

	// Bisect switches from the grid scan to bisection over [Lower, Upper].
	// Bisection assumes stationarity is monotonically non-decreasing in the
	// order. That usually holds empirically but is not guaranteed; if it is
	// violated the returned order may not be the true minimum.
	Bisect    bool
	BisectTol float64 // Bracket width at which bisection stops (default: 0.01)
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() *Config {
	return &Config{
		Lower:     0,
		Upper:     1,
		Step:      0.1,
		Window:    fdiff.FixedWindow(10),
		Alpha:     0.05,
		Workers:   1,
		BisectTol: 0.01,
	}
}

// Result represents the outcome of a successful order search.
type Result struct {
	Order     float64       // Minimal order satisfying the oracle
	Diffed    *fdiff.Result // Transform result at that order
	Window    int           // Resolved window width at that order
	Evaluated int           // Number of candidate evaluations performed
}

// Find searches for the minimal differencing order that makes the series
// stationary according to the oracle. The series must not contain missing
// observations: the stationarity tests behind the oracle need complete data.
//
// An oracle failure aborts the search; it is never treated as "not
// stationary". If the scan exhausts all candidates without success, Find
// returns ErrNotFound.
func Find(series *timeseries.Series, cfg *Config, oracle Oracle) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if oracle == nil {
		return nil, errors.New("autofdiff: nil oracle")
	}
	if series.MissingCount() > 0 {
		return nil, fmt.Errorf("autofdiff: series has %d missing observations", series.MissingCount())
	}

	alpha := cfg.Alpha
	if alpha <= 0 {
		alpha = 0.05
	}

	if cfg.Bisect {
		return bisect(series, cfg, oracle, alpha)
	}

	candidates, err := cfg.candidates()
	if err != nil {
		return nil, err
	}

	if cfg.Workers > 1 {
		return gridParallel(series, cfg, oracle, alpha, candidates)
	}
	return gridScan(series, cfg, oracle, alpha, candidates)
}

// candidates resolves the ascending candidate set from the configuration.
func (cfg *Config) candidates() ([]float64, error) {
	if len(cfg.Candidates) > 0 {
		out := make([]float64, len(cfg.Candidates))
		copy(out, cfg.Candidates)
		sort.Float64s(out)
		return out, nil
	}

	if cfg.Step <= 0 {
		return nil, errors.New("autofdiff: step must be positive")
	}
	if cfg.Upper < cfg.Lower {
		return nil, errors.New("autofdiff: upper bound below lower bound")
	}

	// Small slack so that an upper bound landing exactly on the grid is kept.
	count := int((cfg.Upper-cfg.Lower)/cfg.Step+1e-9) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = cfg.Lower + float64(i)*cfg.Step
	}
	return out, nil
}

// evaluate differences the series at one candidate order and asks the oracle.
func evaluate(series *timeseries.Series, cfg *Config, oracle Oracle, alpha, order float64) (*fdiff.Result, bool, error) {
	diffed, err := fdiff.Diff(series, order, cfg.Window)
	if err != nil {
		return nil, false, fmt.Errorf("autofdiff: order %v: %w", order, err)
	}
	ok, err := oracle.IsStationary(diffed.Trim(), alpha)
	if err != nil {
		return nil, false, fmt.Errorf("autofdiff: oracle failed at order %v: %w", order, err)
	}
	return diffed, ok, nil
}

// gridScan evaluates candidates in ascending order and returns the first
// stationary one.
func gridScan(series *timeseries.Series, cfg *Config, oracle Oracle, alpha float64, candidates []float64) (*Result, error) {
	evaluated := 0
	for _, order := range candidates {
		diffed, ok, err := evaluate(series, cfg, oracle, alpha, order)
		evaluated++
		if err != nil {
			return nil, err
		}
		if ok {
			return &Result{
				Order:     order,
				Diffed:    diffed,
				Window:    diffed.Width,
				Evaluated: evaluated,
			}, nil
		}
	}
	return nil, ErrNotFound
}

// gridParallel evaluates all candidates concurrently, then reduces the
// per-candidate outcomes in ascending order so the answer matches the
// sequential scan. The series and weight vectors are read-only, so workers
// share them without synchronization; only the result slots are per-worker.
func gridParallel(series *timeseries.Series, cfg *Config, oracle Oracle, alpha float64, candidates []float64) (*Result, error) {
	type outcome struct {
		diffed *fdiff.Result
		ok     bool
		err    error
	}

	outcomes := make([]outcome, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				diffed, ok, err := evaluate(series, cfg, oracle, alpha, candidates[i])
				outcomes[i] = outcome{diffed: diffed, ok: ok, err: err}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, out := range outcomes {
		if out.err != nil {
			return nil, out.err
		}
		if out.ok {
			return &Result{
				Order:     candidates[i],
				Diffed:    out.diffed,
				Window:    out.diffed.Width,
				Evaluated: len(candidates),
			}, nil
		}
	}
	return nil, ErrNotFound
}

// bisect narrows [Lower, Upper] assuming stationarity is monotone in the
// order. The bracket invariant is: upper end stationary, lower end not.
// The upper end of the final bracket is returned, so the answer overshoots
// the true minimum by at most BisectTol.
func bisect(series *timeseries.Series, cfg *Config, oracle Oracle, alpha float64) (*Result, error) {
	tol := cfg.BisectTol
	if tol <= 0 {
		tol = 0.01
	}
	if cfg.Upper < cfg.Lower {
		return nil, errors.New("autofdiff: upper bound below lower bound")
	}

	evaluated := 0

	hiDiffed, ok, err := evaluate(series, cfg, oracle, alpha, cfg.Upper)
	evaluated++
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	loDiffed, ok, err := evaluate(series, cfg, oracle, alpha, cfg.Lower)
	evaluated++
	if err != nil {
		return nil, err
	}
	if ok {
		return &Result{
			Order:     cfg.Lower,
			Diffed:    loDiffed,
			Window:    loDiffed.Width,
			Evaluated: evaluated,
		}, nil
	}

	lo, hi := cfg.Lower, cfg.Upper
	for hi-lo > tol {
		mid := (lo + hi) / 2
		diffed, ok, err := evaluate(series, cfg, oracle, alpha, mid)
		evaluated++
		if err != nil {
			return nil, err
		}
		if ok {
			hi = mid
			hiDiffed = diffed
		} else {
			lo = mid
		}
	}

	return &Result{
		Order:     hi,
		Diffed:    hiDiffed,
		Window:    hiDiffed.Width,
		Evaluated: evaluated,
	}, nil
}
