package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sartorproj/fracdiff/fdiff"
	"github.com/sartorproj/fracdiff/stats"
	"github.com/sartorproj/fracdiff/timeseries"
)

// DiffOptions holds flags for the diff command.
type DiffOptions struct {
	*RootOptions
	Column string
	Order  float64
	Window int
	Tol    float64
	Log    bool
	Output string
	Stats  bool
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiffOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "diff <csv-file>",
		Short: "Fractionally difference a CSV time series",
		Long: `Apply fractional differencing at a fixed order to a series loaded from a
CSV file and write the result as CSV. Output positions without enough history,
and positions whose lookback window overlaps a missing input, are written
as NA.

Example:
  fracdiff diff prices.csv --column close --order 0.4 --window 100
  fracdiff diff prices.csv --order 0.4 --log --output diffed.csv --stats`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "value column name (default: autodetect)")
	cmd.Flags().Float64VarP(&opts.Order, "order", "d", 0, "differencing order (required)")
	cmd.Flags().IntVarP(&opts.Window, "window", "w", 10, "window width")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "weight-magnitude tolerance (overrides --window)")
	cmd.Flags().BoolVar(&opts.Log, "log", false, "apply natural log before differencing")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output CSV file (default: stdout)")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "log memory-preservation diagnostics")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

func runDiff(opts *DiffOptions, file string, cmd *cobra.Command) error {
	series, err := loadSeries(file, opts.Column, opts.Log)
	if err != nil {
		return err
	}

	window, err := resolveWindow(opts.Window, opts.Tol)
	if err != nil {
		return err
	}

	res, err := fdiff.Diff(series, opts.Order, window)
	if err != nil {
		return fmt.Errorf("differencing failed: %w", err)
	}

	slog.Debug("transformed series",
		"order", opts.Order,
		"window", res.Width,
		"observations", res.Len(),
		"defined", res.DefinedCount())

	if opts.Stats {
		reportDiagnostics(series, res)
	}

	out := &timeseries.Series{
		Timestamps: res.Timestamps,
		Values:     res.Masked(),
		Name:       series.Name,
	}
	if opts.Output != "" {
		return timeseries.SaveCSV(out, opts.Output, true)
	}
	return timeseries.WriteCSV(out, cmd.OutOrStdout(), true)
}

// loadSeries loads a CSV column as a series, optionally log-transformed.
func loadSeries(file, column string, logTransform bool) (*timeseries.Series, error) {
	var series *timeseries.Series
	var err error
	if column != "" {
		series, err = timeseries.LoadCSVColumn(file, column)
	} else {
		series, err = timeseries.LoadCSV(file, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file, err)
	}
	if logTransform {
		series = series.Log()
	}
	return series, nil
}

// reportDiagnostics logs how much memory the transform preserved.
func reportDiagnostics(series *timeseries.Series, res *fdiff.Result) {
	corr := stats.Correlation(series.Values, res.Masked())
	slog.Info("memory preservation", "correlation", corr)

	trimmed := res.Trim()
	if acf := stats.ACFWithConfidence(trimmed, 20); acf != nil {
		significant := stats.SignificantLags(acf.Values, acf.ConfBounds)
		slog.Info("residual autocorrelation",
			"significant_lags", len(significant),
			"conf_bound", acf.ConfBounds)
	}
}
