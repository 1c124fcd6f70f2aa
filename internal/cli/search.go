package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/fracdiff/autofdiff"
	"github.com/sartorproj/fracdiff/stats"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Column     string
	Min        float64
	Max        float64
	Step       float64
	Alpha      float64
	Window     int
	Tol        float64
	Test       string
	Workers    int
	Bisect     bool
	BisectTol  float64
	Log        bool
	ConfigFile string
}

// searchFileConfig is the YAML shape of a search configuration file.
// Pointer fields distinguish "absent" from an explicit zero.
type searchFileConfig struct {
	Column    string   `yaml:"column"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Step      *float64 `yaml:"step"`
	Alpha     *float64 `yaml:"alpha"`
	Window    *int     `yaml:"window"`
	Tol       *float64 `yaml:"tol"`
	Test      string   `yaml:"test"`
	Workers   *int     `yaml:"workers"`
	Bisect    *bool    `yaml:"bisect"`
	BisectTol *float64 `yaml:"bisect_tol"`
	Log       *bool    `yaml:"log"`
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <csv-file>",
		Short: "Find the minimal order that makes a series stationary",
		Long: `Search for the minimal fractional differencing order at which the series
passes a stationarity test. The grid scan walks candidate orders from --min to
--max in --step increments; --bisect switches to bisection, which assumes
stationarity is monotone in the order.

Search parameters can also come from a YAML config file; explicit flags
override file values.

Example:
  fracdiff search prices.csv --column close --max 1 --step 0.1 --test adf
  fracdiff search prices.csv --config search.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile != "" {
				if err := applyConfigFile(cmd, opts); err != nil {
					return err
				}
			}
			return runSearch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "value column name (default: autodetect)")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "lower bound of the order range")
	cmd.Flags().Float64Var(&opts.Max, "max", 1, "upper bound of the order range")
	cmd.Flags().Float64Var(&opts.Step, "step", 0.1, "grid step between candidate orders")
	cmd.Flags().Float64Var(&opts.Alpha, "alpha", 0.05, "significance level for the stationarity test")
	cmd.Flags().IntVarP(&opts.Window, "window", "w", 10, "window width")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "weight-magnitude tolerance (overrides --window)")
	cmd.Flags().StringVar(&opts.Test, "test", "adf", "stationarity test (adf|kpss|pp|strict)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "parallel candidate evaluations")
	cmd.Flags().BoolVar(&opts.Bisect, "bisect", false, "use bisection instead of the grid scan")
	cmd.Flags().Float64Var(&opts.BisectTol, "bisect-tol", 0.01, "bracket width at which bisection stops")
	cmd.Flags().BoolVar(&opts.Log, "log", false, "apply natural log before differencing")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "YAML config file with search parameters")

	return cmd
}

// applyConfigFile fills options from the YAML file for every flag the user
// did not set explicitly.
func applyConfigFile(cmd *cobra.Command, opts *SearchOptions) error {
	data, err := os.ReadFile(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var file searchFileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", opts.ConfigFile, err)
	}

	flags := cmd.Flags()
	if file.Column != "" && !flags.Changed("column") {
		opts.Column = file.Column
	}
	if file.Min != nil && !flags.Changed("min") {
		opts.Min = *file.Min
	}
	if file.Max != nil && !flags.Changed("max") {
		opts.Max = *file.Max
	}
	if file.Step != nil && !flags.Changed("step") {
		opts.Step = *file.Step
	}
	if file.Alpha != nil && !flags.Changed("alpha") {
		opts.Alpha = *file.Alpha
	}
	if file.Window != nil && !flags.Changed("window") {
		opts.Window = *file.Window
	}
	if file.Tol != nil && !flags.Changed("tol") {
		opts.Tol = *file.Tol
	}
	if file.Test != "" && !flags.Changed("test") {
		opts.Test = file.Test
	}
	if file.Workers != nil && !flags.Changed("workers") {
		opts.Workers = *file.Workers
	}
	if file.Bisect != nil && !flags.Changed("bisect") {
		opts.Bisect = *file.Bisect
	}
	if file.BisectTol != nil && !flags.Changed("bisect-tol") {
		opts.BisectTol = *file.BisectTol
	}
	if file.Log != nil && !flags.Changed("log") {
		opts.Log = *file.Log
	}
	return nil
}

// searchOutput is the JSON shape of the search command output.
type searchOutput struct {
	Order       float64 `json:"order"`
	Window      int     `json:"window"`
	Evaluated   int     `json:"evaluated"`
	Correlation float64 `json:"correlation"`
}

func runSearch(opts *SearchOptions, file string, cmd *cobra.Command) error {
	series, err := loadSeries(file, opts.Column, opts.Log)
	if err != nil {
		return err
	}

	window, err := resolveWindow(opts.Window, opts.Tol)
	if err != nil {
		return err
	}

	oracle, err := oracleFor(opts.Test)
	if err != nil {
		return err
	}

	cfg := &autofdiff.Config{
		Lower:     opts.Min,
		Upper:     opts.Max,
		Step:      opts.Step,
		Window:    window,
		Alpha:     opts.Alpha,
		Workers:   opts.Workers,
		Bisect:    opts.Bisect,
		BisectTol: opts.BisectTol,
	}

	slog.Debug("starting order search",
		"test", opts.Test,
		"lower", cfg.Lower,
		"upper", cfg.Upper,
		"bisect", cfg.Bisect)

	result, err := autofdiff.Find(series, cfg, oracle)
	if err != nil {
		return err
	}

	corr := stats.Correlation(series.Values, result.Diffed.Masked())

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, searchOutput{
			Order:       result.Order,
			Window:      result.Window,
			Evaluated:   result.Evaluated,
			Correlation: corr,
		})
	}

	fmt.Fprintf(out, "order:       %g\n", result.Order)
	fmt.Fprintf(out, "window:      %d\n", result.Window)
	fmt.Fprintf(out, "evaluated:   %d\n", result.Evaluated)
	fmt.Fprintf(out, "correlation: %.4f\n", corr)
	return nil
}

// oracleFor maps a test name onto a stationarity oracle.
func oracleFor(name string) (autofdiff.Oracle, error) {
	switch name {
	case "adf":
		return autofdiff.ADFOracle{}, nil
	case "kpss":
		return autofdiff.KPSSOracle{}, nil
	case "pp":
		return autofdiff.PPOracle{}, nil
	case "strict":
		return autofdiff.StrictOracle{}, nil
	default:
		return nil, fmt.Errorf("unknown stationarity test %q (want adf, kpss, pp or strict)", name)
	}
}
