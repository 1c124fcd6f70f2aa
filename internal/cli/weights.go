package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sartorproj/fracdiff/fdiff"
)

// WeightsOptions holds flags for the weights command.
type WeightsOptions struct {
	*RootOptions
	Window int
	Tol    float64
}

// NewWeightsCommand creates the weights command.
func NewWeightsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WeightsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "weights <order>",
		Short: "Print the truncated differencing weights for an order",
		Long: `Print the convolution weights of the fractional differencing operator
(1-L)^order under the chosen truncation policy.

Example:
  fracdiff weights 0.5 --window 10
  fracdiff weights 0.5 --tol 1e-4 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeights(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Window, "window", "w", 10, "number of weights to generate")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "weight-magnitude tolerance (overrides --window)")

	return cmd
}

// weightsOutput is the JSON shape of the weights command output.
type weightsOutput struct {
	Order   float64   `json:"order"`
	Width   int       `json:"width"`
	Weights []float64 `json:"weights"`
}

func runWeights(opts *WeightsOptions, orderArg string, cmd *cobra.Command) error {
	order, err := strconv.ParseFloat(orderArg, 64)
	if err != nil {
		return fmt.Errorf("invalid order %q: %w", orderArg, err)
	}

	window, err := resolveWindow(opts.Window, opts.Tol)
	if err != nil {
		return err
	}

	weights, err := fdiff.Weights(order, window)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, weightsOutput{
			Order:   order,
			Width:   len(weights),
			Weights: weights,
		})
	}

	for i, w := range weights {
		fmt.Fprintf(out, "w[%d] = %g\n", i, w)
	}
	return nil
}
