// Command fracdiff computes fractional differentiation of time series and
// searches for the minimal order that makes a series stationary.
package main

import (
	"fmt"
	"os"

	"github.com/sartorproj/fracdiff/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
