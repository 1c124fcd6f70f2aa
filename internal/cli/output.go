package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sartorproj/fracdiff/fdiff"
)

// resolveWindow maps the --window/--tol flag pair onto a truncation policy.
func resolveWindow(width int, tol float64) (fdiff.Window, error) {
	if tol > 0 {
		return fdiff.TolWindow(tol), nil
	}
	if width < 1 {
		return fdiff.Window{}, errors.New("window width must be >= 1")
	}
	return fdiff.FixedWindow(width), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
