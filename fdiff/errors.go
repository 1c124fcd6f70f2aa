package fdiff

import "errors"

var (
	// ErrInvalidOrder reports a non-finite differencing order.
	ErrInvalidOrder = errors.New("fdiff: order must be a finite number")

	// ErrInvalidWindow reports a window width below 1 or a non-positive tolerance.
	ErrInvalidWindow = errors.New("fdiff: window width must be >= 1 or tolerance > 0")

	// ErrSeriesTooShort reports a series with fewer observations than the
	// resolved window width. Every output would be undefined, so the transform
	// refuses rather than returning an all-undefined result.
	ErrSeriesTooShort = errors.New("fdiff: series shorter than window width")

	// ErrWindowUnbounded reports a tolerance that the weight tail does not meet
	// within the window cap. This happens for negative orders (fractional
	// integration), where the weight magnitudes decay very slowly or not at all.
	ErrWindowUnbounded = errors.New("fdiff: weight magnitudes do not decay below tolerance within the window cap")
)
