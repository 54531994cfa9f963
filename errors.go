package radix

import "errors"

var (
	// ErrUnsupportedRadix indicates a radix outside {8, 10, 16}. This is a
	// configuration error: it is never swallowed, not even by the Try family.
	ErrUnsupportedRadix = errors.New("radix: radix must be 8, 10, or 16")

	// ErrEmptySource indicates an empty source string.
	ErrEmptySource = errors.New("radix: source must be non-empty")

	// ErrInvalidDigit indicates a character outside the digit alphabet of the
	// requested radix, including stray or misplaced sign characters.
	ErrInvalidDigit = errors.New("radix: source does not represent a valid number in the given numeral system")

	// ErrNegativeResult indicates that a positive-only variant parsed a value
	// whose sign bit is set.
	ErrNegativeResult = errors.New("radix: source does not represent a positive number")
)
