package radix

import "errors"

// The Try family wraps the erroring parse family for data-driven inputs,
// where a malformed numeral is an expected, recoverable condition. Each
// function classifies the outcome of its erroring counterpart — there is no
// second validation path — into one of three shapes:
//
//	(value, true, nil) — source parsed successfully
//	(0, false, nil)    — source is not a valid numeral; carry on
//	(0, false, err)    — the radix itself is unsupported; fix the caller
//
// The asymmetry is the contract: ErrUnsupportedRadix is a programming
// error and always propagates, while format failures (empty source, foreign
// characters, a negative result in the positive-only forms) collapse into
// ok=false with a zero value.

// TryParseByRadix is the non-erroring form of ParseByRadix.
func TryParseByRadix(source string, radix int) (value int32, ok bool, err error) {
	return try(ParseByRadix(source, radix))
}

// TryParsePositiveByRadix is the non-erroring form of ParsePositiveByRadix;
// a negative parsed value is swallowed like any other format failure.
func TryParsePositiveByRadix(source string, radix int) (value int32, ok bool, err error) {
	return try(ParsePositiveByRadix(source, radix))
}

// TryParseFromOctal parses source as an octal numeral, never erroring on data.
func TryParseFromOctal(source string) (int32, bool, error) {
	return TryParseByRadix(source, Octal)
}

// TryParseFromDecimal parses source as a decimal numeral, never erroring on data.
func TryParseFromDecimal(source string) (int32, bool, error) {
	return TryParseByRadix(source, Decimal)
}

// TryParseFromHex parses source as a hexadecimal numeral, never erroring on data.
func TryParseFromHex(source string) (int32, bool, error) {
	return TryParseByRadix(source, Hexadecimal)
}

// TryParsePositiveFromOctal parses source as an octal numeral, reporting
// negative (wrapped) results as ok=false.
func TryParsePositiveFromOctal(source string) (int32, bool, error) {
	return TryParsePositiveByRadix(source, Octal)
}

// TryParsePositiveFromDecimal parses source as a decimal numeral, reporting
// negative results as ok=false.
func TryParsePositiveFromDecimal(source string) (int32, bool, error) {
	return TryParsePositiveByRadix(source, Decimal)
}

// TryParsePositiveFromHex parses source as a hexadecimal numeral, reporting
// negative (wrapped) results as ok=false.
func TryParsePositiveFromHex(source string) (int32, bool, error) {
	return TryParsePositiveByRadix(source, Hexadecimal)
}

// try classifies an outcome of the erroring parse family: configuration
// errors propagate, every format error collapses into ok=false.
func try(value int32, err error) (int32, bool, error) {
	switch {
	case err == nil:
		return value, true, nil
	case errors.Is(err, ErrUnsupportedRadix):
		return 0, false, err
	default:
		return 0, false, nil
	}
}
