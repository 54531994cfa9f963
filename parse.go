package radix

import (
	"fmt"
	"strings"
)

// Supported numeral systems. ParseByRadix accepts exactly these three
// values; any other radix fails with ErrUnsupportedRadix.
const (
	Octal       = 8
	Decimal     = 10
	Hexadecimal = 16
)

// digitAlphabet is the ordered digit set shared by all supported systems.
// The first radix characters form the valid alphabet for that radix.
const digitAlphabet = "0123456789ABCDEF"

// minus is the only sign character recognized, and only under Decimal.
const minus = '-'

// ParseByRadix — textual numeral to 32-bit signed integer.
//
// Description:
//
//	Converts source, a numeral written in the given radix (8, 10, or 16),
//	into its int32 value. Hexadecimal digits are matched case-insensitively.
//	A single leading '-' is honored as a sign under Decimal only; under
//	Octal or Hexadecimal it reaches the digit scan and is rejected there
//	like any other foreign character.
//
// Algorithm Outline:
//  1. Reject an empty source (ErrEmptySource).
//  2. Reject a radix outside {8, 10, 16} (ErrUnsupportedRadix) before any
//     character of source is inspected.
//  3. Uppercase source; record and strip a leading '-' when radix is 10.
//  4. Scan the remaining characters left to right, mapping each through
//     the first radix characters of "0123456789ABCDEF"; any character
//     outside that prefix fails with ErrInvalidDigit.
//  5. Accumulate the weighted sum digit·radix^(L-1-i) in an unsigned
//     32-bit accumulator. Wraparound during accumulation reduces the sum
//     modulo 2^32, which is exactly the truncation step 6 requires.
//  6. Reinterpret the accumulator as int32 (two's complement) and negate
//     if a sign was recorded in step 3.
//
// Magnitudes beyond the signed 32-bit range therefore wrap silently
// instead of erroring:
//
//	ParseByRadix("FFFFFFFF", Hexadecimal)  == -1
//	ParseByRadix("100000000", Hexadecimal) == 0
//
// The wraparound is deliberate, documented behavior.
//
// Errors:
//   - ErrEmptySource      — source is the empty string.
//   - ErrUnsupportedRadix — radix is not 8, 10, or 16.
//   - ErrInvalidDigit     — a character outside the radix's alphabet,
//     a sign under radix 8/16, a second sign, or a bare "-".
//
// Complexity: O(len(source)) time, O(len(source)) transient memory for the
// uppercased copy. Pure function; safe for unsynchronized concurrent use.
func ParseByRadix(source string, radix int) (int32, error) {
	if source == "" {
		return 0, ErrEmptySource
	}
	if radix != Octal && radix != Decimal && radix != Hexadecimal {
		return 0, fmt.Errorf("%w: got %d", ErrUnsupportedRadix, radix)
	}

	digits := strings.ToUpper(source)

	// A leading minus is a sign only in the decimal system.
	negative := false
	if radix == Decimal && digits[0] == minus {
		negative = true
		digits = digits[1:]
		if digits == "" {
			return 0, fmt.Errorf("%w: no digits after sign in %q", ErrInvalidDigit, source)
		}
	}

	alphabet := digitAlphabet[:radix]

	// Weighted sum in a wrapping unsigned accumulator: the alphabet index
	// of each character is its digit value.
	var sum uint32
	for i := 0; i < len(digits); i++ {
		value := strings.IndexByte(alphabet, digits[i])
		if value < 0 {
			return 0, fmt.Errorf("%w: character %q in %q", ErrInvalidDigit, digits[i], source)
		}
		sum = sum*uint32(radix) + uint32(value)
	}

	result := int32(sum)
	if negative {
		result = -result
	}

	return result, nil
}

// ParsePositiveByRadix converts source exactly like ParseByRadix and then
// rejects results whose sign bit is set with ErrNegativeResult. The check
// runs on the parsed value, not on the characters: "FFFFFFFF" under
// Hexadecimal wraps to -1 and is therefore rejected here, even though every
// character is a valid hex digit.
func ParsePositiveByRadix(source string, radix int) (int32, error) {
	value, err := ParseByRadix(source, radix)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %q parses to %d", ErrNegativeResult, source, value)
	}

	return value, nil
}

// ParseFromOctal parses source as an octal numeral.
func ParseFromOctal(source string) (int32, error) {
	return ParseByRadix(source, Octal)
}

// ParseFromDecimal parses source as a decimal numeral, honoring a leading '-'.
func ParseFromDecimal(source string) (int32, error) {
	return ParseByRadix(source, Decimal)
}

// ParseFromHex parses source as a hexadecimal numeral, case-insensitively.
func ParseFromHex(source string) (int32, error) {
	return ParseByRadix(source, Hexadecimal)
}

// ParsePositiveFromOctal parses source as an octal numeral and rejects
// negative (wrapped) results.
func ParsePositiveFromOctal(source string) (int32, error) {
	return ParsePositiveByRadix(source, Octal)
}

// ParsePositiveFromDecimal parses source as a decimal numeral and rejects
// negative results.
func ParsePositiveFromDecimal(source string) (int32, error) {
	return ParsePositiveByRadix(source, Decimal)
}

// ParsePositiveFromHex parses source as a hexadecimal numeral and rejects
// negative (wrapped) results.
func ParsePositiveFromHex(source string) (int32, error) {
	return ParsePositiveByRadix(source, Hexadecimal)
}
