package radix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radix"
)

// TestTryParseByRadix_Success verifies the (value, true, nil) shape for
// valid numerals.
func TestTryParseByRadix_Success(t *testing.T) {
	value, ok, err := radix.TryParseByRadix("-2147483648", radix.Decimal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(math.MinInt32), value)

	value, ok, err = radix.TryParseByRadix("ff", radix.Hexadecimal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(255), value)
}

// TestTryParseByRadix_FormatFailure verifies that data errors are swallowed
// into (0, false, nil): bad characters and empty input never error here.
func TestTryParseByRadix_FormatFailure(t *testing.T) {
	cases := []struct {
		name   string
		source string
		radix  int
	}{
		{"Word", "XYZ", radix.Decimal},
		{"Empty", "", radix.Decimal},
		{"OctalEight", "8", radix.Octal},
		{"SignUnderHex", "-FF", radix.Hexadecimal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok, err := radix.TryParseByRadix(tc.source, tc.radix)
			require.NoError(t, err, "format failures must not surface as errors")
			assert.False(t, ok, "TryParseByRadix(%q, %d)", tc.source, tc.radix)
			assert.Equal(t, int32(0), value, "failed parses must report a zero value")
		})
	}
}

// TestTryParseByRadix_UnsupportedRadix verifies the asymmetric contract: a
// bad radix is a configuration error and must surface even from the Try
// family, never collapse into ok=false.
func TestTryParseByRadix_UnsupportedRadix(t *testing.T) {
	value, ok, err := radix.TryParseByRadix("123", 5)
	assert.ErrorIs(t, err, radix.ErrUnsupportedRadix, "radix 5 must error, not fail softly")
	assert.False(t, ok)
	assert.Equal(t, int32(0), value)
}

// TestTryParsePositiveByRadix verifies that the positive-only Try form
// swallows negative results like any other format failure while still
// surfacing configuration errors.
func TestTryParsePositiveByRadix(t *testing.T) {
	value, ok, err := radix.TryParsePositiveByRadix("7FFFFFFF", radix.Hexadecimal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), value)

	value, ok, err = radix.TryParsePositiveByRadix("FFFFFFFF", radix.Hexadecimal)
	require.NoError(t, err, "a wrapped negative is a data condition, not an error")
	assert.False(t, ok)
	assert.Equal(t, int32(0), value)

	_, ok, err = radix.TryParsePositiveByRadix("1", 9)
	assert.ErrorIs(t, err, radix.ErrUnsupportedRadix)
	assert.False(t, ok)
}

// TestTryFixedRadixWrappers spot-checks the fixed-radix Try forms: correct
// delegation per system, soft failure on data, zero value on failure.
func TestTryFixedRadixWrappers(t *testing.T) {
	value, ok, err := radix.TryParseFromOctal("17")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(15), value)

	value, ok, err = radix.TryParseFromDecimal("-17")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(-17), value)

	value, ok, err = radix.TryParseFromHex("beef")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(48879), value)

	_, ok, err = radix.TryParsePositiveFromDecimal("-17")
	require.NoError(t, err)
	assert.False(t, ok, "negative input must fail the positive-only form softly")

	_, ok, err = radix.TryParsePositiveFromOctal("9")
	require.NoError(t, err)
	assert.False(t, ok, "9 is not an octal digit")

	value, ok, err = radix.TryParsePositiveFromHex("7fffffff")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), value)
}
