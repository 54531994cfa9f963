// Package radix converts textual numerals in the octal, decimal and
// hexadecimal systems into 32-bit signed integers, with strict validation
// of sign, digit alphabet and radix.
//
// 🚀 What is radix?
//
//	A tiny, pure-Go parsing kernel built around one core routine and a
//	family of thin wrappers:
//	  • ParseByRadix          — the core: string + radix → int32
//	  • ParsePositiveByRadix  — rejects results with the sign bit set
//	  • ParseFrom*/ParsePositiveFrom* — fixed-radix convenience forms
//	  • TryParse*             — non-erroring forms for data-driven input
//
// ✨ Why choose radix?
//
//   - Strict by default – every character is validated against the
//     radix's digit alphabet; stray signs and foreign digits are rejected
//   - Predictable overflow – magnitudes beyond the signed 32-bit range
//     wrap by two's complement instead of erroring, so "FFFFFFFF" in
//     hexadecimal is -1, exactly as a bit reinterpretation would give
//   - Honest error split – configuration mistakes (an unsupported radix)
//     always surface, even from the Try family; only data errors are
//     swallowed into an ok=false result
//   - Pure Go – no cgo, no hidden deps, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/radix"
//
//	n, err := radix.ParseByRadix("-2147483648", radix.Decimal) // n == math.MinInt32
//	p, err := radix.ParsePositiveFromHex("7FFFFFFF")           // p == math.MaxInt32
//
//	if v, ok, err := radix.TryParseByRadix(field, radix.Octal); err != nil {
//	  // unsupported radix: a bug at the call site, not bad data
//	} else if ok {
//	  use(v)
//	}
//
// Performance:
//
//   - Time:   O(len(source))
//   - Memory: O(len(source)) transient (the uppercased scan copy)
//
// See example_test.go for runnable examples and errors.go for the full
// sentinel list.
package radix
