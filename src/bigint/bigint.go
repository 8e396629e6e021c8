// Package bigint is a thin shim around math/big.Int.
//
// rubbishrsa is unpadded, textbook RSA: every primitive below it operates on
// raw non-negative integers, so the rest of the module talks in terms of a
// handful of named operations (modular exponentiation, absolute value,
// decimal/hex parsing and formatting) instead of reaching into math/big
// directly. Keeping them here means there is exactly one place that knows
// how a bigint is rendered on disk or on the wire.
package bigint

import (
	"fmt"
	"math/big"
	"strings"
)

// PowMod returns base^exp mod m. m must be positive.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// Abs returns |x|, leaving x untouched.
func Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

// ParseDecimal parses a base-10 string into a bigint. ok is false if s is not
// a valid decimal integer.
func ParseDecimal(s string) (n *big.Int, ok bool) {
	return new(big.Int).SetString(strings.TrimSpace(s), 10)
}

// FormatDecimal renders n in base 10.
func FormatDecimal(n *big.Int) string {
	return n.String()
}

// ParseHex parses s (no "0x" prefix) as a non-negative hexadecimal integer.
// Surrounding whitespace is trimmed; anything else but hex digits is
// rejected, matching rubbishrsa's hex2bigint.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	if s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("bigint: %q is not a valid hexadecimal integer", s)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("bigint: %q is not a valid hexadecimal integer", s)
	}
	return n, nil
}

// FormatHex renders n in base 16, no "0x" prefix, lowercase.
func FormatHex(n *big.Int) string {
	return n.Text(16)
}
