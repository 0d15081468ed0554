package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalDivisibility is the number of fractional digits of ledger
// decimals.
const DecimalDivisibility = 18

// StringToDecimal parses a ledger decimal, failing on anything that does not
// fit 18 fractional digits.
func StringToDecimal(input string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing decimal %q: %w", input, err)
	}
	if d.Exponent() < -DecimalDivisibility && !d.Equal(d.Truncate(DecimalDivisibility)) {
		return decimal.Zero, fmt.Errorf("decimal %q has more than %d fractional digits", input, DecimalDivisibility)
	}
	return d, nil
}

// ClampedToZero returns d, or zero when d is negative.
func ClampedToZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SumDecimals adds all values up.
func SumDecimals(values ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, values...)
}

// MulDivDecimal computes a * b / c at ledger precision, returning zero when
// c is zero.
func MulDivDecimal(a, b, c decimal.Decimal) decimal.Decimal {
	if c.IsZero() {
		return decimal.Zero
	}
	return a.Mul(b).DivRound(c, DecimalDivisibility)
}

// FormatAmount renders d with at most maxDecimals fractional digits and no
// trailing zeros.
// Example:
// - FormatAmount(1.2300, 4) = "1.23"
// - FormatAmount(0.123456789, 4) = "0.1235"
func FormatAmount(d decimal.Decimal, maxDecimals int32) string {
	s := d.Round(maxDecimals).StringFixed(maxDecimals)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
