package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount with Indonesian separators: "Rp 1.250.000".
func FormatRupiah(d decimal.Decimal) string {
	return "Rp " + FormatAngka(d)
}

// FormatAngka groups thousands with "." and uses "," for cents.
func FormatAngka(d decimal.Decimal) string {
	neg := d.IsNegative()
	d = d.Abs().Round(2)
	whole := d.Truncate(0)
	frac := d.Sub(whole)

	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if !frac.IsZero() {
		out += "," + strings.TrimPrefix(frac.String(), "0.")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount reads a form value into a decimal. Empty input counts as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
