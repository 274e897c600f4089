package service

import (
	"math"
	"strconv"
	"strings"
)

// FormatCOP renders an amount as whole Colombian pesos with dot thousand
// separators, e.g. "$ 1.500.000". Amounts are rounded to the peso; COP has
// no decimal places in this app.
func FormatCOP(amount float64) string {
	negative := amount < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(amount))), 10)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("$ ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
