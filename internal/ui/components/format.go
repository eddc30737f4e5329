package components

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	var result []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, c)
	}
	return sign + string(result)
}

// FormatMoney formats an amount as dollars with grouped thousands and cents.
func FormatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, FormatNumber(int(whole.IntPart())), cents)
}
