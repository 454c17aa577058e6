package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ToPaise converts a rupee amount to integer paise, rounding half away from zero.
func ToPaise(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
}

// FormatINR formats a rupee amount with the INR symbol, lakh/crore digit
// grouping and two decimals: 1234567.5 -> ₹12,34,567.50.
func FormatINR(amount float64) string {
	return formatPaise(money.New(ToPaise(amount), money.INR))
}

// FormatINRDecimal formats an exact decimal amount.
func FormatINRDecimal(amount decimal.Decimal) string {
	return formatPaise(money.New(amount.Round(2).Shift(2).IntPart(), money.INR))
}

func formatPaise(m *money.Money) string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
		m = m.Absolute()
	}
	fixed := decimal.New(m.Amount(), -2).StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + m.Currency().Grapheme + groupIndian(whole) + "." + frac
}

// groupIndian puts a comma after the last three digits and then after every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
