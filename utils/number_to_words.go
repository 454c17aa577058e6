package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// indianScales are applied largest first: crore, lakh, thousand, hundred.
var indianScales = []struct {
	value int64
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// NumberToWords spells n with Indian grouping; zero yields "".
func NumberToWords(n int64) string {
	if n <= 0 {
		return ""
	}
	var parts []string
	for _, s := range indianScales {
		if n >= s.value {
			parts = append(parts, NumberToWords(n/s.value)+" "+s.name)
			n %= s.value
		}
	}
	switch {
	case n >= 20:
		parts = append(parts, strings.TrimSpace(tens[n/10]+" "+ones[n%10]))
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}

// NumberToCurrencyWords renders an amount as "Rupees ... and ... Paise Only".
func NumberToCurrencyWords(amount float64) string {
	d := decimal.NewFromFloat(amount).Abs().Round(2)
	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var parts []string
	if rupees > 0 {
		parts = append(parts, "Rupees "+NumberToWords(rupees))
	}
	if paise > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, NumberToWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Rupees Zero Only"
	}
	return strings.Join(parts, " ") + " Only"
}
