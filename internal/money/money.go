// Package money formats rupee amounts for screens and invoices.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with Indian digit grouping and two decimals,
// e.g. 12,34,567.50.
func Format(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Rupees prefixes Format with the rupee sign.
func Rupees(d decimal.Decimal) string { return "₹" + Format(d) }

var (
	ones = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Words spells an amount in Indian numbering (lakh, crore), rounding to paise:
// "One Lakh Twenty Three Thousand Rupees and Fifty Paise Only".
func Words(d decimal.Decimal) string {
	d = d.Abs().Round(2)
	rupees := d.Truncate(0).IntPart()
	paise := d.Sub(d.Truncate(0)).Mul(decimal.NewFromInt(100)).IntPart()

	var b strings.Builder
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(indian(rupees))
	}
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(belowHundred(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

func indian(n int64) string {
	var parts []string
	if n >= 10000000 {
		parts = append(parts, indian(n/10000000), "Crore")
		n %= 10000000
	}
	for _, unit := range []struct {
		size int64
		name string
	}{{100000, "Lakh"}, {1000, "Thousand"}, {100, "Hundred"}} {
		if n >= unit.size {
			parts = append(parts, belowHundred(n/unit.size), unit.name)
			n %= unit.size
		}
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

// Count renders a quantity with Indian digit grouping, e.g. 1,25,000.
func Count(n int) string { return printer.Sprint(number.Decimal(n)) }
