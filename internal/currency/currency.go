// Package currency renders and parses Tanzanian Shilling amounts.
// Formatting follows the register display convention: grouped integer part,
// zero minimum and two maximum fraction digits ("TSh 2,500", "TSh 2,500.57").
package currency

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const symbol = "TSh"

var printer = message.NewPrinter(language.English)

// Format renders an amount as a localized TZS string. Fraction digits are
// trimmed to at most two and omitted entirely for whole amounts. Never fails
// for any decimal input.
func Format(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs().Round(2)

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	// Grouped integer digits via x/text ("1,234,567")
	grouped := printer.Sprintf("%d", intPart.IntPart())

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(symbol)
	b.WriteString(" ")
	b.WriteString(grouped)

	if !frac.IsZero() {
		// frac is in [0.01, 0.99] after rounding; render without the leading "0"
		fracStr := frac.StringFixed(2) // "0.50"
		fracStr = strings.TrimRight(fracStr[1:], "0")
		b.WriteString(fracStr)
	}
	return b.String()
}

// FormatFloat renders a float64 amount. NaN and infinities render as the
// bare symbol rather than panicking.
func FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return symbol + " 0"
	}
	return Format(decimal.NewFromFloat(amount))
}

// Parse strips everything except digits, minus sign, and decimal point, then
// parses the remainder. Returns NaN when no numeric content is left — callers
// are expected to guard against it.
func Parse(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
