package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way invoices and the dashboard show it,
// e.g. 1234.5 -> "R$ 1.234,50" and -80 -> "-R$ 80,00".
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	_, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	prefix := "R$ "
	if rounded.IsNegative() {
		prefix = "-R$ "
	}
	return prefix + brlPrinter.Sprintf("%d", rounded.Abs().IntPart()) + "," + frac
}
