package view

import (
	"fmt"
	"strings"

	"github.com/dannykalklus-wq/invoice-app/internal/money"
)

// FormatMoney renders an amount in the invoice's currency.
func FormatMoney(amount float64, currency string) string {
	return money.Format(amount, currency)
}

// FormatNumber renders a number without trailing fractional zeros.
func FormatNumber(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", f), "0")
	return strings.TrimRight(s, ".")
}

// Truncate shortens a string to fit a table column.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	if n <= 1 {
		return string(r[:n])
	}

	return string(r[:n-1]) + "…"
}
