// Package money renders amounts as localized currency strings.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dannykalklus-wq/invoice-app/internal/numeric"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount in the given ISO 4217 currency, coercing the amount
// first. Unknown currency codes fall back to a plain "amount CODE" string
// instead of erroring.
func Format(amount any, code string) string {
	amt := numeric.Coerce(amount)

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return strings.TrimSpace(fmt.Sprintf("%.2f %s", amt, strings.ToUpper(strings.TrimSpace(code))))
	}

	return printer.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amt)))
}
