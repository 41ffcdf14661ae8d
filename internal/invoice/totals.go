package invoice

import (
	"github.com/dannykalklus-wq/invoice-app/internal/numeric"
)

// Totals holds the derived financial summary of an invoice.
type Totals struct {
	Subtotal float64
	VAT      float64
	Total    float64
}

// Amount returns the line total for the item.
func (it LineItem) Amount() float64 {
	return numeric.Coerce(it.Quantity) * numeric.Coerce(it.UnitRate)
}

// ComputeTotals derives subtotal, VAT and grand total from the invoice's
// financial fields. VAT is computed from the full subtotal; the discount is
// subtracted from the grand total only, after VAT. The order is fixed:
//
//	subtotal = Σ quantity*rate
//	vat      = subtotal * taxRate/100
//	total    = subtotal - discount + vat + shipping
//
// With no items the total is -discount + shipping, which may be negative; no
// clamping is applied.
func ComputeTotals(inv *Invoice) Totals {
	var subtotal float64
	for _, it := range inv.Items {
		subtotal += it.Amount()
	}

	vat := subtotal * numeric.Coerce(inv.TaxRate) / 100
	total := subtotal - numeric.Coerce(inv.Discount) + vat + numeric.Coerce(inv.Shipping)

	return Totals{Subtotal: subtotal, VAT: vat, Total: total}
}
