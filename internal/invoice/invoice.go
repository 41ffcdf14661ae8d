package invoice

import (
	"time"

	"github.com/tiendc/go-deepcopy"

	"github.com/dannykalklus-wq/invoice-app/internal/numeric"
)

// PaymentStatus represents the settlement state of an invoice.
type PaymentStatus string

const (
	StatusUnpaid        PaymentStatus = "Unpaid"
	StatusPartiallyPaid PaymentStatus = "PartiallyPaid"
	StatusPaid          PaymentStatus = "Paid"
)

// Statuses lists every payment status in display order.
func Statuses() []PaymentStatus {
	return []PaymentStatus{StatusUnpaid, StatusPartiallyPaid, StatusPaid}
}

// LineItem is a single billable row on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unitRate"`
}

// SetQuantity coerces raw input into the quantity. Negative and non-finite
// values collapse to zero.
func (it *LineItem) SetQuantity(v any) {
	it.Quantity = nonNegative(numeric.Coerce(v))
}

// SetUnitRate coerces raw input into the unit rate. Negative and non-finite
// values collapse to zero.
func (it *LineItem) SetUnitRate(v any) {
	it.UnitRate = nonNegative(numeric.Coerce(v))
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}

	return f
}

// CompanyProfile is the issuer identity reused across invoices. It is a
// singleton: created with defaults on first run and only ever overwritten.
type CompanyProfile struct {
	LogoURL        string `json:"logoUrl"`
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyAddress string `json:"companyAddress"`
	CompanyTIN     string `json:"companyTin"`
}

// Invoice is a full invoice record. The embedded CompanyProfile is a snapshot
// of the issuer taken at creation or reconciliation time, not a reference to
// the live profile.
type Invoice struct {
	InvoiceNo   string `json:"invoiceNo"`
	InvoiceDate string `json:"invoiceDate"`
	DueDate     string `json:"dueDate"`

	CompanyProfile

	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	Items []LineItem `json:"items"`

	BankDetails       string `json:"bankDetails"`
	AdditionalDetails string `json:"additionalDetails"`
	Terms             string `json:"terms"`

	TaxRate  float64 `json:"taxRate"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`

	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Currency      string        `json:"currency"`
}

// NewDraft creates a fresh draft invoice seeded from the profile, dated today,
// with a single empty line item ready for editing.
func NewDraft(p CompanyProfile, currency string) *Invoice {
	today := time.Now().Format(time.DateOnly)

	return &Invoice{
		InvoiceDate:    today,
		DueDate:        today,
		CompanyProfile: p,
		Items:          []LineItem{{}},
		PaymentStatus:  StatusUnpaid,
		Currency:       currency,
	}
}

// Clone deep-copies the invoice so that edits to the copy never reach the
// original record.
func (inv *Invoice) Clone() *Invoice {
	var out Invoice
	if err := deepcopy.Copy(&out, inv); err != nil {
		// Copy only fails on type mismatches, which cannot happen between two
		// Invoice values. Fall back to a manual copy regardless.
		out = *inv
		out.Items = append([]LineItem(nil), inv.Items...)
	}

	return &out
}

// ApplyProfile merges profile fields into the invoice's issuer snapshot.
// Non-empty profile fields overwrite the snapshot; empty profile fields leave
// the invoice's existing values untouched, so manual edits survive partial
// profile updates. The currency is always overwritten.
func (inv *Invoice) ApplyProfile(p CompanyProfile, currency string) {
	if p.LogoURL != "" {
		inv.LogoURL = p.LogoURL
	}

	if p.CompanyName != "" {
		inv.CompanyName = p.CompanyName
	}

	if p.CompanyEmail != "" {
		inv.CompanyEmail = p.CompanyEmail
	}

	if p.CompanyPhone != "" {
		inv.CompanyPhone = p.CompanyPhone
	}

	if p.CompanyAddress != "" {
		inv.CompanyAddress = p.CompanyAddress
	}

	if p.CompanyTIN != "" {
		inv.CompanyTIN = p.CompanyTIN
	}

	inv.Currency = currency
}
