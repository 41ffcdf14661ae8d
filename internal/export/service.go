// Package export renders invoices into print-ready PDF documents.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
	"github.com/dannykalklus-wq/invoice-app/internal/money"
)

const (
	pageMargin  = 15.0
	tableWidth  = 180.0
	descWidth   = 90.0
	numColWidth = 30.0
)

// Service renders invoices to PDF. Rendering consumes the invoice record and
// its derived totals only; it never mutates the draft or the collection.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Export renders the invoice into outputDir/invoice-<no>.pdf and returns the
// written path.
func (s *Service) Export(inv *invoice.Invoice, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	s.renderHeader(pdf, inv)
	s.renderParties(pdf, inv)
	s.renderItems(pdf, inv)
	s.renderTotals(pdf, inv)
	s.renderFooter(pdf, inv)

	path := filepath.Join(outputDir, fmt.Sprintf("invoice-%s.pdf", fileSafe(inv.InvoiceNo)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}

	return path, nil
}

func (s *Service) renderHeader(pdf *gofpdf.Fpdf, inv *invoice.Invoice) {
	if inv.LogoURL != "" {
		if _, err := os.Stat(inv.LogoURL); err == nil {
			pdf.ImageOptions(inv.LogoURL, pageMargin, pageMargin, 30, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.SetY(pageMargin + 18)
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(110, 8, inv.CompanyName, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(70, 8, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)

	for _, line := range []string{inv.CompanyAddress, inv.CompanyEmail, inv.CompanyPhone} {
		if line == "" {
			continue
		}

		pdf.CellFormat(110, 4.5, line, "", 1, "L", false, 0, "")
	}

	if inv.CompanyTIN != "" {
		pdf.CellFormat(110, 4.5, "TIN: "+inv.CompanyTIN, "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func (s *Service) renderParties(pdf *gofpdf.Fpdf, inv *invoice.Invoice) {
	top := pdf.GetY()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	for _, line := range []string{inv.ClientName, inv.ClientAddress, inv.ClientEmail, inv.ClientPhone} {
		if line == "" {
			continue
		}

		pdf.CellFormat(90, 4.5, line, "", 1, "L", false, 0, "")
	}

	bottom := pdf.GetY()

	pdf.SetY(top)
	pdf.SetX(pageMargin + 110)
	pdf.SetFont("Helvetica", "", 9)

	meta := [][2]string{
		{"Invoice No", inv.InvoiceNo},
		{"Invoice Date", inv.InvoiceDate},
		{"Due Date", inv.DueDate},
		{"Status", string(inv.PaymentStatus)},
	}

	for _, kv := range meta {
		pdf.SetX(pageMargin + 110)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(30, 4.5, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(40, 4.5, kv[1], "", 1, "L", false, 0, "")
	}

	if pdf.GetY() > bottom {
		bottom = pdf.GetY()
	}

	pdf.SetY(bottom + 6)
}

func (s *Service) renderItems(pdf *gofpdf.Fpdf, inv *invoice.Invoice) {
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)

	pdf.CellFormat(descWidth, 7, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(numColWidth, 7, "Qty", "", 0, "R", true, 0, "")
	pdf.CellFormat(numColWidth, 7, "Rate", "", 0, "R", true, 0, "")
	pdf.CellFormat(numColWidth, 7, "Amount", "", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)

	for _, it := range inv.Items {
		pdf.CellFormat(descWidth, 6, it.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(numColWidth, 6, trimZeros(it.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(numColWidth, 6, money.Format(it.UnitRate, inv.Currency), "B", 0, "R", false, 0, "")
		pdf.CellFormat(numColWidth, 6, money.Format(it.Amount(), inv.Currency), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
}

func (s *Service) renderTotals(pdf *gofpdf.Fpdf, inv *invoice.Invoice) {
	totals := invoice.ComputeTotals(inv)

	rows := [][2]string{
		{"Subtotal", money.Format(totals.Subtotal, inv.Currency)},
		{"Discount", money.Format(inv.Discount, inv.Currency)},
		{fmt.Sprintf("VAT (%s%%)", trimZeros(inv.TaxRate)), money.Format(totals.VAT, inv.Currency)},
		{"Shipping", money.Format(inv.Shipping, inv.Currency)},
	}

	pdf.SetFont("Helvetica", "", 9)

	for _, kv := range rows {
		pdf.SetX(pageMargin + descWidth + numColWidth)
		pdf.CellFormat(numColWidth, 5.5, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(numColWidth, 5.5, kv[1], "", 1, "R", false, 0, "")
	}

	pdf.SetX(pageMargin + descWidth + numColWidth)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(numColWidth, 7, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(numColWidth, 7, money.Format(totals.Total, inv.Currency), "T", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (s *Service) renderFooter(pdf *gofpdf.Fpdf, inv *invoice.Invoice) {
	sections := [][2]string{
		{"Bank Details", inv.BankDetails},
		{"Additional Details", inv.AdditionalDetails},
		{"Terms & Conditions", inv.Terms},
	}

	for _, sec := range sections {
		if sec[1] == "" {
			continue
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(tableWidth, 5, sec[0], "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(tableWidth, 4.5, sec[1], "", "L", false)
		pdf.Ln(2)
	}
}

// trimZeros formats a float without trailing fractional zeros (2 not 2.00).
func trimZeros(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", f), "0")
	return strings.TrimRight(s, ".")
}

// fileSafe makes an invoice number usable as a file name component.
func fileSafe(invoiceNo string) string {
	s := strings.TrimSpace(invoiceNo)
	if s == "" {
		return "draft"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
