package view

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
	"github.com/dannykalklus-wq/invoice-app/internal/numeric"
)

type editorStep int

const (
	editorStepDetails editorStep = iota
	editorStepClient
	editorStepItems
	editorStepExtras
	editorStepSummary
	editorStepSaved
)

var currencyCodes = []string{
	"USD", "EUR", "GBP", "NGN", "GHS", "KES", "ZAR", "INR", "JPY", "CAD", "AUD",
}

// EditorModel drives the multi-step invoice editor. The draft is persisted
// after every completed step, and totals are recomputed on every render.
type EditorModel struct {
	CommonModel
	svc   *invoice.Service
	draft *invoice.Invoice

	step editorStep
	form *huh.Form

	itemIdx int

	// Form bindings for coerced numeric fields.
	formQty      string
	formRate     string
	formTax      string
	formDiscount string
	formShipping string

	formStatus   string
	formCurrency string
	addMore      bool
	confirmSave  bool

	status string
}

func NewEditorModel(svc *invoice.Service, draft *invoice.Invoice) EditorModel {
	if len(draft.Items) == 0 {
		draft.Items = []invoice.LineItem{{}}
	}

	m := EditorModel{
		svc:          svc,
		draft:        draft,
		step:         editorStepDetails,
		formStatus:   string(draft.PaymentStatus),
		formCurrency: draft.Currency,
	}
	m.form = m.buildDetailsForm()

	return m
}

func (m EditorModel) Title() string { return "Edit Invoice" }

func (m EditorModel) ShortHelp() string {
	switch m.step {
	case editorStepSaved:
		return "Esc: back to menu"
	default:
		return "Navigate form | Esc: previous step"
	}
}

func (m EditorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.stepBack()
	}

	if m.step == editorStepSaved {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.stepForward()
}

func (m EditorModel) stepBack() (tea.Model, tea.Cmd) {
	switch m.step {
	case editorStepDetails:
		return m, Back
	case editorStepClient:
		m.step = editorStepDetails
		m.form = m.buildDetailsForm()
	case editorStepItems:
		m.step = editorStepClient
		m.form = m.buildClientForm()
	case editorStepExtras:
		m.step = editorStepItems
		m.itemIdx = 0
		m.loadItem()
		m.form = m.buildItemForm()
	case editorStepSummary:
		m.step = editorStepExtras
		m.form = m.buildExtrasForm()
	case editorStepSaved:
		return m, Back
	}

	return m, m.form.Init()
}

func (m EditorModel) stepForward() (tea.Model, tea.Cmd) {
	switch m.step {
	case editorStepDetails:
		m.draft.PaymentStatus = invoice.PaymentStatus(m.form.GetString("status"))

		if currency := m.form.GetString("currency"); currency != m.draft.Currency {
			// Currency changes re-run profile reconciliation.
			m.svc.SetCurrency(m.draft, currency)
		} else {
			m.svc.SaveDraft(m.draft)
		}

		m.step = editorStepClient
		m.form = m.buildClientForm()

	case editorStepClient:
		m.svc.SaveDraft(m.draft)
		m.step = editorStepItems
		m.itemIdx = 0
		m.loadItem()
		m.form = m.buildItemForm()

	case editorStepItems:
		m.storeItem()
		m.svc.SaveDraft(m.draft)

		if m.form.GetBool("add_more") {
			m.itemIdx++
			if m.itemIdx >= len(m.draft.Items) {
				m.draft.Items = append(m.draft.Items, invoice.LineItem{})
			}

			m.loadItem()
			m.form = m.buildItemForm()

			break
		}

		m.step = editorStepExtras
		m.formTax = FormatNumber(m.draft.TaxRate)
		m.formDiscount = FormatNumber(m.draft.Discount)
		m.formShipping = FormatNumber(m.draft.Shipping)
		m.form = m.buildExtrasForm()

	case editorStepExtras:
		m.draft.TaxRate = numeric.Coerce(m.form.GetString("tax_rate"))
		m.draft.Discount = numeric.Coerce(m.form.GetString("discount"))
		m.draft.Shipping = numeric.Coerce(m.form.GetString("shipping"))
		m.svc.SaveDraft(m.draft)
		m.step = editorStepSummary
		m.confirmSave = true
		m.form = m.buildSummaryForm()

	case editorStepSummary:
		if !m.form.GetBool("save") {
			return m, Back
		}

		m.svc.Upsert(context.Background(), m.draft)
		m.status = fmt.Sprintf("Invoice %s saved.", m.draft.InvoiceNo)
		m.step = editorStepSaved

		return m, nil
	}

	return m, m.form.Init()
}

func (m *EditorModel) loadItem() {
	it := m.draft.Items[m.itemIdx]
	m.formQty = FormatNumber(it.Quantity)
	m.formRate = FormatNumber(it.UnitRate)
	m.addMore = false
}

func (m *EditorModel) storeItem() {
	it := &m.draft.Items[m.itemIdx]
	it.Description = m.form.GetString("description")
	it.SetQuantity(m.form.GetString("quantity"))
	it.SetUnitRate(m.form.GetString("rate"))
}

func (m EditorModel) buildDetailsForm() *huh.Form {
	statusOpts := make([]huh.Option[string], 0, len(invoice.Statuses()))
	for _, st := range invoice.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(string(st), string(st)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("invoice_no").
				Title("Invoice No").
				Value(&m.draft.InvoiceNo).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("invoice number cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("invoice_date").
				Title("Invoice Date").
				Placeholder("2026-01-31").
				Value(&m.draft.InvoiceDate),

			huh.NewInput().
				Key("due_date").
				Title("Due Date").
				Placeholder("2026-02-28").
				Value(&m.draft.DueDate),

			huh.NewSelect[string]().
				Key("status").
				Title("Payment Status").
				Options(statusOpts...).
				Value(&m.formStatus),

			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(currencyOptions(m.draft.Currency)...).
				Value(&m.formCurrency),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EditorModel) buildClientForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("client_name").Title("Client Name").Value(&m.draft.ClientName),
			huh.NewInput().Key("client_email").Title("Client Email").Value(&m.draft.ClientEmail),
			huh.NewInput().Key("client_phone").Title("Client Phone").Value(&m.draft.ClientPhone),
			huh.NewInput().Key("client_address").Title("Client Address").Value(&m.draft.ClientAddress),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EditorModel) buildItemForm() *huh.Form {
	it := &m.draft.Items[m.itemIdx]

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title(fmt.Sprintf("Item %d Description", m.itemIdx+1)).
				Value(&it.Description),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Placeholder("1").
				Value(&m.formQty),

			huh.NewInput().
				Key("rate").
				Title("Unit Rate").
				Placeholder("0.00").
				Value(&m.formRate),

			huh.NewConfirm().
				Key("add_more").
				Title("Add another item?").
				Value(&m.addMore),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EditorModel) buildExtrasForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("tax_rate").Title("Tax Rate (%)").Value(&m.formTax),
			huh.NewInput().Key("discount").Title("Discount").Value(&m.formDiscount),
			huh.NewInput().Key("shipping").Title("Shipping").Value(&m.formShipping),
			huh.NewInput().Key("bank_details").Title("Bank Details").Value(&m.draft.BankDetails),
			huh.NewInput().Key("additional").Title("Additional Details").Value(&m.draft.AdditionalDetails),
			huh.NewInput().Key("terms").Title("Terms & Conditions").Value(&m.draft.Terms),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EditorModel) buildSummaryForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("save").
				Title("Save invoice to collection?").
				Value(&m.confirmSave),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EditorModel) View() string {
	totals := invoice.ComputeTotals(m.draft)

	totalsLine := fmt.Sprintf(
		"Subtotal: %s   VAT: %s   Total: %s",
		FormatMoney(totals.Subtotal, m.draft.Currency),
		FormatMoney(totals.VAT, m.draft.Currency),
		FormatMoney(totals.Total, m.draft.Currency),
	)

	if m.step == editorStepSaved {
		return lipgloss.NewStyle().Padding(2).Render(
			m.status + "\n\n" + totalsLine + "\n\n(Esc to back)",
		)
	}

	var header string

	switch m.step {
	case editorStepDetails:
		header = "Invoice Details"
	case editorStepClient:
		header = "Client Details"
	case editorStepItems:
		header = fmt.Sprintf("Line Items (%d)", len(m.draft.Items))
	case editorStepExtras:
		header = "Adjustments & Notes"
	case editorStepSummary:
		header = "Review & Save"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(header),
		m.form.View(),
		lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(totalsLine),
	)

	if m.step == editorStepItems || m.step == editorStepSummary {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.itemsTable())
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m EditorModel) itemsTable() string {
	var b strings.Builder

	for i, it := range m.draft.Items {
		fmt.Fprintf(&b, "%d. %-30s %8s x %10s = %s\n",
			i+1,
			Truncate(it.Description, 30),
			FormatNumber(it.Quantity),
			FormatMoney(it.UnitRate, m.draft.Currency),
			FormatMoney(it.Amount(), m.draft.Currency),
		)
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(b.String())
}

func currencyOptions(current string) []huh.Option[string] {
	codes := currencyCodes
	if current != "" && !contains(codes, current) {
		codes = append([]string{current}, codes...)
	}

	opts := make([]huh.Option[string], 0, len(codes))
	for _, c := range codes {
		opts = append(opts, huh.NewOption(c, c))
	}

	return opts
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
