package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dannykalklus-wq/invoice-app/internal/export"
	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateSearch
)

// InvoicesModel lists the saved collection with live free-text search.
type InvoicesModel struct {
	CommonModel
	svc       *invoice.Service
	exportSvc *export.Service
	exportDir string

	state invoicesState
	table table.Model

	search   textinput.Model
	all      []invoice.Invoice
	filtered []invoice.Invoice

	status string
}

func NewInvoicesModel(svc *invoice.Service, exportSvc *export.Service, exportDir string) InvoicesModel {
	columns := []table.Column{
		{Title: "No", Width: 12},
		{Title: "Date", Width: 12},
		{Title: "Due", Width: 12},
		{Title: "Client", Width: 24},
		{Title: "Status", Width: 14},
		{Title: "Total", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "invoice no, client, status, date..."
	ti.Width = 40

	m := InvoicesModel{
		svc:       svc,
		exportSvc: exportSvc,
		exportDir: exportDir,
		table:     t,
		search:    ti,
	}
	m.reload()

	return m
}

func (m InvoicesModel) Title() string { return "Invoices" }

func (m InvoicesModel) ShortHelp() string {
	if m.state == invoicesStateSearch {
		return "Type to filter | Enter/Esc: done"
	}

	return "Esc: back | /: search | Enter: edit | d: delete | x: export PDF | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return nil
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.status = "Exported to " + msg.path
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 10)

		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateSearch:
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "/":
			m.state = invoicesStateSearch
			m.table.Blur()

			return m, m.search.Focus()
		case "r":
			m.reload()
			return m, nil
		case "d":
			return m.deleteSelected()
		case "x":
			return m.exportSelected()
		case "enter":
			return m.editSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.state = invoicesStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()

	return m, cmd
}

func (m *InvoicesModel) reload() {
	m.all = m.svc.Collection()
	m.applySearch()
}

func (m *InvoicesModel) applySearch() {
	m.filtered = invoice.Search(m.all, m.search.Value())
	m.refreshTable()
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.filtered))

	for i := range m.filtered {
		rec := &m.filtered[i]
		totals := invoice.ComputeTotals(rec)

		rows = append(rows, table.Row{
			rec.InvoiceNo,
			rec.InvoiceDate,
			rec.DueDate,
			Truncate(rec.ClientName, 24),
			string(rec.PaymentStatus),
			FormatMoney(totals.Total, rec.Currency),
		})
	}

	m.table.SetRows(rows)
}

func (m InvoicesModel) selected() *invoice.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}

	return &m.filtered[idx]
}

func (m InvoicesModel) deleteSelected() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}

	m.svc.Delete(context.Background(), rec.InvoiceNo)
	m.status = fmt.Sprintf("Deleted invoice %s.", rec.InvoiceNo)
	m.reload()

	return m, nil
}

func (m InvoicesModel) editSelected() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}

	draft, err := m.svc.OpenForEdit(rec.InvoiceNo)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	return m, func() tea.Msg {
		return EditRequestedMsg{Draft: draft}
	}
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m InvoicesModel) exportSelected() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}

	inv := rec.Clone()
	m.status = fmt.Sprintf("Exporting invoice %s...", inv.InvoiceNo)

	return m, func() tea.Msg {
		path, err := m.exportSvc.Export(inv, m.exportDir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m InvoicesModel) View() string {
	searchLine := "Search: " + m.search.View()

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(searchLine),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%d of %d invoices", len(m.filtered), len(m.all))),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
