package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dannykalklus-wq/invoice-app/internal/export"
	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

type exportState int

const (
	exportStatePick exportState = iota
	exportStateExporting
	exportStateResult
)

const draftKey = "(current draft)"

// ExportModel renders a chosen invoice to PDF. Export failures are shown to
// the user; the draft and collection are never touched.
type ExportModel struct {
	CommonModel
	exportSvc *export.Service
	svc       *invoice.Service
	draft     *invoice.Invoice

	state   exportState
	form    *huh.Form
	spinner spinner.Model

	path string
	err  error
}

func NewExportModel(exportSvc *export.Service, svc *invoice.Service, draft *invoice.Invoice, defaultDir string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportSvc: exportSvc,
		svc:       svc,
		draft:     draft,
		state:     exportStatePick,
		spinner:   s,
	}
	m.form = m.buildForm(defaultDir)

	return m
}

func (m ExportModel) Title() string { return "Export PDF" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStatePick:
		return m.updatePick(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	target := m.resolveTarget(m.form.GetString("invoice"))
	if target == nil {
		m.err = invoice.ErrNotFound
		m.state = exportStateResult

		return m, nil
	}

	m.state = exportStateExporting

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(target, m.form.GetString("path")))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportDoneMsg); ok {
		m.state = exportStateResult
		m.path = result.path
		m.err = result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) resolveTarget(choice string) *invoice.Invoice {
	if choice == draftKey {
		return m.draft.Clone()
	}

	rec, err := invoice.FindByKey(m.svc.Collection(), choice)
	if err != nil {
		return nil
	}

	return rec
}

func (m ExportModel) runExportCmd(inv *invoice.Invoice, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := m.exportSvc.Export(inv, dir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m ExportModel) buildForm(defaultDir string) *huh.Form {
	opts := []huh.Option[string]{huh.NewOption(draftKey, draftKey)}

	for _, rec := range m.svc.Collection() {
		label := rec.InvoiceNo
		if rec.ClientName != "" {
			label = fmt.Sprintf("%s — %s", rec.InvoiceNo, Truncate(rec.ClientName, 24))
		}

		opts = append(opts, huh.NewOption(label, rec.InvoiceNo))
	}

	dir := defaultDir

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("invoice").
				Title("Invoice").
				Options(opts...),

			huh.NewInput().
				Key("path").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&dir),
		),
	).WithWidth(55).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStatePick:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Rendering PDF...", m.spinner.View()),
		)

	case exportStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				fmt.Sprintf("Export failed: %v\n\nThe draft and saved invoices are unaffected.\n\n(Esc to back)", m.err),
			)
		}

		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Exported %s\n\n(Esc to back)", m.path),
		)
	}

	return ""
}
