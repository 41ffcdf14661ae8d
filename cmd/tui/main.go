package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dannykalklus-wq/invoice-app/cmd/tui/internal/view"
	"github.com/dannykalklus-wq/invoice-app/internal/config"
	"github.com/dannykalklus-wq/invoice-app/internal/export"
	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
	invoiceStore "github.com/dannykalklus-wq/invoice-app/internal/invoice/store"
	"github.com/dannykalklus-wq/invoice-app/internal/sync"
)

type model struct {
	cfg *config.Config

	invoiceService *invoice.Service
	exportService  *export.Service

	draft *invoice.Invoice

	currentView View

	editorView   view.EditorModel
	invoicesView view.InvoicesModel
	profileView  view.ProfileModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewEditor   View = 1
	ViewInvoices View = 2
	ViewProfile  View = 3
	ViewExport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var syncer invoice.Syncer = sync.Disabled{}
	if cfg.SyncEnabled() {
		syncer = sync.New(cfg.Sync.Endpoint, cfg.Sync.Token, cfg.Sync.Timeout)
	}

	invSvc := invoice.NewService(invoiceStore.New(cfg.DataDirectory()), syncer)
	expSvc := export.NewService()

	draft := invSvc.LoadDraft(cfg.App.Currency)

	return model{
		cfg:            cfg,
		invoiceService: invSvc,
		exportService:  expSvc,
		draft:          draft,
		currentView:    ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEditor
				m.editorView = view.NewEditorModel(m.invoiceService, m.draft)

				return m, m.editorView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService, m.exportService, m.cfg.Export.OutputDir)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewProfile
				m.profileView = view.NewProfileModel(m.invoiceService, m.draft)

				return m, m.profileView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.invoiceService, m.draft, m.cfg.Export.OutputDir)

				return m, m.exportView.Init()
			case "n":
				m.draft = invoice.NewDraft(m.invoiceService.LoadProfile(), m.cfg.App.Currency)
				m.invoiceService.SaveDraft(m.draft)
				m.currentView = ViewEditor
				m.editorView = view.NewEditorModel(m.invoiceService, m.draft)

				return m, m.editorView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.EditRequestedMsg:
		m.draft = msg.Draft
		m.currentView = ViewEditor
		m.editorView = view.NewEditorModel(m.invoiceService, m.draft)

		return m, m.editorView.Init()
	}

	switch m.currentView {
	case ViewEditor:
		var newModel tea.Model
		newModel, cmd = m.editorView.Update(msg)
		m.editorView = newModel.(view.EditorModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewProfile:
		var newModel tea.Model
		newModel, cmd = m.profileView.Update(msg)
		m.profileView = newModel.(view.ProfileModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.cfg.App.Name + "\n\n" +
				"1. Edit Current Invoice\n" +
				"2. Browse Invoices\n" +
				"3. Company Profile\n" +
				"4. Export PDF\n" +
				"n. New Invoice\n\n" +
				"q. Quit",
		)
	case ViewEditor:
		return m.editorView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewProfile:
		return m.profileView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
