package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// EditRequestedMsg asks the root model to open the editor on the given draft.
type EditRequestedMsg struct {
	Draft *invoice.Invoice
}
