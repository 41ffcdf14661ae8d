package view_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannykalklus-wq/invoice-app/cmd/tui/internal/view"
	"github.com/dannykalklus-wq/invoice-app/internal/export"
	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
	"github.com/dannykalklus-wq/invoice-app/internal/invoice/store"
	syncpkg "github.com/dannykalklus-wq/invoice-app/internal/sync"
)

func TestInvoicesModel_WindowSizeResizesView(t *testing.T) {
	svc := invoice.NewService(store.New(t.TempDir()), syncpkg.Disabled{})
	m := view.NewInvoicesModel(svc, export.NewService(), t.TempDir())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	got, ok := updated.(view.InvoicesModel)
	require.True(t, ok)
	assert.Equal(t, 100, got.Width)
	assert.Equal(t, 40, got.Height)
}
