package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

// ProfileModel edits the company profile. Saving persists the profile and
// reconciles it into the current draft: only non-empty fields overwrite the
// draft's issuer snapshot.
type ProfileModel struct {
	CommonModel
	svc   *invoice.Service
	draft *invoice.Invoice

	profile *invoice.CompanyProfile
	form    *huh.Form
	status  string
}

func NewProfileModel(svc *invoice.Service, draft *invoice.Invoice) ProfileModel {
	p := svc.LoadProfile()

	m := ProfileModel{
		svc:     svc,
		draft:   draft,
		profile: &p,
	}
	m.form = m.buildForm()

	return m
}

func (m ProfileModel) Title() string { return "Company Profile" }

func (m ProfileModel) ShortHelp() string {
	return "Navigate form | Esc: back"
}

func (m ProfileModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.svc.UpdateProfile(*m.profile, m.draft)
	m.status = "Profile saved."
	m.form = m.buildForm()

	return m, m.form.Init()
}

func (m ProfileModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("company_name").Title("Company Name").Value(&m.profile.CompanyName),
			huh.NewInput().Key("company_email").Title("Company Email").Value(&m.profile.CompanyEmail),
			huh.NewInput().Key("company_phone").Title("Company Phone").Value(&m.profile.CompanyPhone),
			huh.NewInput().Key("company_address").Title("Company Address").Value(&m.profile.CompanyAddress),
			huh.NewInput().Key("company_tin").Title("Company TIN").Value(&m.profile.CompanyTIN),
			huh.NewInput().Key("logo_url").Title("Logo Path").Placeholder("./logo.png").Value(&m.profile.LogoURL),
		),
	).WithWidth(55).WithShowHelp(false)
}

func (m ProfileModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render("Company Profile"),
		m.form.View(),
	)

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(m.status))
	}

	if m.draft != nil && m.draft.InvoiceNo != "" {
		note := fmt.Sprintf("Draft %s adopts non-empty fields on save.", m.draft.InvoiceNo)
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			lipgloss.NewStyle().Faint(true).Render(note))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
