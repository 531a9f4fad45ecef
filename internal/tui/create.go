package tui

import (
	"strings"

	"callboard-cli/internal/catalog"
	"callboard-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var createFields = []string{"Name", "Description", "Category", "Industry", "Role type", "Tags (comma-separated)"}

type createForm struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newCreateForm() createForm {
	f := createForm{inputs: make([]textinput.Model, len(createFields))}
	for i, label := range createFields {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 300
		ti.Width = 50
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *createForm) setFocus(i int) {
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.inputs[i].Focus()
	f.focus = i
}

func (f *createForm) toForm() model.TemplateForm {
	form := model.DefaultTemplateForm()
	form.Name = strings.TrimSpace(f.inputs[0].Value())
	form.Description = strings.TrimSpace(f.inputs[1].Value())
	form.Category = strings.TrimSpace(f.inputs[2].Value())
	form.Industry = strings.TrimSpace(f.inputs[3].Value())
	form.RoleType = strings.TrimSpace(f.inputs[4].Value())
	for _, t := range strings.Split(f.inputs[5].Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			form.Tags = append(form.Tags, t)
		}
	}
	return form
}

func (m *appModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.view = viewCatalog
		return m, nil
	case "tab", "down":
		m.create.setFocus(m.create.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.create.setFocus(m.create.focus - 1)
		return m, nil
	case "enter":
		if m.create.focus < len(m.create.inputs)-1 {
			m.create.setFocus(m.create.focus + 1)
			return m, nil
		}
		form := m.create.toForm()
		// Validation failures stay local; nothing is sent until the form is complete.
		if err := catalog.ValidateForm(form); err != nil {
			m.create.errMsg = err.Error()
			return m, nil
		}
		m.create.errMsg = ""
		m.status = "creating"
		return m, m.createCmd(form)
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m *appModel) viewCreate() string {
	var b strings.Builder
	for i, label := range createFields {
		b.WriteString(styleMuted().Render(label))
		b.WriteString("\n")
		b.WriteString(m.create.inputs[i].View())
		b.WriteString("\n")
	}
	if m.create.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleError().Render(m.create.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("tab: next field   enter: submit   esc: cancel"))
	return renderModalBox(m.width, "New template", b.String())
}
