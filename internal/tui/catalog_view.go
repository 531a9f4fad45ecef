package tui

import (
	"fmt"
	"strings"

	"callboard-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type catalogPane struct {
	list list.Model
}

func newCatalogPane() catalogPane {
	return catalogPane{list: newList(nil)}
}

func (p *catalogPane) setSize(w, h int) {
	p.list.SetSize(w, h-4)
}

func (p *catalogPane) setItems(summaries []model.TemplateSummary) {
	p.list.SetItems(catalogItems(summaries))
}

func (p *catalogPane) selected() (model.TemplateSummary, bool) {
	it, ok := p.list.SelectedItem().(templateItem)
	if !ok {
		return model.TemplateSummary{}, false
	}
	return it.summary, true
}

func (m *appModel) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is open, all keys belong to the filter input.
	if m.catalogPane.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.catalogPane.list, cmd = m.catalogPane.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.sess.Dirty() {
			m.openConfirm("Discard unsaved edits?",
				"The open template has unsaved changes. Quit and discard them?",
				confirmQuit, "")
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		summary, ok := m.catalogPane.selected()
		if !ok {
			return m, nil
		}
		if m.sess.SelectedID() == summary.ID {
			m.view = viewEditor
			return m, nil
		}
		if m.sess.Dirty() {
			m.openConfirm("Discard unsaved edits?",
				fmt.Sprintf("Switch to %q and discard unsaved changes?", summary.Name),
				confirmSwitchTemplate, summary.ID)
			return m, nil
		}
		m.status = "loading " + summary.Name
		saveLastOpen(summary.ID)
		return m, m.loadTemplateCmd(summary.ID)

	case "n":
		m.create = newCreateForm()
		m.view = viewCreate
		return m, nil

	case "D":
		summary, ok := m.catalogPane.selected()
		if !ok {
			return m, nil
		}
		m.openConfirm("Delete template?",
			fmt.Sprintf("Delete %q from the server? This cannot be undone.", summary.Name),
			confirmDeleteTemplate, summary.ID)
		return m, nil

	case "r":
		m.status = "refreshing"
		return m, m.refreshCatalogCmd()

	case "tab":
		if m.sess.SelectedID() != "" {
			m.view = viewEditor
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.catalogPane.list, cmd = m.catalogPane.list.Update(msg)
	return m, cmd
}

func (m *appModel) viewCatalog() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Templates"))
	if id := m.sess.SelectedID(); id != "" {
		open := fmt.Sprintf("  (open: %s", m.sess.Name())
		if m.sess.Dirty() {
			open += " " + styleBadge(colorDirtyFg).Render("*")
		}
		open += ")"
		b.WriteString(styleMuted().Render(open))
	}
	b.WriteString("\n\n")
	b.WriteString(m.catalogPane.list.View())
	b.WriteString("\n")
	b.WriteString(m.footer("enter: open   n: new   D: delete   r: refresh   /: filter   q: quit"))
	return b.String()
}

func (m *appModel) footer(help string) string {
	line := styleMuted().Render(help)
	if m.status != "" {
		line += "  " + styleBadge(colorOkFg).Render(m.status)
	}
	if m.errMsg != "" {
		line += "\n" + styleError().Render(m.errMsg)
	}
	return line
}
