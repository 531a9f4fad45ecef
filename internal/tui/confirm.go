package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmQuit
	confirmSwitchTemplate
	confirmDeleteTemplate
	confirmDeleteQuestion
	confirmDeleteFollowUp
	confirmCloseEditor
)

type confirmModal struct {
	title  string
	body   string
	focus  confirmFocus
	action confirmAction
	target string
	extra  string
	back   view
}

func (m *appModel) openConfirm(title, body string, action confirmAction, target string) {
	m.confirm = confirmModal{
		title:  title,
		body:   body,
		focus:  confirmFocusCancel,
		action: action,
		target: target,
		back:   m.view,
	}
	m.view = viewConfirm
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.view = m.confirm.back
		return m, nil
	case "tab", "left", "right":
		if m.confirm.focus == confirmFocusConfirm {
			m.confirm.focus = confirmFocusCancel
		} else {
			m.confirm.focus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirm.focus == confirmFocusCancel {
			m.view = m.confirm.back
			return m, nil
		}
		return m.runConfirmed()
	case "y":
		return m.runConfirmed()
	case "n":
		m.view = m.confirm.back
		return m, nil
	}
	return m, nil
}

func (m *appModel) runConfirmed() (tea.Model, tea.Cmd) {
	c := m.confirm
	m.view = c.back
	switch c.action {
	case confirmQuit:
		return m, tea.Quit
	case confirmSwitchTemplate:
		m.view = viewCatalog
		m.status = "loading"
		saveLastOpen(c.target)
		return m, m.loadTemplateCmd(c.target)
	case confirmDeleteTemplate:
		m.status = "deleting"
		return m, m.deleteTemplateCmd(c.target)
	case confirmDeleteQuestion:
		m.sess.DeleteQuestion(c.target)
		m.view = viewEditor
		m.editor.clampCursor(m.sess)
		return m, nil
	case confirmDeleteFollowUp:
		m.sess.DeleteFollowUp(c.target, c.extra)
		m.view = viewEditor
		m.editor.clampCursor(m.sess)
		return m, nil
	case confirmCloseEditor:
		m.sess.Close()
		m.view = viewCatalog
		return m, nil
	}
	return m, nil
}
