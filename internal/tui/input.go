package tui

import (
	"strings"

	"callboard-cli/internal/script"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputKind int

const (
	inputPrompt inputKind = iota
	inputAnswer
	inputRename
)

type inputModal struct {
	kind  inputKind
	row   editorRow
	title string

	text    textinput.Model
	area    textarea.Model
	useArea bool
}

func (m *appModel) openPromptInput(row editorRow, value string) {
	ti := textinput.New()
	ti.Placeholder = "Question"
	ti.CharLimit = 500
	ti.Width = 60
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	m.input = inputModal{kind: inputPrompt, row: row, title: editorTitleFor(row), text: ti}
	m.view = viewInput
}

func (m *appModel) openAnswerInput(row editorRow, value string) {
	ta := textarea.New()
	ta.Placeholder = "Expected answer…"
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.ShowLineNumbers = false
	ta.SetValue(value)
	ta.Focus()
	m.input = inputModal{kind: inputAnswer, row: row, title: editorTitleFor(row) + " — answer", area: ta, useArea: true}
	m.view = viewInput
}

func (m *appModel) openRenameInput(value string) {
	ti := textinput.New()
	ti.Placeholder = "Template name"
	ti.CharLimit = 200
	ti.Width = 60
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	m.input = inputModal{kind: inputRename, title: "Rename template", text: ti}
	m.view = viewInput
}

func (m *appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.view = viewEditor
		return m, nil
	case "enter":
		// Textareas take enter as a newline; commit with ctrl+s there.
		if !m.input.useArea {
			m.commitInput()
			return m, nil
		}
	case "ctrl+s":
		m.commitInput()
		return m, nil
	}

	var cmd tea.Cmd
	if m.input.useArea {
		m.input.area, cmd = m.input.area.Update(msg)
	} else {
		m.input.text, cmd = m.input.text.Update(msg)
	}
	return m, cmd
}

func (m *appModel) commitInput() {
	value := m.input.text.Value()
	if m.input.useArea {
		value = m.input.area.Value()
	}
	row := m.input.row
	switch m.input.kind {
	case inputPrompt:
		if row.fuID == "" {
			m.sess.UpdateQuestion(row.qID, script.FieldQuestion, value)
		} else {
			m.sess.UpdateFollowUp(row.qID, row.fuID, script.FieldQuestion, value)
		}
	case inputAnswer:
		if row.fuID == "" {
			m.sess.UpdateQuestion(row.qID, script.FieldAnswer, value)
		} else {
			m.sess.UpdateFollowUp(row.qID, row.fuID, script.FieldAnswer, value)
		}
	case inputRename:
		if strings.TrimSpace(value) != "" {
			m.sess.SetName(value)
		}
	}
	m.view = viewEditor
}

func (m *appModel) viewInput() string {
	var body string
	var help string
	if m.input.useArea {
		body = m.input.area.View()
		help = "ctrl+s: save   esc: cancel"
	} else {
		body = m.input.text.View()
		help = "enter: save   esc: cancel"
	}
	content := body + "\n\n" + styleMuted().Render(help)
	return renderModalBox(m.width, m.input.title, content)
}
