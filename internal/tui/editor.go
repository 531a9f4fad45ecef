package tui

import (
	"fmt"
	"strings"

	"callboard-cli/internal/script"
	"callboard-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type editorRow struct {
	qID  string
	fuID string // empty => question row
}

type editorPane struct {
	cursor int
}

func editorRows(set script.Set) []editorRow {
	var rows []editorRow
	for _, q := range set {
		rows = append(rows, editorRow{qID: q.ID})
		for _, fu := range q.FollowUps {
			rows = append(rows, editorRow{qID: q.ID, fuID: fu.ID})
		}
	}
	return rows
}

func (e *editorPane) clampCursor(sess *session.Coordinator) {
	n := len(editorRows(sess.Set()))
	if e.cursor >= n {
		e.cursor = n - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *editorPane) currentRow(set script.Set) (editorRow, bool) {
	rows := editorRows(set)
	if e.cursor < 0 || e.cursor >= len(rows) {
		return editorRow{}, false
	}
	return rows[e.cursor], true
}

func (m *appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	set := m.sess.Set()

	switch msg.String() {
	case "ctrl+c", "q":
		if m.sess.Dirty() {
			m.openConfirm("Discard unsaved edits?",
				"This template has unsaved changes. Quit and discard them?",
				confirmQuit, "")
			return m, nil
		}
		return m, tea.Quit

	case "esc", "tab":
		// Back to the catalog; the session stays open so edits survive.
		m.view = viewCatalog
		return m, nil

	case "x":
		if m.sess.Dirty() {
			m.openConfirm("Discard unsaved edits?",
				"Close this template and discard unsaved changes?",
				confirmCloseEditor, "")
			return m, nil
		}
		m.sess.Close()
		m.view = viewCatalog
		return m, nil

	case "up", "ctrl+p", "k":
		if m.editor.cursor > 0 {
			m.editor.cursor--
		}
		return m, nil

	case "down", "ctrl+n", "j":
		if m.editor.cursor < len(editorRows(set))-1 {
			m.editor.cursor++
		}
		return m, nil

	case "a":
		q, ok := m.sess.AddQuestion()
		if !ok {
			return m, nil
		}
		// Park the cursor on the new question and open the prompt editor.
		rows := editorRows(m.sess.Set())
		for i, r := range rows {
			if r.qID == q.ID && r.fuID == "" {
				m.editor.cursor = i
			}
		}
		m.openPromptInput(editorRow{qID: q.ID}, "")
		return m, nil

	case "f":
		row, ok := m.editor.currentRow(set)
		if !ok {
			return m, nil
		}
		m.sess.AddFollowUp(row.qID)
		m.editor.clampCursor(m.sess)
		return m, nil

	case "enter", "e":
		row, ok := m.editor.currentRow(set)
		if !ok {
			return m, nil
		}
		m.openPromptInput(row, currentPrompt(set, row))
		return m, nil

	case "A":
		row, ok := m.editor.currentRow(set)
		if !ok {
			return m, nil
		}
		m.openAnswerInput(row, currentAnswer(set, row))
		return m, nil

	case "d":
		row, ok := m.editor.currentRow(set)
		if !ok {
			return m, nil
		}
		if row.fuID == "" {
			m.openConfirm("Delete question?",
				"Delete this question and all of its follow-ups?",
				confirmDeleteQuestion, row.qID)
		} else {
			m.confirm = confirmModal{
				title:  "Delete follow-up?",
				body:   "Delete this follow-up question?",
				focus:  confirmFocusCancel,
				action: confirmDeleteFollowUp,
				target: row.qID,
				extra:  row.fuID,
				back:   m.view,
			}
			m.view = viewConfirm
		}
		return m, nil

	case "n":
		m.openRenameInput(m.sess.Name())
		return m, nil

	case "s":
		if m.sess.State() == session.StateSaving {
			return m, nil
		}
		m.status = "saving"
		return m, m.saveCmd()

	case "r":
		id := m.sess.SelectedID()
		if id == "" {
			return m, nil
		}
		if m.sess.Dirty() {
			m.openConfirm("Discard unsaved edits?",
				"Reload from the server and discard unsaved changes?",
				confirmSwitchTemplate, id)
			return m, nil
		}
		m.status = "reloading"
		return m, m.loadTemplateCmd(id)
	}

	return m, nil
}

func currentPrompt(set script.Set, row editorRow) string {
	q, ok := set.Find(row.qID)
	if !ok {
		return ""
	}
	if row.fuID == "" {
		return q.Question
	}
	for _, fu := range q.FollowUps {
		if fu.ID == row.fuID {
			return fu.Question
		}
	}
	return ""
}

func currentAnswer(set script.Set, row editorRow) string {
	q, ok := set.Find(row.qID)
	if !ok {
		return ""
	}
	if row.fuID == "" {
		return q.Answer
	}
	for _, fu := range q.FollowUps {
		if fu.ID == row.fuID {
			return fu.Answer
		}
	}
	return ""
}

func (m *appModel) viewEditor() string {
	set := m.sess.Set()
	rows := editorRows(set)

	var b strings.Builder
	name := m.sess.Name()
	if name == "" {
		name = m.sess.SelectedID()
	}
	b.WriteString(styleTitle().Render(name))
	b.WriteString("  ")
	b.WriteString(stateBadge(m.sess.State()))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(styleMuted().Render("No questions yet. Press a to add one."))
		b.WriteString("\n")
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	for i, row := range rows {
		line := renderRow(set, row, width-4)
		if i == m.editor.cursor {
			line = styleSelected().Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer("a: add   f: follow-up   enter: edit   A: answer   d: delete   n: rename   s: save   r: reload   esc: catalog   x: close"))
	return b.String()
}

func renderRow(set script.Set, row editorRow, width int) string {
	prompt := currentPrompt(set, row)
	answer := currentAnswer(set, row)
	if prompt == "" {
		prompt = styleMuted().Render("(empty)")
	}
	label := prompt
	if answer != "" {
		label += styleMuted().Render("  → " + answer)
	}
	if row.fuID != "" {
		label = "    ↳ " + label
	}
	if width < 20 {
		width = 20
	}
	return xansi.Truncate(label, width, "…")
}

func stateBadge(s session.State) string {
	switch s {
	case session.StateDirty:
		return styleBadge(colorDirtyFg).Render("[unsaved]")
	case session.StateSaving:
		return styleBadge(colorAccentFg).Render("[saving…]")
	case session.StateLoading:
		return styleBadge(colorAccentFg).Render("[loading…]")
	case session.StateReady:
		return styleBadge(colorOkFg).Render("[saved]")
	default:
		return ""
	}
}

func editorTitleFor(row editorRow) string {
	if row.fuID == "" {
		return fmt.Sprintf("Question %s", row.qID)
	}
	return fmt.Sprintf("Follow-up %s", row.fuID)
}
