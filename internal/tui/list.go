package tui

import (
	"callboard-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type templateItem struct {
	summary model.TemplateSummary
}

func (i templateItem) Title() string       { return i.summary.Name }
func (i templateItem) Description() string { return i.summary.ID }
func (i templateItem) FilterValue() string { return i.summary.Name }

func newList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	// We render our own title + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("template", "templates")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func catalogItems(summaries []model.TemplateSummary) []list.Item {
	items := make([]list.Item, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, templateItem{summary: s})
	}
	return items
}
