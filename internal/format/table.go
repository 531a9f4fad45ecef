package format

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Markdowner is implemented by view types that can render themselves as markdown.
// Write uses it for the "table" format.
type Markdowner interface {
	Markdown() string
}

var (
	tableRendererMu sync.Mutex
	tableRenderer   *glamour.TermRenderer
)

// WriteTable renders v as terminal-styled markdown when it implements Markdowner,
// and falls back to pretty JSON otherwise.
func WriteTable(w io.Writer, v any) error {
	m, ok := v.(Markdowner)
	if !ok {
		return WriteJSON(w, v, true)
	}
	_, err := fmt.Fprint(w, RenderMarkdown(m.Markdown()))
	return err
}

// RenderMarkdown renders markdown for the terminal. On renderer errors the raw
// markdown is returned so output is never lost.
func RenderMarkdown(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}

	tableRendererMu.Lock()
	defer tableRendererMu.Unlock()
	if tableRenderer == nil {
		// Avoid WithAutoStyle() here: it can block waiting on terminal queries in some setups.
		style := "dark"
		if !termenv.HasDarkBackground() {
			style = "light"
		}
		if termenv.ColorProfile() == termenv.Ascii {
			style = "notty"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(110),
		)
		if err != nil {
			return md + "\n"
		}
		tableRenderer = r
	}
	out, err := tableRenderer.Render(md)
	if err != nil {
		return md + "\n"
	}
	return out
}

// MarkdownTable builds a markdown table from a header row and data rows.
// Rows shorter than the header are padded with empty cells.
func MarkdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(cell, "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	b.WriteString("|")
	for range headers {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
