package tui

import (
	"context"
	"time"

	"callboard-cli/internal/api"
	"callboard-cli/internal/catalog"
	"callboard-cli/internal/model"
	"callboard-cli/internal/session"
	"callboard-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

type view int

const (
	viewCatalog view = iota
	viewEditor
	viewCreate
	viewInput
	viewConfirm
)

// Run starts the interactive template editor.
func Run(client *api.Client, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	cat := catalog.New(client)
	sess := session.NewCoordinator(client, cat, log)
	m := newModel(client, cat, sess, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type appModel struct {
	client *api.Client
	cat    *catalog.Store
	sess   *session.Coordinator
	log    *zap.Logger

	view view

	width  int
	height int

	catalogPane catalogPane
	editor      editorPane
	create      createForm
	input       inputModal
	confirm     confirmModal

	status string
	errMsg string
}

func newModel(client *api.Client, cat *catalog.Store, sess *session.Coordinator, log *zap.Logger) *appModel {
	m := &appModel{
		client: client,
		cat:    cat,
		sess:   sess,
		log:    log,
		view:   viewCatalog,
	}
	m.catalogPane = newCatalogPane()
	return m
}

// Messages carrying the results of blocking coordinator/catalog calls.

type catalogRefreshedMsg struct{ err error }

type templateLoadedMsg struct {
	id  string
	err error
}

type savedMsg struct{ err error }

type createdMsg struct {
	summary model.TemplateSummary
	err     error
}

type templateDeletedMsg struct {
	id  string
	err error
}

func (m *appModel) refreshCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return catalogRefreshedMsg{err: m.cat.Refresh(ctx)}
	}
}

func (m *appModel) loadTemplateCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return templateLoadedMsg{id: id, err: m.sess.Load(ctx, id)}
	}
}

func (m *appModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return savedMsg{err: m.sess.Save(ctx)}
	}
}

func (m *appModel) createCmd(form model.TemplateForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		summary, err := m.sess.CreateAndOpen(ctx, form)
		return createdMsg{summary: summary, err: err}
	}
}

func (m *appModel) deleteTemplateCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return templateDeletedMsg{id: id, err: m.cat.Delete(ctx, id)}
	}
}

func (m *appModel) Init() tea.Cmd {
	return m.refreshCatalogCmd()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.catalogPane.setSize(msg.Width, msg.Height)
		return m, nil

	case catalogRefreshedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.catalogPane.setItems(m.cat.Summaries())
		return m, nil

	case templateLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			// The session keeps its prior content; stay where we are.
			return m, nil
		}
		m.errMsg = ""
		if m.sess.SelectedID() == msg.id {
			m.view = viewEditor
			m.editor.clampCursor(m.sess)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = "saved"
		m.catalogPane.setItems(m.cat.Summaries())
		return m, nil

	case createdMsg:
		if msg.err != nil {
			m.create.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "created " + msg.summary.Name
		m.catalogPane.setItems(m.cat.Summaries())
		m.view = viewEditor
		m.editor = editorPane{}
		saveLastOpen(msg.summary.ID)
		return m, nil

	case templateDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "deleted"
		m.sess.HandleDeleted(msg.id)
		m.catalogPane.setItems(m.cat.Summaries())
		if m.view == viewEditor && m.sess.SelectedID() == "" {
			m.view = viewCatalog
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewCatalog:
			return m.updateCatalog(msg)
		case viewEditor:
			return m.updateEditor(msg)
		case viewCreate:
			return m.updateCreate(msg)
		case viewInput:
			return m.updateInput(msg)
		case viewConfirm:
			return m.updateConfirm(msg)
		}
	}

	if m.view == viewCatalog {
		var cmd tea.Cmd
		m.catalogPane.list, cmd = m.catalogPane.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *appModel) View() string {
	switch m.view {
	case viewEditor:
		return m.viewEditor()
	case viewCreate:
		return m.viewCreate()
	case viewInput:
		return m.viewInput()
	case viewConfirm:
		return renderConfirmModal(m.width, m.confirm.title, m.confirm.body, "Confirm", "Cancel", m.confirm.focus)
	default:
		return m.viewCatalog()
	}
}

// saveLastOpen persists the last opened template id, best effort.
func saveLastOpen(id string) {
	st, err := store.LoadTUIState()
	if err != nil {
		return
	}
	st.View = "editor"
	st.SelectedTemplateID = id
	_ = store.SaveTUIState(st)
}
