package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"callboard-cli/internal/api"
	"callboard-cli/internal/catalog"
	"callboard-cli/internal/model"
	"callboard-cli/internal/script"
)

// State is the editor session lifecycle.
//
//	Empty -> Loading -> Ready -> Dirty -> Saving -> Ready
//	                                        `-> Dirty (save failed; edits kept)
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateDirty
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDirty:
		return "dirty"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// ErrNoOpenTemplate is returned by Save when nothing is selected.
var ErrNoOpenTemplate = errors.New("no template is open")

// Coordinator owns the currently selected template and its question set,
// and bridges them to the remote service. It is the only component with
// I/O and failure handling; all edits below it are pure and total.
//
// Remote calls carry no locks while in flight. Instead every load and save
// is tagged with a sequence number when it starts; a response that arrives
// after a newer request for the session was issued is discarded, so the
// latest user action always wins (selecting B right after A yields B's
// data even if A's response arrives last).
type Coordinator struct {
	mu      sync.Mutex
	client  *api.Client
	catalog *catalog.Store
	log     *zap.Logger

	state      State
	selectedID string
	name       string
	set        script.Set

	loadSeq uint64
	saveSeq uint64
	// editMark increments on every local edit; a save that completes after
	// further edits leaves the session dirty instead of claiming Ready.
	editMark uint64
}

func NewCoordinator(client *api.Client, cat *catalog.Store, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		client:  client,
		catalog: cat,
		log:     log,
		state:   StateEmpty,
		set:     script.Set{},
	}
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

func (c *Coordinator) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Set returns the open question set snapshot.
func (c *Coordinator) Set() script.Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}

func (c *Coordinator) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateDirty || c.state == StateSaving
}

// Load opens a template: it fetches the full record and rebuilds the
// question set wholesale. Uncommitted edits to the previously open template
// are discarded by a successful load. On failure the set keeps its prior
// content and the error is surfaced to the caller; no retry, no partial
// load. Stale responses (a newer Load was issued meanwhile) are dropped.
func (c *Coordinator) Load(ctx context.Context, templateID string) error {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.selectedID = templateID
	if name, ok := c.lookupName(templateID); ok {
		c.name = name
	}
	c.state = StateLoading
	c.mu.Unlock()

	rec, err := c.client.GetTemplate(ctx, templateID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq || c.selectedID != templateID {
		c.log.Debug("dropping stale template load",
			zap.String("templateId", templateID))
		return nil
	}
	if err != nil {
		// Keep whatever was loaded before; the caller reports the failure.
		if c.state == StateLoading {
			c.state = StateReady
		}
		return err
	}
	c.set = script.FromWire(rec.Questions)
	if strings.TrimSpace(rec.Name) != "" {
		c.name = rec.Name
	}
	c.state = StateReady
	return nil
}

// Save serializes the open set into the service shape and writes both the
// display name and the full script. Success reconciles the catalog entry's
// name; failure leaves the set (and the dirty state) untouched so the user
// can retry without losing edits.
func (c *Coordinator) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.selectedID == "" {
		c.mu.Unlock()
		return ErrNoOpenTemplate
	}
	c.saveSeq++
	seq := c.saveSeq
	mark := c.editMark
	id := c.selectedID
	name := c.name
	wire := script.ToWire(c.set)
	c.state = StateSaving
	c.mu.Unlock()

	err := c.client.UpdateTemplate(ctx, id, name, wire)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.saveSeq || c.selectedID != id {
		c.log.Debug("dropping stale template save", zap.String("templateId", id))
		return nil
	}
	if err != nil {
		c.state = StateDirty
		return err
	}
	if c.catalog != nil {
		c.catalog.SetName(id, name)
	}
	if c.editMark != mark {
		// Edits landed while the save was in flight; they still need saving.
		c.state = StateDirty
	} else {
		c.state = StateReady
	}
	return nil
}

// CreateAndOpen creates a template via the catalog, makes it the open
// selection with an empty question set, then immediately re-loads it so the
// session reflects the authoritative server state.
func (c *Coordinator) CreateAndOpen(ctx context.Context, form model.TemplateForm) (model.TemplateSummary, error) {
	entry, err := c.catalog.Create(ctx, form)
	if err != nil {
		return model.TemplateSummary{}, err
	}

	c.mu.Lock()
	c.loadSeq++
	c.selectedID = entry.ID
	c.name = entry.Name
	c.set = script.Set{}
	c.state = StateReady
	c.mu.Unlock()

	if err := c.Load(ctx, entry.ID); err != nil {
		// The template exists; an empty open set is a usable fallback.
		return entry, err
	}
	return entry, nil
}

// Close deselects the open template, discarding uncommitted edits.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadSeq++
	c.saveSeq++
	c.selectedID = ""
	c.name = ""
	c.set = script.Set{}
	c.state = StateEmpty
}

// HandleDeleted clears the session if the deleted template was open.
func (c *Coordinator) HandleDeleted(id string) {
	c.mu.Lock()
	open := c.selectedID == id
	c.mu.Unlock()
	if open {
		c.Close()
	}
}

// SetName renames the open template locally; the catalog entry is only
// reconciled once a save succeeds.
func (c *Coordinator) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" || c.name == name {
		return
	}
	c.name = name
	c.markDirtyLocked()
}

// Local edit passthroughs. All are no-ops while nothing is open; unknown
// ids degrade to no-ops inside script.Set.

func (c *Coordinator) AddQuestion() (model.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return model.Question{}, false
	}
	var q model.Question
	c.set, q = c.set.AddQuestion()
	c.markDirtyLocked()
	return q, true
}

func (c *Coordinator) UpdateQuestion(id string, field script.Field, value string) {
	c.edit(func(s script.Set) script.Set { return s.UpdateQuestion(id, field, value) })
}

func (c *Coordinator) DeleteQuestion(id string) {
	c.edit(func(s script.Set) script.Set { return s.DeleteQuestion(id) })
}

func (c *Coordinator) AddFollowUp(questionID string) {
	c.edit(func(s script.Set) script.Set { return s.AddFollowUp(questionID) })
}

func (c *Coordinator) UpdateFollowUp(questionID, followUpID string, field script.Field, value string) {
	c.edit(func(s script.Set) script.Set { return s.UpdateFollowUp(questionID, followUpID, field, value) })
}

func (c *Coordinator) DeleteFollowUp(questionID, followUpID string) {
	c.edit(func(s script.Set) script.Set { return s.DeleteFollowUp(questionID, followUpID) })
}

func (c *Coordinator) edit(fn func(script.Set) script.Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return
	}
	next := fn(c.set)
	if len(next) == len(c.set) && sameHead(next, c.set) {
		// Unknown-id no-op: script.Set returns the receiver unchanged.
		// Don't flip to dirty for edits that did nothing.
		return
	}
	c.set = next
	c.markDirtyLocked()
}

// sameHead reports whether two sets share the same backing storage, which
// is only true when a script operation returned its receiver untouched.
func sameHead(a, b script.Set) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	return &a[0] == &b[0]
}

func (c *Coordinator) markDirtyLocked() {
	c.editMark++
	if c.state == StateReady || c.state == StateEmpty {
		c.state = StateDirty
	}
	// While Saving, the state stays Saving; editMark makes the completing
	// save fall back to Dirty.
	if c.state == StateLoading {
		c.state = StateDirty
	}
}

func (c *Coordinator) lookupName(id string) (string, bool) {
	if c.catalog == nil {
		return "", false
	}
	t, ok := c.catalog.Find(id)
	return t.Name, ok
}
