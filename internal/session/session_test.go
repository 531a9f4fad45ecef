package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"callboard-cli/internal/api"
	"callboard-cli/internal/catalog"
	"callboard-cli/internal/model"
	"callboard-cli/internal/script"
)

func modelForm() model.TemplateForm {
	form := model.DefaultTemplateForm()
	form.Name = "Fresh"
	form.Description = "Notes for fresh screenings"
	form.Category = "hiring"
	form.Industry = "software"
	form.RoleType = "backend"
	form.Tags = []string{"go"}
	return form
}

func newTestCoordinator(t *testing.T, handler http.Handler) (*Coordinator, *catalog.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(api.Config{BaseURL: srv.URL})
	cat := catalog.New(client)
	return NewCoordinator(client, cat, nil), cat, srv
}

func templateJSON(id, name string, questions string) string {
	return `{"template_id":"` + id + `","template_name":"` + name + `","script_json":{"questions":` + questions + `}}`
}

func TestLoad_PopulatesSetFromWireShape(t *testing.T) {
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening",
			`[{"id":"q-1","text":"Why us?","answer":"listen","follow_ups":[{"id":"fu-1","text":"More?","answer":""}]}]`)))
	}))

	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if co.State() != StateReady {
		t.Fatalf("expected ready; got %v", co.State())
	}
	set := co.Set()
	if len(set) != 1 || set[0].Question != "Why us?" {
		t.Fatalf("set not populated: %#v", set)
	}
	if len(set[0].FollowUps) != 1 || set[0].FollowUps[0].Question != "More?" {
		t.Fatalf("follow-ups not flattened: %#v", set[0].FollowUps)
	}
	if co.Name() != "Screening" {
		t.Fatalf("expected name from record; got %q", co.Name())
	}
}

func TestLoad_FailureKeepsPriorSet(t *testing.T) {
	fail := false
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`maintenance window`))
			return
		}
		_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[{"id":"q-1","text":"Why us?","answer":"","follow_ups":[]}]`)))
	}))

	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	fail = true
	err := co.Load(context.Background(), "tpl-2")
	if err == nil {
		t.Fatalf("expected load failure")
	}
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError; got %v", err)
	}
	if set := co.Set(); len(set) != 1 || set[0].ID != "q-1" {
		t.Fatalf("prior set should survive a failed load: %#v", set)
	}
}

func TestLoad_LastSelectionWins(t *testing.T) {
	// A's response is held until B's has been served, so A arrives stale.
	aEntered := make(chan struct{})
	releaseA := make(chan struct{})
	var entered, released sync.Once
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/templates/tpl-a":
			entered.Do(func() { close(aEntered) })
			<-releaseA
			_, _ = w.Write([]byte(templateJSON("tpl-a", "A", `[{"id":"q-a","text":"from A","answer":"","follow_ups":[]}]`)))
		case "/templates/tpl-b":
			defer released.Do(func() { close(releaseA) })
			_, _ = w.Write([]byte(templateJSON("tpl-b", "B", `[{"id":"q-b","text":"from B","answer":"","follow_ups":[]}]`)))
		default:
			http.NotFound(w, r)
		}
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = co.Load(context.Background(), "tpl-a")
	}()
	<-aEntered
	// B is selected right after A; its load completes first.
	if err := co.Load(context.Background(), "tpl-b"); err != nil {
		t.Fatalf("load B: %v", err)
	}
	wg.Wait()

	set := co.Set()
	if len(set) != 1 || set[0].ID != "q-b" {
		t.Fatalf("expected B's data after selecting A then B; got %#v", set)
	}
	if co.SelectedID() != "tpl-b" {
		t.Fatalf("expected tpl-b selected; got %q", co.SelectedID())
	}
}

func TestEdits_TransitionReadyToDirty(t *testing.T) {
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[]`)))
	}))
	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	q, ok := co.AddQuestion()
	if !ok {
		t.Fatalf("AddQuestion should succeed with an open template")
	}
	if co.State() != StateDirty {
		t.Fatalf("expected dirty after edit; got %v", co.State())
	}

	co.UpdateQuestion("q-missing", script.FieldAnswer, "x")
	if got := co.Set(); len(got) != 1 || got[0].ID != q.ID {
		t.Fatalf("unknown-id update changed the set: %#v", got)
	}
}

func TestEdits_NoOpWithoutOpenTemplate(t *testing.T) {
	co := NewCoordinator(api.New(api.Config{BaseURL: "http://unused"}), nil, nil)

	if _, ok := co.AddQuestion(); ok {
		t.Fatalf("AddQuestion without a selection should be refused")
	}
	co.UpdateQuestion("q-1", script.FieldQuestion, "x")
	co.DeleteQuestion("q-1")
	if co.State() != StateEmpty {
		t.Fatalf("expected empty state; got %v", co.State())
	}
	if len(co.Set()) != 0 {
		t.Fatalf("set should stay empty")
	}
}

func TestSave_SuccessReconcilesCatalogName(t *testing.T) {
	var mu sync.Mutex
	var putBody map[string]any
	co, cat, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/templates" {
				_, _ = w.Write([]byte(`[{"template_id":"tpl-1","template_name":"Old name"}]`))
				return
			}
			_, _ = w.Write([]byte(templateJSON("tpl-1", "Old name", `[]`)))
		case http.MethodPut:
			mu.Lock()
			_ = json.NewDecoder(r.Body).Decode(&putBody)
			mu.Unlock()
			_, _ = w.Write([]byte(templateJSON("tpl-1", "New name", `[]`)))
		}
	}))

	if err := cat.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	co.AddQuestion()
	co.SetName("New name")

	if err := co.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if co.State() != StateReady {
		t.Fatalf("expected ready after save; got %v", co.State())
	}
	if entry, _ := cat.Find("tpl-1"); entry.Name != "New name" {
		t.Fatalf("catalog name not reconciled: %q", entry.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if putBody["template_name"] != "New name" {
		t.Fatalf("unexpected save body: %#v", putBody)
	}
	sj := putBody["script_json"].(map[string]any)
	if qs := sj["questions"].([]any); len(qs) != 1 {
		t.Fatalf("expected serialized question in save body: %#v", sj)
	}
}

func TestSave_FailureKeepsEditsAndStaysDirty(t *testing.T) {
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[]`)))
		case http.MethodPut:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`backend unavailable`))
		}
	}))
	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	q, _ := co.AddQuestion()
	co.UpdateQuestion(q.ID, script.FieldQuestion, "keep me")

	err := co.Save(context.Background())
	if err == nil {
		t.Fatalf("expected save failure")
	}
	if co.State() != StateDirty {
		t.Fatalf("expected dirty after failed save; got %v", co.State())
	}
	set := co.Set()
	if len(set) != 1 || set[0].Question != "keep me" {
		t.Fatalf("edits must survive a failed save: %#v", set)
	}
}

func TestSave_EditsDuringSaveKeepSessionDirty(t *testing.T) {
	enteredPut := make(chan struct{})
	releasePut := make(chan struct{})
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[]`)))
		case http.MethodPut:
			close(enteredPut)
			<-releasePut
			_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[]`)))
		}
	}))
	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	co.AddQuestion()

	done := make(chan error, 1)
	go func() { done <- co.Save(context.Background()) }()

	<-enteredPut
	co.AddQuestion() // user keeps editing while the save is in flight
	close(releasePut)

	if err := <-done; err != nil {
		t.Fatalf("Save: %v", err)
	}
	if co.State() != StateDirty {
		t.Fatalf("edits during save should leave the session dirty; got %v", co.State())
	}
}

func TestSave_WithoutSelection(t *testing.T) {
	co := NewCoordinator(api.New(api.Config{BaseURL: "http://unused"}), nil, nil)
	if err := co.Save(context.Background()); err != ErrNoOpenTemplate {
		t.Fatalf("expected ErrNoOpenTemplate; got %v", err)
	}
}

func TestHandleDeleted_ClosesOpenTemplate(t *testing.T) {
	co, _, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(templateJSON("tpl-1", "Screening", `[]`)))
	}))
	if err := co.Load(context.Background(), "tpl-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	co.AddQuestion()

	co.HandleDeleted("tpl-other")
	if co.SelectedID() != "tpl-1" {
		t.Fatalf("deleting another template must not close the session")
	}

	co.HandleDeleted("tpl-1")
	if co.State() != StateEmpty || co.SelectedID() != "" || len(co.Set()) != 0 {
		t.Fatalf("expected cleared session; state=%v selected=%q", co.State(), co.SelectedID())
	}
}

func TestCreateAndOpen_SelectsNewTemplateAndReloads(t *testing.T) {
	co, cat, _ := newTestCoordinator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			_, _ = w.Write([]byte(templateJSON("tpl-new", "Fresh", `[]`)))
		case r.Method == http.MethodGet && r.URL.Path == "/templates/tpl-new":
			_, _ = w.Write([]byte(templateJSON("tpl-new", "Fresh", `[]`)))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))

	form := modelForm()
	entry, err := co.CreateAndOpen(context.Background(), form)
	if err != nil {
		t.Fatalf("CreateAndOpen: %v", err)
	}
	if entry.ID != "tpl-new" {
		t.Fatalf("expected server id; got %q", entry.ID)
	}
	if co.SelectedID() != "tpl-new" || co.State() != StateReady {
		t.Fatalf("expected open ready session; selected=%q state=%v", co.SelectedID(), co.State())
	}
	if len(co.Set()) != 0 {
		t.Fatalf("new template should start with an empty set")
	}
	if _, ok := cat.Find("tpl-new"); !ok {
		t.Fatalf("catalog should carry the new entry")
	}
}
