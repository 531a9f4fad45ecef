package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"callboard-cli/internal/api"
	"callboard-cli/internal/model"
)

func validForm() model.TemplateForm {
	form := model.DefaultTemplateForm()
	form.Name = "Screening"
	form.Description = "Phone screening notes"
	form.Category = "hiring"
	form.Industry = "software"
	form.RoleType = "backend"
	form.Tags = []string{"go"}
	return form
}

func TestValidateForm_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*model.TemplateForm)
		field string
	}{
		{"missing name", func(f *model.TemplateForm) { f.Name = "  " }, "Template name"},
		{"missing description", func(f *model.TemplateForm) { f.Description = "" }, "Description"},
		{"missing category", func(f *model.TemplateForm) { f.Category = "" }, "Category"},
		{"missing industry", func(f *model.TemplateForm) { f.Industry = "" }, "Industry"},
		{"missing role type", func(f *model.TemplateForm) { f.RoleType = "" }, "Role type"},
		{"missing tags", func(f *model.TemplateForm) { f.Tags = nil }, "Tags"},
		{"blank tags", func(f *model.TemplateForm) { f.Tags = []string{" ", ""} }, "Tags"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.edit(&form)
			err := ValidateForm(form)
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("expected MissingFieldError; got %v", err)
			}
			if mf.Field != tc.field {
				t.Fatalf("expected field %q; got %q", tc.field, mf.Field)
			}
		})
	}

	if err := ValidateForm(validForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestCreate_ValidationFailureMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	form := validForm()
	form.Tags = []string{""}

	_, err := s.Create(context.Background(), form)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network calls; got %d", calls.Load())
	}
}

func TestCreate_ServerEchoIDWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"template_id":"tpl-served","template_name":"Screening","script_json":{"questions":[]}}`))
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	entry, err := s.Create(context.Background(), validForm())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID != "tpl-served" {
		t.Fatalf("expected server id; got %q", entry.ID)
	}
	if got := s.Summaries(); len(got) != 1 || got[0].ID != "tpl-served" {
		t.Fatalf("catalog not reconciled: %#v", got)
	}
}

func TestCreate_FallsBackToLocalIDWhenServerDoesNotEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"template_name":""}`))
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	entry, err := s.Create(context.Background(), validForm())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected a locally assigned id")
	}
	if entry.Name != "Screening" {
		t.Fatalf("expected form name fallback; got %q", entry.Name)
	}
}

func TestCreate_ServerFailureLeavesCatalogUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`backend unavailable`))
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	_, err := s.Create(context.Background(), validForm())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := s.Summaries(); len(got) != 0 {
		t.Fatalf("catalog changed on failure: %#v", got)
	}
}

func TestDelete_VerifiedRemovesEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true}`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"template_id":"tpl-keep","template_name":"Other"}]`))
		}
	}))
	defer srv.Close()

	c := api.New(api.Config{BaseURL: srv.URL})
	s := New(c)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	seed := s.Summaries()
	s.mu.Lock()
	s.summaries = append(seed, model.TemplateSummary{ID: "tpl-gone", Name: "Doomed"})
	s.mu.Unlock()

	if err := s.Delete(context.Background(), "tpl-gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := s.Summaries()
	if len(got) != 1 || got[0].ID != "tpl-keep" {
		t.Fatalf("expected only tpl-keep; got %#v", got)
	}
}

func TestDelete_StillListedKeepsEntryAndReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true}`))
		case http.MethodGet:
			// The service claims success but the id is still listed.
			_, _ = w.Write([]byte(`[{"template_id":"tpl-zombie","template_name":"Zombie"}]`))
		}
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	err := s.Delete(context.Background(), "tpl-zombie")
	if !errors.Is(err, ErrDeleteNotVerified) {
		t.Fatalf("expected ErrDeleteNotVerified; got %v", err)
	}
	got := s.Summaries()
	if len(got) != 1 || got[0].ID != "tpl-zombie" {
		t.Fatalf("catalog should be unchanged; got %#v", got)
	}
}

func TestDelete_VerificationFetchFailureKeepsEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true}`))
		case http.MethodGet:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	s := New(api.New(api.Config{BaseURL: srv.URL}))
	s.mu.Lock()
	s.summaries = []model.TemplateSummary{{ID: "tpl-1", Name: "Kept"}}
	s.mu.Unlock()

	if err := s.Delete(context.Background(), "tpl-1"); err == nil {
		t.Fatalf("expected verification error")
	}
	if got := s.Summaries(); len(got) != 1 {
		t.Fatalf("catalog should be unchanged; got %#v", got)
	}
}

func TestSetName_ReconcilesAndIgnoresUnknownIDs(t *testing.T) {
	s := New(api.New(api.Config{BaseURL: "http://unused"}))
	s.mu.Lock()
	s.summaries = []model.TemplateSummary{{ID: "tpl-1", Name: "Old"}}
	s.mu.Unlock()
	before := s.Summaries()

	s.SetName("tpl-1", "New")
	got := s.Summaries()
	if got[0].Name != "New" {
		t.Fatalf("expected renamed entry; got %#v", got)
	}
	if before[0].Name != "Old" {
		t.Fatalf("SetName mutated the previous snapshot")
	}

	s.SetName("tpl-missing", "X")
	if got := s.Summaries(); got[0].Name != "New" {
		t.Fatalf("unknown id should be a no-op; got %#v", got)
	}
}
