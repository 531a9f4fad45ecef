package tui

import (
	"testing"

	"callboard-cli/internal/model"
	"callboard-cli/internal/script"
)

func sampleSet() script.Set {
	return script.Set{
		{
			ID:       "q-1",
			Question: "Tell me about yourself",
			FollowUps: []model.FollowUp{
				{ID: "fu-1", Question: "What do you do now?", Answer: "42"},
			},
		},
		{ID: "q-2", Question: "Why this role?"},
	}
}

func TestEditorRows_FlattensInOrder(t *testing.T) {
	rows := editorRows(sampleSet())
	want := []editorRow{
		{qID: "q-1"},
		{qID: "q-1", fuID: "fu-1"},
		{qID: "q-2"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestCurrentPromptAndAnswer(t *testing.T) {
	set := sampleSet()
	if got := currentPrompt(set, editorRow{qID: "q-1"}); got != "Tell me about yourself" {
		t.Fatalf("question prompt = %q", got)
	}
	if got := currentPrompt(set, editorRow{qID: "q-1", fuID: "fu-1"}); got != "What do you do now?" {
		t.Fatalf("follow-up prompt = %q", got)
	}
	if got := currentAnswer(set, editorRow{qID: "q-1", fuID: "fu-1"}); got != "42" {
		t.Fatalf("follow-up answer = %q", got)
	}
	if got := currentPrompt(set, editorRow{qID: "missing"}); got != "" {
		t.Fatalf("unknown question should be empty, got %q", got)
	}
}

func TestCreateForm_ToForm(t *testing.T) {
	f := newCreateForm()
	values := []string{" Sales Screen ", "Phone screen for AEs", "sales", "saas", "account-exec", " outbound , phone ,"}
	for i, v := range values {
		f.inputs[i].SetValue(v)
	}
	form := f.toForm()
	if form.Name != "Sales Screen" {
		t.Fatalf("name = %q", form.Name)
	}
	if len(form.Tags) != 2 || form.Tags[0] != "outbound" || form.Tags[1] != "phone" {
		t.Fatalf("tags = %v", form.Tags)
	}
	if form.TemplateType != "straight" || form.Language != "en-IN" {
		t.Fatalf("defaults not applied: %+v", form)
	}
}

func TestCatalogItems(t *testing.T) {
	items := catalogItems([]model.TemplateSummary{{ID: "tmpl-1", Name: "Sales Screen"}})
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	it, ok := items[0].(templateItem)
	if !ok {
		t.Fatalf("unexpected item type %T", items[0])
	}
	if it.Title() != "Sales Screen" || it.Description() != "tmpl-1" {
		t.Fatalf("item = %+v", it)
	}
}
