package script

import (
	"reflect"
	"testing"

	"callboard-cli/internal/model"
)

func TestAddQuestion_AppendsEmptyQuestion(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()

	if len(s) != 1 {
		t.Fatalf("expected 1 question; got %d", len(s))
	}
	if q.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if q.Question != "" || q.Answer != "" {
		t.Fatalf("expected empty text fields; got %q/%q", q.Question, q.Answer)
	}
	if q.FollowUps == nil || len(q.FollowUps) != 0 {
		t.Fatalf("expected empty (non-nil) followUps; got %#v", q.FollowUps)
	}
}

func TestAddQuestion_IDsUniqueAcrossMany(t *testing.T) {
	s := Set{}
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		var q model.Question
		s, q = s.AddQuestion()
		if seen[q.ID] {
			t.Fatalf("duplicate id %q after %d adds", q.ID, i+1)
		}
		seen[q.ID] = true
	}
}

func TestDeleteQuestion_RemovesOnlyTarget(t *testing.T) {
	s := Set{}
	var ids []string
	for i := 0; i < 4; i++ {
		var q model.Question
		s, q = s.AddQuestion()
		s = s.UpdateQuestion(q.ID, FieldQuestion, "prompt")
		ids = append(ids, q.ID)
	}

	s = s.DeleteQuestion(ids[1])

	if len(s) != 3 {
		t.Fatalf("expected 3 questions; got %d", len(s))
	}
	want := []string{ids[0], ids[2], ids[3]}
	for i, q := range s {
		if q.ID != want[i] {
			t.Fatalf("order broken at %d: got %q want %q", i, q.ID, want[i])
		}
		if q.Question != "prompt" {
			t.Fatalf("surviving question lost its field value: %q", q.Question)
		}
	}
}

func TestDeleteQuestion_CascadesFollowUps(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()
	for i := 0; i < 3; i++ {
		s = s.AddFollowUp(q.ID)
	}
	if got, _ := s.Find(q.ID); len(got.FollowUps) != 3 {
		t.Fatalf("setup: expected 3 follow-ups; got %d", len(got.FollowUps))
	}

	s = s.DeleteQuestion(q.ID)

	if len(s) != 0 {
		t.Fatalf("expected empty set; got %d questions", len(s))
	}
	total := 0
	for _, q := range s {
		total += len(q.FollowUps)
	}
	if total != 0 {
		t.Fatalf("follow-ups survived their parent: %d", total)
	}
}

func TestUpdate_UnknownIDsAreNoOps(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()
	s = s.UpdateQuestion(q.ID, FieldQuestion, "keep me")
	s = s.AddFollowUp(q.ID)
	before := append(Set(nil), s...)

	cases := []struct {
		name string
		run  func(Set) Set
	}{
		{"updateQuestion unknown id", func(s Set) Set { return s.UpdateQuestion("q-missing", FieldAnswer, "x") }},
		{"updateQuestion unknown field", func(s Set) Set { return s.UpdateQuestion(q.ID, Field("title"), "x") }},
		{"deleteQuestion unknown id", func(s Set) Set { return s.DeleteQuestion("q-missing") }},
		{"addFollowUp unknown question", func(s Set) Set { return s.AddFollowUp("q-missing") }},
		{"updateFollowUp unknown question", func(s Set) Set { return s.UpdateFollowUp("q-missing", "fu-x", FieldAnswer, "x") }},
		{"updateFollowUp unknown followUp", func(s Set) Set { return s.UpdateFollowUp(q.ID, "fu-missing", FieldAnswer, "x") }},
		{"deleteFollowUp unknown followUp", func(s Set) Set { return s.DeleteFollowUp(q.ID, "fu-missing") }},
	}
	for _, tc := range cases {
		got := tc.run(s)
		if !reflect.DeepEqual(got, before) {
			t.Fatalf("%s: set changed: %#v", tc.name, got)
		}
	}
}

func TestEditScenario_FollowUpAnswer(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()

	s = s.AddFollowUp(q.ID)
	got, ok := s.Find(q.ID)
	if !ok || len(got.FollowUps) != 1 {
		t.Fatalf("expected exactly one follow-up; got %#v", got.FollowUps)
	}
	fu := got.FollowUps[0]
	if fu.Question != "" || fu.Answer != "" {
		t.Fatalf("expected empty follow-up fields; got %q/%q", fu.Question, fu.Answer)
	}

	s = s.UpdateFollowUp(q.ID, fu.ID, FieldAnswer, "42")

	got, _ = s.Find(q.ID)
	if got.FollowUps[0].Answer != "42" {
		t.Fatalf("expected answer 42; got %q", got.FollowUps[0].Answer)
	}
	if got.FollowUps[0].Question != "" {
		t.Fatalf("question field should be untouched; got %q", got.FollowUps[0].Question)
	}
	if got.FollowUps[0].ID != fu.ID {
		t.Fatalf("follow-up id changed: %q -> %q", fu.ID, got.FollowUps[0].ID)
	}
}

func TestMutations_DoNotWriteThroughSharedBackingArrays(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()
	s = s.AddFollowUp(q.ID)
	fu := s[0].FollowUps[0]

	snapshot := Set{s[0]}
	snapshot[0].FollowUps = append([]model.FollowUp(nil), s[0].FollowUps...)

	_ = s.UpdateQuestion(q.ID, FieldQuestion, "changed")
	_ = s.UpdateFollowUp(q.ID, fu.ID, FieldAnswer, "changed")
	_ = s.DeleteFollowUp(q.ID, fu.ID)

	if s[0].Question != "" {
		t.Fatalf("UpdateQuestion mutated the receiver: %q", s[0].Question)
	}
	if !reflect.DeepEqual(s[0].FollowUps, snapshot[0].FollowUps) {
		t.Fatalf("follow-up mutation leaked into the receiver: %#v", s[0].FollowUps)
	}
}

func TestDeleteFollowUp_RemovesOnlyTarget(t *testing.T) {
	s := Set{}
	s, q := s.AddQuestion()
	s = s.AddFollowUp(q.ID)
	s = s.AddFollowUp(q.ID)
	got, _ := s.Find(q.ID)
	first, second := got.FollowUps[0], got.FollowUps[1]

	s = s.DeleteFollowUp(q.ID, first.ID)

	got, _ = s.Find(q.ID)
	if len(got.FollowUps) != 1 {
		t.Fatalf("expected 1 follow-up; got %d", len(got.FollowUps))
	}
	if got.FollowUps[0].ID != second.ID {
		t.Fatalf("wrong follow-up deleted; kept %q want %q", got.FollowUps[0].ID, second.ID)
	}
}
