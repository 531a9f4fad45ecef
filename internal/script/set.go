package script

import (
	"callboard-cli/internal/model"
)

// Field names a text field addressable by the editing operations.
type Field string

const (
	FieldQuestion Field = "question"
	FieldAnswer   Field = "answer"
)

// Set is the question tree of the currently open template.
//
// All operations are total and synchronous: unknown ids (and unknown fields)
// are deliberate no-ops, since views may fire callbacks for rows that were
// just deleted. Every mutation returns a fresh slice and fresh element
// copies — observers compare by reference to detect changes, so shared
// backing arrays must never be written through.
type Set []model.Question

// AddQuestion appends an empty question with a fresh id and returns it.
func (s Set) AddQuestion() (Set, model.Question) {
	q := model.Question{
		ID:        NewQuestionID(),
		FollowUps: []model.FollowUp{},
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, q)
	return out, q
}

// UpdateQuestion replaces the named field of the matching question.
func (s Set) UpdateQuestion(id string, field Field, value string) Set {
	if field != FieldQuestion && field != FieldAnswer {
		return s
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}
	out := s.clone()
	switch field {
	case FieldQuestion:
		out[idx].Question = value
	case FieldAnswer:
		out[idx].Answer = value
	}
	return out
}

// DeleteQuestion removes the question and, with it, all of its follow-ups.
func (s Set) DeleteQuestion(id string) Set {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}
	out := make(Set, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

// AddFollowUp appends an empty follow-up (fresh id) to the named question.
func (s Set) AddFollowUp(questionID string) Set {
	idx := s.indexOf(questionID)
	if idx < 0 {
		return s
	}
	out := s.clone()
	fus := make([]model.FollowUp, 0, len(out[idx].FollowUps)+1)
	fus = append(fus, out[idx].FollowUps...)
	fus = append(fus, model.FollowUp{ID: NewFollowUpID()})
	out[idx].FollowUps = fus
	return out
}

// UpdateFollowUp replaces the named field of the matching follow-up.
func (s Set) UpdateFollowUp(questionID, followUpID string, field Field, value string) Set {
	if field != FieldQuestion && field != FieldAnswer {
		return s
	}
	qi := s.indexOf(questionID)
	if qi < 0 {
		return s
	}
	fi := indexOfFollowUp(s[qi].FollowUps, followUpID)
	if fi < 0 {
		return s
	}
	out := s.clone()
	fus := append([]model.FollowUp(nil), out[qi].FollowUps...)
	switch field {
	case FieldQuestion:
		fus[fi].Question = value
	case FieldAnswer:
		fus[fi].Answer = value
	}
	out[qi].FollowUps = fus
	return out
}

// DeleteFollowUp removes the matching follow-up.
func (s Set) DeleteFollowUp(questionID, followUpID string) Set {
	qi := s.indexOf(questionID)
	if qi < 0 {
		return s
	}
	fi := indexOfFollowUp(s[qi].FollowUps, followUpID)
	if fi < 0 {
		return s
	}
	out := s.clone()
	fus := make([]model.FollowUp, 0, len(out[qi].FollowUps)-1)
	fus = append(fus, out[qi].FollowUps[:fi]...)
	fus = append(fus, out[qi].FollowUps[fi+1:]...)
	out[qi].FollowUps = fus
	return out
}

// Clear returns the empty set (used when no template is selected or after a
// failed load of a fresh selection).
func Clear() Set {
	return Set{}
}

// Find returns the question with the given id, if present.
func (s Set) Find(id string) (model.Question, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Question{}, false
	}
	return s[idx], true
}

func (s Set) indexOf(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfFollowUp(fus []model.FollowUp, id string) int {
	for i := range fus {
		if fus[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}
