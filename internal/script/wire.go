package script

import (
	"callboard-cli/internal/model"
)

// Wire shapes for the remote template service's script_json payload.
// The service names the prompt field "text" and nests follow-ups under
// "follow_ups"; locally both levels use "question"/"answer".

type WireFollowUp struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

type WireQuestion struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Answer    string         `json:"answer"`
	FollowUps []WireFollowUp `json:"follow_ups"`
}

// ToWire serializes the set into the service's nested representation,
// retaining ids. The result is never nil; the service expects arrays.
func ToWire(s Set) []WireQuestion {
	out := make([]WireQuestion, 0, len(s))
	for _, q := range s {
		wq := WireQuestion{
			ID:        q.ID,
			Text:      q.Question,
			Answer:    q.Answer,
			FollowUps: make([]WireFollowUp, 0, len(q.FollowUps)),
		}
		for _, f := range q.FollowUps {
			wq.FollowUps = append(wq.FollowUps, WireFollowUp{
				ID:     f.ID,
				Text:   f.Question,
				Answer: f.Answer,
			})
		}
		out = append(out, wq)
	}
	return out
}

// FromWire flattens the service representation into the local shape,
// keeping server-provided ids. Missing follow-up arrays become empty
// sequences so edits can append without nil checks.
func FromWire(ws []WireQuestion) Set {
	out := make(Set, 0, len(ws))
	for _, wq := range ws {
		q := model.Question{
			ID:        wq.ID,
			Question:  wq.Text,
			Answer:    wq.Answer,
			FollowUps: make([]model.FollowUp, 0, len(wq.FollowUps)),
		}
		for _, f := range wq.FollowUps {
			q.FollowUps = append(q.FollowUps, model.FollowUp{
				ID:       f.ID,
				Question: f.Text,
				Answer:   f.Answer,
			})
		}
		out = append(out, q)
	}
	return out
}
