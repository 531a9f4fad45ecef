package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"callboard-cli/internal/api"
	"callboard-cli/internal/model"
)

// Store holds the template catalog: the id+name summaries shown in the
// sidebar. Remote create/delete go through here so local state is only
// reconciled after the server confirms.
//
// The summaries slice is replaced wholesale on every change, never written
// in place; views may hold the previous slice and compare by reference.
type Store struct {
	mu        sync.Mutex
	client    *api.Client
	summaries []model.TemplateSummary
}

func New(client *api.Client) *Store {
	return &Store{client: client, summaries: []model.TemplateSummary{}}
}

// Summaries returns the current catalog snapshot.
func (s *Store) Summaries() []model.TemplateSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaries
}

func (s *Store) Find(id string) (model.TemplateSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.summaries {
		if t.ID == id {
			return t, true
		}
	}
	return model.TemplateSummary{}, false
}

// Refresh replaces the catalog with the server's current list.
func (s *Store) Refresh(ctx context.Context) error {
	list, err := s.client.ListTemplates(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []model.TemplateSummary{}
	}
	s.mu.Lock()
	s.summaries = list
	s.mu.Unlock()
	return nil
}

// MissingFieldError is a client-side validation failure, raised before any
// network call is attempted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ValidateForm checks the create preconditions: name, description,
// category, industry, role type and tags must all be non-empty.
func ValidateForm(form model.TemplateForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return &MissingFieldError{Field: "Template name"}
	}
	if strings.TrimSpace(form.Description) == "" {
		return &MissingFieldError{Field: "Description"}
	}
	if strings.TrimSpace(form.Category) == "" {
		return &MissingFieldError{Field: "Category"}
	}
	if strings.TrimSpace(form.Industry) == "" {
		return &MissingFieldError{Field: "Industry"}
	}
	if strings.TrimSpace(form.RoleType) == "" {
		return &MissingFieldError{Field: "Role type"}
	}
	if len(trimTags(form.Tags)) == 0 {
		return &MissingFieldError{Field: "Tags"}
	}
	return nil
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Create validates the form, posts it with an initially empty question
// script, and appends the confirmed entry to the catalog. The server's
// echoed id wins; the locally generated one is only a fallback.
func (s *Store) Create(ctx context.Context, form model.TemplateForm) (model.TemplateSummary, error) {
	if err := ValidateForm(form); err != nil {
		return model.TemplateSummary{}, err
	}
	form.Tags = trimTags(form.Tags)

	localID := uuid.NewString()
	rec, err := s.client.CreateTemplate(ctx, localID, form)
	if err != nil {
		return model.TemplateSummary{}, err
	}

	entry := model.TemplateSummary{ID: rec.ID, Name: rec.Name}
	if strings.TrimSpace(entry.ID) == "" {
		entry.ID = localID
	}
	if strings.TrimSpace(entry.Name) == "" {
		entry.Name = form.Name
	}

	s.mu.Lock()
	next := make([]model.TemplateSummary, 0, len(s.summaries)+1)
	next = append(next, s.summaries...)
	next = append(next, entry)
	s.summaries = next
	s.mu.Unlock()
	return entry, nil
}

// ErrDeleteNotVerified means the service said "ok" but the template was
// still listed on the verification fetch; the catalog entry is kept.
var ErrDeleteNotVerified = fmt.Errorf("template still exists after delete; not removed locally")

// Delete removes a template. The service's delete response is treated as
// provisional: the catalog is re-fetched and the entry only dropped once
// the id is confirmed absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	list, err := s.client.ListTemplates(ctx)
	if err != nil {
		return fmt.Errorf("unable to verify deletion: %w", err)
	}
	for _, t := range list {
		if t.ID == id {
			return ErrDeleteNotVerified
		}
	}

	s.mu.Lock()
	next := make([]model.TemplateSummary, 0, len(s.summaries))
	for _, t := range s.summaries {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.summaries = next
	s.mu.Unlock()
	return nil
}

// SetName reconciles a display name after a confirmed save. Unknown ids are
// ignored (the template may have been deleted while the save was in flight).
func (s *Store) SetName(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.TemplateSummary, len(s.summaries))
	copy(next, s.summaries)
	for i := range next {
		if next[i].ID == id {
			next[i].Name = name
		}
	}
	s.summaries = next
}
