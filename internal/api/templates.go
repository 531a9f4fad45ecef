package api

import (
	"context"
	"net/http"
	"net/url"

	"callboard-cli/internal/model"
	"callboard-cli/internal/script"
)

// TemplateRecord is the full template as the service returns it, with the
// script payload still in wire shape. Callers flatten it via script.FromWire.
type TemplateRecord struct {
	ID        string
	Name      string
	Questions []script.WireQuestion
}

type wireScript struct {
	TemplateID string                `json:"template_id"`
	Questions  []script.WireQuestion `json:"questions"`
	Intro      map[string]any        `json:"intro,omitempty"`
	Closing    map[string]any        `json:"closing,omitempty"`
}

type wireTemplate struct {
	TemplateID   string     `json:"template_id"`
	TemplateName string     `json:"template_name"`
	ScriptJSON   wireScript `json:"script_json"`
}

type wireCreateTemplate struct {
	TemplateID        string     `json:"template_id"`
	TemplateName      string     `json:"template_name"`
	Description       string     `json:"description"`
	TemplateType      string     `json:"template_type"`
	Category          string     `json:"category"`
	Industry          string     `json:"industry"`
	RoleType          string     `json:"role_type"`
	ExperienceLevel   string     `json:"experience_level,omitempty"`
	Tags              []string   `json:"tags"`
	DifficultyLevel   string     `json:"difficulty_level"`
	Language          string     `json:"language"`
	EstimatedDuration int        `json:"estimated_duration_seconds"`
	ScriptJSON        wireScript `json:"script_json"`
	CreatedBy         string     `json:"created_by"`
	OwnerID           string     `json:"owner_id"`
}

type wireUpdateTemplate struct {
	TemplateName string     `json:"template_name"`
	ScriptJSON   wireScript `json:"script_json"`
}

type wireDeleteResult struct {
	Success bool `json:"success"`
}

func templatePath(id string) string {
	return "/templates/" + url.PathEscape(id)
}

// ListTemplates fetches the catalog summaries.
func (c *Client) ListTemplates(ctx context.Context) ([]model.TemplateSummary, error) {
	var raw []wireTemplate
	if err := c.do(ctx, http.MethodGet, "/templates", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.TemplateSummary, 0, len(raw))
	for _, t := range raw {
		out = append(out, model.TemplateSummary{ID: t.TemplateID, Name: t.TemplateName})
	}
	return out, nil
}

// GetTemplate fetches one full template record.
func (c *Client) GetTemplate(ctx context.Context, id string) (TemplateRecord, error) {
	var raw wireTemplate
	if err := c.do(ctx, http.MethodGet, templatePath(id), nil, &raw); err != nil {
		return TemplateRecord{}, err
	}
	return TemplateRecord{
		ID:        raw.TemplateID,
		Name:      raw.TemplateName,
		Questions: raw.ScriptJSON.Questions,
	}, nil
}

// CreateTemplate creates a template with the given metadata and an empty
// question script. id is the locally assigned template id; the service
// should echo its own in the response, which wins when present.
func (c *Client) CreateTemplate(ctx context.Context, id string, form model.TemplateForm) (TemplateRecord, error) {
	body := wireCreateTemplate{
		TemplateID:        id,
		TemplateName:      form.Name,
		Description:       form.Description,
		TemplateType:      form.TemplateType,
		Category:          form.Category,
		Industry:          form.Industry,
		RoleType:          form.RoleType,
		ExperienceLevel:   form.ExperienceLevel,
		Tags:              form.Tags,
		DifficultyLevel:   form.DifficultyLevel,
		Language:          form.Language,
		EstimatedDuration: form.EstimatedDuration,
		ScriptJSON: wireScript{
			TemplateID: id,
			Questions:  []script.WireQuestion{},
			Intro:      map[string]any{},
			Closing:    map[string]any{},
		},
		CreatedBy: form.CreatedBy,
		OwnerID:   form.OwnerID,
	}
	var raw wireTemplate
	if err := c.do(ctx, http.MethodPost, "/templates", body, &raw); err != nil {
		return TemplateRecord{}, err
	}
	return TemplateRecord{
		ID:        raw.TemplateID,
		Name:      raw.TemplateName,
		Questions: raw.ScriptJSON.Questions,
	}, nil
}

// UpdateTemplate saves the display name and the full question script.
func (c *Client) UpdateTemplate(ctx context.Context, id, name string, questions []script.WireQuestion) error {
	body := wireUpdateTemplate{
		TemplateName: name,
		ScriptJSON: wireScript{
			TemplateID: id,
			Questions:  questions,
		},
	}
	return c.do(ctx, http.MethodPut, templatePath(id), body, nil)
}

// DeleteTemplate issues the delete request. The service's "ok" is treated as
// provisional; callers must verify by re-fetching the catalog before
// dropping the entry locally.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	var res wireDeleteResult
	if err := c.do(ctx, http.MethodDelete, templatePath(id), nil, &res); err != nil {
		return err
	}
	// Some deployments return 200 with success=false instead of an error
	// status. Treat that as a server-reported failure.
	if !res.Success {
		return &StatusError{StatusCode: http.StatusOK, Body: "delete not confirmed by server"}
	}
	return nil
}
