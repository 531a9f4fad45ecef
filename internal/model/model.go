package model

import "time"

// FollowUp is a secondary prompt/answer pair nested under a Question.
// IDs are immutable once assigned and unique within the parent question.
type FollowUp struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Question is a prompt/answer pair belonging to a template. FollowUps keep
// insertion order; edits never reorder them.
type Question struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	FollowUps []FollowUp `json:"followUps"`
}

// TemplateSummary is a catalog entry (id + display name). The full question
// script is loaded separately when a template is opened.
type TemplateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TemplateForm carries the metadata required to create a template.
// internal/api maps these fields onto the service's wire shape.
type TemplateForm struct {
	Name              string   `json:"templateName"`
	Description       string   `json:"description"`
	TemplateType      string   `json:"templateType"`
	Category          string   `json:"category"`
	Industry          string   `json:"industry"`
	RoleType          string   `json:"roleType"`
	ExperienceLevel   string   `json:"experienceLevel,omitempty"`
	Tags              []string `json:"tags"`
	DifficultyLevel   string   `json:"difficultyLevel"`
	Language          string   `json:"language"`
	EstimatedDuration int      `json:"estimatedDurationSeconds"`
	CreatedBy         string   `json:"createdBy"`
	OwnerID           string   `json:"ownerId"`
}

// DefaultTemplateForm mirrors the defaults the create dialog starts from.
func DefaultTemplateForm() TemplateForm {
	return TemplateForm{
		TemplateType:      "straight",
		DifficultyLevel:   "SIMPLE",
		Language:          "en-IN",
		EstimatedDuration: 60,
		CreatedBy:         "admin",
		OwnerID:           "admin",
	}
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// AuthSession is the token + user pair returned by login/signup and kept
// locally until logout.
type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CampaignStatus string

const (
	CampaignRunning   CampaignStatus = "Running"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignCompleted CampaignStatus = "Completed"
)

// Campaign is a demo-data record shown on the campaigns pages.
type Campaign struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Channel     string          `json:"channel"`
	Tags        []string        `json:"tags,omitempty"`
	Status      CampaignStatus  `json:"status"`
	Metrics     CampaignMetrics `json:"metrics"`
}

type CampaignMetrics struct {
	Delivered int     `json:"delivered"`
	Opened    int     `json:"opened"`
	Clicked   int     `json:"clicked"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"conversionRate"`
}

// CampaignDraft is a locally persisted, not-yet-submitted campaign form.
// Drafts are stored as one list, read and written wholesale.
type CampaignDraft struct {
	ID            string    `json:"id"`
	JobCode       string    `json:"jobCode"`
	JobInfo       string    `json:"jobInfo"`
	CandidateInfo string    `json:"candidateInfo,omitempty"`
	SavedAt       time.Time `json:"savedAt"`
}
