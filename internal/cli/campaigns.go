package cli

import (
	"errors"
	"strings"
	"time"

	"callboard-cli/internal/data"
	"callboard-cli/internal/model"
	"callboard-cli/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCampaignsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Campaign listings",
	}
	cmd.AddCommand(newCampaignsListCmd(app))
	cmd.AddCommand(newCampaignsShowCmd(app))
	return cmd
}

func newCampaignsListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			campaigns := data.Campaigns()
			if status != "" {
				filtered := campaigns[:0]
				for _, c := range campaigns {
					if strings.EqualFold(string(c.Status), status) {
						filtered = append(filtered, c)
					}
				}
				campaigns = filtered
			}
			return writeOut(cmd, app, map[string]any{"data": campaigns})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (Running|Paused|Completed)")
	return cmd
}

func newCampaignsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <campaign-id>",
		Short: "Show a campaign with its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range data.Campaigns() {
				if c.ID == args[0] {
					return writeOut(cmd, app, map[string]any{"data": c})
				}
			}
			return writeErr(cmd, errNotFound("campaign", args[0]))
		},
	}
}

func newDraftsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Locally saved campaign drafts",
	}
	cmd.AddCommand(newDraftsListCmd(app))
	cmd.AddCommand(newDraftsSaveCmd(app))
	cmd.AddCommand(newDraftsDeleteCmd(app))
	return cmd
}

func newDraftsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := store.LoadDrafts(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": drafts})
		},
	}
}

func newDraftsSaveCmd(app *App) *cobra.Command {
	var id, jobCode, jobInfo, candidateInfo string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a campaign draft (new, or overwrite by --id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(jobCode) == "" {
				return writeErr(cmd, errors.New("missing --job-code"))
			}
			if !validJobCode(jobCode) {
				return writeErr(cmd, errNotFound("job code", jobCode))
			}
			draft := model.CampaignDraft{
				ID:            strings.TrimSpace(id),
				JobCode:       jobCode,
				JobInfo:       jobInfo,
				CandidateInfo: candidateInfo,
				SavedAt:       time.Now().UTC(),
			}
			if draft.ID == "" {
				draft.ID = uuid.NewString()
			}
			if err := store.UpsertDraft(cmd.Context(), draft); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": draft})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Draft id (overwrite an existing draft)")
	cmd.Flags().StringVar(&jobCode, "job-code", "", "Job code (JC001..JC008)")
	cmd.Flags().StringVar(&jobInfo, "job-info", "", "Job details")
	cmd.Flags().StringVar(&candidateInfo, "candidate-info", "", "Candidate details")
	return cmd
}

func newDraftsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <draft-id>",
		Short: "Delete a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.RemoveDraft(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}

func validJobCode(code string) bool {
	for _, jc := range data.JobCodes() {
		if jc.Value == code {
			return true
		}
	}
	return false
}
