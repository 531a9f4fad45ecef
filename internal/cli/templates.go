package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"callboard-cli/internal/catalog"
	"callboard-cli/internal/model"
	"callboard-cli/internal/script"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Template catalog + question scripts",
	}
	cmd.AddCommand(newTemplatesListCmd(app))
	cmd.AddCommand(newTemplatesShowCmd(app))
	cmd.AddCommand(newTemplatesCreateCmd(app))
	cmd.AddCommand(newTemplatesDeleteCmd(app))
	cmd.AddCommand(newTemplatesPullCmd(app))
	cmd.AddCommand(newTemplatesPushCmd(app))
	return cmd
}

func newTemplatesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates (id + name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			summaries, err := client.ListTemplates(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": summaries})
		},
	}
}

func newTemplatesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show a template's question script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec, err := client.GetTemplate(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":        rec.ID,
				"name":      rec.Name,
				"questions": []model.Question(script.FromWire(rec.Questions)),
			}})
		},
	}
}

func newTemplatesCreateCmd(app *App) *cobra.Command {
	form := model.DefaultTemplateForm()
	var tags string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template (metadata only; add questions with push or the TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Tags = splitTags(tags)
			if err := catalog.ValidateForm(form); err != nil {
				return writeErr(cmd, err)
			}
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cat := catalog.New(client)
			summary, err := cat.Create(cmd.Context(), form)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": summary})
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "Template name (required)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&form.Category, "category", "", "Category (required)")
	cmd.Flags().StringVar(&form.Industry, "industry", "", "Industry (required)")
	cmd.Flags().StringVar(&form.RoleType, "role-type", "", "Role type (required)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags (required)")
	cmd.Flags().StringVar(&form.TemplateType, "template-type", form.TemplateType, "Template type")
	cmd.Flags().StringVar(&form.ExperienceLevel, "experience-level", "", "Experience level")
	cmd.Flags().StringVar(&form.DifficultyLevel, "difficulty", form.DifficultyLevel, "Difficulty level")
	cmd.Flags().StringVar(&form.Language, "language", form.Language, "Language code")
	cmd.Flags().IntVar(&form.EstimatedDuration, "duration", form.EstimatedDuration, "Estimated duration in minutes")
	return cmd
}

func newTemplatesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a template (verified against the server before it is dropped)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cat := catalog.New(client)
			if err := cat.Refresh(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			id := args[0]
			if _, ok := cat.Find(id); !ok {
				return writeErr(cmd, errNotFound("template", id))
			}
			if err := cat.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, catalog.ErrDeleteNotVerified) {
					return writeErr(cmd, fmt.Errorf("template %s: %w", id, err))
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
}

func newTemplatesPullCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pull <template-id>",
		Short: "Write a template's questions to a JSON file for offline editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec, err := client.GetTemplate(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			questions := []model.Question(script.FromWire(rec.Questions))
			b, err := json.MarshalIndent(questions, "", "  ")
			if err != nil {
				return writeErr(cmd, err)
			}
			if out == "" || out == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := os.WriteFile(out, append(b, '\n'), 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"wrote": out, "questions": len(questions)}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	return cmd
}

func newTemplatesPushCmd(app *App) *cobra.Command {
	var file string
	var name string

	cmd := &cobra.Command{
		Use:   "push <template-id>",
		Short: "Upload a questions JSON file as the template's script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(file) == "" {
				return writeErr(cmd, errors.New("missing --file"))
			}
			b, err := os.ReadFile(file)
			if err != nil {
				return writeErr(cmd, err)
			}
			var questions []model.Question
			if err := json.Unmarshal(b, &questions); err != nil {
				return writeErr(cmd, fmt.Errorf("parse %s: %w", file, err))
			}
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := args[0]
			n := strings.TrimSpace(name)
			if n == "" {
				rec, err := client.GetTemplate(cmd.Context(), id)
				if err != nil {
					return writeErr(cmd, err)
				}
				n = rec.Name
			}
			if err := client.UpdateTemplate(cmd.Context(), id, n, script.ToWire(script.Set(questions))); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"updated": id, "questions": len(questions)}})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Questions JSON file (as written by pull)")
	cmd.Flags().StringVar(&name, "name", "", "Also rename the template")
	return cmd
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
