package cli

import (
	"fmt"
	"strings"

	"callboard-cli/internal/data"
	"callboard-cli/internal/format"

	"github.com/spf13/cobra"
)

// View wrappers give the static datasets a markdown rendering for --format table.

type dashboardView struct{ data.Dashboard }

func (v dashboardView) Markdown() string {
	var b strings.Builder
	b.WriteString("# Dashboard\n\n")
	fmt.Fprintf(&b, "**Campaigns:** %d · **Active calls:** %d · **Completed:** %d · **Conversion:** %.1f%%\n\n",
		v.Stats.TotalCampaigns, v.Stats.ActiveCalls, v.Stats.CompletedCalls, v.Stats.ConversionRate)
	b.WriteString("## Recent activity\n\n")
	rows := make([][]string, 0, len(v.RecentActivity))
	for _, r := range v.RecentActivity {
		rows = append(rows, []string{r.Campaign, r.Status, fmt.Sprintf("%d", r.Calls), r.Date})
	}
	b.WriteString(format.MarkdownTable([]string{"Campaign", "Status", "Calls", "Date"}, rows))
	return b.String()
}

type analyticsView struct{ data.Analytics }

func (v analyticsView) Markdown() string {
	var b strings.Builder
	b.WriteString("# Analytics\n\n")
	fmt.Fprintf(&b, "**Total calls:** %d · **Answered:** %d · **Missed:** %d · **Avg duration:** %s\n\n",
		v.Summary.TotalCalls, v.Summary.AnsweredCalls, v.Summary.MissedCalls, v.Summary.AvgDuration)
	b.WriteString("## Campaign performance\n\n")
	rows := make([][]string, 0, len(v.CampaignPerformance))
	for _, p := range v.CampaignPerformance {
		rows = append(rows, []string{p.Name, fmt.Sprintf("%d", p.Delivered), fmt.Sprintf("%d", p.Answered), fmt.Sprintf("%.1f%%", p.ConversionRate)})
	}
	b.WriteString(format.MarkdownTable([]string{"Campaign", "Delivered", "Answered", "Conversion"}, rows))
	return b.String()
}

type usageView struct{ data.Usage }

func (v usageView) Markdown() string {
	var b strings.Builder
	b.WriteString("# Usage\n\n")
	rows := make([][]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		rows = append(rows, []string{c.Title, c.Value, c.Change})
	}
	b.WriteString(format.MarkdownTable([]string{"Metric", "Value", "Change"}, rows))
	b.WriteString("\n## Daily calls\n\n")
	hist := make([][]string, 0, len(v.History))
	for _, p := range v.History {
		hist = append(hist, []string{p.Date, fmt.Sprintf("%d", p.Calls)})
	}
	b.WriteString(format.MarkdownTable([]string{"Date", "Calls"}, hist))
	return b.String()
}

type pricingView struct{ Plans []data.Plan }

func (v pricingView) Markdown() string {
	var b strings.Builder
	b.WriteString("# Pricing\n\n")
	for _, p := range v.Plans {
		marker := ""
		if p.Popular {
			marker = " ⭐"
		}
		fmt.Fprintf(&b, "## %s — %s%s%s\n\n%s\n\n", p.Title, p.Price, p.Period, marker, p.Description)
		for _, f := range p.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard stats and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, dashboardView{data.DashboardData()})
		},
	}
}

func newAnalyticsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show call analytics and campaign performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, analyticsView{data.AnalyticsData()})
		},
	}
}

func newUsageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show usage metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, usageView{data.UsageData()})
		},
	}
}

func newPricingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pricing",
		Short: "Show available plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, pricingView{Plans: data.Plans()})
		},
	}
}
