// Package data holds the static datasets backing the dashboard, analytics,
// usage and pricing views. These mirror the seed data the server ships with
// and are rendered locally without a network round trip.
package data

import "callboard-cli/internal/model"

type DashboardStats struct {
	TotalCampaigns int     `json:"totalCampaigns"`
	ActiveCalls    int     `json:"activeCalls"`
	CompletedCalls int     `json:"completedCalls"`
	ConversionRate float64 `json:"conversionRate"`
}

type ActivityRow struct {
	Campaign string `json:"campaign"`
	Status   string `json:"status"`
	Calls    int    `json:"calls"`
	Date     string `json:"date"`
}

type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity []ActivityRow  `json:"recentActivity"`
}

type AnalyticsSummary struct {
	TotalCalls    int    `json:"totalCalls"`
	AnsweredCalls int    `json:"answeredCalls"`
	MissedCalls   int    `json:"missedCalls"`
	AvgDuration   string `json:"avgDuration"`
}

type CampaignPerformance struct {
	Name           string  `json:"name"`
	Delivered      int     `json:"delivered"`
	Answered       int     `json:"answered"`
	ConversionRate float64 `json:"conversionRate"`
}

type Analytics struct {
	Summary             AnalyticsSummary      `json:"summary"`
	CampaignPerformance []CampaignPerformance `json:"campaignPerformance"`
}

type UsageCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type UsagePoint struct {
	Date  string `json:"date"`
	Calls int    `json:"calls"`
}

type Usage struct {
	Cards   []UsageCard  `json:"cards"`
	History []UsagePoint `json:"history"`
}

type Plan struct {
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

type JobCode struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func DashboardData() Dashboard {
	return Dashboard{
		Stats: DashboardStats{
			TotalCampaigns: 24,
			ActiveCalls:    156,
			CompletedCalls: 1842,
			ConversionRate: 34.5,
		},
		RecentActivity: []ActivityRow{
			{Campaign: "Grow Your Reach with Email", Status: "Running", Calls: 524, Date: "May 24, 2024"},
			{Campaign: "Get Ready to Boost Your Business", Status: "Running", Calls: 352, Date: "May 23, 2024"},
			{Campaign: "Hurry Up! 30% OFF only for today", Status: "Completed", Calls: 764, Date: "May 22, 2024"},
			{Campaign: "Let's connect with us at a cheap cost", Status: "Running", Calls: 676, Date: "May 21, 2024"},
			{Campaign: "Make Your Brand Stand Out", Status: "Completed", Calls: 542, Date: "May 20, 2024"},
		},
	}
}

func AnalyticsData() Analytics {
	return Analytics{
		Summary: AnalyticsSummary{
			TotalCalls:    2456,
			AnsweredCalls: 1842,
			MissedCalls:   614,
			AvgDuration:   "4:32",
		},
		CampaignPerformance: []CampaignPerformance{
			{Name: "Grow Your Reach with Email", Delivered: 524, Answered: 421, ConversionRate: 34.2},
			{Name: "Get Ready to Boost Your Business", Delivered: 352, Answered: 289, ConversionRate: 28.5},
			{Name: "Hurry Up! 30% OFF only for today", Delivered: 764, Answered: 612, ConversionRate: 42.1},
			{Name: "Let's connect with us at a cheap cost", Delivered: 676, Answered: 543, ConversionRate: 38.7},
			{Name: "Make Your Brand Stand Out", Delivered: 542, Answered: 398, ConversionRate: 31.9},
		},
	}
}

func UsageData() Usage {
	return Usage{
		Cards: []UsageCard{
			{Title: "Total Calls", Value: "2,842", Change: "+12%"},
			{Title: "Completed Calls", Value: "2,431", Change: "+8%"},
			{Title: "Success Rate", Value: "85.6%", Change: "+3.2%"},
			{Title: "Active Users", Value: "142", Change: "+5%"},
		},
		History: []UsagePoint{
			{Date: "Dec 1", Calls: 120},
			{Date: "Dec 2", Calls: 195},
			{Date: "Dec 3", Calls: 142},
			{Date: "Dec 4", Calls: 210},
			{Date: "Dec 5", Calls: 180},
			{Date: "Dec 6", Calls: 240},
			{Date: "Dec 7", Calls: 280},
			{Date: "Dec 8", Calls: 220},
			{Date: "Dec 9", Calls: 190},
			{Date: "Dec 10", Calls: 260},
			{Date: "Dec 11", Calls: 310},
			{Date: "Dec 12", Calls: 290},
			{Date: "Dec 13", Calls: 340},
			{Date: "Dec 14", Calls: 285},
			{Date: "Dec 15", Calls: 320},
		},
	}
}

func Plans() []Plan {
	return []Plan{
		{
			Title:       "Basic Plan",
			Price:       "$10",
			Period:      "/month",
			Description: "Perfect for small businesses",
			Features: []string{
				"Up to 5 users",
				"Basic call analytics",
				"500 minutes/month",
				"Email support",
				"Standard campaigns",
			},
		},
		{
			Title:       "Professional",
			Price:       "$29",
			Period:      "/month",
			Description: "For growing businesses",
			Features: []string{
				"Up to 20 users",
				"Advanced analytics",
				"2000 minutes/month",
				"Priority support",
				"Unlimited campaigns",
				"CRM integration",
			},
			Popular: true,
		},
		{
			Title:       "Enterprise",
			Price:       "$99",
			Period:      "/month",
			Description: "For large organizations",
			Features: []string{
				"Unlimited users",
				"Advanced reporting",
				"Unlimited minutes",
				"24/7 dedicated support",
				"Custom integrations",
				"White-label options",
				"SLA guarantee",
			},
		},
	}
}

func Campaigns() []model.Campaign {
	return []model.Campaign{
		{
			ID:          "cmp-1",
			Name:        "Grow Your Reach with Email",
			Description: "Outbound email nurture for warm leads",
			Channel:     "Email",
			Tags:        []string{"email", "nurture"},
			Status:      model.CampaignRunning,
			Metrics:     model.CampaignMetrics{Delivered: 524, Opened: 421, Clicked: 198, Converted: 179, Rate: 34.2},
		},
		{
			ID:          "cmp-2",
			Name:        "Get Ready to Boost Your Business",
			Description: "Phone outreach for the spring promotion",
			Channel:     "Phone",
			Tags:        []string{"phone", "promo"},
			Status:      model.CampaignRunning,
			Metrics:     model.CampaignMetrics{Delivered: 352, Opened: 289, Clicked: 134, Converted: 100, Rate: 28.5},
		},
		{
			ID:          "cmp-3",
			Name:        "Hurry Up! 30% OFF only for today",
			Description: "One-day flash sale blast",
			Channel:     "SMS",
			Tags:        []string{"sms", "flash-sale"},
			Status:      model.CampaignCompleted,
			Metrics:     model.CampaignMetrics{Delivered: 764, Opened: 612, Clicked: 402, Converted: 321, Rate: 42.1},
		},
		{
			ID:          "cmp-4",
			Name:        "Let's connect with us at a cheap cost",
			Description: "Budget plan awareness push",
			Channel:     "Email",
			Tags:        []string{"email", "pricing"},
			Status:      model.CampaignRunning,
			Metrics:     model.CampaignMetrics{Delivered: 676, Opened: 543, Clicked: 298, Converted: 261, Rate: 38.7},
		},
		{
			ID:          "cmp-5",
			Name:        "Make Your Brand Stand Out",
			Description: "Multi-channel brand awareness",
			Channel:     "Multi-Channel",
			Tags:        []string{"brand"},
			Status:      model.CampaignCompleted,
			Metrics:     model.CampaignMetrics{Delivered: 542, Opened: 398, Clicked: 201, Converted: 172, Rate: 31.9},
		},
	}
}

func JobCodes() []JobCode {
	return []JobCode{
		{Value: "JC001", Label: "Marketing Campaign - Email"},
		{Value: "JC002", Label: "Sales Outreach - Phone"},
		{Value: "JC003", Label: "Customer Support - SMS"},
		{Value: "JC004", Label: "Product Launch - Multi-Channel"},
		{Value: "JC005", Label: "Event Promotion - Social Media"},
		{Value: "JC006", Label: "Lead Generation - Email"},
		{Value: "JC007", Label: "Customer Retention - SMS"},
		{Value: "JC008", Label: "Brand Awareness - Multi-Channel"},
	}
}
