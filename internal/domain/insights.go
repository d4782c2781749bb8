package domain

// InsightsContext is the context object sent to the LLM.
// @Description Aggregated data the insights prompt is built from.
type InsightsContext struct {
	// Summary statistics over the full history
	Stats HistoryStats `json:"stats"`
	// Derived metrics for the most recent days, oldest first
	RecentDays []ChartPoint `json:"recent_days"`
	// Number of active catalog questions (the maximum daily score)
	TotalQuestions int `json:"total_questions"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated motivation and sleep-habit insights.
type LLMInsightsOutput struct {
	// Summary of recent motivation and sleep (2-3 sentences)
	Summary string `json:"summary" example:"Your daily score has been trending up this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable, non-medical suggestions (3-5 items)
	Suggestions []string `json:"suggestions"`
}

// InsightsResponse is the response for the insights endpoint.
type InsightsResponse struct {
	Stats    HistoryStats      `json:"stats"`
	Insights LLMInsightsOutput `json:"insights"`
}
