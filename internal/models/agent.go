package models

// AgentRequest is the body accepted by the agent endpoints. Each endpoint
// reads only the fields it needs.
type AgentRequest struct {
	Preferences  map[string]any   `json:"preferences,omitempty"`
	Performance  map[string]any   `json:"performance,omitempty"`
	Goals        map[string]any   `json:"goals,omitempty"`
	DailyData    map[string]any   `json:"daily_data,omitempty"`
	WeeklyData   []map[string]any `json:"weekly_data,omitempty"`
	MonthlyData  []map[string]any `json:"monthly_data,omitempty"`
	Data         []map[string]any `json:"data,omitempty"`
	Context      []map[string]any `json:"context,omitempty"`
	Achievements []string         `json:"achievements,omitempty"`
	Achievement  string           `json:"achievement,omitempty"`
}

// AgentResponse carries the text generated by an agent.
type AgentResponse struct {
	Result string `json:"result"`
}
