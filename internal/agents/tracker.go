package agents

import (
	"context"
	"fmt"
)

type TrackerAgent struct {
	BaseAgent
}

func NewTrackerAgent(cat *Catalogue, executor Executor) *TrackerAgent {
	return &TrackerAgent{BaseAgent: newBaseAgent(TypeTracker, cat, executor)}
}

func (a *TrackerAgent) LogDailyData(ctx context.Context, data map[string]any) (string, error) {
	if len(data) == 0 {
		return "", invalid("daily data cannot be empty")
	}

	task := fmt.Sprintf(`Log and analyze this daily health data: %s
Provide a summary of the logged activities and their completion status.`, render(data))
	return a.execute(ctx, task)
}

func (a *TrackerAgent) GenerateDailyReport(ctx context.Context, data map[string]any) (string, error) {
	if len(data) == 0 {
		return "", invalid("daily data cannot be empty")
	}

	task := fmt.Sprintf(`Generate a detailed daily report for this data: %s
Include insights about exercise, meditation, nutrition, and sleep patterns.`, render(data))
	return a.execute(ctx, task)
}

func (a *TrackerAgent) CheckConsistency(ctx context.Context, weeklyData []map[string]any) (string, error) {
	if len(weeklyData) == 0 {
		return "", invalid("weekly data cannot be empty")
	}

	task := fmt.Sprintf(`Analyze the consistency of this weekly health data: %s
Identify patterns, trends, and areas for improvement.`, render(weeklyData))
	return a.execute(ctx, task)
}
