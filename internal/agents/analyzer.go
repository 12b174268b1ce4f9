package agents

import (
	"context"
	"fmt"
)

type AnalyzerAgent struct {
	BaseAgent
}

func NewAnalyzerAgent(cat *Catalogue, executor Executor) *AnalyzerAgent {
	return &AnalyzerAgent{BaseAgent: newBaseAgent(TypeAnalyzer, cat, executor)}
}

func (a *AnalyzerAgent) AnalyzeWeeklyProgress(ctx context.Context, weeklyData []map[string]any) (string, error) {
	if len(weeklyData) == 0 {
		return "", invalid("weekly data cannot be empty")
	}

	task := fmt.Sprintf(`Analyze this weekly health data: %s
Provide insights about progress, achievements, and areas for improvement.`, render(weeklyData))
	return a.execute(ctx, task)
}

func (a *AnalyzerAgent) IdentifyBehaviorPatterns(ctx context.Context, monthlyData []map[string]any) (string, error) {
	if len(monthlyData) == 0 {
		return "", invalid("monthly data cannot be empty")
	}

	task := fmt.Sprintf(`Analyze these monthly health patterns: %s
Identify trends, correlations, and behavioral patterns.`, render(monthlyData))
	return a.execute(ctx, task)
}

func (a *AnalyzerAgent) GenerateInsightsReport(ctx context.Context, data []map[string]any, goals map[string]any) (string, error) {
	if len(data) == 0 {
		return "", invalid("data cannot be empty")
	}
	if len(goals) == 0 {
		return "", invalid("goals cannot be empty")
	}

	task := fmt.Sprintf(`Generate an insights report based on this data and goals:
Data: %s
Goals: %s

Provide detailed analysis and recommendations.`, render(data), render(goals))
	return a.execute(ctx, task)
}
