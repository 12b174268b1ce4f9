package agents

import (
	"context"
	"fmt"
)

// performanceAreas are the keys AdjustPlan requires in its performance data.
var performanceAreas = []string{"exercise", "meditation", "nutrition", "sleep"}

type PlannerAgent struct {
	BaseAgent
}

func NewPlannerAgent(cat *Catalogue, executor Executor) *PlannerAgent {
	return &PlannerAgent{BaseAgent: newBaseAgent(TypePlanner, cat, executor)}
}

// CreateDailyPlan builds a daily plan from the user's preferences.
func (a *PlannerAgent) CreateDailyPlan(ctx context.Context, preferences map[string]any) (string, error) {
	if len(preferences) == 0 {
		return "", invalid("preferences cannot be empty")
	}

	task := fmt.Sprintf(`Create a daily plan based on these preferences: %s
The plan should include specific times and activities for exercise, meditation, nutrition, and sleep.`, render(preferences))
	return a.execute(ctx, task)
}

// CreateWeeklyPlan builds a seven-day plan from the user's preferences.
func (a *PlannerAgent) CreateWeeklyPlan(ctx context.Context, preferences map[string]any) (string, error) {
	if len(preferences) == 0 {
		return "", invalid("preferences cannot be empty")
	}

	task := fmt.Sprintf(`Create a personalized weekly health plan based on these preferences: %s
Lay out each day of the week with exercise, meditation, nutrition, and sleep targets, and keep the load progressive and realistic.`, render(preferences))
	return a.execute(ctx, task)
}

// AdjustPlan suggests plan changes from performance data covering every
// tracked area.
func (a *PlannerAgent) AdjustPlan(ctx context.Context, performance map[string]any) (string, error) {
	for _, key := range performanceAreas {
		if _, ok := performance[key]; !ok {
			return "", invalid("invalid performance data format: missing %q", key)
		}
	}

	task := fmt.Sprintf(`Analyze this performance data and suggest plan adjustments: %s
Consider completion rates and durations to optimize the plan.`, render(performance))
	return a.execute(ctx, task)
}

// AdjustGoals revises current goals in light of recent performance.
func (a *PlannerAgent) AdjustGoals(ctx context.Context, currentGoals, performance map[string]any) (string, error) {
	if len(currentGoals) == 0 {
		return "", invalid("current goals cannot be empty")
	}
	if len(performance) == 0 {
		return "", invalid("performance data cannot be empty")
	}

	task := fmt.Sprintf(`Adjust these goals based on the user's recent performance.
Current Goals: %s
Performance Data: %s

Raise targets that are consistently met, ease targets that are consistently missed, and explain each change.`, render(currentGoals), render(performance))
	return a.execute(ctx, task)
}
