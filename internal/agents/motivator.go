package agents

import (
	"context"
	"fmt"
)

type MotivatorAgent struct {
	BaseAgent
}

func NewMotivatorAgent(cat *Catalogue, executor Executor) *MotivatorAgent {
	return &MotivatorAgent{BaseAgent: newBaseAgent(TypeMotivator, cat, executor)}
}

// ProvideDailyMotivation encourages the user based on today's data and
// recent achievements. achievements may be empty.
func (a *MotivatorAgent) ProvideDailyMotivation(ctx context.Context, dailyData map[string]any, achievements []string) (string, error) {
	if len(dailyData) == 0 {
		return "", invalid("daily data cannot be empty")
	}
	if achievements == nil {
		achievements = []string{}
	}

	task := fmt.Sprintf(`Provide motivation based on this daily progress and achievements:
Daily Data: %s
Recent Achievements: %s

Offer encouragement and celebrate progress.`, render(dailyData), render(achievements))
	return a.execute(ctx, task)
}

func (a *MotivatorAgent) SuggestChallenges(ctx context.Context, weeklyData []map[string]any, goals map[string]any) (string, error) {
	if len(weeklyData) == 0 {
		return "", invalid("weekly data cannot be empty")
	}
	if len(goals) == 0 {
		return "", invalid("goals cannot be empty")
	}

	task := fmt.Sprintf(`Suggest new challenges based on this progress and goals:
Weekly Data: %s
Current Goals: %s

Propose engaging challenges that align with current progress.`, render(weeklyData), render(goals))
	return a.execute(ctx, task)
}

func (a *MotivatorAgent) GenerateCelebrationMessage(ctx context.Context, achievement string, history []map[string]any) (string, error) {
	if achievement == "" {
		return "", invalid("achievement cannot be empty")
	}
	if history == nil {
		history = []map[string]any{}
	}

	task := fmt.Sprintf(`Generate a celebration message for this achievement:
Achievement: %s
Context: %s

Create an inspiring and personalized celebration message.`, achievement, render(history))
	return a.execute(ctx, task)
}
