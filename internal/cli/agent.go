package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Dias221467/HealthHabit/internal/models"
)

// AgentRoutes lists the agent endpoints habitctl can call.
var AgentRoutes = []string{
	"planner/daily-plan",
	"planner/weekly-plan",
	"planner/adjust-plan",
	"planner/adjust-goals",
	"tracker/log-daily",
	"tracker/daily-report",
	"tracker/check-consistency",
	"analyzer/weekly-progress",
	"analyzer/behavior-patterns",
	"analyzer/insights-report",
	"motivator/daily-motivation",
	"motivator/suggest-challenges",
	"motivator/celebration",
}

type AskCmd struct {
	Route string `arg:"" help:"Agent route, e.g. planner/daily-plan."`
	Body  string `arg:"" optional:"" help:"JSON request body, or @file to read it from a file."`
}

func (c *AskCmd) Run(ctx *Context) error {
	if !knownRoute(c.Route) {
		return fmt.Errorf("unknown agent route %q, expected one of: %s", c.Route, strings.Join(AgentRoutes, ", "))
	}

	raw := c.Body
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return fmt.Errorf("failed to read request body: %w", err)
		}
		raw = string(data)
	}
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	var req models.AgentRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return ctx.runAgent(c.Route, req)
}

type CelebrateCmd struct {
	Achievement string `arg:"" help:"What you achieved."`
}

func (c *CelebrateCmd) Run(ctx *Context) error {
	return ctx.runAgent("motivator/celebration", models.AgentRequest{Achievement: c.Achievement})
}

// MotivateCmd asks the motivator for encouragement based on the current
// habits and their streaks.
type MotivateCmd struct{}

func (c *MotivateCmd) Run(ctx *Context) error {
	habits, err := ctx.Client.ListHabits(ctx.Ctx)
	if err != nil {
		return err
	}

	daily := map[string]any{}
	var achievements []string
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		daily[h.Name] = map[string]any{
			"streak":        h.Streak,
			"done_recently": h.LastCompleted != nil,
			"frequency":     h.Frequency,
		}
		if h.Streak > 0 {
			achievements = append(achievements, fmt.Sprintf("%s streak of %d", h.Name, h.Streak))
		}
	}
	if len(daily) == 0 {
		return fmt.Errorf("no active habits to base motivation on")
	}

	return ctx.runAgent("motivator/daily-motivation", models.AgentRequest{DailyData: daily, Achievements: achievements})
}

func (c *Context) runAgent(route string, req models.AgentRequest) error {
	out, err := c.Client.RunAgent(c.Ctx, route, req)
	if err != nil {
		return err
	}
	c.printf("%s\n", strings.TrimSpace(out))
	return nil
}

func knownRoute(route string) bool {
	for _, r := range AgentRoutes {
		if r == route {
			return true
		}
	}
	return false
}
