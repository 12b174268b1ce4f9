package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/HealthHabit/internal/agents"
	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/sirupsen/logrus"
)

// AgentHandler exposes the coaching agents over HTTP.
type AgentHandler struct {
	Agents *agents.Agents
}

func NewAgentHandler(a *agents.Agents) *AgentHandler {
	return &AgentHandler{Agents: a}
}

// agentCall runs one agent operation against a decoded request body.
type agentCall func(ctx context.Context, req models.AgentRequest) (string, error)

// serve decodes the body, runs call and writes {"result": ...}.
func (h *AgentHandler) serve(name string, call agentCall) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).WithField("operation", name).Warn("Invalid agent request payload")
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		result, err := call(r.Context(), req)
		if err != nil {
			var vErr *agents.ValidationError
			switch {
			case errors.As(err, &vErr):
				http.Error(w, vErr.Error(), http.StatusBadRequest)
			case errors.Is(err, agents.ErrExecutorUnavailable):
				logrus.WithField("operation", name).Warn("Agent request without a configured model")
				http.Error(w, "Language model is not configured", http.StatusServiceUnavailable)
			default:
				logrus.WithError(err).WithField("operation", name).Error("Agent request failed")
				http.Error(w, "Agent request failed", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, models.AgentResponse{Result: result})
	}
}

func (h *AgentHandler) DailyPlanHandler() http.HandlerFunc {
	return h.serve("daily-plan", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Planner.CreateDailyPlan(ctx, req.Preferences)
	})
}

func (h *AgentHandler) WeeklyPlanHandler() http.HandlerFunc {
	return h.serve("weekly-plan", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Planner.CreateWeeklyPlan(ctx, req.Preferences)
	})
}

func (h *AgentHandler) AdjustPlanHandler() http.HandlerFunc {
	return h.serve("adjust-plan", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Planner.AdjustPlan(ctx, req.Performance)
	})
}

func (h *AgentHandler) AdjustGoalsHandler() http.HandlerFunc {
	return h.serve("adjust-goals", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Planner.AdjustGoals(ctx, req.Goals, req.Performance)
	})
}

func (h *AgentHandler) LogDailyHandler() http.HandlerFunc {
	return h.serve("log-daily", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Tracker.LogDailyData(ctx, req.DailyData)
	})
}

func (h *AgentHandler) DailyReportHandler() http.HandlerFunc {
	return h.serve("daily-report", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Tracker.GenerateDailyReport(ctx, req.DailyData)
	})
}

func (h *AgentHandler) CheckConsistencyHandler() http.HandlerFunc {
	return h.serve("check-consistency", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Tracker.CheckConsistency(ctx, req.WeeklyData)
	})
}

func (h *AgentHandler) WeeklyProgressHandler() http.HandlerFunc {
	return h.serve("weekly-progress", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Analyzer.AnalyzeWeeklyProgress(ctx, req.WeeklyData)
	})
}

func (h *AgentHandler) BehaviorPatternsHandler() http.HandlerFunc {
	return h.serve("behavior-patterns", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Analyzer.IdentifyBehaviorPatterns(ctx, req.MonthlyData)
	})
}

func (h *AgentHandler) InsightsReportHandler() http.HandlerFunc {
	return h.serve("insights-report", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Analyzer.GenerateInsightsReport(ctx, req.Data, req.Goals)
	})
}

func (h *AgentHandler) DailyMotivationHandler() http.HandlerFunc {
	return h.serve("daily-motivation", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Motivator.ProvideDailyMotivation(ctx, req.DailyData, req.Achievements)
	})
}

func (h *AgentHandler) SuggestChallengesHandler() http.HandlerFunc {
	return h.serve("suggest-challenges", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Motivator.SuggestChallenges(ctx, req.WeeklyData, req.Goals)
	})
}

func (h *AgentHandler) CelebrationHandler() http.HandlerFunc {
	return h.serve("celebration", func(ctx context.Context, req models.AgentRequest) (string, error) {
		return h.Agents.Motivator.GenerateCelebrationMessage(ctx, req.Achievement, req.Context)
	})
}
