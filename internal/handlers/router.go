package handlers

import (
	"github.com/Dias221467/HealthHabit/pkg/middleware"
	"github.com/gorilla/mux"
)

// NewRouter registers the habit, agent and health routes.
func NewRouter(habitHandler *HabitHandler, agentHandler *AgentHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", HealthHandler).Methods("GET")

	// Habit routes
	habitRoutes := router.PathPrefix("/habits").Subrouter()
	habitRoutes.HandleFunc("", habitHandler.GetHabitsHandler).Methods("GET")
	habitRoutes.HandleFunc("", habitHandler.CreateHabitHandler).Methods("POST")
	habitRoutes.HandleFunc("/{id}", habitHandler.GetHabitHandler).Methods("GET")
	habitRoutes.HandleFunc("/{id}", habitHandler.UpdateHabitHandler).Methods("PUT")
	habitRoutes.HandleFunc("/{id}", habitHandler.DeleteHabitHandler).Methods("DELETE")
	habitRoutes.HandleFunc("/{id}/complete", habitHandler.CompleteHabitHandler).Methods("POST")
	habitRoutes.HandleFunc("/{id}/stats", habitHandler.GetHabitStatsHandler).Methods("GET")

	// Agent routes
	agentRoutes := router.PathPrefix("/agents").Subrouter()
	agentRoutes.HandleFunc("/planner/daily-plan", agentHandler.DailyPlanHandler()).Methods("POST")
	agentRoutes.HandleFunc("/planner/weekly-plan", agentHandler.WeeklyPlanHandler()).Methods("POST")
	agentRoutes.HandleFunc("/planner/adjust-plan", agentHandler.AdjustPlanHandler()).Methods("POST")
	agentRoutes.HandleFunc("/planner/adjust-goals", agentHandler.AdjustGoalsHandler()).Methods("POST")
	agentRoutes.HandleFunc("/tracker/log-daily", agentHandler.LogDailyHandler()).Methods("POST")
	agentRoutes.HandleFunc("/tracker/daily-report", agentHandler.DailyReportHandler()).Methods("POST")
	agentRoutes.HandleFunc("/tracker/check-consistency", agentHandler.CheckConsistencyHandler()).Methods("POST")
	agentRoutes.HandleFunc("/analyzer/weekly-progress", agentHandler.WeeklyProgressHandler()).Methods("POST")
	agentRoutes.HandleFunc("/analyzer/behavior-patterns", agentHandler.BehaviorPatternsHandler()).Methods("POST")
	agentRoutes.HandleFunc("/analyzer/insights-report", agentHandler.InsightsReportHandler()).Methods("POST")
	agentRoutes.HandleFunc("/motivator/daily-motivation", agentHandler.DailyMotivationHandler()).Methods("POST")
	agentRoutes.HandleFunc("/motivator/suggest-challenges", agentHandler.SuggestChallengesHandler()).Methods("POST")
	agentRoutes.HandleFunc("/motivator/celebration", agentHandler.CelebrationHandler()).Methods("POST")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	return router
}
