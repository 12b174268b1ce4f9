// Package agents wraps the habit coaching personas. Each agent checks its
// input, renders a task prompt that embeds the caller's data verbatim and
// hands it to an Executor, returning the generated text unchanged.
package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/HealthHabit/pkg/logger"
)

// Executor runs a prompt against a language model and returns its text.
type Executor interface {
	Execute(ctx context.Context, systemPrompt, task string) (string, error)
}

// ErrExecutorUnavailable is returned when an agent has no executor configured.
var ErrExecutorUnavailable = errors.New("no language model executor configured")

// ValidationError reports caller input the agent refuses to forward.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// BaseAgent holds what every agent shares: its persona and the executor.
type BaseAgent struct {
	Type     string
	Persona  Persona
	executor Executor
}

func newBaseAgent(agentType string, cat *Catalogue, executor Executor) BaseAgent {
	return BaseAgent{
		Type:     agentType,
		Persona:  cat.Persona(agentType),
		executor: executor,
	}
}

// SystemPrompt renders the persona as the system message.
func (a *BaseAgent) SystemPrompt() string {
	var b strings.Builder
	if a.Persona.Name != "" {
		fmt.Fprintf(&b, "You are %s, a %s.\n", a.Persona.Name, a.Persona.Role)
	}
	if a.Persona.Goal != "" {
		fmt.Fprintf(&b, "Goal: %s\n", a.Persona.Goal)
	}
	if a.Persona.Backstory != "" {
		fmt.Fprintf(&b, "Backstory: %s\n", a.Persona.Backstory)
	}
	if a.Persona.SystemPrompt != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(a.Persona.SystemPrompt)
	}
	return strings.TrimSpace(b.String())
}

func (a *BaseAgent) execute(ctx context.Context, task string) (string, error) {
	if a.executor == nil {
		return "", ErrExecutorUnavailable
	}

	log := logger.Log.WithField("agent", a.Type)
	log.Debug("Executing agent task")

	out, err := a.executor.Execute(ctx, a.SystemPrompt(), "Task: "+task)
	if err != nil {
		log.WithError(err).Error("Agent task failed")
		return "", fmt.Errorf("%s agent failed: %w", a.Type, err)
	}

	log.WithField("chars", len(out)).Info("Agent task completed")
	return out, nil
}

// render formats caller data for embedding in a prompt.
func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Agents bundles the four coaching agents sharing one executor.
type Agents struct {
	Planner   *PlannerAgent
	Tracker   *TrackerAgent
	Analyzer  *AnalyzerAgent
	Motivator *MotivatorAgent
}

// New builds all agents from the catalogue. executor may be nil, in which
// case every call fails with ErrExecutorUnavailable after validation.
func New(cat *Catalogue, executor Executor) *Agents {
	return &Agents{
		Planner:   NewPlannerAgent(cat, executor),
		Tracker:   NewTrackerAgent(cat, executor),
		Analyzer:  NewAnalyzerAgent(cat, executor),
		Motivator: NewMotivatorAgent(cat, executor),
	}
}
