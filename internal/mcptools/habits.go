// Package mcptools exposes the habit service as MCP tools.
package mcptools

import (
	"context"
	"fmt"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListTool handles the list_habits MCP tool.
type ListTool struct {
	svc *services.HabitService
}

func NewListTool(svc *services.HabitService) *ListTool {
	return &ListTool{svc: svc}
}

func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_habits",
		mcp.WithDescription("List every tracked habit with its streak and last completion time."),
		mcp.WithBoolean("active_only",
			mcp.Description("Only return active habits (default: false)"),
		),
	)
}

func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	habits, err := t.svc.GetAllHabits(ctx)
	if err != nil {
		return errorResult("list habits", err), nil
	}

	if activeOnly := boolArg(req, "active_only"); activeOnly != nil && *activeOnly {
		active := make([]models.Habit, 0, len(habits))
		for _, h := range habits {
			if h.IsActive {
				active = append(active, h)
			}
		}
		habits = active
	}

	return jsonResult(habits), nil
}

// GetTool handles the get_habit MCP tool.
type GetTool struct {
	svc *services.HabitService
}

func NewGetTool(svc *services.HabitService) *GetTool {
	return &GetTool{svc: svc}
}

func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("get_habit",
		mcp.WithDescription("Fetch a single habit by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit ID (UUID)"),
		),
	)
}

func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := habitIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	habit, err := t.svc.GetHabit(ctx, id)
	if err != nil {
		return errorResult("get habit", err), nil
	}
	return jsonResult(habit), nil
}

// CreateTool handles the create_habit MCP tool.
type CreateTool struct {
	svc *services.HabitService
}

func NewCreateTool(svc *services.HabitService) *CreateTool {
	return &CreateTool{svc: svc}
}

func (t *CreateTool) Definition() mcp.Tool {
	return mcp.NewTool("create_habit",
		mcp.WithDescription("Start tracking a new habit. Streak starts at 0 and the habit is active."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Habit name, 1 to 100 characters"),
		),
		mcp.WithString("frequency",
			mcp.Required(),
			mcp.Description("One of: daily, weekly, monthly"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description, up to 500 characters"),
		),
		mcp.WithNumber("target_value",
			mcp.Description("Optional numeric target per period"),
		),
		mcp.WithString("unit",
			mcp.Description("Unit for target_value, e.g. minutes or glasses"),
		),
		mcp.WithString("reminder_time",
			mcp.Description("Optional reminder time as HH:MM"),
		),
	)
}

func (t *CreateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := models.HabitCreate{
		Name:         req.GetString("name", ""),
		Frequency:    req.GetString("frequency", ""),
		Description:  stringArg(req, "description"),
		TargetValue:  floatArg(req, "target_value"),
		Unit:         stringArg(req, "unit"),
		ReminderTime: stringArg(req, "reminder_time"),
	}

	habit, err := t.svc.CreateHabit(ctx, input)
	if err != nil {
		return errorResult("create habit", err), nil
	}
	return jsonResult(habit), nil
}

// UpdateTool handles the update_habit MCP tool.
type UpdateTool struct {
	svc *services.HabitService
}

func NewUpdateTool(svc *services.HabitService) *UpdateTool {
	return &UpdateTool{svc: svc}
}

func (t *UpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("update_habit",
		mcp.WithDescription("Change fields of an existing habit. Only the fields passed are modified; pass null to clear description, target_value, unit or reminder_time."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit ID (UUID)"),
		),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("frequency", mcp.Description("New frequency: daily, weekly, monthly")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithNumber("target_value", mcp.Description("New numeric target")),
		mcp.WithString("unit", mcp.Description("New unit")),
		mcp.WithString("reminder_time", mcp.Description("New reminder time as HH:MM")),
		mcp.WithBoolean("is_active", mcp.Description("Pause (false) or resume (true) the habit")),
	)
}

func (t *UpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := habitIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	input := models.HabitUpdate{
		Name:         updateArg[string](req, "name"),
		Frequency:    updateArg[string](req, "frequency"),
		Description:  updateArg[string](req, "description"),
		TargetValue:  updateArg[float64](req, "target_value"),
		Unit:         updateArg[string](req, "unit"),
		ReminderTime: updateArg[string](req, "reminder_time"),
		IsActive:     updateArg[bool](req, "is_active"),
	}

	habit, err := t.svc.UpdateHabit(ctx, id, input)
	if err != nil {
		return errorResult("update habit", err), nil
	}
	return jsonResult(habit), nil
}

// CompleteTool handles the complete_habit MCP tool.
type CompleteTool struct {
	svc *services.HabitService
}

func NewCompleteTool(svc *services.HabitService) *CompleteTool {
	return &CompleteTool{svc: svc}
}

func (t *CompleteTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_habit",
		mcp.WithDescription("Record that a habit was done now. Increments the streak by one."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit ID (UUID)"),
		),
	)
}

func (t *CompleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := habitIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	habit, err := t.svc.CompleteHabit(ctx, id)
	if err != nil {
		return errorResult("complete habit", err), nil
	}
	return jsonResult(habit), nil
}

// DeleteTool handles the delete_habit MCP tool.
type DeleteTool struct {
	svc *services.HabitService
}

func NewDeleteTool(svc *services.HabitService) *DeleteTool {
	return &DeleteTool{svc: svc}
}

func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_habit",
		mcp.WithDescription("Stop tracking a habit and remove it permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit ID (UUID)"),
		),
	)
}

func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := habitIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	removed, err := t.svc.DeleteHabit(ctx, id)
	if err != nil {
		return errorResult("delete habit", err), nil
	}
	if !removed {
		return mcp.NewToolResultError("habit not found"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Habit %s deleted", id)), nil
}

// StatsTool handles the habit_stats MCP tool.
type StatsTool struct {
	svc *services.HabitService
}

func NewStatsTool(svc *services.HabitService) *StatsTool {
	return &StatsTool{svc: svc}
}

func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("habit_stats",
		mcp.WithDescription("Streak, last completion, creation time and completion rate for a habit."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Habit ID (UUID)"),
		),
	)
}

func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := habitIDArg(req)
	if errResult != nil {
		return errResult, nil
	}

	stats, err := t.svc.GetHabitStats(ctx, id)
	if err != nil {
		return errorResult("get habit stats", err), nil
	}
	return jsonResult(stats), nil
}
