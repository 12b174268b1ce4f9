package mcptools

import (
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/mark3labs/mcp-go/server"
)

const Version = "0.1.0"

const instructions = `Tools for a personal habit tracker.
Use list_habits to find habit IDs, complete_habit when the user reports doing a habit,
and habit_stats to answer questions about streaks.`

// NewServer registers every habit tool on a new MCP server.
func NewServer(svc *services.HabitService) *server.MCPServer {
	s := server.NewMCPServer(
		"healthhabit",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	listTool := NewListTool(svc)
	s.AddTool(listTool.Definition(), listTool.Handle)

	getTool := NewGetTool(svc)
	s.AddTool(getTool.Definition(), getTool.Handle)

	createTool := NewCreateTool(svc)
	s.AddTool(createTool.Definition(), createTool.Handle)

	updateTool := NewUpdateTool(svc)
	s.AddTool(updateTool.Definition(), updateTool.Handle)

	completeTool := NewCompleteTool(svc)
	s.AddTool(completeTool.Definition(), completeTool.Handle)

	deleteTool := NewDeleteTool(svc)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)

	statsTool := NewStatsTool(svc)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	return s
}
