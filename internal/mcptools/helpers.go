package mcptools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// stringArg returns a pointer to the string argument, or nil when absent.
func stringArg(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key].(string)
	if !ok {
		return nil
	}
	return &v
}

// floatArg returns a pointer to the numeric argument, or nil when absent.
func floatArg(req mcp.CallToolRequest, key string) *float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

func boolArg(req mcp.CallToolRequest, key string) *bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return nil
	}
	return &v
}

// updateArg reads an update field. A key passed as null becomes an explicit
// null; a missing key or a value of the wrong type leaves the field unset.
func updateArg[T any](req mcp.CallToolRequest, key string) models.Optional[T] {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return models.Optional[T]{}
	}
	if raw == nil {
		return models.Null[T]()
	}
	v, ok := raw.(T)
	if !ok {
		return models.Optional[T]{}
	}
	return models.Some(v)
}

func habitIDArg(req mcp.CallToolRequest) (uuid.UUID, *mcp.CallToolResult) {
	raw := req.GetString("id", "")
	if raw == "" {
		return uuid.Nil, mcp.NewToolResultError("'id' is required")
	}
	id, err := services.ParseHabitID(raw)
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError(fmt.Sprintf("'id' is not a valid habit ID: %q", raw))
	}
	return id, nil
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult turns a service error into a tool error the model can act on.
func errorResult(action string, err error) *mcp.CallToolResult {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return mcp.NewToolResultError(vErr.Error())
	case errors.Is(err, services.ErrHabitNotFound):
		return mcp.NewToolResultError("habit not found")
	default:
		return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %v", action, err))
	}
}
