// Package cli holds the habitctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dias221467/HealthHabit/internal/client"
	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/google/uuid"
)

// Context is passed to every command's Run method.
type Context struct {
	Ctx    context.Context
	Client *client.Client
	Out    io.Writer
	Now    func() time.Time
}

// ResolveHabit finds a habit by full ID, unique ID prefix or exact name.
func (c *Context) ResolveHabit(ref string) (*models.Habit, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return c.Client.GetHabit(c.Ctx, id)
	}

	habits, err := c.Client.ListHabits(c.Ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) || strings.HasPrefix(h.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no habit matches %q", ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%q matches %d habits, use a longer ID", ref, len(matches))
	}
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}
