package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/dustin/go-humanize"
)

type HabitListCmd struct {
	Active bool `help:"Only show active habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Client.ListHabits(ctx.Ctx)
	if err != nil {
		return err
	}

	if c.Active {
		active := habits[:0]
		for _, h := range habits {
			if h.IsActive {
				active = append(active, h)
			}
		}
		habits = active
	}

	if len(habits) == 0 {
		ctx.printf("No habits found.\n")
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFREQUENCY\tSTREAK\tLAST DONE\tSTATUS")
	for _, h := range habits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			h.ID.String()[:8], h.Name, h.Frequency, h.Streak, ctx.lastDone(h), status(h))
	}
	return tw.Flush()
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Frequency   string `help:"How often the habit repeats." enum:"daily,weekly,monthly" default:"daily" short:"f"`
	Description string `help:"Optional description." default:""`
	Target      string `help:"Optional numeric target per period." default:""`
	Unit        string `help:"Unit for the target, e.g. minutes." default:""`
	Reminder    string `help:"Reminder time as HH:MM." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	input := models.HabitCreate{
		Name:         c.Name,
		Frequency:    c.Frequency,
		Description:  optional(c.Description),
		Unit:         optional(c.Unit),
		ReminderTime: optional(c.Reminder),
	}
	target, err := parseTarget(c.Target)
	if err != nil {
		return err
	}
	input.TargetValue = target

	habit, err := ctx.Client.CreateHabit(ctx.Ctx, input)
	if err != nil {
		return err
	}

	ctx.printf("Added habit: %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitShowCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix or name."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	ctx.printf("%s\n", h.Name)
	ctx.printf("  ID:         %s\n", h.ID)
	ctx.printf("  Frequency:  %s\n", h.Frequency)
	if h.Description != nil {
		ctx.printf("  About:      %s\n", *h.Description)
	}
	if h.TargetValue != nil {
		unit := ""
		if h.Unit != nil {
			unit = " " + *h.Unit
		}
		ctx.printf("  Target:     %s%s\n", humanize.Ftoa(*h.TargetValue), unit)
	}
	if h.ReminderTime != nil {
		ctx.printf("  Reminder:   %s\n", *h.ReminderTime)
	}
	ctx.printf("  Streak:     %d\n", h.Streak)
	ctx.printf("  Last done:  %s\n", ctx.lastDone(*h))
	ctx.printf("  Created:    %s\n", humanize.RelTime(h.CreatedAt, ctx.Now(), "ago", "from now"))
	ctx.printf("  Status:     %s\n", status(*h))
	return nil
}

type HabitUpdateCmd struct {
	Habit       string   `arg:"" help:"Habit ID, ID prefix or name."`
	Name        string   `help:"New name." default:""`
	Frequency   string   `help:"New frequency (daily, weekly, monthly)." default:""`
	Description string   `help:"New description." default:""`
	Target      string   `help:"New numeric target." default:""`
	Unit        string   `help:"New unit." default:""`
	Reminder    string   `help:"New reminder time as HH:MM." default:""`
	Clear       []string `help:"Optional fields to clear (description, target, unit, reminder)."`
	Pause       bool     `help:"Mark the habit inactive." xor:"state"`
	Resume      bool     `help:"Mark the habit active." xor:"state"`
}

func (c *HabitUpdateCmd) Run(ctx *Context) error {
	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	input := models.HabitUpdate{
		Name:         given(c.Name),
		Frequency:    given(c.Frequency),
		Description:  given(c.Description),
		Unit:         given(c.Unit),
		ReminderTime: given(c.Reminder),
	}
	target, err := parseTarget(c.Target)
	if err != nil {
		return err
	}
	if target != nil {
		input.TargetValue = models.Some(*target)
	}
	for _, field := range c.Clear {
		switch field {
		case "description":
			input.Description = models.Null[string]()
		case "target":
			input.TargetValue = models.Null[float64]()
		case "unit":
			input.Unit = models.Null[string]()
		case "reminder":
			input.ReminderTime = models.Null[string]()
		default:
			return fmt.Errorf("cannot clear %q: must be one of description, target, unit, reminder", field)
		}
	}
	switch {
	case c.Pause:
		input.IsActive = models.Some(false)
	case c.Resume:
		input.IsActive = models.Some(true)
	}

	updated, err := ctx.Client.UpdateHabit(ctx.Ctx, h.ID, input)
	if err != nil {
		return err
	}

	ctx.printf("Updated habit: %s\n", updated.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Client.DeleteHabit(ctx.Ctx, h.ID); err != nil {
		return err
	}

	ctx.printf("Deleted habit: %s\n", h.Name)
	return nil
}

type HabitCompleteCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix or name."`
}

func (c *HabitCompleteCmd) Run(ctx *Context) error {
	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	done, err := ctx.Client.CompleteHabit(ctx.Ctx, h.ID)
	if err != nil {
		return err
	}

	ctx.printf("Completed %s, streak is now %d\n", done.Name, done.Streak)
	return nil
}

type HabitStatsCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix or name."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	stats, err := ctx.Client.HabitStats(ctx.Ctx, h.ID)
	if err != nil {
		return err
	}

	ctx.printf("%s\n", h.Name)
	ctx.printf("  Streak:          %d\n", stats.Streak)
	ctx.printf("  Completion rate: %.0f%%\n", stats.CompletionRate*100)
	if stats.LastCompleted != nil {
		ctx.printf("  Last done:       %s\n", humanize.RelTime(*stats.LastCompleted, ctx.Now(), "ago", "from now"))
	} else {
		ctx.printf("  Last done:       never\n")
	}
	ctx.printf("  Tracking since:  %s\n", humanize.RelTime(stats.CreatedAt, ctx.Now(), "ago", "from now"))
	return nil
}

func (c *Context) lastDone(h models.Habit) string {
	if h.LastCompleted == nil {
		return "never"
	}
	return humanize.RelTime(*h.LastCompleted, c.Now(), "ago", "from now")
}

func status(h models.Habit) string {
	if h.IsActive {
		return "active"
	}
	return "paused"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// given turns a non-empty flag value into a present update field.
func given(s string) models.Optional[string] {
	if s == "" {
		return models.Optional[string]{}
	}
	return models.Some(s)
}

func parseTarget(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid target %q: must be a number", s)
	}
	return &v, nil
}
