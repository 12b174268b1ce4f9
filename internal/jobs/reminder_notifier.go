package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/sirupsen/logrus"
)

type ReminderNotifier struct {
	HabitService *services.HabitService
	Now          func() time.Time
}

// NewReminderNotifier creates a new instance of ReminderNotifier
func NewReminderNotifier(habitService *services.HabitService) *ReminderNotifier {
	return &ReminderNotifier{
		HabitService: habitService,
		Now:          time.Now,
	}
}

// RunScan emits a reminder for every active habit whose reminder time is the
// current minute and that has not been completed yet in its current period.
// It returns the habits that were reminded.
func (n *ReminderNotifier) RunScan(ctx context.Context) ([]models.Habit, error) {
	habits, err := n.HabitService.GetAllHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}

	now := n.Now()

	var due []models.Habit
	for _, habit := range habits {
		if !habit.IsActive || !remindsAt(habit, now) {
			continue
		}
		if completedThisPeriod(habit, now) {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"habitID":   habit.ID.String(),
			"name":      habit.Name,
			"frequency": habit.Frequency,
			"streak":    habit.Streak,
		}).Info("Habit reminder")
		due = append(due, habit)
	}

	logrus.WithField("reminded", len(due)).Debug("Reminder scan completed")
	return due, nil
}

// completedThisPeriod reports whether the habit was completed in the same
// day, ISO week or month as now, depending on its frequency.
// remindsAt compares clock values, so a stored "7:00" still matches 07:00.
func remindsAt(habit models.Habit, now time.Time) bool {
	if habit.ReminderTime == nil {
		return false
	}
	t, err := time.Parse(models.ReminderTimeLayout, *habit.ReminderTime)
	if err != nil {
		return false
	}
	return t.Hour() == now.Hour() && t.Minute() == now.Minute()
}

func completedThisPeriod(h models.Habit, now time.Time) bool {
	if h.LastCompleted == nil {
		return false
	}
	last := h.LastCompleted.In(now.Location())

	switch h.Frequency {
	case models.FrequencyWeekly:
		ly, lw := last.ISOWeek()
		ny, nw := now.ISOWeek()
		return ly == ny && lw == nw
	case models.FrequencyMonthly:
		return last.Year() == now.Year() && last.Month() == now.Month()
	default:
		return last.Year() == now.Year() && last.YearDay() == now.YearDay()
	}
}
