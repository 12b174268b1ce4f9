package jobs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/repository"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestNotifier(t *testing.T, now time.Time) (*ReminderNotifier, *repository.JSONStore) {
	t.Helper()
	store := repository.NewJSONStore(filepath.Join(t.TempDir(), "habits.json"))
	require.NoError(t, store.Load(context.Background()))

	n := NewReminderNotifier(services.NewHabitService(store))
	n.Now = func() time.Time { return now }
	return n, store
}

func seed(t *testing.T, store *repository.JSONStore, h models.Habit) models.Habit {
	t.Helper()
	h.ID = uuid.New()
	h.UserID = uuid.New()
	if h.Frequency == "" {
		h.Frequency = models.FrequencyDaily
	}
	h.CreatedAt = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	h.UpdatedAt = h.CreatedAt
	require.NoError(t, store.Save(context.Background(), h))
	return h
}

func TestRunScanMatchesReminderMinute(t *testing.T) {
	now := time.Date(2026, 5, 6, 7, 30, 15, 0, time.UTC) // Wednesday
	n, store := newTestNotifier(t, now)

	due := seed(t, store, models.Habit{Name: "Stretch", ReminderTime: ptr("07:30"), IsActive: true})
	seed(t, store, models.Habit{Name: "Later", ReminderTime: ptr("07:31"), IsActive: true})
	seed(t, store, models.Habit{Name: "No reminder", IsActive: true})
	seed(t, store, models.Habit{Name: "Paused", ReminderTime: ptr("07:30"), IsActive: false})

	reminded, err := n.RunScan(context.Background())
	require.NoError(t, err)
	require.Len(t, reminded, 1)
	assert.Equal(t, due.ID, reminded[0].ID)
}

func TestRunScanSkipsCompletedInPeriod(t *testing.T) {
	now := time.Date(2026, 5, 6, 20, 0, 0, 0, time.UTC) // Wednesday
	n, store := newTestNotifier(t, now)

	sameDay := time.Date(2026, 5, 6, 6, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 5, 5, 6, 0, 0, 0, time.UTC)
	lastWeek := time.Date(2026, 4, 30, 6, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 4, 28, 6, 0, 0, 0, time.UTC)

	seed(t, store, models.Habit{Name: "daily done", ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &sameDay})
	dailyDue := seed(t, store, models.Habit{Name: "daily due", ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &yesterday})
	seed(t, store, models.Habit{Name: "weekly done", Frequency: models.FrequencyWeekly, ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &yesterday})
	weeklyDue := seed(t, store, models.Habit{Name: "weekly due", Frequency: models.FrequencyWeekly, ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &lastWeek})
	seed(t, store, models.Habit{Name: "monthly done", Frequency: models.FrequencyMonthly, ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &yesterday})
	monthlyDue := seed(t, store, models.Habit{Name: "monthly due", Frequency: models.FrequencyMonthly, ReminderTime: ptr("20:00"), IsActive: true, LastCompleted: &lastMonth})

	reminded, err := n.RunScan(context.Background())
	require.NoError(t, err)

	var ids []uuid.UUID
	for _, h := range reminded {
		ids = append(ids, h.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{dailyDue.ID, weeklyDue.ID, monthlyDue.ID}, ids)
}

func TestRunScanSingleDigitHour(t *testing.T) {
	n, store := newTestNotifier(t, time.Date(2026, 5, 6, 7, 0, 0, 0, time.UTC))

	legacy := seed(t, store, models.Habit{Name: "Walk", ReminderTime: ptr("7:00"), IsActive: true})

	reminded, err := n.RunScan(context.Background())
	require.NoError(t, err)
	require.Len(t, reminded, 1)
	assert.Equal(t, legacy.ID, reminded[0].ID)

	_, err = n.HabitService.CreateHabit(context.Background(), models.HabitCreate{
		Name:         "Run",
		Frequency:    models.FrequencyDaily,
		ReminderTime: ptr("7:00"),
	})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "reminder_time", vErr.Field)
}

func TestRunScanEmptyStore(t *testing.T) {
	n, _ := newTestNotifier(t, time.Now())

	reminded, err := n.RunScan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reminded)
}
