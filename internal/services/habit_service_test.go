package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*HabitService, *fakeClock, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habits.json")
	store := repository.NewJSONStore(path)
	require.NoError(t, store.Load(context.Background()))

	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewHabitService(store)
	svc.now = clock.Now
	return svc, clock, path
}

func ptr[T any](v T) *T { return &v }

func TestCreateHabit(t *testing.T) {
	svc, clock, _ := newTestService(t)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, models.HabitCreate{
		Name:        "Exercise",
		Description: ptr("Daily workout"),
		Frequency:   models.FrequencyDaily,
		TargetValue: ptr(30.0),
		Unit:        ptr("minutes"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, habit.ID)
	assert.NotEqual(t, uuid.Nil, habit.UserID)
	assert.Equal(t, "Exercise", habit.Name)
	assert.Equal(t, "Daily workout", *habit.Description)
	assert.Equal(t, 30.0, *habit.TargetValue)
	assert.Equal(t, "minutes", *habit.Unit)
	assert.True(t, habit.IsActive)
	assert.Equal(t, 0, habit.Streak)
	assert.Nil(t, habit.LastCompleted)
	assert.Equal(t, clock.Now(), habit.CreatedAt)
	assert.Equal(t, habit.CreatedAt, habit.UpdatedAt)
}

func TestCreateHabitGeneratesUniqueIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 25; i++ {
		habit, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Read", Frequency: models.FrequencyWeekly})
		require.NoError(t, err)
		assert.False(t, seen[habit.ID], "duplicate id %s", habit.ID)
		seen[habit.ID] = true
	}
}

func TestCreateHabitValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "", Frequency: models.FrequencyDaily})
	var vErr *models.ValidationError
	assert.True(t, errors.As(err, &vErr))

	_, err = svc.CreateHabit(ctx, models.HabitCreate{Name: "Exercise", Frequency: "hourly"})
	assert.True(t, errors.As(err, &vErr))

	habits, err := svc.GetAllHabits(ctx)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestUpdateHabitMergesOnlyPresentFields(t *testing.T) {
	svc, clock, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{
		Name:         "Exercise",
		Description:  ptr("Daily workout"),
		Frequency:    models.FrequencyDaily,
		TargetValue:  ptr(30.0),
		Unit:         ptr("minutes"),
		ReminderTime: ptr("07:00"),
	})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	updated, err := svc.UpdateHabit(ctx, created.ID, models.HabitUpdate{TargetValue: models.Some(45.0)})
	require.NoError(t, err)

	assert.Equal(t, 45.0, *updated.TargetValue)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	expected := *created
	expected.TargetValue = ptr(45.0)
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, expected, *updated)

	stored, err := svc.GetHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *stored)
}

func TestUpdateHabitToggleActive(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Journal", Frequency: models.FrequencyMonthly})
	require.NoError(t, err)

	updated, err := svc.UpdateHabit(ctx, created.ID, models.HabitUpdate{IsActive: models.Some(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateHabitNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateHabit(context.Background(), uuid.New(), models.HabitUpdate{Name: models.Some("Run")})
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestUpdateHabitRejectsInvalidFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Journal", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	_, err = svc.UpdateHabit(ctx, created.ID, models.HabitUpdate{Frequency: models.Some("sometimes")})
	var vErr *models.ValidationError
	require.True(t, errors.As(err, &vErr))

	stored, err := svc.GetHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FrequencyDaily, stored.Frequency)
}

func TestCompleteHabit(t *testing.T) {
	svc, clock, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Meditate", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	completed, err := svc.CompleteHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, completed.Streak)
	require.NotNil(t, completed.LastCompleted)
	assert.False(t, completed.LastCompleted.Before(completed.CreatedAt))

	clock.Advance(24 * time.Hour)
	completed, err = svc.CompleteHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, completed.Streak)
	assert.Equal(t, clock.Now(), *completed.LastCompleted)
}

func TestCompleteHabitNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompleteHabit(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrHabitNotFound)

	habits, err := svc.GetAllHabits(ctx)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestCompleteHabitConcurrent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Water", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CompleteHabit(ctx, created.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := svc.GetHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Streak)
}

func TestDeleteHabit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Walk", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	removed, err := svc.DeleteHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.GetHabit(ctx, created.ID)
	assert.ErrorIs(t, err, ErrHabitNotFound)

	removed, err = svc.DeleteHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetHabitStats(t *testing.T) {
	svc, clock, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Sleep early", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	stats, err := svc.GetHabitStats(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Streak)
	assert.Nil(t, stats.LastCompleted)
	assert.Equal(t, created.CreatedAt, stats.CreatedAt)
	assert.Equal(t, 0.0, stats.CompletionRate)

	clock.Advance(time.Hour)
	_, err = svc.CompleteHabit(ctx, created.ID)
	require.NoError(t, err)

	stats, err = svc.GetHabitStats(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Streak)
	require.NotNil(t, stats.LastCompleted)
	assert.Equal(t, 1.0, stats.CompletionRate)

	_, err = svc.GetHabitStats(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitsSurviveReload(t *testing.T) {
	svc, _, path := newTestService(t)
	ctx := context.Background()

	var created []*models.Habit
	for _, name := range []string{"Exercise", "Read", "Meditate"} {
		h, err := svc.CreateHabit(ctx, models.HabitCreate{Name: name, Frequency: models.FrequencyDaily})
		require.NoError(t, err)
		created = append(created, h)
	}
	_, err := svc.CompleteHabit(ctx, created[1].ID)
	require.NoError(t, err)

	store := repository.NewJSONStore(path)
	require.NoError(t, store.Load(ctx))
	reloaded := NewHabitService(store)

	for _, h := range created {
		want, err := svc.GetHabit(ctx, h.ID)
		require.NoError(t, err)
		got, err := reloaded.GetHabit(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, *want, *got)
	}
}

func TestUpdateHabitClearsNulledFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{
		Name:         "Stretch",
		Frequency:    models.FrequencyDaily,
		Description:  ptr("Morning mobility"),
		TargetValue:  ptr(10.0),
		Unit:         ptr("minutes"),
		ReminderTime: ptr("06:30"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateHabit(ctx, created.ID, models.HabitUpdate{
		Description: models.Null[string](),
		TargetValue: models.Null[float64](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.TargetValue)
	require.NotNil(t, updated.Unit)
	assert.Equal(t, "minutes", *updated.Unit)
	require.NotNil(t, updated.ReminderTime)
	assert.Equal(t, "06:30", *updated.ReminderTime)

	_, err = svc.UpdateHabit(ctx, created.ID, models.HabitUpdate{Name: models.Null[string]()})
	var vErr *models.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)
}

// Scenario: create, read back, partial update, delete.
func TestHabitLifecycleScenario(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, models.HabitCreate{
		Name:        "Exercise",
		Frequency:   models.FrequencyDaily,
		TargetValue: ptr(30.0),
		Unit:        ptr("minutes"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, habit.Streak)
	assert.True(t, habit.IsActive)

	fetched, err := svc.GetHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, *habit, *fetched)

	updated, err := svc.UpdateHabit(ctx, habit.ID, models.HabitUpdate{TargetValue: models.Some(45.0)})
	require.NoError(t, err)
	assert.Equal(t, 45.0, *updated.TargetValue)
	assert.Equal(t, "Exercise", updated.Name)
	assert.Equal(t, "minutes", *updated.Unit)

	removed, err := svc.DeleteHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.GetHabit(ctx, habit.ID)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

type failingStore struct {
	repository.HabitStore
}

func (f failingStore) Save(ctx context.Context, habit models.Habit) error {
	return errors.New("disk full")
}

func TestPersistenceFailurePropagates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHabit(ctx, models.HabitCreate{Name: "Floss", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	failing := NewHabitService(failingStore{HabitStore: svc.repo})
	_, err = failing.CompleteHabit(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	stored, err := svc.GetHabit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Streak)
	assert.Nil(t, stored.LastCompleted)
}

func TestParseHabitID(t *testing.T) {
	id := uuid.New()
	parsed, err := ParseHabitID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseHabitID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidHabitID)
}
