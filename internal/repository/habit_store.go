package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/HealthHabit/internal/config"
	"github.com/Dias221467/HealthHabit/internal/database"
	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/google/uuid"
)

// ErrHabitNotFound is returned by Get when no habit has the requested ID.
var ErrHabitNotFound = errors.New("habit not found")

// HabitStore holds the authoritative set of habits and their durable mirror.
//
// Save and Delete persist before returning; once they return nil the
// in-memory view and the durable copy agree.
type HabitStore interface {
	Load(ctx context.Context) error
	List(ctx context.Context) ([]models.Habit, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Habit, error)
	Save(ctx context.Context, habit models.Habit) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Close() error
}

// NewHabitStore builds the store selected by cfg.StoreDriver. The store is
// not loaded; callers must call Load before use.
func NewHabitStore(cfg *config.Config) (HabitStore, error) {
	switch cfg.StoreDriver {
	case "", "json":
		return NewJSONStore(cfg.DataFile), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath), nil
	case "mongo", "mongodb":
		db, err := database.ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
