package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createHabitsTable = `
CREATE TABLE IF NOT EXISTS habits (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	name           TEXT NOT NULL,
	description    TEXT,
	frequency      TEXT NOT NULL,
	target_value   REAL,
	unit           TEXT,
	reminder_time  TEXT,
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL,
	is_active      INTEGER NOT NULL DEFAULT 1,
	streak         INTEGER NOT NULL DEFAULT 0,
	last_completed TEXT
)`

const habitColumns = `id, user_id, name, description, frequency, target_value, unit,
	reminder_time, created_at, updated_at, is_active, streak, last_completed`

// SQLiteStore persists habits as rows in a local SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Load opens the database, creating it and the habits table if needed.
func (s *SQLiteStore) Load(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes ordered for the SQLite file.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createHabitsTable); err != nil {
		db.Close()
		return fmt.Errorf("failed to create habits table: %w", err)
	}
	s.db = db

	logger.Log.WithField("path", s.path).Info("SQLite habit store opened")
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	return habits, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id.String())
	habit, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHabitNotFound
	}
	return habit, err
}

func (s *SQLiteStore) Save(ctx context.Context, habit models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var lastCompleted sql.NullString
	if habit.LastCompleted != nil {
		lastCompleted = sql.NullString{String: formatTime(*habit.LastCompleted), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			frequency = excluded.frequency,
			target_value = excluded.target_value,
			unit = excluded.unit,
			reminder_time = excluded.reminder_time,
			updated_at = excluded.updated_at,
			is_active = excluded.is_active,
			streak = excluded.streak,
			last_completed = excluded.last_completed`,
		habit.ID.String(),
		habit.UserID.String(),
		habit.Name,
		nullString(habit.Description),
		habit.Frequency,
		nullFloat(habit.TargetValue),
		nullString(habit.Unit),
		nullString(habit.ReminderTime),
		formatTime(habit.CreatedAt),
		formatTime(habit.UpdatedAt),
		habit.IsActive,
		habit.Streak,
		lastCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete habit: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*models.Habit, error) {
	var (
		h                                         models.Habit
		id, userID, createdAt, updatedAt          string
		description, unit, reminder, lastComplete sql.NullString
		target                                    sql.NullFloat64
	)

	err := row.Scan(&id, &userID, &h.Name, &description, &h.Frequency, &target, &unit,
		&reminder, &createdAt, &updatedAt, &h.IsActive, &h.Streak, &lastComplete)
	if err != nil {
		return nil, err
	}

	if h.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("failed to parse habit id: %w", err)
	}
	if h.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}
	if h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if h.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	if lastComplete.Valid {
		t, err := time.Parse(time.RFC3339Nano, lastComplete.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_completed: %w", err)
		}
		h.LastCompleted = &t
	}
	if description.Valid {
		h.Description = &description.String
	}
	if unit.Valid {
		h.Unit = &unit.String
	}
	if reminder.Valid {
		h.ReminderTime = &reminder.String
	}
	if target.Valid {
		h.TargetValue = &target.Float64
	}
	return &h, nil
}

// timeLayout is fixed width so TEXT ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
