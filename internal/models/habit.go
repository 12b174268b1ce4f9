package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"

	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// ReminderTimeLayout is the "HH:MM" layout of Habit.ReminderTime.
	ReminderTimeLayout = "15:04"
)

// AllowedFrequencies lists the only values Habit.Frequency may take.
var AllowedFrequencies = map[string]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
}

// Habit is a recurring user activity and its tracking state.
type Habit struct {
	ID            uuid.UUID  `json:"id" bson:"_id"`
	UserID        uuid.UUID  `json:"user_id" bson:"user_id"`
	Name          string     `json:"name" bson:"name"`
	Description   *string    `json:"description" bson:"description,omitempty"`
	Frequency     string     `json:"frequency" bson:"frequency"`
	TargetValue   *float64   `json:"target_value" bson:"target_value,omitempty"`
	Unit          *string    `json:"unit" bson:"unit,omitempty"`
	ReminderTime  *string    `json:"reminder_time" bson:"reminder_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
	IsActive      bool       `json:"is_active" bson:"is_active"`
	Streak        int        `json:"streak" bson:"streak"`
	LastCompleted *time.Time `json:"last_completed" bson:"last_completed,omitempty"`
}

// HabitCreate is the payload accepted when creating a habit.
type HabitCreate struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Frequency    string   `json:"frequency"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	ReminderTime *string  `json:"reminder_time,omitempty"`
}

// HabitUpdate is a partial update. Fields that were not sent leave the stored
// value unchanged; an explicit null clears an optional field.
type HabitUpdate struct {
	Name         Optional[string]  `json:"name,omitzero"`
	Description  Optional[string]  `json:"description,omitzero"`
	Frequency    Optional[string]  `json:"frequency,omitzero"`
	TargetValue  Optional[float64] `json:"target_value,omitzero"`
	Unit         Optional[string]  `json:"unit,omitzero"`
	ReminderTime Optional[string]  `json:"reminder_time,omitzero"`
	IsActive     Optional[bool]    `json:"is_active,omitzero"`
}

// HabitStats summarises the tracking state of a habit.
type HabitStats struct {
	Streak         int        `json:"streak"`
	LastCompleted  *time.Time `json:"last_completed"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletionRate float64    `json:"completion_rate"`
}

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the creation payload against the field rules.
func (c HabitCreate) Validate() error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if err := validateFrequency(c.Frequency); err != nil {
		return err
	}
	return validateOptional(c.Description, c.ReminderTime)
}

// Validate checks only the fields present in the update. Name, frequency and
// is_active cannot be cleared.
func (u HabitUpdate) Validate() error {
	switch {
	case u.Name.IsNull():
		return &ValidationError{Field: "name", Message: "must not be null"}
	case u.Frequency.IsNull():
		return &ValidationError{Field: "frequency", Message: "must not be null"}
	case u.IsActive.IsNull():
		return &ValidationError{Field: "is_active", Message: "must not be null"}
	}
	if u.Name.Set {
		if err := validateName(*u.Name.Value); err != nil {
			return err
		}
	}
	if u.Frequency.Set {
		if err := validateFrequency(*u.Frequency.Value); err != nil {
			return err
		}
	}
	return validateOptional(u.Description.Value, u.ReminderTime.Value)
}

// Apply writes the present fields of u onto h and reports whether anything was set.
// It assumes u has passed Validate.
func (u HabitUpdate) Apply(h *Habit) bool {
	changed := false
	if u.Name.Set {
		h.Name = *u.Name.Value
		changed = true
	}
	if u.Description.Set {
		h.Description = u.Description.Value
		changed = true
	}
	if u.Frequency.Set {
		h.Frequency = *u.Frequency.Value
		changed = true
	}
	if u.TargetValue.Set {
		h.TargetValue = u.TargetValue.Value
		changed = true
	}
	if u.Unit.Set {
		h.Unit = u.Unit.Value
		changed = true
	}
	if u.ReminderTime.Set {
		h.ReminderTime = u.ReminderTime.Value
		changed = true
	}
	if u.IsActive.Set {
		h.IsActive = *u.IsActive.Value
		changed = true
	}
	return changed
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must be between 1 and %d characters", MaxNameLength)}
	}
	return nil
}

func validateFrequency(freq string) error {
	if !AllowedFrequencies[freq] {
		return &ValidationError{Field: "frequency", Message: "must be one of daily, weekly, monthly"}
	}
	return nil
}

func validateOptional(description, reminder *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)}
	}
	if reminder != nil {
		t, err := time.Parse(ReminderTimeLayout, *reminder)
		if err != nil || t.Format(ReminderTimeLayout) != *reminder {
			return &ValidationError{Field: "reminder_time", Message: "must use HH:MM format"}
		}
	}
	return nil
}
