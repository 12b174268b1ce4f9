package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestHabitCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   HabitCreate
		wantErr string
	}{
		{name: "valid", input: HabitCreate{Name: "Exercise", Frequency: FrequencyDaily}},
		{name: "valid with reminder", input: HabitCreate{Name: "Read", Frequency: FrequencyWeekly, ReminderTime: strPtr("07:30")}},
		{name: "empty name", input: HabitCreate{Frequency: FrequencyDaily}, wantErr: "name"},
		{name: "long name", input: HabitCreate{Name: strings.Repeat("a", 101), Frequency: FrequencyDaily}, wantErr: "name"},
		{name: "unknown frequency", input: HabitCreate{Name: "Exercise", Frequency: "hourly"}, wantErr: "frequency"},
		{name: "long description", input: HabitCreate{Name: "Exercise", Frequency: FrequencyMonthly, Description: strPtr(strings.Repeat("d", 501))}, wantErr: "description"},
		{name: "bad reminder", input: HabitCreate{Name: "Exercise", Frequency: FrequencyDaily, ReminderTime: strPtr("7pm")}, wantErr: "reminder_time"},
		{name: "single digit hour", input: HabitCreate{Name: "Exercise", Frequency: FrequencyDaily, ReminderTime: strPtr("7:00")}, wantErr: "reminder_time"},
		{name: "single digit minute", input: HabitCreate{Name: "Exercise", Frequency: FrequencyDaily, ReminderTime: strPtr("07:5")}, wantErr: "reminder_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantErr, vErr.Field)
		})
	}
}

func TestHabitUpdateValidateChecksOnlyPresentFields(t *testing.T) {
	assert.NoError(t, HabitUpdate{}.Validate())
	assert.NoError(t, HabitUpdate{Description: Null[string](), Unit: Null[string]()}.Validate())
	assert.Error(t, HabitUpdate{Name: Some("")}.Validate())
	assert.Error(t, HabitUpdate{Frequency: Some("yearly")}.Validate())
	assert.Error(t, HabitUpdate{ReminderTime: Some("7:00")}.Validate())
}

func TestHabitUpdateRejectsNullRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input HabitUpdate
		field string
	}{
		{name: "name", input: HabitUpdate{Name: Null[string]()}, field: "name"},
		{name: "frequency", input: HabitUpdate{Frequency: Null[string]()}, field: "frequency"},
		{name: "is_active", input: HabitUpdate{IsActive: Null[bool]()}, field: "is_active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *ValidationError
			require.True(t, errors.As(tt.input.Validate(), &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestHabitUpdateApply(t *testing.T) {
	target := 30.0
	h := Habit{Name: "Exercise", Frequency: FrequencyDaily, TargetValue: &target, Unit: strPtr("minutes"), IsActive: true}

	changed := HabitUpdate{TargetValue: Some(45.0)}.Apply(&h)

	assert.True(t, changed)
	assert.Equal(t, 45.0, *h.TargetValue)
	assert.Equal(t, "Exercise", h.Name)
	assert.Equal(t, "minutes", *h.Unit)
	assert.True(t, h.IsActive)

	HabitUpdate{IsActive: Some(false)}.Apply(&h)
	assert.False(t, h.IsActive)

	assert.True(t, HabitUpdate{Unit: Null[string]()}.Apply(&h))
	assert.Nil(t, h.Unit)
	assert.Equal(t, 45.0, *h.TargetValue)

	assert.False(t, HabitUpdate{}.Apply(&h))
}

func TestHabitUpdateJSONTracksPresence(t *testing.T) {
	var u HabitUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"description":null,"target_value":12.5}`), &u))

	assert.True(t, u.Description.IsNull())
	assert.True(t, u.TargetValue.Set)
	assert.Equal(t, 12.5, *u.TargetValue.Value)
	assert.False(t, u.Unit.Set)
	assert.False(t, u.Name.Set)

	data, err := json.Marshal(HabitUpdate{Name: Some("Run"), Unit: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Run","unit":null}`, string(data))
}
