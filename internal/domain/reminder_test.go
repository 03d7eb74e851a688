package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderValidate(t *testing.T) {
	base := Reminder{
		Medication:    "Losartán 50mg",
		IntervalHours: 12,
		StartAt:       time.Now(),
	}

	t.Run("valid", func(t *testing.T) {
		r := base
		assert.NoError(t, r.Validate())
	})

	t.Run("missing medication", func(t *testing.T) {
		r := base
		r.Medication = ""
		assert.ErrorIs(t, r.Validate(), ErrInvalidReminder)
	})

	t.Run("interval out of range", func(t *testing.T) {
		r := base
		r.IntervalHours = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidReminder)

		r.IntervalHours = 24*7 + 1
		assert.ErrorIs(t, r.Validate(), ErrInvalidReminder)
	})

	t.Run("end before start", func(t *testing.T) {
		r := base
		end := r.StartAt.Add(-time.Hour)
		r.EndAt = &end
		assert.ErrorIs(t, r.Validate(), ErrInvalidReminder)
	})
}

func TestReminderNextDose(t *testing.T) {
	start := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	reminder := Reminder{
		Medication:    "Metformina 850mg",
		IntervalHours: 8,
		StartAt:       start,
		Active:        true,
	}

	t.Run("before schedule starts", func(t *testing.T) {
		next, ok := reminder.NextDose(start.Add(-2 * time.Hour))
		require.True(t, ok)
		assert.Equal(t, start, next)
	})

	t.Run("between doses", func(t *testing.T) {
		next, ok := reminder.NextDose(start.Add(3 * time.Hour))
		require.True(t, ok)
		assert.Equal(t, start.Add(8*time.Hour), next)
	})

	t.Run("exactly on a dose", func(t *testing.T) {
		next, ok := reminder.NextDose(start.Add(16 * time.Hour))
		require.True(t, ok)
		assert.Equal(t, start.Add(16*time.Hour), next)
	})

	t.Run("far in the future stays on grid", func(t *testing.T) {
		next, ok := reminder.NextDose(start.Add(1000*time.Hour + 30*time.Minute))
		require.True(t, ok)
		assert.Zero(t, next.Sub(start)%(8*time.Hour))
		assert.True(t, next.After(start.Add(1000*time.Hour)))
	})

	t.Run("inactive", func(t *testing.T) {
		r := reminder
		r.Active = false
		_, ok := r.NextDose(start.Add(time.Hour))
		assert.False(t, ok)
	})

	t.Run("schedule finished", func(t *testing.T) {
		r := reminder
		end := start.Add(24 * time.Hour)
		r.EndAt = &end
		_, ok := r.NextDose(start.Add(25 * time.Hour))
		assert.False(t, ok)
	})

	t.Run("last dose within end", func(t *testing.T) {
		r := reminder
		end := start.Add(24 * time.Hour)
		r.EndAt = &end
		next, ok := r.NextDose(start.Add(23 * time.Hour))
		require.True(t, ok)
		assert.Equal(t, start.Add(24*time.Hour), next)
	})
}
