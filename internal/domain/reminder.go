package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Reminder is one entry of the user's pastillero: a medication taken on
// a fixed-interval schedule. IntervalHours is the spacing between
// doses; StartAt anchors the schedule.
type Reminder struct {
	ID            string     `json:"id"` // UUID
	UserID        string     `json:"userId"`
	Medication    string     `json:"medication"`
	Dose          string     `json:"dose"` // e.g. "500 mg", "2 tabletas"
	IntervalHours int        `json:"intervalHours"`
	StartAt       time.Time  `json:"startAt"`
	EndAt         *time.Time `json:"endAt,omitempty"` // nil = open-ended
	Notes         string     `json:"notes,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ErrInvalidReminder wraps every Validate failure so handlers can map
// them without inspecting messages.
var ErrInvalidReminder = errors.New("invalid reminder")

// Validate checks the schedule parameters.
func (r *Reminder) Validate() error {
	if r.Medication == "" {
		return fmt.Errorf("%w: medication name is required", ErrInvalidReminder)
	}
	if r.IntervalHours <= 0 || r.IntervalHours > 24*7 {
		return fmt.Errorf("%w: interval must be between 1 hour and 7 days", ErrInvalidReminder)
	}
	if r.EndAt != nil && r.EndAt.Before(r.StartAt) {
		return fmt.Errorf("%w: end date cannot precede start date", ErrInvalidReminder)
	}
	return nil
}

// NextDose returns the first scheduled dose at or after now, or false
// when the schedule is inactive, not yet computable, or finished.
// Doses fall at StartAt + n*interval; the computation is O(1), not a
// tick-by-tick walk.
func (r *Reminder) NextDose(now time.Time) (time.Time, bool) {
	if !r.Active || r.IntervalHours <= 0 {
		return time.Time{}, false
	}
	if !now.After(r.StartAt) {
		return r.StartAt, r.withinEnd(r.StartAt)
	}
	interval := time.Duration(r.IntervalHours) * time.Hour
	elapsed := now.Sub(r.StartAt)
	n := elapsed / interval
	next := r.StartAt.Add((n + 1) * interval)
	// now may fall exactly on a dose boundary
	if onBoundary := r.StartAt.Add(n * interval); onBoundary.Equal(now) {
		next = onBoundary
	}
	return next, r.withinEnd(next)
}

func (r *Reminder) withinEnd(t time.Time) bool {
	return r.EndAt == nil || !t.After(*r.EndAt)
}

var ErrReminderNotFound = errors.New("reminder not found")

type ReminderRepository interface {
	Create(ctx context.Context, reminder *Reminder) error
	GetByID(ctx context.Context, id, userID string) (*Reminder, error)
	GetByUserID(ctx context.Context, userID string) ([]Reminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id, userID string) error
}
