package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/pkg/utils"
)

// ReminderView is a reminder enriched with its computed next dose.
type ReminderView struct {
	domain.Reminder
	NextDoseAt *time.Time `json:"nextDoseAt,omitempty"`
}

// ReminderUsecase manages the pastillero. Every operation is scoped to
// the authenticated user; a reminder id from another user behaves as
// not found.
type ReminderUsecase struct {
	repo domain.ReminderRepository
}

func NewReminderUsecase(repo domain.ReminderRepository) *ReminderUsecase {
	return &ReminderUsecase{repo: repo}
}

func (u *ReminderUsecase) Create(ctx context.Context, userID string, reminder *domain.Reminder) (*ReminderView, error) {
	reminder.ID = utils.GenerateUUID()
	reminder.UserID = userID
	reminder.Active = true
	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	if reminder.StartAt.IsZero() {
		reminder.StartAt = now
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, reminder); err != nil {
		slog.Error("Usecase: CreateReminder - insert failed", "userID", userID, "error", err)
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return toView(reminder, now), nil
}

func (u *ReminderUsecase) Get(ctx context.Context, id, userID string) (*ReminderView, error) {
	reminder, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toView(reminder, time.Now()), nil
}

func (u *ReminderUsecase) ListForUser(ctx context.Context, userID string) ([]ReminderView, error) {
	reminders, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		slog.Error("Usecase: ListReminders - query failed", "userID", userID, "error", err)
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	now := time.Now()
	views := make([]ReminderView, 0, len(reminders))
	for i := range reminders {
		views = append(views, *toView(&reminders[i], now))
	}
	return views, nil
}

// Update rewrites the mutable fields of an existing reminder. ID,
// UserID and CreatedAt are never taken from the request.
func (u *ReminderUsecase) Update(ctx context.Context, id, userID string, patch *domain.Reminder) (*ReminderView, error) {
	existing, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	existing.Medication = patch.Medication
	existing.Dose = patch.Dose
	existing.IntervalHours = patch.IntervalHours
	existing.StartAt = patch.StartAt
	existing.EndAt = patch.EndAt
	existing.Notes = patch.Notes
	existing.Active = patch.Active
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, existing); err != nil {
		slog.Error("Usecase: UpdateReminder - update failed", "reminderID", id, "error", err)
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return toView(existing, time.Now()), nil
}

func (u *ReminderUsecase) Delete(ctx context.Context, id, userID string) error {
	return u.repo.Delete(ctx, id, userID)
}

func toView(r *domain.Reminder, now time.Time) *ReminderView {
	view := &ReminderView{Reminder: *r}
	if next, ok := r.NextDose(now); ok {
		view.NextDoseAt = &next
	}
	return view
}
