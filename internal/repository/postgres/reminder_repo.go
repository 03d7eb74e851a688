package postgres

import (
	"context"
	"errors"

	"pharmaplus-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reminderRepository struct {
	db *pgxpool.Pool
}

func NewReminderRepository(db *pgxpool.Pool) domain.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	const query = `
		INSERT INTO reminders (id, user_id, medication, dose, interval_hours, start_at, end_at, notes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.Medication,
		reminder.Dose,
		reminder.IntervalHours,
		reminder.StartAt,
		reminder.EndAt,
		reminder.Notes,
		reminder.Active,
	).Scan(&reminder.CreatedAt, &reminder.UpdatedAt)
}

func (r *reminderRepository) GetByID(ctx context.Context, id, userID string) (*domain.Reminder, error) {
	const query = `
		SELECT id, user_id, medication, dose, interval_hours, start_at, end_at, notes, active, created_at, updated_at
		FROM reminders
		WHERE id = $1 AND user_id = $2`

	var rem domain.Reminder
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&rem.ID,
		&rem.UserID,
		&rem.Medication,
		&rem.Dose,
		&rem.IntervalHours,
		&rem.StartAt,
		&rem.EndAt,
		&rem.Notes,
		&rem.Active,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Reminder, error) {
	const query = `
		SELECT id, user_id, medication, dose, interval_hours, start_at, end_at, notes, active, created_at, updated_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]domain.Reminder, 0)
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(
			&rem.ID,
			&rem.UserID,
			&rem.Medication,
			&rem.Dose,
			&rem.IntervalHours,
			&rem.StartAt,
			&rem.EndAt,
			&rem.Notes,
			&rem.Active,
			&rem.CreatedAt,
			&rem.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *reminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	const query = `
		UPDATE reminders
		SET medication = $3, dose = $4, interval_hours = $5, start_at = $6, end_at = $7, notes = $8, active = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.Medication,
		reminder.Dose,
		reminder.IntervalHours,
		reminder.StartAt,
		reminder.EndAt,
		reminder.Notes,
		reminder.Active,
	).Scan(&reminder.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReminderNotFound
		}
		return err
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}
