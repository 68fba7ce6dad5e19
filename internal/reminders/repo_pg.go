package reminders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo on database/sql.
type PGRepo struct {
	DB *sql.DB
}

const reminderColumns = `id, application_id, type, message, due_date, is_completed, created_at`

// Create inserts a new reminder.
func (r *PGRepo) Create(ctx context.Context, rem Reminder) error {
	const query = `
INSERT INTO reminders (` + reminderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rem.ID,
		rem.ApplicationID,
		rem.Type,
		rem.Message,
		rem.DueDate,
		rem.IsCompleted,
		rem.CreatedAt,
	)
	return err
}

// GetByID fetches a reminder by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Reminder, error) {
	const query = `
SELECT ` + reminderColumns + `
FROM reminders
WHERE id = $1
LIMIT 1`
	rem, err := scanReminder(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reminder{}, ErrNotFound
		}
		return Reminder{}, err
	}
	return rem, nil
}

// List returns reminders ordered by due date, narrowed by the filter.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Reminder, error) {
	var conds []string
	var args []any

	// Placeholders stay in ascending order so both drivers bind identically.
	addCond := func(expr string, value any) {
		conds = append(conds, fmt.Sprintf(expr, len(args)+1))
		args = append(args, value)
	}

	if filter.ApplicationID != "" {
		addCond("application_id = $%d", filter.ApplicationID)
	}
	if filter.IsCompleted != nil {
		addCond("is_completed = $%d", *filter.IsCompleted)
	}
	if filter.DueAfter != nil {
		addCond("due_date >= $%d", *filter.DueAfter)
	}

	query := `
SELECT ` + reminderColumns + `
FROM reminders`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY due_date ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a reminder.
func (r *PGRepo) Update(ctx context.Context, rem Reminder) error {
	const query = `
UPDATE reminders
SET type = $1, message = $2, due_date = $3, is_completed = $4
WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, query, rem.Type, rem.Message, rem.DueDate, rem.IsCompleted, rem.ID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a reminder.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM reminders WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (Reminder, error) {
	var rem Reminder
	if err := row.Scan(
		&rem.ID,
		&rem.ApplicationID,
		&rem.Type,
		&rem.Message,
		&rem.DueDate,
		&rem.IsCompleted,
		&rem.CreatedAt,
	); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

var _ Repo = (*PGRepo)(nil)
