package applications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo on database/sql.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, company_name, role_title, date_applied, status, source, location, duration, notes, resume_id, created_at, updated_at`

// Create inserts a new application.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (` + applicationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.CompanyName,
		app.RoleTitle,
		app.DateApplied,
		app.Status,
		app.Source,
		app.Location,
		app.Duration,
		app.Notes,
		nullString(app.ResumeID),
		app.CreatedAt,
		app.UpdatedAt,
	)
	return err
}

// GetByID fetches an application by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `
SELECT ` + applicationColumns + `
FROM applications
WHERE id = $1
LIMIT 1`
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

// List returns applications newest-first, optionally filtered by status.
func (r *PGRepo) List(ctx context.Context, status string) ([]Application, error) {
	query := `
SELECT ` + applicationColumns + `
FROM applications
ORDER BY date_applied DESC`
	args := []any{}
	if status != "" {
		query = `
SELECT ` + applicationColumns + `
FROM applications
WHERE status = $1
ORDER BY date_applied DESC`
		args = append(args, status)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of an application.
func (r *PGRepo) Update(ctx context.Context, app Application) error {
	const query = `
UPDATE applications
SET company_name = $1, role_title = $2, date_applied = $3, status = $4, source = $5, location = $6, duration = $7, notes = $8, resume_id = $9, updated_at = $10
WHERE id = $11`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		app.CompanyName,
		app.RoleTitle,
		app.DateApplied,
		app.Status,
		app.Source,
		app.Location,
		app.Duration,
		app.Notes,
		nullString(app.ResumeID),
		app.UpdatedAt,
		app.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application and cascades to its communications and reminders.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM applications WHERE id = $1`
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

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var resumeID sql.NullString
	if err := row.Scan(
		&app.ID,
		&app.CompanyName,
		&app.RoleTitle,
		&app.DateApplied,
		&app.Status,
		&app.Source,
		&app.Location,
		&app.Duration,
		&app.Notes,
		&resumeID,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return Application{}, err
	}
	if resumeID.Valid {
		app.ResumeID = resumeID.String
	}
	return app, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
