package communications

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

const communicationColumns = `id, application_id, type, message, timestamp, created_at`

// Create inserts a new communication.
func (r *PGRepo) Create(ctx context.Context, comm Communication) error {
	const query = `
INSERT INTO communications (` + communicationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		comm.ID,
		comm.ApplicationID,
		comm.Type,
		comm.Message,
		comm.Timestamp,
		comm.CreatedAt,
	)
	return err
}

// GetByID fetches a communication by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Communication, error) {
	const query = `
SELECT ` + communicationColumns + `
FROM communications
WHERE id = $1
LIMIT 1`
	comm, err := scanCommunication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Communication{}, ErrNotFound
		}
		return Communication{}, err
	}
	return comm, nil
}

// List returns communications newest-first, narrowed by the filter.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Communication, error) {
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
	if filter.Type != "" {
		addCond("type = $%d", filter.Type)
	}
	if filter.Start != nil {
		addCond("timestamp >= $%d", *filter.Start)
	}
	if filter.End != nil {
		addCond("timestamp <= $%d", *filter.End)
	}

	query := `
SELECT ` + communicationColumns + `
FROM communications`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY timestamp DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Communication
	for rows.Next() {
		comm, err := scanCommunication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, comm)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a communication.
func (r *PGRepo) Update(ctx context.Context, comm Communication) error {
	const query = `
UPDATE communications
SET type = $1, message = $2, timestamp = $3
WHERE id = $4`

	res, err := r.DB.ExecContext(ctx, query, comm.Type, comm.Message, comm.Timestamp, comm.ID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a communication.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM communications WHERE id = $1`
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

func scanCommunication(row rowScanner) (Communication, error) {
	var comm Communication
	if err := row.Scan(
		&comm.ID,
		&comm.ApplicationID,
		&comm.Type,
		&comm.Message,
		&comm.Timestamp,
		&comm.CreatedAt,
	); err != nil {
		return Communication{}, err
	}
	return comm, nil
}

var _ Repo = (*PGRepo)(nil)
