package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo on database/sql. The SQL sticks to the subset
// shared by Postgres and SQLite so both drivers can serve it.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, name, is_master, master_resume_id, latex_content, content, version_history, file_name, file_type, storage_key, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (` + resumeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	contentJSON, historyJSON, err := marshalResumeJSON(rec)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Name,
		rec.IsMaster,
		nullString(rec.MasterResumeID),
		rec.LatexContent,
		contentJSON,
		historyJSON,
		rec.FileName,
		rec.FileType,
		rec.StorageKey,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1
LIMIT 1`
	rec, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return rec, nil
}

// List returns all resumes, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a resume.
func (r *PGRepo) Update(ctx context.Context, rec Resume) error {
	const query = `
UPDATE resumes
SET name = $1, is_master = $2, master_resume_id = $3, latex_content = $4, content = $5, version_history = $6, file_name = $7, file_type = $8, storage_key = $9, updated_at = $10
WHERE id = $11`

	contentJSON, historyJSON, err := marshalResumeJSON(rec)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		rec.Name,
		rec.IsMaster,
		nullString(rec.MasterResumeID),
		rec.LatexContent,
		contentJSON,
		historyJSON,
		rec.FileName,
		rec.FileType,
		rec.StorageKey,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
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

func scanResume(row rowScanner) (Resume, error) {
	var rec Resume
	var masterID sql.NullString
	var contentJSON, historyJSON string
	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.IsMaster,
		&masterID,
		&rec.LatexContent,
		&contentJSON,
		&historyJSON,
		&rec.FileName,
		&rec.FileType,
		&rec.StorageKey,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if masterID.Valid {
		rec.MasterResumeID = masterID.String
	}
	if contentJSON != "" {
		if err := json.Unmarshal([]byte(contentJSON), &rec.Content); err != nil {
			return Resume{}, fmt.Errorf("decode resume content id=%s: %w", rec.ID, err)
		}
	}
	if historyJSON != "" {
		if err := json.Unmarshal([]byte(historyJSON), &rec.VersionHistory); err != nil {
			return Resume{}, fmt.Errorf("decode version history id=%s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

func marshalResumeJSON(rec Resume) (contentJSON, historyJSON string, err error) {
	content, err := json.Marshal(rec.Content)
	if err != nil {
		return "", "", fmt.Errorf("encode resume content: %w", err)
	}
	history := rec.VersionHistory
	if history == nil {
		history = []Version{}
	}
	historyRaw, err := json.Marshal(history)
	if err != nil {
		return "", "", fmt.Errorf("encode version history: %w", err)
	}
	return string(content), string(historyRaw), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
