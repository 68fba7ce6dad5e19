package applications

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/shared/telemetry"
)

// Service contains business logic for applications.
type Service struct {
	Repo Repo
}

// CreateInput carries the fields accepted when creating an application.
type CreateInput struct {
	CompanyName string
	RoleTitle   string
	DateApplied time.Time
	Status      string
	Source      string
	Location    string
	Duration    string
	Notes       string
	ResumeID    string
}

// UpdateInput carries the fields accepted when updating an application.
// Nil pointers leave the stored value untouched.
type UpdateInput struct {
	CompanyName *string
	RoleTitle   *string
	DateApplied *time.Time
	Status      *string
	Source      *string
	Location    *string
	Duration    *string
	Notes       *string
	ResumeID    *string
}

// Create stores a new application. Status defaults to Applied.
func (s *Service) Create(ctx context.Context, in CreateInput) (Application, error) {
	company := strings.TrimSpace(in.CompanyName)
	role := strings.TrimSpace(in.RoleTitle)
	if company == "" || role == "" {
		return Application{}, ErrInvalidInput
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StatusApplied
	}
	if !ValidStatus(status) {
		return Application{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	dateApplied := in.DateApplied
	if dateApplied.IsZero() {
		dateApplied = now
	}

	app := Application{
		ID:          uuid.NewString(),
		CompanyName: company,
		RoleTitle:   role,
		DateApplied: dateApplied,
		Status:      status,
		Source:      strings.TrimSpace(in.Source),
		Location:    strings.TrimSpace(in.Location),
		Duration:    strings.TrimSpace(in.Duration),
		Notes:       in.Notes,
		ResumeID:    strings.TrimSpace(in.ResumeID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Get fetches an application by ID.
func (s *Service) Get(ctx context.Context, id string) (Application, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns applications, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]Application, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.List(ctx, status)
}

// Update applies a partial update. Status transitions are logged.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Application, error) {
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	previousStatus := app.Status

	if in.CompanyName != nil {
		company := strings.TrimSpace(*in.CompanyName)
		if company == "" {
			return Application{}, ErrInvalidInput
		}
		app.CompanyName = company
	}
	if in.RoleTitle != nil {
		role := strings.TrimSpace(*in.RoleTitle)
		if role == "" {
			return Application{}, ErrInvalidInput
		}
		app.RoleTitle = role
	}
	if in.DateApplied != nil && !in.DateApplied.IsZero() {
		app.DateApplied = *in.DateApplied
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if !ValidStatus(status) {
			return Application{}, ErrInvalidStatus
		}
		app.Status = status
	}
	if in.Source != nil {
		app.Source = strings.TrimSpace(*in.Source)
	}
	if in.Location != nil {
		app.Location = strings.TrimSpace(*in.Location)
	}
	if in.Duration != nil {
		app.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Notes != nil {
		app.Notes = *in.Notes
	}
	if in.ResumeID != nil {
		app.ResumeID = strings.TrimSpace(*in.ResumeID)
	}

	app.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}

	if app.Status != previousStatus {
		telemetry.Info("application.status_changed", map[string]any{
			"application_id": app.ID,
			"company":        app.CompanyName,
			"from":           previousStatus,
			"to":             app.Status,
		})
	}
	return app, nil
}

// Delete removes an application.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
