package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/applications"
)

// ApplicationGetter is the slice of the applications service that reminders
// needs for validating linkage.
type ApplicationGetter interface {
	Get(ctx context.Context, id string) (applications.Application, error)
}

// Service contains business logic for reminders.
type Service struct {
	Repo Repo
	Apps ApplicationGetter
}

// CreateInput carries the fields accepted when creating a reminder.
type CreateInput struct {
	ApplicationID string
	Type          string
	Message       string
	DueDate       time.Time
}

// UpdateInput carries the fields accepted when updating a reminder.
type UpdateInput struct {
	Type        *string
	Message     *string
	DueDate     *time.Time
	IsCompleted *bool
}

// Create stores a new reminder for an existing application.
func (s *Service) Create(ctx context.Context, in CreateInput) (Reminder, error) {
	appID := strings.TrimSpace(in.ApplicationID)
	remType := strings.TrimSpace(in.Type)
	if appID == "" || !ValidType(remType) || in.DueDate.IsZero() {
		return Reminder{}, ErrInvalidInput
	}

	if _, err := s.Apps.Get(ctx, appID); err != nil {
		if errors.Is(err, applications.ErrNotFound) {
			return Reminder{}, ErrApplicationMissing
		}
		return Reminder{}, err
	}

	rem := Reminder{
		ID:            uuid.NewString(),
		ApplicationID: appID,
		Type:          remType,
		Message:       in.Message,
		DueDate:       in.DueDate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

// Get fetches a reminder by ID.
func (s *Service) Get(ctx context.Context, id string) (Reminder, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns reminders narrowed by the filter, soonest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Reminder, error) {
	return s.Repo.List(ctx, filter)
}

// Upcoming returns open reminders due from now on, soonest first.
func (s *Service) Upcoming(ctx context.Context) ([]Reminder, error) {
	now := time.Now().UTC()
	open := false
	return s.Repo.List(ctx, ListFilter{IsCompleted: &open, DueAfter: &now})
}

// Update applies a partial update, typically toggling completion.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Reminder, error) {
	rem, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Reminder{}, err
	}

	if in.Type != nil {
		remType := strings.TrimSpace(*in.Type)
		if !ValidType(remType) {
			return Reminder{}, ErrInvalidInput
		}
		rem.Type = remType
	}
	if in.Message != nil {
		rem.Message = *in.Message
	}
	if in.DueDate != nil && !in.DueDate.IsZero() {
		rem.DueDate = *in.DueDate
	}
	if in.IsCompleted != nil {
		rem.IsCompleted = *in.IsCompleted
	}

	if err := s.Repo.Update(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

// Delete removes a reminder.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
