package communications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/shared/telemetry"
)

// statusForType maps employer responses onto pipeline statuses.
var statusForType = map[string]string{
	TypeInterviewInvite: applications.StatusInterview,
	TypeRejection:       applications.StatusRejected,
	TypeOffer:           applications.StatusOffer,
}

// statusPriority orders the pipeline so a response never moves an
// application backwards. Rejections always apply.
var statusPriority = map[string]int{
	applications.StatusRejected:  0,
	applications.StatusApplied:   1,
	applications.StatusInterview: 2,
	applications.StatusOffer:     3,
}

// ApplicationUpdater is the slice of the applications service that
// communications needs for automatic status transitions and for joining
// response-tracking aggregates back onto applications.
type ApplicationUpdater interface {
	Get(ctx context.Context, id string) (applications.Application, error)
	List(ctx context.Context, status string) ([]applications.Application, error)
	Update(ctx context.Context, id string, in applications.UpdateInput) (applications.Application, error)
}

// Service contains business logic for communications.
type Service struct {
	Repo Repo
	Apps ApplicationUpdater
}

// CreateInput carries the fields accepted when logging a communication.
type CreateInput struct {
	ApplicationID string
	Type          string
	Message       string
	Timestamp     time.Time
}

// UpdateInput carries the fields accepted when updating a communication.
type UpdateInput struct {
	Type      *string
	Message   *string
	Timestamp *time.Time
}

// Create logs a communication and advances the application status when the
// response type calls for it.
func (s *Service) Create(ctx context.Context, in CreateInput) (Communication, error) {
	appID := strings.TrimSpace(in.ApplicationID)
	commType := strings.TrimSpace(in.Type)
	if appID == "" || !ValidType(commType) {
		return Communication{}, ErrInvalidInput
	}

	if _, err := s.Apps.Get(ctx, appID); err != nil {
		if errors.Is(err, applications.ErrNotFound) {
			return Communication{}, ErrApplicationMissing
		}
		return Communication{}, err
	}

	now := time.Now().UTC()
	timestamp := in.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}

	comm := Communication{
		ID:            uuid.NewString(),
		ApplicationID: appID,
		Type:          commType,
		Message:       in.Message,
		Timestamp:     timestamp,
		CreatedAt:     now,
	}

	if err := s.Repo.Create(ctx, comm); err != nil {
		return Communication{}, err
	}

	s.syncApplicationStatus(ctx, appID, commType)
	return comm, nil
}

// Get fetches a communication by ID.
func (s *Service) Get(ctx context.Context, id string) (Communication, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns communications narrowed by the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Communication, error) {
	if filter.Type != "" && !ValidType(filter.Type) {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, filter)
}

// Update applies a partial update. A changed type re-evaluates the
// application status.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Communication, error) {
	comm, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Communication{}, err
	}

	typeChanged := false
	if in.Type != nil {
		commType := strings.TrimSpace(*in.Type)
		if !ValidType(commType) {
			return Communication{}, ErrInvalidInput
		}
		typeChanged = commType != comm.Type
		comm.Type = commType
	}
	if in.Message != nil {
		comm.Message = *in.Message
	}
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		comm.Timestamp = *in.Timestamp
	}

	if err := s.Repo.Update(ctx, comm); err != nil {
		return Communication{}, err
	}

	if typeChanged {
		s.syncApplicationStatus(ctx, comm.ApplicationID, comm.Type)
	}
	return comm, nil
}

// Delete removes a communication.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// syncApplicationStatus moves the application forward in the pipeline based
// on the response type. Failures are logged, not surfaced; the logged
// communication stands on its own.
func (s *Service) syncApplicationStatus(ctx context.Context, appID, commType string) {
	newStatus, ok := statusForType[commType]
	if !ok {
		return
	}

	app, err := s.Apps.Get(ctx, appID)
	if err != nil {
		telemetry.Error("communication.status_sync_failed", map[string]any{
			"application_id": appID,
			"error":          err.Error(),
		})
		return
	}

	if newStatus != applications.StatusRejected && statusPriority[newStatus] <= statusPriority[app.Status] {
		return
	}

	if _, err := s.Apps.Update(ctx, appID, applications.UpdateInput{Status: &newStatus}); err != nil {
		telemetry.Error("communication.status_sync_failed", map[string]any{
			"application_id": appID,
			"error":          err.Error(),
		})
	}
}
