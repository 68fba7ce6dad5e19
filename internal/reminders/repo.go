package reminders

import (
	"context"
	"time"
)

// ListFilter narrows a reminders listing.
type ListFilter struct {
	ApplicationID string
	IsCompleted   *bool
	DueAfter      *time.Time
}

// Repo defines persistence operations for reminders.
type Repo interface {
	Create(ctx context.Context, rem Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	List(ctx context.Context, filter ListFilter) ([]Reminder, error)
	Update(ctx context.Context, rem Reminder) error
	Delete(ctx context.Context, id string) error
}
