package communications

import (
	"context"
	"time"
)

// ListFilter narrows a communications listing.
type ListFilter struct {
	ApplicationID string
	Type          string
	Start         *time.Time
	End           *time.Time
}

// Repo defines persistence operations for communications.
type Repo interface {
	Create(ctx context.Context, comm Communication) error
	GetByID(ctx context.Context, id string) (Communication, error)
	List(ctx context.Context, filter ListFilter) ([]Communication, error)
	Update(ctx context.Context, comm Communication) error
	Delete(ctx context.Context, id string) error
}
