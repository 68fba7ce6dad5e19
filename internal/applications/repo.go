package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, status string) ([]Application, error)
	Update(ctx context.Context, app Application) error
	Delete(ctx context.Context, id string) error
}
