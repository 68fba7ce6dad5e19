package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Application)}
}

// Create stores a new application.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[app.ID] = app
	return nil
}

// GetByID returns an application by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.data[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

// List returns applications newest-first, optionally filtered by status.
func (r *MemoryRepo) List(ctx context.Context, status string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.data))
	for _, app := range r.data {
		if status != "" && app.Status != status {
			continue
		}
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateApplied.After(out[j].DateApplied)
	})
	return out, nil
}

// Update replaces a stored application.
func (r *MemoryRepo) Update(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[app.ID]; !ok {
		return ErrNotFound
	}
	r.data[app.ID] = app
	return nil
}

// Delete removes an application.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
