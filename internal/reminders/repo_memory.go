package reminders

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Reminder
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Reminder)}
}

// Create stores a new reminder.
func (r *MemoryRepo) Create(ctx context.Context, rem Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rem.ID] = rem
	return nil
}

// GetByID returns a reminder by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Reminder, error) {
	if err := ctx.Err(); err != nil {
		return Reminder{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rem, ok := r.data[id]
	if !ok {
		return Reminder{}, ErrNotFound
	}
	return rem, nil
}

// List returns reminders ordered by due date, narrowed by the filter.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Reminder, 0, len(r.data))
	for _, rem := range r.data {
		if filter.ApplicationID != "" && rem.ApplicationID != filter.ApplicationID {
			continue
		}
		if filter.IsCompleted != nil && rem.IsCompleted != *filter.IsCompleted {
			continue
		}
		if filter.DueAfter != nil && rem.DueDate.Before(*filter.DueAfter) {
			continue
		}
		out = append(out, rem)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// Update replaces a stored reminder.
func (r *MemoryRepo) Update(ctx context.Context, rem Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[rem.ID]
	if !ok {
		return ErrNotFound
	}
	rem.ApplicationID = stored.ApplicationID
	rem.CreatedAt = stored.CreatedAt
	r.data[rem.ID] = rem
	return nil
}

// Delete removes a reminder.
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
