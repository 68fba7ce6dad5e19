package communications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Communication
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Communication)}
}

// Create stores a new communication.
func (r *MemoryRepo) Create(ctx context.Context, comm Communication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[comm.ID] = comm
	return nil
}

// GetByID returns a communication by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Communication, error) {
	if err := ctx.Err(); err != nil {
		return Communication{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	comm, ok := r.data[id]
	if !ok {
		return Communication{}, ErrNotFound
	}
	return comm, nil
}

// List returns communications newest-first, narrowed by the filter.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]Communication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Communication, 0, len(r.data))
	for _, comm := range r.data {
		if filter.ApplicationID != "" && comm.ApplicationID != filter.ApplicationID {
			continue
		}
		if filter.Type != "" && comm.Type != filter.Type {
			continue
		}
		if filter.Start != nil && comm.Timestamp.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && comm.Timestamp.After(*filter.End) {
			continue
		}
		out = append(out, comm)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Update replaces a stored communication.
func (r *MemoryRepo) Update(ctx context.Context, comm Communication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[comm.ID]
	if !ok {
		return ErrNotFound
	}
	comm.ApplicationID = stored.ApplicationID
	comm.CreatedAt = stored.CreatedAt
	r.data[comm.ID] = comm
	return nil
}

// Delete removes a communication.
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
