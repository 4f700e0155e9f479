package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"marketplace/internal/models"
)

// MemoryRepository is an in-memory implementation of Repository.
type MemoryRepository[T models.Record] struct {
	records map[int]T
	name    string
	mu      sync.RWMutex
}

// NewMemoryRepository creates a new instance of MemoryRepository.
func NewMemoryRepository[T models.Record]() *MemoryRepository[T] {
	return &MemoryRepository[T]{
		records: make(map[int]T),
		name:    resourceName[T](),
	}
}

// GetAll returns all records ordered by id.
func (r *MemoryRepository[T]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]T, 0, len(r.records))
	for _, record := range r.records {
		list = append(list, record)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].PrimaryKey() < list[j].PrimaryKey()
	})
	return list, nil
}

// GetByID returns a record by its id.
func (r *MemoryRepository[T]) GetByID(_ context.Context, id int) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
	}
	return &record, nil
}

// Create adds a new record.
func (r *MemoryRepository[T]) Create(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := (*record).PrimaryKey()
	if _, ok := r.records[id]; ok {
		return fmt.Errorf("%s with ID %d %w", r.name, id, ErrConflict)
	}
	r.records[id] = *record
	return nil
}

// Replace overwrites an existing record.
func (r *MemoryRepository[T]) Replace(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := (*record).PrimaryKey()
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
	}
	r.records[id] = *record
	return nil
}

// Delete removes a record by its id.
func (r *MemoryRepository[T]) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
	}
	delete(r.records, id)
	return nil
}
