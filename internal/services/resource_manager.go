package services

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// ReferenceCheck validates the foreign ids a record points at.
type ReferenceCheck[T models.Record] func(ctx context.Context, record *T) error

// Option configures a ResourceManager.
type Option[T models.Record] func(*ResourceManager[T])

// WithPublisher publishes a ResourceEvent after every committed mutation.
func WithPublisher[T models.Record](publisher EventPublisher) Option[T] {
	return func(m *ResourceManager[T]) {
		m.publisher = publisher
	}
}

// WithReferenceCheck runs check before create and replace.
func WithReferenceCheck[T models.Record](check ReferenceCheck[T]) Option[T] {
	return func(m *ResourceManager[T]) {
		m.checkRefs = check
	}
}

// ResourceManager handles list, get, create, replace and delete for one resource type.
type ResourceManager[T models.Record] struct {
	repo      repositories.Repository[T]
	publisher EventPublisher
	checkRefs ReferenceCheck[T]
	now       func() time.Time
}

// NewResourceManager creates a new ResourceManager.
func NewResourceManager[T models.Record](repo repositories.Repository[T], opts ...Option[T]) *ResourceManager[T] {
	m := &ResourceManager[T]{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the resource name, e.g. "user".
func (m *ResourceManager[T]) Name() string {
	var zero T
	return zero.ResourceName()
}

// ListAll retrieves every record. The result is never nil.
func (m *ResourceManager[T]) ListAll(ctx context.Context) ([]T, error) {
	records, err := m.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Get retrieves a single record by id. A missing record yields repositories.ErrNotFound.
func (m *ResourceManager[T]) Get(ctx context.Context, id int) (*T, error) {
	return m.repo.GetByID(ctx, id)
}

// Create persists a new record. A duplicate id yields repositories.ErrConflict.
func (m *ResourceManager[T]) Create(ctx context.Context, record *T) error {
	if err := m.validateReferences(ctx, record); err != nil {
		return err
	}
	if err := m.repo.Create(ctx, record); err != nil {
		return err
	}
	m.publish(ActionCreated, (*record).PrimaryKey(), record)
	return nil
}

// Replace overwrites every field of the record with the same id.
// A missing record yields repositories.ErrNotFound before references are checked.
func (m *ResourceManager[T]) Replace(ctx context.Context, record *T) error {
	if _, err := m.repo.GetByID(ctx, (*record).PrimaryKey()); err != nil {
		return err
	}
	if err := m.validateReferences(ctx, record); err != nil {
		return err
	}
	if err := m.repo.Replace(ctx, record); err != nil {
		return err
	}
	m.publish(ActionReplaced, (*record).PrimaryKey(), record)
	return nil
}

// Delete removes a record by id.
func (m *ResourceManager[T]) Delete(ctx context.Context, id int) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.publish(ActionDeleted, id, nil)
	return nil
}

func (m *ResourceManager[T]) validateReferences(ctx context.Context, record *T) error {
	if m.checkRefs == nil {
		return nil
	}
	if err := m.checkRefs(ctx, record); err != nil {
		return fmt.Errorf("%s %d: %w", m.Name(), (*record).PrimaryKey(), err)
	}
	return nil
}

func (m *ResourceManager[T]) publish(action string, id int, record *T) {
	event := ResourceEvent{
		Resource:   m.Name(),
		Action:     action,
		ID:         id,
		OccurredAt: m.now().UTC(),
	}
	if record != nil {
		event.Data = record
	}
	publishEvent(m.publisher, event)
}
