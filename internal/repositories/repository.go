package repositories

import (
	"context"

	"marketplace/internal/models"
)

// Repository defines data access for one resource type.
// Create, Replace and Delete each run in their own transaction.
type Repository[T models.Record] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, record *T) error
	Replace(ctx context.Context, record *T) error
	Delete(ctx context.Context, id int) error
}

func resourceName[T models.Record]() string {
	var zero T
	return zero.ResourceName()
}
