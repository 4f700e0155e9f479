package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/models"

	"gorm.io/gorm"
)

// GORMRepository is a GORM implementation of Repository.
type GORMRepository[T models.Record] struct {
	db   *gorm.DB
	name string
}

// NewGORMRepository creates a new instance of GORMRepository.
func NewGORMRepository[T models.Record](db *gorm.DB) *GORMRepository[T] {
	return &GORMRepository[T]{
		db:   db,
		name: resourceName[T](),
	}
}

// GetAll retrieves all records from the database.
func (r *GORMRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %ss: %w", r.name, err)
	}
	return records, nil
}

// GetByID retrieves a single record by its primary key.
func (r *GORMRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", r.name, id, err)
	}
	return &record, nil
}

// Create inserts a new record. A duplicate primary key yields ErrConflict.
func (r *GORMRepository[T]) Create(ctx context.Context, record *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%s with ID %d %w", r.name, (*record).PrimaryKey(), ErrConflict)
		}
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return nil
}

// Replace overwrites every column of an existing record.
func (r *GORMRepository[T]) Replace(ctx context.Context, record *T) error {
	id := (*record).PrimaryKey()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
			}
			return err
		}
		// Save writes all fields, including zero values.
		return tx.Save(record).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to replace %s: %w", r.name, err)
	}
	return nil
}

// Delete removes a record by its primary key.
func (r *GORMRepository[T]) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s with ID %d %w", r.name, id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete %s: %w", r.name, err)
	}
	return nil
}

// isDuplicateKey reports a primary key violation. Drivers that do not
// translate their errors into gorm.ErrDuplicatedKey are matched by message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "1062")
}
