package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/database"
	"marketplace/internal/models"
	"marketplace/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory SQLite database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(database.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func sampleUser() models.User {
	return models.User{
		ID:        1,
		FirstName: "Ana",
		LastName:  "Lee",
		Age:       30,
		Email:     "a@x.com",
		Role:      "customer",
		Phone:     "555",
	}
}

func sampleOrder() models.Order {
	return models.Order{
		ID:          10,
		Name:        "Paint fence",
		Description: "Two coats, white",
		StartDate:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		Address:     "1 Main St",
		Price:       250.5,
		CustomerID:  1,
		ExecutorID:  2,
	}
}

func TestGORMRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMRepository[models.User](newTestDB(t))
	ctx := context.Background()

	user := sampleUser()
	require.NoError(t, repo.Create(ctx, &user))

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, *fetched)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{user}, all)
}

func TestGORMRepository_GetMissing(t *testing.T) {
	repo := repositories.NewGORMRepository[models.Offer](newTestDB(t))

	offer, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, offer)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMRepository_DuplicateCreate(t *testing.T) {
	repo := repositories.NewGORMRepository[models.User](newTestDB(t))
	ctx := context.Background()

	original := sampleUser()
	require.NoError(t, repo.Create(ctx, &original))

	duplicate := sampleUser()
	duplicate.FirstName = "Bob"
	err := repo.Create(ctx, &duplicate)
	assert.ErrorIs(t, err, repositories.ErrConflict)

	fetched, err := repo.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched.FirstName)
}

func TestGORMRepository_Replace(t *testing.T) {
	repo := repositories.NewGORMRepository[models.User](newTestDB(t))
	ctx := context.Background()

	user := sampleUser()
	require.NoError(t, repo.Create(ctx, &user))

	replacement := models.User{
		ID:        user.ID,
		FirstName: "Bea",
		LastName:  "Kim",
		Age:       0,
		Email:     "b@y.org",
		Role:      "executor",
		Phone:     "777",
	}
	require.NoError(t, repo.Replace(ctx, &replacement))

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, *fetched)

	missing := sampleUser()
	missing.ID = 99
	assert.ErrorIs(t, repo.Replace(ctx, &missing), repositories.ErrNotFound)
	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMRepository_Delete(t *testing.T) {
	repo := repositories.NewGORMRepository[models.User](newTestDB(t))
	ctx := context.Background()

	user := sampleUser()
	require.NoError(t, repo.Create(ctx, &user))

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// A second delete reports not found rather than failing differently.
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repositories.ErrNotFound)
}

func TestGORMRepository_OrderDates(t *testing.T) {
	repo := repositories.NewGORMRepository[models.Order](newTestDB(t))
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, repo.Create(ctx, &order))

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "6/1/2023", models.FormatDate(fetched.StartDate))
	assert.Equal(t, "6/15/2023", models.FormatDate(fetched.EndDate))
	assert.Equal(t, order.Price, fetched.Price)
	assert.Equal(t, order.CustomerID, fetched.CustomerID)
}
