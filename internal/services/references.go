package services

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// ErrInvalidReference is returned when a record points at a missing user or order.
var ErrInvalidReference = errors.New("invalid reference")

// OrderReferences requires the customer and executor of an order to exist.
func OrderReferences(users *ResourceManager[models.User]) ReferenceCheck[models.Order] {
	return func(ctx context.Context, order *models.Order) error {
		if err := requireExists(ctx, users, "customer_id", order.CustomerID); err != nil {
			return err
		}
		return requireExists(ctx, users, "executor_id", order.ExecutorID)
	}
}

// OfferReferences requires the order and executor of an offer to exist.
func OfferReferences(orders *ResourceManager[models.Order], users *ResourceManager[models.User]) ReferenceCheck[models.Offer] {
	return func(ctx context.Context, offer *models.Offer) error {
		if err := requireExists(ctx, orders, "order_id", offer.OrderID); err != nil {
			return err
		}
		return requireExists(ctx, users, "executor_id", offer.ExecutorID)
	}
}

func requireExists[T models.Record](ctx context.Context, target *ResourceManager[T], field string, id int) error {
	if _, err := target.Get(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s %d refers to a missing %s", ErrInvalidReference, field, id, target.Name())
		}
		return err
	}
	return nil
}
