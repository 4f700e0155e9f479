package handlers

import (
	"marketplace/internal/models"
	"marketplace/internal/services"
)

// OrderRequest is the body accepted by POST /orders and PUT /orders/:id.
// Dates arrive as month/day/year strings, e.g. "6/15/2023".
type OrderRequest struct {
	ID          *int     `json:"id" validate:"omitempty,gt=0"`
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	StartDate   *string  `json:"start_date" validate:"required"`
	EndDate     *string  `json:"end_date" validate:"required"`
	Address     *string  `json:"address" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CustomerID  *int     `json:"customer_id" validate:"required"`
	ExecutorID  *int     `json:"executor_id" validate:"required"`
}

func (r OrderRequest) key() *int { return r.ID }

func (r OrderRequest) toModel(id int) (models.Order, error) {
	start, err := models.ParseDate(*r.StartDate)
	if err != nil {
		return models.Order{}, fieldError("Order", "start_date", err.Error())
	}
	end, err := models.ParseDate(*r.EndDate)
	if err != nil {
		return models.Order{}, fieldError("Order", "end_date", err.Error())
	}
	return models.Order{
		ID:          id,
		Name:        *r.Name,
		Description: *r.Description,
		StartDate:   start,
		EndDate:     end,
		Address:     *r.Address,
		Price:       *r.Price,
		CustomerID:  *r.CustomerID,
		ExecutorID:  *r.ExecutorID,
	}, nil
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler = ResourceHandler[models.Order, OrderRequest]

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(manager *services.ResourceManager[models.Order]) *OrderHandler {
	return newResourceHandler[models.Order, OrderRequest](manager, "Order", "/orders")
}
