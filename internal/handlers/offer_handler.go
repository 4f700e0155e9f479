package handlers

import (
	"marketplace/internal/models"
	"marketplace/internal/services"
)

// OfferRequest is the body accepted by POST /offers and PUT /offers/:id.
type OfferRequest struct {
	ID         *int `json:"id" validate:"omitempty,gt=0"`
	OrderID    *int `json:"order_id" validate:"required"`
	ExecutorID *int `json:"executor_id" validate:"required"`
}

func (r OfferRequest) key() *int { return r.ID }

func (r OfferRequest) toModel(id int) (models.Offer, error) {
	return models.Offer{
		ID:         id,
		OrderID:    *r.OrderID,
		ExecutorID: *r.ExecutorID,
	}, nil
}

// OfferHandler handles HTTP requests for offers.
type OfferHandler = ResourceHandler[models.Offer, OfferRequest]

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(manager *services.ResourceManager[models.Offer]) *OfferHandler {
	return newResourceHandler[models.Offer, OfferRequest](manager, "Offer", "/offers")
}
