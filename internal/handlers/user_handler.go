package handlers

import (
	"marketplace/internal/models"
	"marketplace/internal/services"
)

// UserRequest is the body accepted by POST /users and PUT /users/:id.
type UserRequest struct {
	ID        *int    `json:"id" validate:"omitempty,gt=0"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Age       *int    `json:"age" validate:"required,gte=0"`
	Email     *string `json:"email" validate:"required,email"`
	Role      *string `json:"role" validate:"required"`
	Phone     *string `json:"phone" validate:"required"`
}

func (r UserRequest) key() *int { return r.ID }

func (r UserRequest) toModel(id int) (models.User, error) {
	return models.User{
		ID:        id,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Age:       *r.Age,
		Email:     *r.Email,
		Role:      *r.Role,
		Phone:     *r.Phone,
	}, nil
}

// UserHandler handles HTTP requests for users.
type UserHandler = ResourceHandler[models.User, UserRequest]

// NewUserHandler creates a new UserHandler.
func NewUserHandler(manager *services.ResourceManager[models.User]) *UserHandler {
	return newResourceHandler[models.User, UserRequest](manager, "User", "/users")
}
