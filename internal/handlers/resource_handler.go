package handlers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"marketplace/internal/models"
	"marketplace/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// payload is a decoded request body that can be turned into a record.
type payload[T models.Record] interface {
	key() *int
	toModel(id int) (T, error)
}

// ResourceHandler exposes list, create, get, replace and delete over HTTP for one resource type.
type ResourceHandler[T models.Record, R payload[T]] struct {
	manager  *services.ResourceManager[T]
	validate *validator.Validate
	label    string
	path     string
}

func newResourceHandler[T models.Record, R payload[T]](manager *services.ResourceManager[T], label, path string) *ResourceHandler[T, R] {
	return &ResourceHandler[T, R]{
		manager:  manager,
		validate: newValidator(),
		label:    label,
		path:     path,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterRoutes registers the collection and item routes with the Fiber app.
func (h *ResourceHandler[T, R]) RegisterRoutes(router fiber.Router) {
	routes := router.Group(h.path)
	routes.Get("/", h.HandleList)
	routes.Post("/", h.HandleCreate)
	routes.Get("/:id", h.HandleGet)
	routes.Put("/:id", h.HandleReplace)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all records.
func (h *ResourceHandler[T, R]) HandleList(c *fiber.Ctx) error {
	records, err := h.manager.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// HandleGet retrieves a single record by its ID.
func (h *ResourceHandler[T, R]) HandleGet(c *fiber.Ctx) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}
	record, err := h.manager.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// HandleCreate creates a new record from the request body.
func (h *ResourceHandler[T, R]) HandleCreate(c *fiber.Ctx) error {
	req, err := h.decode(c)
	if err != nil {
		return err
	}
	id := req.key()
	if id == nil {
		return fieldError(h.label, "id", "Field 'id' failed on the 'required' tag")
	}
	record, err := req.toModel(*id)
	if err != nil {
		return err
	}
	if err := h.manager.Create(c.UserContext(), &record); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("%s with ID %d created", h.label, *id))
}

// HandleReplace overwrites every field of an existing record.
// The body may omit id; if present it must match the path.
func (h *ResourceHandler[T, R]) HandleReplace(c *fiber.Ctx) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}
	req, err := h.decode(c)
	if err != nil {
		return err
	}
	if bodyID := req.key(); bodyID != nil && *bodyID != id {
		return fieldError(h.label, "id", fmt.Sprintf("Field 'id' must match the path id %d", id))
	}
	record, err := req.toModel(id)
	if err != nil {
		return err
	}
	if err := h.manager.Replace(c.UserContext(), &record); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("%s with ID %d updated successfully", h.label, id))
}

// HandleDelete deletes a record by its ID.
func (h *ResourceHandler[T, R]) HandleDelete(c *fiber.Ctx) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}
	if err := h.manager.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("%s with ID %d deleted successfully", h.label, id))
}

func (h *ResourceHandler[T, R]) pathID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fieldError(h.label, "id", fmt.Sprintf("Path id %q is not an integer", c.Params("id")))
	}
	return id, nil
}

// decode reads the body regardless of Content-Type and validates it.
func (h *ResourceHandler[T, R]) decode(c *fiber.Ctx) (R, error) {
	var req R
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return req, decodeError(h.label, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return req, validationError(h.label, err)
	}
	return req, nil
}
