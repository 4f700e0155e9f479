package middleware

import (
	"errors"
	"log"
	"unicode"
	"unicode/utf8"

	"marketplace/internal/handlers"
	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the Fiber error handler. It maps every error returned by
// a handler to a status code and a JSON body with a human-readable message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, body := Classify(err)
	log.Printf("%s %s failed with %d: %v", c.Method(), c.OriginalURL(), status, err)
	return c.Status(status).JSON(body)
}

// Classify returns the status code and response body for err.
func Classify(err error) (int, fiber.Map) {
	var parseErr *handlers.ParseError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &parseErr):
		body := fiber.Map{
			"message": parseErr.Message,
			"error":   parseErr.Error(),
		}
		if len(parseErr.Fields) > 0 {
			body["errors"] = parseErr.Fields
		}
		return fiber.StatusBadRequest, body
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound, fiber.Map{
			"message": capitalize(err.Error()),
		}
	case errors.Is(err, repositories.ErrConflict):
		return fiber.StatusConflict, fiber.Map{
			"message": "Record with this ID already exists",
			"error":   err.Error(),
		}
	case errors.Is(err, services.ErrInvalidReference):
		return fiber.StatusUnprocessableEntity, fiber.Map{
			"message": "Referenced record does not exist",
			"error":   err.Error(),
		}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiber.Map{
			"message": fiberErr.Message,
		}
	default:
		return fiber.StatusInternalServerError, fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		}
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
