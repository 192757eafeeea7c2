package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/pagination"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

// pageParams reads cursor/limit/order_by/order_by_direction from the query
// string. Only the cursor can fail here; sort validation belongs to the
// pagination engine.
func pageParams(c *fiber.Ctx) (pagination.Params, error) {
	params := pagination.Params{
		Limit:     c.QueryInt("limit", 0),
		OrderBy:   c.Query("order_by", "id"),
		Direction: pagination.Direction(c.Query("order_by_direction", "asc")),
	}
	if raw := c.Query("cursor"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, errors.New("cursor must be an integer id")
		}
		params.Cursor = &id
	}
	return params, nil
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// serviceError maps typed service and pagination errors to status codes.
// Anything unrecognized is an infrastructure failure: logged, hidden
// behind a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var badColumn *pagination.InvalidSortColumnError
	var badDirection *pagination.InvalidSortDirectionError

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.As(err, &badColumn), errors.As(err, &badDirection):
		return badRequest(c, err.Error())
	default:
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
