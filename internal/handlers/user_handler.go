package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns regular users only; staff accounts live under /admins.
func (h *UserHandler) List(c *fiber.Ctx) error {
	params, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.userService.List(params, []int64{models.RoleUser})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"users":      page.Items,
		"pagination": page.Meta,
	}, "Users fetched successfully"))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(user, "User fetched successfully"))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Empty() {
		return badRequest(c, "At least one field must be provided for update")
	}
	if req.Status != nil && (*req.Status < models.StatusInactive || *req.Status > models.StatusBanned) {
		return badRequest(c, "Status must be 0, 1, or 2")
	}

	user, err := h.userService.UpdateByID(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(user, "User updated successfully"))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.userService.DeleteByID(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil, "User deleted successfully"))
}

func (h *UserHandler) ListPurchases(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	params, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.userService.ListPurchases(id, params)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"purchases":  page.Items,
		"pagination": page.Meta,
	}, "Purchases fetched successfully"))
}

func (h *UserHandler) ListDevices(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	devices, err := h.userService.ListDevices(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"devices": devices}, "Devices fetched successfully"))
}
