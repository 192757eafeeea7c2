package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

type PermissionHandler struct {
	permissionService *services.PermissionService
}

func NewPermissionHandler(permissionService *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) List(c *fiber.Ctx) error {
	permissions, err := h.permissionService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"permissions": permissions}, "Permissions fetched successfully"))
}

func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}

	permission, err := h.permissionService.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(permission, "Permission created successfully"))
}

func (h *PermissionHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return badRequest(c, "Name cannot be blank")
	}

	permission, err := h.permissionService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(permission, "Permission updated successfully"))
}

func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.permissionService.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil, "Permission deleted successfully"))
}
