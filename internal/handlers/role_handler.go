package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

type RoleHandler struct {
	roleService *services.RoleService
}

func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.roleService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"roles": roles}, "Roles fetched successfully"))
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}

	role, err := h.roleService.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(role, "Role created successfully"))
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return badRequest(c, "Name cannot be blank")
	}

	role, err := h.roleService.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(role, "Role updated successfully"))
}

func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.roleService.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(nil, "Role deleted successfully"))
}

// AttachPermissions replaces the role's permission set wholesale. An empty
// id list is a validation failure, not a request to clear the set.
func (h *RoleHandler) AttachPermissions(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.AttachPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.PermissionIDs) == 0 {
		return badRequest(c, "At least one permission ID is required")
	}
	for _, pid := range req.PermissionIDs {
		if pid <= 0 {
			return badRequest(c, "Permission IDs must be positive integers")
		}
	}

	attached, err := h.roleService.AttachPermissions(id, req.PermissionIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"permissionIds": attached}, "Permissions attached successfully"))
}
