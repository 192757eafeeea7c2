package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

type AdminHandler struct {
	userService *services.UserService
}

func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	params, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.userService.List(params, models.AdminRoleIDs())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"admins":     page.Items,
		"pagination": page.Meta,
	}, "Admins fetched successfully"))
}

func (h *AdminHandler) Count(c *fiber.Ctx) error {
	counts, err := h.userService.CountAdmins(models.AdminRoleIDs())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.Success(counts, "Admin counts retrieved successfully"))
}

func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return badRequest(c, "A valid email is required")
	}
	if len(req.FirstName) < 2 || len(req.LastName) < 2 {
		return badRequest(c, "First name and last name must be at least 2 characters long")
	}
	if req.RoleID != nil && !isAdminRole(*req.RoleID) {
		return badRequest(c, "role_id must be an admin role")
	}

	admin, err := h.userService.CreateAdmin(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(admin, "Admin created successfully"))
}

func isAdminRole(id int64) bool {
	for _, roleID := range models.AdminRoleIDs() {
		if roleID == id {
			return true
		}
	}
	return false
}
