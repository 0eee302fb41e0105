package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookstore-inventory/internal/middleware"
	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns all users (administrators only)
// GET /api/auth
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return respondError(c, model.ErrUnauthorized)
	}

	users, err := h.userService.GetAllUsers(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser returns a single user (administrator or self)
// GET /api/auth/:userId
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return respondError(c, model.ErrUnauthorized)
	}

	user, err := h.userService.GetUserByID(c.UserContext(), p, c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles administrative user creation
// POST /api/auth
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return respondError(c, model.ErrUnauthorized)
	}

	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	user, err := h.userService.CreateUser(c.UserContext(), p, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser applies a partial update under the authorization policy
// PUT /api/auth/:userId
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return respondError(c, model.ErrUnauthorized)
	}

	var patch model.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	user, err := h.userService.UpdateUser(c.UserContext(), p, c.Params("userId"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeactivateUser soft-deletes a user (administrators only)
// PUT /api/auth/deactivate/:userId
func (h *UserHandler) DeactivateUser(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return respondError(c, model.ErrUnauthorized)
	}

	if err := h.userService.DeactivateUser(c.UserContext(), p, c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
