package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/pkg/jwt"
)

const principalKey = "principal"

// RequireAuth validates the Bearer token and stores the resulting Principal
// in the request context. The user document is re-checked so a deactivated
// account loses access immediately, not at token expiry.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid authorization format, use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}

		user, err := userRepo.FindByID(c.UserContext(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "user not found"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "user account is inactive"})
		}

		c.Locals(principalKey, model.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})

		return c.Next()
	}
}

// PrincipalFromCtx returns the Principal stored by RequireAuth.
func PrincipalFromCtx(c *fiber.Ctx) (model.Principal, bool) {
	p, ok := c.Locals(principalKey).(model.Principal)
	return p, ok
}
