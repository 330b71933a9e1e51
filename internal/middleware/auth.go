package middleware

import (
	"errors"
	"strings"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/auth"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	LocalsEmail = "email"
	LocalsUser  = "currentUser"
)

// RequireAuth verifies the bearer token and resolves the user record once,
// caching it in Locals for the role guards below. A valid token whose email
// has no user document still passes; role guards reject it with 403.
func RequireAuth(tm *auth.TokenManager, users repository.UserRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}

		claims, err := tm.Parse(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals(LocalsEmail, claims.Email)

		user, err := users.GetByEmail(c.Context(), claims.Email)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				log.Error("user lookup failed", zap.String("email", claims.Email), zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		} else {
			c.Locals(LocalsUser, user)
		}
		return c.Next()
	}
}

// RequireRole gates on the user resolved by RequireAuth. It must run after
// RequireAuth in the chain.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(LocalsUser).(*models.User)
		if !ok || user == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}
}

func RequireAdmin() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

func RequireDonor() fiber.Handler {
	return RequireRole(models.RoleDonor)
}

func RequireDonorOrAdmin() fiber.Handler {
	return RequireRole(models.RoleDonor, models.RoleAdmin)
}

func RequireVolunteerOrAdmin() fiber.Handler {
	return RequireRole(models.RoleVolunteer, models.RoleAdmin)
}
