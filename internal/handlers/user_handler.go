package handlers

import (
	"errors"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users repository.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Create handles POST /users. Duplicate emails are not rejected; sign-in
// inserts whatever profile the client sends.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if user.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}
	ack, err := h.users.Insert(c.Context(), &user)
	if err != nil {
		h.log.Error("user insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(ack)
}

// UpdateProfile handles PUT /users/update/:id. Any authenticated caller may
// update any id; role and status never travel with this route.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var profile models.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	ack, err := h.users.UpdateProfile(c.Context(), c.Params("id"), profile)
	if err != nil {
		return h.storeError(c, "user profile update failed", err)
	}
	return c.JSON(ack)
}

func (h *UserHandler) Block(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusBlocked)
}

func (h *UserHandler) Unblock(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusActive)
}

func (h *UserHandler) MakeVolunteer(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleVolunteer)
}

func (h *UserHandler) MakeDonor(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleDonor)
}

func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleAdmin)
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		h.log.Error("user list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(users)
}

// GetByEmail handles GET /users/data/:email. The path email must match the
// token email: this is a self-lookup route, even for admins.
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != c.Locals(middleware.LocalsEmail) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}
	user, err := h.users.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		h.log.Error("user fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(user)
}

// AdminFlag handles GET /users/admin/:email. Same self-email rule as
// GetByEmail, so an admin can only check itself.
func (h *UserHandler) AdminFlag(c *fiber.Ctx) error {
	user, err := h.selfUser(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}
	return c.JSON(fiber.Map{"isAdmin": user.Role == models.RoleAdmin})
}

// DonorFlag handles GET /users/donor/:email.
func (h *UserHandler) DonorFlag(c *fiber.Ctx) error {
	user, err := h.selfUser(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}
	return c.JSON(fiber.Map{"isDonor": user.Role == models.RoleDonor})
}

var errNotSelf = errors.New("path email does not match token email")

func (h *UserHandler) selfUser(c *fiber.Ctx) (*models.User, error) {
	if c.Params("email") != c.Locals(middleware.LocalsEmail) {
		return nil, errNotSelf
	}
	user, ok := c.Locals(middleware.LocalsUser).(*models.User)
	if !ok || user == nil {
		return nil, errNotSelf
	}
	return user, nil
}

func (h *UserHandler) setStatus(c *fiber.Ctx, status string) error {
	ack, err := h.users.SetStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return h.storeError(c, "user status update failed", err)
	}
	return c.JSON(ack)
}

func (h *UserHandler) setRole(c *fiber.Ctx, role string) error {
	ack, err := h.users.SetRole(c.Context(), c.Params("id"), role)
	if err != nil {
		return h.storeError(c, "user role update failed", err)
	}
	return c.JSON(ack)
}

func (h *UserHandler) storeError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
