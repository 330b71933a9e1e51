package handlers

import (
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/auth"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	tokens *auth.TokenManager
	log    *zap.Logger
}

func NewAuthHandler(tokens *auth.TokenManager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log}
}

type tokenReq struct {
	Email string `json:"email"`
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req tokenReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}
	token, err := h.tokens.Generate(req.Email)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{"token": token})
}
