package handlers

import (
	"errors"
	"strconv"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const recentLimit = 3

type DonationHandler struct {
	donations repository.DonationRepository
	log       *zap.Logger
}

func NewDonationHandler(donations repository.DonationRepository, log *zap.Logger) *DonationHandler {
	return &DonationHandler{donations: donations, log: log}
}

// Create handles POST /donation-requests. Open route, no auth.
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var req models.DonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.RequesterEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "requester_email is required"})
	}
	ack, err := h.donations.Insert(c.Context(), &req)
	if err != nil {
		h.log.Error("donation request insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(ack)
}

// List handles GET /donation-requests. Still open, kept from the earliest
// version of the API.
func (h *DonationHandler) List(c *fiber.Ctx) error {
	requests, err := h.donations.List(c.Context())
	if err != nil {
		h.log.Error("donation request list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(requests)
}

// GetByID handles GET /donation-requests/:id. The error bodies here are
// load-bearing: the frontend matches on them.
func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	req, err := h.donations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		default:
			h.log.Error("donation request fetch failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}
	return c.JSON(req)
}

type assignReq struct {
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
}

// Assign handles PUT /donation-requests/inprogress/:id. Any authenticated
// user may accept any request; the current status is not checked.
func (h *DonationHandler) Assign(c *fiber.Ctx) error {
	var req assignReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	ack, err := h.donations.Assign(c.Context(), c.Params("id"), req.DonorName, req.DonorEmail)
	if err != nil {
		return h.storeError(c, "donation request assign failed", err)
	}
	return c.JSON(ack)
}

// MarkDone handles PATCH /donation-requests/patch-done/:id.
func (h *DonationHandler) MarkDone(c *fiber.Ctx) error {
	return h.setStatus(c, models.RequestDone)
}

// MarkCancelled handles PATCH /donation-requests/patch-cancel/:id.
func (h *DonationHandler) MarkCancelled(c *fiber.Ctx) error {
	return h.setStatus(c, models.RequestCancelled)
}

// Delete handles DELETE /donation-requests/delete/:id.
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	ack, err := h.donations.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, "donation request delete failed", err)
	}
	return c.JSON(ack)
}

// Update handles PUT /donation-requests/update/:id. Only the descriptive
// fields are replaced; status and donor fields stay untouched.
func (h *DonationHandler) Update(c *fiber.Ctx) error {
	var details models.DonationDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	ack, err := h.donations.Replace(c.Context(), c.Params("id"), details)
	if err != nil {
		return h.storeError(c, "donation request update failed", err)
	}
	return c.JSON(ack)
}

// ListMine handles GET /user/donation-requests for donors: their own
// requests, optional status filter, paginated.
func (h *DonationHandler) ListMine(c *fiber.Ctx) error {
	page, size, err := pagination(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pagination"})
	}
	email := c.Query("email")
	if email == "" {
		email, _ = c.Locals(middleware.LocalsEmail).(string)
	}
	requests, err := h.donations.ListByRequester(c.Context(), email, c.Query("status"), page, size)
	if err != nil {
		h.log.Error("donation request list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(requests)
}

// RecentMine handles GET /user/donation-requests/recent: the caller's three
// newest requests by creation_time.
func (h *DonationHandler) RecentMine(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email, _ = c.Locals(middleware.LocalsEmail).(string)
	}
	requests, err := h.donations.RecentByRequester(c.Context(), email, recentLimit)
	if err != nil {
		h.log.Error("recent donation requests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(requests)
}

// CountMine handles GET /user/donation-requests/count.
func (h *DonationHandler) CountMine(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email, _ = c.Locals(middleware.LocalsEmail).(string)
	}
	count, err := h.donations.CountByRequester(c.Context(), email, c.Query("status"))
	if err != nil {
		h.log.Error("donation request count failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{"count": count})
}

// ListAll handles GET /admin/donation-requests for volunteers and admins.
func (h *DonationHandler) ListAll(c *fiber.Ctx) error {
	page, size, err := pagination(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pagination"})
	}
	requests, err := h.donations.ListPaged(c.Context(), c.Query("status"), page, size)
	if err != nil {
		h.log.Error("donation request list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(requests)
}

// CountAll handles GET /admin/donation-requests/count.
func (h *DonationHandler) CountAll(c *fiber.Ctx) error {
	count, err := h.donations.Count(c.Context(), c.Query("status"))
	if err != nil {
		h.log.Error("donation request count failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *DonationHandler) setStatus(c *fiber.Ctx, status string) error {
	ack, err := h.donations.SetStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return h.storeError(c, "donation request status update failed", err)
	}
	return c.JSON(ack)
}

func (h *DonationHandler) storeError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request id"})
	}
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// pagination reads page and size query ints. skip = page*size, limit = size.
func pagination(c *fiber.Ctx) (int64, int64, error) {
	page, err := strconv.ParseInt(c.Query("page", "0"), 10, 64)
	if err != nil || page < 0 {
		return 0, 0, errors.New("invalid page")
	}
	size, err := strconv.ParseInt(c.Query("size", "10"), 10, 64)
	if err != nil || size < 0 {
		return 0, 0, errors.New("invalid size")
	}
	return page, size, nil
}
