package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/auth"
	"github.com/repairtrack/backend/internal/config"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/services"
)

type PendingHandler struct {
	pendingService *services.PendingService
	cfg            *config.Config
}

func NewPendingHandler(pendingService *services.PendingService, cfg *config.Config) *PendingHandler {
	return &PendingHandler{pendingService: pendingService, cfg: cfg}
}

// Submit queues a report on behalf of the authenticated client. The
// submitter email comes from the token, never the body.
func (h *PendingHandler) Submit(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	pending, err := h.pendingService.Submit(email, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(pending)
}

// List is the admin view of the queue, optionally filtered by submitter.
func (h *PendingHandler) List(c *fiber.Ctx) error {
	page, pageSize := h.pageParams(c)
	submitter := c.Query("submitter_email", "")

	pending, total, err := h.pendingService.List(submitter, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pending reports",
		})
	}

	return c.JSON(fiber.Map{
		"pending_reports": pending,
		"total":           total,
		"page":            page,
		"page_size":       pageSize,
		"has_more":        len(pending) == pageSize,
	})
}

// ListMine is the client's personal view: always filtered to the caller.
func (h *PendingHandler) ListMine(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page, pageSize := h.pageParams(c)
	pending, total, err := h.pendingService.List(email, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pending reports",
		})
	}

	return c.JSON(fiber.Map{
		"pending_reports": pending,
		"total":           total,
		"page":            page,
		"page_size":       pageSize,
		"has_more":        len(pending) == pageSize,
	})
}

func (h *PendingHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid pending report ID",
		})
	}

	report, err := h.pendingService.Approve(id)
	if err != nil {
		if errors.Is(err, services.ErrPendingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *PendingHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid pending report ID",
		})
	}

	if err := h.pendingService.Reject(id); err != nil {
		if errors.Is(err, services.ErrPendingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reject report",
		})
	}

	return c.JSON(fiber.Map{"message": "Report rejected"})
}

func (h *PendingHandler) pageParams(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", strconv.Itoa(h.cfg.DefaultPageSize)))
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = h.cfg.DefaultPageSize
	}
	if pageSize > h.cfg.MaxPageSize {
		pageSize = h.cfg.MaxPageSize
	}
	return page, pageSize
}
