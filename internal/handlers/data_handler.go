package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"github.com/repairtrack/backend/internal/services"
)

// DataHandler covers bulk export, import, and clear of the report store.
type DataHandler struct {
	reportService *services.ReportService
}

func NewDataHandler(reportService *services.ReportService) *DataHandler {
	return &DataHandler{reportService: reportService}
}

// Export emits every report as a JSON array, newest first.
func (h *DataHandler) Export(c *fiber.Ctx) error {
	reports, err := h.reportService.ExportAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export reports",
		})
	}
	return c.JSON(reports)
}

// Import accepts the export shape. Identity and timestamp fields in the
// document are ignored; the store assigns fresh ones.
func (h *DataHandler) Import(c *fiber.Ctx) error {
	var records []models.Report
	if err := json.Unmarshal(c.Body(), &records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Imported data must be a JSON array of reports",
		})
	}

	count, err := h.reportService.ImportAll(records)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to import reports",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ImportResponse{Imported: count})
}

// Clear wipes the report store. Irreversible.
func (h *DataHandler) Clear(c *fiber.Ctx) error {
	deleted, err := h.reportService.ClearAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear reports",
		})
	}

	slog.Info("report store cleared", "deleted", deleted)
	return c.JSON(fiber.Map{"deleted": deleted})
}
