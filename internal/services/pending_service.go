package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"gorm.io/gorm"
)

var ErrPendingNotFound = errors.New("pending report not found")

// PendingService owns the staging queue of client submissions and the
// approve/reject moderation workflow.
type PendingService struct {
	db *gorm.DB
}

func NewPendingService(db *gorm.DB) *PendingService {
	return &PendingService{db: db}
}

// Submit validates the submission and stores it in the queue together with
// the submitter's email. The queue id is distinct from the report id-space.
func (s *PendingService) Submit(submitterEmail string, req *dto.ReportRequest) (*models.PendingReport, error) {
	if submitterEmail == "" {
		return nil, validationError("submitter email is required")
	}

	report, err := reportFromRequest(req)
	if err != nil {
		return nil, err
	}

	pending := models.PendingReport{
		ID:                 uuid.New(),
		SubmitterEmail:     submitterEmail,
		SerialNumber:       report.SerialNumber,
		CustomerName:       report.CustomerName,
		CustomerEmail:      report.CustomerEmail,
		PhoneNumber:        report.PhoneNumber,
		ProblemDescription: report.ProblemDescription,
		DateGiven:          report.DateGiven,
		Status:             report.Status,
		InvoiceNumber:      report.InvoiceNumber,
		PartName:           report.PartName,
		PartNumber:         report.PartNumber,
		ShopName:           report.ShopName,
	}

	if err := s.db.Create(&pending).Error; err != nil {
		return nil, fmt.Errorf("failed to submit pending report: %w", err)
	}
	return &pending, nil
}

// List pages through the queue newest first. A non-empty submitterEmail
// restricts the result to that submitter's entries (the client's own view).
func (s *PendingService) List(submitterEmail string, page, pageSize int) ([]models.PendingReport, int64, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	query := s.db.Model(&models.PendingReport{})
	if submitterEmail != "" {
		query = query.Where("submitter_email = ?", submitterEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pending reports: %w", err)
	}

	var pending []models.PendingReport
	if err := query.Order(listOrder).Limit(pageSize).Offset(page * pageSize).Find(&pending).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pending reports: %w", err)
	}
	return pending, total, nil
}

// Approve promotes a pending entry into the authoritative store. The insert
// and the queue delete run in one transaction: an insert failure rolls back
// and leaves the pending entry untouched, so a submission is never lost. The
// promoted report gets a fresh id and timestamp; the queue id is not reused.
func (s *PendingService) Approve(id uuid.UUID) (*models.Report, error) {
	var pending models.PendingReport
	if err := s.db.First(&pending, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingNotFound
		}
		return nil, fmt.Errorf("failed to fetch pending report: %w", err)
	}

	report := models.Report{
		ID:                 uuid.New(),
		SerialNumber:       pending.SerialNumber,
		CustomerName:       pending.CustomerName,
		CustomerEmail:      pending.CustomerEmail,
		PhoneNumber:        pending.PhoneNumber,
		ProblemDescription: pending.ProblemDescription,
		DateGiven:          pending.DateGiven,
		Status:             pending.Status,
		InvoiceNumber:      pending.InvoiceNumber,
		PartName:           pending.PartName,
		PartNumber:         pending.PartNumber,
		ShopName:           pending.ShopName,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("failed to promote report: %w", err)
		}
		return tx.Delete(&models.PendingReport{}, "id = ?", pending.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Reject discards a pending entry outright. No audit record is kept.
func (s *PendingService) Reject(id uuid.UUID) error {
	result := s.db.Delete(&models.PendingReport{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to reject pending report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPendingNotFound
	}
	return nil
}
