package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"github.com/repairtrack/backend/internal/status"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// searchClause ORs a case-insensitive substring match across the searchable
// report fields. LOWER(...) LIKE keeps the query portable across backends.
const searchClause = "LOWER(serial_number) LIKE ? OR LOWER(customer_name) LIKE ? OR " +
	"LOWER(phone_number) LIKE ? OR LOWER(part_number) LIKE ? OR " +
	"LOWER(part_name) LIKE ? OR LOWER(status) LIKE ?"

// listOrder sorts newest first. The id tiebreak keeps page boundaries stable
// when timestamps collide.
const listOrder = "created_at DESC, id DESC"

type ReportService struct {
	db           *gorm.DB
	strictStatus bool
}

func NewReportService(db *gorm.DB, strictStatus bool) *ReportService {
	return &ReportService{db: db, strictStatus: strictStatus}
}

// List returns one page of reports ordered by creation time descending,
// optionally filtered by a search term. A page shorter than pageSize means no
// further pages exist.
func (s *ReportService) List(search string, page, pageSize int) ([]models.Report, int64, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	query := s.db.Model(&models.Report{})
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where(searchClause, term, term, term, term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var reports []models.Report
	if err := query.Order(listOrder).Limit(pageSize).Offset(page * pageSize).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

func (s *ReportService) Get(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) Create(req *dto.ReportRequest) (*models.Report, error) {
	report, err := reportFromRequest(req)
	if err != nil {
		return nil, err
	}
	report.ID = uuid.New()

	if err := s.db.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// Update replaces every mutable field of the report. Identity and creation
// timestamp are preserved.
func (s *ReportService) Update(id uuid.UUID, req *dto.ReportRequest) (*models.Report, error) {
	var existing models.Report
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}

	updated, err := reportFromRequest(req)
	if err != nil {
		return nil, err
	}

	if s.strictStatus && !status.CanTransition(existing.Status, updated.Status) {
		return nil, validationError("status cannot move from %q to %q", existing.Status, updated.Status)
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.db.Save(updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return updated, nil
}

// Delete is permanent; there is no soft-delete or recovery path for reports.
func (s *ReportService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// ExportAll returns every report ordered by creation time descending,
// independent of pagination.
func (s *ReportService) ExportAll() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Order(listOrder).Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to export reports: %w", err)
	}
	return reports, nil
}

// ImportAll validates every record, strips identity and timestamps so the
// store assigns fresh ones, and inserts the batch in one transaction. Any
// rejection rolls back the whole import.
func (s *ReportService) ImportAll(records []models.Report) (int, error) {
	fresh := make([]models.Report, 0, len(records))
	for i := range records {
		r := records[i]
		if strings.TrimSpace(r.CustomerName) == "" {
			return 0, validationError("record %d: customer_name is required", i)
		}
		if strings.TrimSpace(r.PhoneNumber) == "" {
			return 0, validationError("record %d: phone_number is required", i)
		}
		if strings.TrimSpace(r.ProblemDescription) == "" {
			return 0, validationError("record %d: problem_description is required", i)
		}
		if r.Status == "" {
			r.Status = status.Default
		} else if !status.IsValid(r.Status) {
			return 0, validationError("record %d: unknown status %q", i, r.Status)
		}
		r.ID = uuid.New()
		r.CreatedAt = time.Time{}
		r.UpdatedAt = time.Time{}
		fresh = append(fresh, r)
	}

	if len(fresh) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(fresh, 100).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import reports: %w", err)
	}
	return len(fresh), nil
}

// ClearAll deletes every report. Irreversible.
func (s *ReportService) ClearAll() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&models.Report{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear reports: %w", result.Error)
	}
	return result.RowsAffected, nil
}
