package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"github.com/repairtrack/backend/internal/status"
)

// ErrValidation marks errors detected before any write. Wrapped errors carry
// the field detail.
var ErrValidation = errors.New("validation failed")

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// parseDate accepts "2006-01-02" or RFC 3339. Empty input yields a zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, validationError("invalid date %q", s)
}

// reportFromRequest validates the submitted fields and builds an unsaved
// Report. Required: customer name, phone number, problem description.
func reportFromRequest(req *dto.ReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, validationError("customer_name is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return nil, validationError("phone_number is required")
	}
	if strings.TrimSpace(req.ProblemDescription) == "" {
		return nil, validationError("problem_description is required")
	}

	st := req.Status
	if st == "" {
		st = status.Default
	} else if !status.IsValid(st) {
		return nil, validationError("unknown status %q", st)
	}

	dateGiven, err := parseDate(req.DateGiven)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		SerialNumber:       req.SerialNumber,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		PhoneNumber:        req.PhoneNumber,
		ProblemDescription: req.ProblemDescription,
		DateGiven:          dateGiven,
		Status:             st,
		InvoiceNumber:      req.InvoiceNumber,
		PartName:           req.PartName,
		PartNumber:         req.PartNumber,
		ShopName:           req.ShopName,
	}, nil
}
