package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"gorm.io/gorm"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

func (s *PurchaseService) Add(req *dto.PurchaseRequest) (*models.Purchase, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, validationError("customer_name is required")
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	purchase := models.Purchase{
		ID:                  uuid.New(),
		InvoiceNumber:       req.InvoiceNumber,
		ProductName:         req.ProductName,
		ProductSerialNumber: req.ProductSerialNumber,
		ShopName:            req.ShopName,
		PurchaseDate:        purchaseDate,
		CustomerName:        req.CustomerName,
	}

	if err := s.db.Create(&purchase).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	return &purchase, nil
}

// List returns purchases newest first by purchase date. A non-empty
// customerName restricts the result to that customer's history.
func (s *PurchaseService) List(customerName string) ([]models.Purchase, error) {
	query := s.db.Model(&models.Purchase{})
	if customerName != "" {
		query = query.Where("customer_name = ?", customerName)
	}

	var purchases []models.Purchase
	if err := query.Order("purchase_date DESC, id DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (s *PurchaseService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Purchase{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}
