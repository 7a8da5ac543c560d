package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is a standalone purchase record keyed by customer name for
// history lookups.
type Purchase struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber       string    `gorm:"size:100" json:"invoice_number"`
	ProductName         string    `gorm:"size:255" json:"product_name"`
	ProductSerialNumber string    `gorm:"size:100" json:"product_serial_number"`
	ShopName            string    `gorm:"size:255" json:"shop_name"`
	PurchaseDate        time.Time `gorm:"type:date" json:"purchase_date"`
	CustomerName        string    `gorm:"not null;size:255;index" json:"customer_name"`
	CreatedAt           time.Time `json:"created_at"`
}
