package models

import (
	"time"

	"github.com/google/uuid"
)

// PendingReport is a client submission waiting for review. Its id and
// timestamp belong to the queue; a fresh Report id is assigned on approval.
type PendingReport struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmitterEmail     string    `gorm:"not null;size:255;index" json:"submitter_email"`
	SerialNumber       string    `gorm:"size:100" json:"serial_number"`
	CustomerName       string    `gorm:"not null;size:255" json:"customer_name"`
	CustomerEmail      string    `gorm:"size:255" json:"customer_email"`
	PhoneNumber        string    `gorm:"not null;size:50" json:"phone_number"`
	ProblemDescription string    `gorm:"not null;type:text" json:"problem_description"`
	DateGiven          time.Time `gorm:"type:date" json:"date_given"`
	Status             string    `gorm:"not null;default:'Pending Diagnosis';size:50" json:"status"`
	InvoiceNumber      string    `gorm:"size:100" json:"invoice_number,omitempty"`
	PartName           string    `gorm:"size:255" json:"part_name,omitempty"`
	PartNumber         string    `gorm:"size:100" json:"part_number,omitempty"`
	ShopName           string    `gorm:"size:255" json:"shop_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
