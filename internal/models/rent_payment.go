package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

// CanTransition reports whether a payment may move from s to next.
// PAID is terminal; OVERDUE may still be paid.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentPaid || next == PaymentOverdue
	case PaymentOverdue:
		return next == PaymentPaid
	}
	return false
}

type RentPayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RentalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"rental_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate       time.Time       `gorm:"not null;index" json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	Status        PaymentStatus   `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`
	TransactionID string          `gorm:"size:255" json:"transaction_id"`
	Rental        *Rental         `gorm:"foreignKey:RentalID" json:"rental,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (RentPayment) TableName() string {
	return "rent_payments"
}

func (p *RentPayment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}
