package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RentalStatus string

const (
	RentalActive     RentalStatus = "ACTIVE"
	RentalEnded      RentalStatus = "ENDED"
	RentalTerminated RentalStatus = "TERMINATED"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalActive, RentalEnded, RentalTerminated:
		return true
	}
	return false
}

// Rental links one Property to one TenantProfile. A nil EndDate is open-ended.
type Rental struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	TenantID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StartDate    time.Time       `gorm:"not null;index" json:"start_date"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	MonthlyRent  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_rent"`
	Deposit      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"deposit"`
	Status       RentalStatus    `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	Property     *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenant       *TenantProfile  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	RentPayments []RentPayment   `gorm:"foreignKey:RentalID" json:"rent_payments,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Rental) TableName() string {
	return "rentals"
}

func (r *Rental) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	if r.Status == "" {
		r.Status = RentalActive
	}
	return nil
}
