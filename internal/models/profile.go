package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

func (s KYCStatus) Valid() bool {
	switch s {
	case KYCPending, KYCApproved, KYCRejected:
		return true
	}
	return false
}

type LandlordProfile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PhoneNumber  string     `gorm:"size:50" json:"phone_number"`
	BusinessName string     `gorm:"size:255" json:"business_name"`
	User         *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Properties   []Property `gorm:"foreignKey:LandlordID" json:"properties,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (LandlordProfile) TableName() string {
	return "landlord_profiles"
}

func (p *LandlordProfile) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

type TenantProfile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PhoneNumber string     `gorm:"size:50" json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Occupation  string     `gorm:"size:255" json:"occupation"`
	KYCStatus   KYCStatus  `gorm:"size:20;not null;default:'PENDING'" json:"kyc_status"`
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rentals     []Rental   `gorm:"foreignKey:TenantID" json:"rentals,omitempty"`
	Documents   []Document `gorm:"foreignKey:TenantID" json:"documents,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (TenantProfile) TableName() string {
	return "tenant_profiles"
}

func (p *TenantProfile) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	if p.KYCStatus == "" {
		p.KYCStatus = KYCPending
	}
	return nil
}
