package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AgreementStatus string

const (
	AgreementDraft      AgreementStatus = "DRAFT"
	AgreementActive     AgreementStatus = "ACTIVE"
	AgreementExpired    AgreementStatus = "EXPIRED"
	AgreementTerminated AgreementStatus = "TERMINATED"
)

func (s AgreementStatus) Valid() bool {
	switch s {
	case AgreementDraft, AgreementActive, AgreementExpired, AgreementTerminated:
		return true
	}
	return false
}

// CanTransition follows DRAFT -> ACTIVE -> {EXPIRED, TERMINATED}.
func (s AgreementStatus) CanTransition(next AgreementStatus) bool {
	switch s {
	case AgreementDraft:
		return next == AgreementActive
	case AgreementActive:
		return next == AgreementExpired || next == AgreementTerminated
	}
	return false
}

// RentAgreement is keyed by rental. Terms is a template whose {{name}}
// placeholders are filled from TemplateVariables.
type RentAgreement struct {
	ID                uuid.UUID                            `gorm:"type:uuid;primaryKey" json:"id"`
	RentalID          uuid.UUID                            `gorm:"type:uuid;not null;index" json:"rental_id"`
	TemplateName      string                               `gorm:"size:255" json:"template_name"`
	StartDate         time.Time                            `gorm:"not null" json:"start_date"`
	EndDate           time.Time                            `gorm:"not null" json:"end_date"`
	RentAmount        decimal.Decimal                      `gorm:"type:decimal(12,2);not null" json:"rent_amount"`
	SecurityDeposit   decimal.Decimal                      `gorm:"type:decimal(12,2);not null;default:0" json:"security_deposit"`
	Terms             string                               `gorm:"type:text;not null" json:"terms"`
	TemplateVariables datatypes.JSONType[map[string]string] `json:"template_variables"`
	Status            AgreementStatus                      `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	Version           int                                  `gorm:"not null;default:1" json:"version"`
	Rental            *Rental                              `gorm:"foreignKey:RentalID" json:"rental,omitempty"`
	CreatedAt         time.Time                            `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time                            `json:"updated_at"`
}

func (RentAgreement) TableName() string {
	return "rent_agreements"
}

func (a *RentAgreement) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	if a.Status == "" {
		a.Status = AgreementDraft
	}
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}

// Variables returns the template variables, never nil.
func (a *RentAgreement) Variables() map[string]string {
	vars := a.TemplateVariables.Data()
	if vars == nil {
		return map[string]string{}
	}
	return vars
}
