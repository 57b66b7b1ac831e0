package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentIDProof         DocumentType = "ID_PROOF"
	DocumentAddressProof    DocumentType = "ADDRESS_PROOF"
	DocumentIncomeProof     DocumentType = "INCOME_PROOF"
	DocumentEmploymentProof DocumentType = "EMPLOYMENT_PROOF"
	DocumentOther           DocumentType = "OTHER"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentIDProof, DocumentAddressProof, DocumentIncomeProof, DocumentEmploymentProof, DocumentOther:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "PENDING"
	DocumentApproved DocumentStatus = "APPROVED"
	DocumentRejected DocumentStatus = "REJECTED"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentApproved, DocumentRejected:
		return true
	}
	return false
}

// Document is a KYC upload. Only the file's metadata and URL are stored.
type Document struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Type            DocumentType   `gorm:"size:30;not null" json:"type"`
	FileName        string         `gorm:"size:255;not null" json:"file_name"`
	FileURL         string         `gorm:"type:text;not null" json:"file_url"`
	FileSize        int64          `json:"file_size"`
	Status          DocumentStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	RejectionReason *string        `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	Tenant          *TenantProfile `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	if d.Status == "" {
		d.Status = DocumentPending
	}
	return nil
}
