package services

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewDocumentService(db *gorm.DB, authz *access.Authorizer) *DocumentService {
	return &DocumentService{db: db, authz: authz}
}

func (s *DocumentService) List(p access.Principal, f filter.DocumentFilter) ([]models.Document, dto.DocumentSummary, error) {
	scope, err := s.authz.Scope(p, access.ResourceDocument, access.ActionRead)
	if err != nil {
		return nil, dto.DocumentSummary{}, err
	}

	documents := []models.Document{}
	err = s.db.Preload("Tenant.User").
		Scopes(scope, f.Apply).
		Order("documents.created_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, dto.DocumentSummary{}, err
	}

	summary := dto.DocumentSummary{TotalCount: len(documents)}
	for _, d := range documents {
		switch d.Status {
		case models.DocumentPending:
			summary.PendingCount++
		case models.DocumentApproved:
			summary.ApprovedCount++
		case models.DocumentRejected:
			summary.RejectedCount++
		}
	}
	return documents, summary, nil
}

func (s *DocumentService) Get(p access.Principal, id uuid.UUID) (*models.Document, error) {
	if err := s.authz.Authorize(p, access.ResourceDocument, id, access.ActionRead); err != nil {
		return nil, err
	}

	var document models.Document
	if err := s.db.Preload("Tenant.User").First(&document, "documents.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// Upload records a tenant's own document as PENDING. Only metadata and the
// file URL are stored.
func (s *DocumentService) Upload(p access.Principal, req *dto.CreateDocumentRequest) (*models.Document, error) {
	if !p.Authenticated() {
		return nil, access.ErrUnauthenticated
	}
	if !p.IsTenant() {
		return nil, access.ErrForbidden
	}
	tenantID, err := s.authz.ProfileID(p)
	if err != nil {
		return nil, err
	}

	if !req.Type.Valid() {
		return nil, validation.New("type", "Invalid document type")
	}
	if err := validation.First(
		validation.Required("file_name", req.FileName, "File name is required"),
		validation.Required("file_url", req.FileURL, "File URL is required"),
	); err != nil {
		return nil, err
	}
	if req.FileSize < 0 {
		return nil, validation.New("file_size", "File size must not be negative")
	}

	document := models.Document{
		TenantID: tenantID,
		Type:     req.Type,
		FileName: strings.TrimSpace(req.FileName),
		FileURL:  strings.TrimSpace(req.FileURL),
		FileSize: req.FileSize,
		Status:   models.DocumentPending,
	}
	if err := s.db.Create(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// Review approves or rejects a PENDING document once, then recomputes the
// tenant's KYC status in the same transaction.
func (s *DocumentService) Review(p access.Principal, id uuid.UUID, req *dto.ReviewDocumentRequest) (*models.Document, error) {
	if err := s.authz.Authorize(p, access.ResourceDocument, id, access.ActionWrite); err != nil {
		return nil, err
	}
	if req.Status != models.DocumentApproved && req.Status != models.DocumentRejected {
		return nil, validation.New("status", "Status must be APPROVED or REJECTED")
	}

	updates := map[string]interface{}{
		"status":      req.Status,
		"reviewed_at": time.Now().UTC(),
	}
	if reason := strings.TrimSpace(req.RejectionReason); reason != "" && req.Status == models.DocumentRejected {
		updates["rejection_reason"] = reason
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Document{}).
			Where("id = ? AND status = ?", id, models.DocumentPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDocumentReviewed
		}

		var document models.Document
		if err := tx.Select("id", "tenant_id").First(&document, "id = ?", id).Error; err != nil {
			return err
		}
		return refreshKYC(tx, document.TenantID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(p, id)
}

// refreshKYC derives a tenant's KYC status from its documents: any REJECTED
// wins, then all APPROVED, otherwise PENDING.
func refreshKYC(tx *gorm.DB, tenantID uuid.UUID) error {
	var counts []struct {
		Status models.DocumentStatus
		Count  int64
	}
	if err := tx.Model(&models.Document{}).
		Select("status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return err
	}

	var total, approved, rejected int64
	for _, c := range counts {
		total += c.Count
		switch c.Status {
		case models.DocumentApproved:
			approved = c.Count
		case models.DocumentRejected:
			rejected = c.Count
		}
	}

	status := models.KYCPending
	switch {
	case rejected > 0:
		status = models.KYCRejected
	case total > 0 && approved == total:
		status = models.KYCApproved
	}
	return tx.Model(&models.TenantProfile{}).Where("id = ?", tenantID).Update("kyc_status", status).Error
}
