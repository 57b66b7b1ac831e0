package dto

import "github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"

type CreateDocumentRequest struct {
	Type     models.DocumentType `json:"type"`
	FileName string              `json:"file_name"`
	FileURL  string              `json:"file_url"`
	FileSize int64               `json:"file_size"`
}

type ReviewDocumentRequest struct {
	Status          models.DocumentStatus `json:"status"`
	RejectionReason string                `json:"rejection_reason"`
}

type DocumentSummary struct {
	PendingCount  int `json:"pending_count"`
	ApprovedCount int `json:"approved_count"`
	RejectedCount int `json:"rejected_count"`
	TotalCount    int `json:"total_count"`
}

type DocumentResponse struct {
	Message  string           `json:"message,omitempty"`
	Document *models.Document `json:"document"`
}

type DocumentListResponse struct {
	Documents []models.Document `json:"documents"`
	Summary   DocumentSummary   `json:"summary"`
}
