package dto

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRentalRequest struct {
	PropertyID  uuid.UUID            `json:"property_id"`
	TenantID    uuid.UUID            `json:"tenant_id"`
	StartDate   string               `json:"start_date"`
	EndDate     *string              `json:"end_date"`
	MonthlyRent *decimal.Decimal     `json:"monthly_rent"`
	Deposit     *decimal.Decimal     `json:"deposit"`
	Status      *models.RentalStatus `json:"status"`
}

type UpdateRentalRequest struct {
	EndDate     *string              `json:"end_date"`
	MonthlyRent *decimal.Decimal     `json:"monthly_rent"`
	Status      *models.RentalStatus `json:"status"`
}

type RentalResponse struct {
	Message string         `json:"message,omitempty"`
	Rental  *models.Rental `json:"rental"`
}

type RentalListResponse struct {
	Rentals []models.Rental `json:"rentals"`
}
