package dto

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAgreementRequest struct {
	RentalID          uuid.UUID               `json:"rental_id"`
	TemplateName      string                  `json:"template_name"`
	StartDate         string                  `json:"start_date"`
	EndDate           string                  `json:"end_date"`
	RentAmount        decimal.Decimal         `json:"rent_amount"`
	SecurityDeposit   decimal.Decimal         `json:"security_deposit"`
	Terms             string                  `json:"terms"`
	TemplateVariables map[string]string       `json:"template_variables"`
	Status            *models.AgreementStatus `json:"status"`
}

type UpdateAgreementRequest struct {
	TemplateName      *string                 `json:"template_name"`
	StartDate         *string                 `json:"start_date"`
	EndDate           *string                 `json:"end_date"`
	RentAmount        *decimal.Decimal        `json:"rent_amount"`
	SecurityDeposit   *decimal.Decimal        `json:"security_deposit"`
	Terms             *string                 `json:"terms"`
	TemplateVariables map[string]string       `json:"template_variables"`
	Status            *models.AgreementStatus `json:"status"`
}

type AgreementResponse struct {
	Message   string                `json:"message,omitempty"`
	Agreement *models.RentAgreement `json:"agreement"`
}

type AgreementListResponse struct {
	Agreements []models.RentAgreement `json:"agreements"`
}

type RenderedAgreementResponse struct {
	AgreementID uuid.UUID `json:"agreement_id"`
	Format      string    `json:"format"`
	Content     string    `json:"content"`
	Missing     []string  `json:"missing_variables"`
}
