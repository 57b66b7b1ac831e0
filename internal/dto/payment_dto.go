package dto

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	RentalID      uuid.UUID        `json:"rental_id"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       string           `json:"due_date"`
	PaymentMethod string           `json:"payment_method"`
}

type UpdatePaymentRequest struct {
	Status        *models.PaymentStatus `json:"status"`
	PaidDate      *string               `json:"paid_date"`
	PaymentMethod *string               `json:"payment_method"`
	TransactionID *string               `json:"transaction_id"`
}

type PaymentSummary struct {
	TotalDue     decimal.Decimal `json:"total_due"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	OverdueCount int             `json:"overdue_count"`
	PendingCount int             `json:"pending_count"`
}

type PaymentResponse struct {
	Message     string              `json:"message,omitempty"`
	RentPayment *models.RentPayment `json:"rent_payment"`
}

type PaymentListResponse struct {
	RentPayments []models.RentPayment `json:"rent_payments"`
	Summary      PaymentSummary       `json:"summary"`
}
