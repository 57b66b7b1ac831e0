package services

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewPaymentService(db *gorm.DB, authz *access.Authorizer) *PaymentService {
	return &PaymentService{db: db, authz: authz}
}

// List returns the caller's payments, newest due date first, and totals
// over the same rows.
func (s *PaymentService) List(p access.Principal, f filter.PaymentFilter) ([]models.RentPayment, dto.PaymentSummary, error) {
	scope, err := s.authz.Scope(p, access.ResourcePayment, access.ActionRead)
	if err != nil {
		return nil, dto.PaymentSummary{}, err
	}

	payments := []models.RentPayment{}
	err = s.withDetails().Scopes(scope, f.Apply).
		Order("rent_payments.due_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, dto.PaymentSummary{}, err
	}
	return payments, Summarize(payments), nil
}

// Summarize totals open (PENDING or OVERDUE) and PAID amounts.
func Summarize(payments []models.RentPayment) dto.PaymentSummary {
	summary := dto.PaymentSummary{TotalDue: decimal.Zero, TotalPaid: decimal.Zero}
	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentPending:
			summary.TotalDue = summary.TotalDue.Add(payment.Amount)
			summary.PendingCount++
		case models.PaymentOverdue:
			summary.TotalDue = summary.TotalDue.Add(payment.Amount)
			summary.OverdueCount++
		case models.PaymentPaid:
			summary.TotalPaid = summary.TotalPaid.Add(payment.Amount)
		}
	}
	return summary
}

func (s *PaymentService) Get(p access.Principal, id uuid.UUID) (*models.RentPayment, error) {
	if err := s.authz.Authorize(p, access.ResourcePayment, id, access.ActionRead); err != nil {
		return nil, err
	}

	var payment models.RentPayment
	if err := s.withDetails().First(&payment, "rent_payments.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create adds a PENDING payment to one of the caller's rentals. The amount
// defaults to the rental's monthly rent.
func (s *PaymentService) Create(p access.Principal, req *dto.CreatePaymentRequest) (*models.RentPayment, error) {
	if req.RentalID == uuid.Nil {
		return nil, validation.New("rental_id", "Rental is required")
	}
	if err := s.authz.Authorize(p, access.ResourceRental, req.RentalID, access.ActionWrite); err != nil {
		return nil, err
	}
	due, err := validation.ParseDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}

	var rental models.Rental
	if err := s.db.Select("id", "monthly_rent").First(&rental, "id = ?", req.RentalID).Error; err != nil {
		return nil, err
	}

	payment := models.RentPayment{
		RentalID:      req.RentalID,
		Amount:        rental.MonthlyRent,
		DueDate:       due,
		Status:        models.PaymentPending,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if err := validation.Positive("amount", payment.Amount, "Amount must be positive"); err != nil {
		return nil, err
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update records a payment. Moving to PAID stamps paidDate (now unless
// given) in the same UPDATE as the status, guarded by the current status so
// a concurrent change cannot be overwritten.
func (s *PaymentService) Update(p access.Principal, id uuid.UUID, req *dto.UpdatePaymentRequest) (*models.RentPayment, error) {
	if err := s.authz.Authorize(p, access.ResourcePayment, id, access.ActionWrite); err != nil {
		return nil, err
	}

	var current models.RentPayment
	if err := s.db.Select("id", "status").First(&current, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.TransactionID != nil {
		updates["transaction_id"] = *req.TransactionID
	}
	if req.Status != nil && *req.Status != current.Status {
		if !req.Status.Valid() {
			return nil, validation.New("status", "Invalid payment status")
		}
		if !current.Status.CanTransition(*req.Status) {
			return nil, ErrPaymentTransition
		}
		updates["status"] = *req.Status
		if *req.Status == models.PaymentPaid {
			paid := time.Now().UTC()
			if req.PaidDate != nil && *req.PaidDate != "" {
				var err error
				if paid, err = validation.ParseDate("paid_date", *req.PaidDate); err != nil {
					return nil, err
				}
			}
			updates["paid_date"] = paid
		}
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.RentPayment{}).
			Where("id = ? AND status = ?", id, current.Status).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrPaymentTransition
		}
	}

	return s.Get(p, id)
}

// MarkOverdue moves every PENDING payment whose due date is before the
// current UTC day to OVERDUE and returns how many rows changed. A payment is
// not overdue on its due date. Running it twice changes nothing more.
func (s *PaymentService) MarkOverdue(now time.Time) (int64, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	res := s.db.Model(&models.RentPayment{}).
		Where("status = ? AND due_date < ?", models.PaymentPending, today).
		Updates(map[string]interface{}{"status": models.PaymentOverdue, "updated_at": now})
	return res.RowsAffected, res.Error
}

func (s *PaymentService) withDetails() *gorm.DB {
	return s.db.Preload("Rental.Property").Preload("Rental.Tenant.User")
}
