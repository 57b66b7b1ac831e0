package services

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RentalService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewRentalService(db *gorm.DB, authz *access.Authorizer) *RentalService {
	return &RentalService{db: db, authz: authz}
}

func (s *RentalService) List(p access.Principal, f filter.RentalFilter) ([]models.Rental, error) {
	scope, err := s.authz.Scope(p, access.ResourceRental, access.ActionRead)
	if err != nil {
		return nil, err
	}

	rentals := []models.Rental{}
	err = s.withDetails().Scopes(scope, f.Apply).
		Order("rentals.start_date DESC").
		Find(&rentals).Error
	return rentals, err
}

func (s *RentalService) Get(p access.Principal, id uuid.UUID) (*models.Rental, error) {
	if err := s.authz.Authorize(p, access.ResourceRental, id, access.ActionRead); err != nil {
		return nil, err
	}

	var rental models.Rental
	err := s.withDetails().
		Preload("RentPayments", func(db *gorm.DB) *gorm.DB {
			return db.Order("rent_payments.due_date DESC")
		}).
		First(&rental, "rentals.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// Create links a tenant to one of the caller's properties. An ACTIVE rental
// marks the property OCCUPIED in the same transaction.
func (s *RentalService) Create(p access.Principal, req *dto.CreateRentalRequest) (*models.Rental, error) {
	if req.PropertyID == uuid.Nil {
		return nil, validation.New("property_id", "Property is required")
	}
	if req.TenantID == uuid.Nil {
		return nil, validation.New("tenant_id", "Tenant is required")
	}
	if err := s.authz.Authorize(p, access.ResourceProperty, req.PropertyID, access.ActionWrite); err != nil {
		return nil, err
	}

	rental := models.Rental{
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		Status:     models.RentalActive,
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, validation.New("status", "Invalid rental status")
		}
		rental.Status = *req.Status
	}

	start, err := validation.ParseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	rental.StartDate = start
	if req.EndDate != nil {
		end, err := optionalDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		if end != nil && end.Before(start) {
			return nil, validation.New("end_date", "End date must be after start date")
		}
		rental.EndDate = end
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var tenants int64
		if err := tx.Model(&models.TenantProfile{}).Where("id = ?", req.TenantID).Count(&tenants).Error; err != nil {
			return err
		}
		if tenants == 0 {
			return access.NotFound(access.ResourceTenant)
		}

		var property models.Property
		if err := tx.First(&property, "id = ?", req.PropertyID).Error; err != nil {
			return err
		}
		if rental.Status == models.RentalActive && property.Status != models.PropertyAvailable {
			return ErrPropertyNotAvailable
		}

		rental.MonthlyRent = property.RentAmount
		if req.MonthlyRent != nil {
			rental.MonthlyRent = *req.MonthlyRent
		}
		if err := validation.Positive("monthly_rent", rental.MonthlyRent, "Monthly rent must be positive"); err != nil {
			return err
		}
		if property.Deposit != nil {
			rental.Deposit = *property.Deposit
		}
		if req.Deposit != nil {
			rental.Deposit = *req.Deposit
		}
		if err := validation.NonNegative("deposit", rental.Deposit, "Deposit must not be negative"); err != nil {
			return err
		}

		if err := tx.Create(&rental).Error; err != nil {
			return err
		}
		if rental.Status == models.RentalActive {
			return tx.Model(&property).Update("status", models.PropertyOccupied).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// Update edits an ACTIVE rental. Ending it frees the property once no other
// ACTIVE rental remains on it. The ownership check runs in the same
// transaction as the write.
func (s *RentalService) Update(p access.Principal, id uuid.UUID, req *dto.UpdateRentalRequest) (*models.Rental, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.authz.WithDB(tx).Authorize(p, access.ResourceRental, id, access.ActionWrite); err != nil {
			return err
		}
		if req.Status != nil && !req.Status.Valid() {
			return validation.New("status", "Invalid rental status")
		}
		if req.MonthlyRent != nil {
			if err := validation.Positive("monthly_rent", *req.MonthlyRent, "Monthly rent must be positive"); err != nil {
				return err
			}
		}

		var rental models.Rental
		if err := tx.First(&rental, "id = ?", id).Error; err != nil {
			return err
		}
		if rental.Status != models.RentalActive {
			return ErrRentalNotActive
		}

		updates := map[string]interface{}{}
		if req.EndDate != nil {
			end, err := optionalDate("end_date", *req.EndDate)
			if err != nil {
				return err
			}
			if end != nil && end.Before(rental.StartDate) {
				return validation.New("end_date", "End date must be after start date")
			}
			updates["end_date"] = end
		}
		if req.MonthlyRent != nil {
			updates["monthly_rent"] = *req.MonthlyRent
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&rental).Updates(updates).Error; err != nil {
			return err
		}
		if req.Status == nil || *req.Status == models.RentalActive {
			return nil
		}

		var stillActive int64
		if err := tx.Model(&models.Rental{}).
			Where("property_id = ? AND status = ?", rental.PropertyID, models.RentalActive).
			Count(&stillActive).Error; err != nil {
			return err
		}
		if stillActive > 0 {
			return nil
		}
		return tx.Model(&models.Property{}).
			Where("id = ? AND status = ?", rental.PropertyID, models.PropertyOccupied).
			Update("status", models.PropertyAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(p, id)
}

func (s *RentalService) withDetails() *gorm.DB {
	return s.db.Preload("Property").Preload("Tenant.User")
}
