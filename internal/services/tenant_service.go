package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Invitation is the outcome of TenantService.Invite.
type Invitation struct {
	Tenant  *models.TenantProfile
	Created bool
	// TemporaryPassword is set only when a new user was created.
	TemporaryPassword string
}

type TenantService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewTenantService(db *gorm.DB, authz *access.Authorizer) *TenantService {
	return &TenantService{db: db, authz: authz}
}

// List returns the tenants renting from the calling landlord, each with the
// rentals on that landlord's properties and its KYC documents.
func (s *TenantService) List(p access.Principal, f filter.TenantFilter) ([]models.TenantProfile, error) {
	scope, err := s.authz.Scope(p, access.ResourceTenant, access.ActionRead)
	if err != nil {
		return nil, err
	}

	tenants := []models.TenantProfile{}
	err = s.withDetails(p).Scopes(scope, f.Apply).
		Order("tenant_profiles.created_at DESC").
		Find(&tenants).Error
	return tenants, err
}

func (s *TenantService) Get(p access.Principal, id uuid.UUID) (*models.TenantProfile, error) {
	if err := s.authz.Authorize(p, access.ResourceTenant, id, access.ActionRead); err != nil {
		return nil, err
	}

	var tenant models.TenantProfile
	if err := s.withDetails(p).First(&tenant, "tenant_profiles.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Invite registers a tenant by email. An existing tenant is returned as is;
// an email owned by a landlord is rejected; otherwise a user and tenant
// profile are created together with a temporary password.
func (s *TenantService) Invite(p access.Principal, req *dto.CreateTenantRequest) (*Invitation, error) {
	if _, err := s.authz.Scope(p, access.ResourceTenant, access.ActionWrite); err != nil {
		return nil, err
	}
	if _, err := s.authz.ProfileID(p); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if err := validation.First(
		validation.Required("email", email, "Email is required"),
		validation.Required("name", req.Name, "Name is required"),
	); err != nil {
		return nil, err
	}
	if !strings.Contains(email, "@") {
		return nil, validation.New("email", "Invalid email address")
	}
	dob, err := optionalDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	var existing models.User
	err = s.db.Preload("TenantProfile.User").Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil && existing.Role == models.RoleLandlord:
		return nil, ErrEmailIsLandlord
	case err == nil && existing.TenantProfile != nil:
		return &Invitation{Tenant: existing.TenantProfile}, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	profile := models.TenantProfile{
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Occupation:  req.Occupation,
	}
	invitation := &Invitation{Tenant: &profile, Created: true}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := existing
		if user.ID == uuid.Nil {
			password, err := randomToken(12)
			if err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user = models.User{
				Email:    email,
				Name:     strings.TrimSpace(req.Name),
				Password: string(hash),
				Role:     models.RoleTenant,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			invitation.TemporaryPassword = password
		}
		profile.UserID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		profile.User = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invitation, nil
}

// Update changes the profile and the user's display name together, in the
// transaction that checked ownership.
func (s *TenantService) Update(p access.Principal, id uuid.UUID, req *dto.UpdateTenantRequest) (*models.TenantProfile, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.authz.WithDB(tx).Authorize(p, access.ResourceTenant, id, access.ActionWrite); err != nil {
			return err
		}
		updates, err := tenantUpdates(req)
		if err != nil {
			return err
		}

		var profile models.TenantProfile
		if err := tx.Select("id", "user_id").First(&profile, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&profile).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Name != nil {
			return tx.Model(&models.User{}).
				Where("id = ?", profile.UserID).
				Update("name", strings.TrimSpace(*req.Name)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(p, id)
}

func tenantUpdates(req *dto.UpdateTenantRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
	}
	if req.DateOfBirth != nil {
		dob, err := optionalDate("date_of_birth", *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		updates["date_of_birth"] = dob
	}
	if req.Name != nil {
		if err := validation.Required("name", *req.Name, "Name must not be empty"); err != nil {
			return nil, err
		}
	}
	return updates, nil
}

// Delete removes a tenant profile with its rentals, payments, agreements and
// documents. The user account stays. A tenant with an ACTIVE rental is kept.
func (s *TenantService) Delete(p access.Principal, id uuid.UUID) error {
	if err := s.authz.Authorize(p, access.ResourceTenant, id, access.ActionWrite); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Rental{}).
			Where("tenant_id = ? AND status = ?", id, models.RentalActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrTenantHasActiveRental
		}

		rentals := "rental_id IN (SELECT id FROM rentals WHERE tenant_id = ?)"
		if err := tx.Where(rentals, id).Delete(&models.RentPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Where(rentals, id).Delete(&models.RentAgreement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Rental{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TenantProfile{}, "id = ?", id).Error
	})
}

// withDetails preloads the user, the documents, and the rentals the caller
// may see.
func (s *TenantService) withDetails(p access.Principal) *gorm.DB {
	db := s.db.Preload("User").Preload("Documents", func(db *gorm.DB) *gorm.DB {
		return db.Order("documents.created_at DESC")
	})
	scope, err := s.authz.Scope(p, access.ResourceRental, access.ActionRead)
	if err != nil {
		return db
	}
	return db.Preload("Rentals", func(db *gorm.DB) *gorm.DB {
		return db.Scopes(scope).Order("rentals.start_date DESC")
	}).Preload("Rentals.Property")
}

func optionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
