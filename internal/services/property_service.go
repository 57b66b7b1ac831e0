package services

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewPropertyService(db *gorm.DB, authz *access.Authorizer) *PropertyService {
	return &PropertyService{db: db, authz: authz}
}

// List returns the properties the caller may see: a landlord's own, or for
// a tenant the available ones plus those it rents.
func (s *PropertyService) List(p access.Principal, f filter.PropertyFilter) ([]models.Property, error) {
	scope, err := s.authz.Scope(p, access.ResourceProperty, access.ActionRead)
	if err != nil {
		return nil, err
	}

	properties := []models.Property{}
	err = s.db.Scopes(scope, f.Apply).
		Order("properties.created_at DESC").
		Find(&properties).Error
	return properties, err
}

// Available is the public listing. Any signed-in caller may search it.
func (s *PropertyService) Available(p access.Principal, f filter.AvailableFilter) ([]models.Property, error) {
	if !p.Authenticated() {
		return nil, access.ErrUnauthenticated
	}

	properties := []models.Property{}
	err := s.db.Scopes(f.Apply).
		Preload("Landlord.User").
		Order("properties.created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (s *PropertyService) Get(p access.Principal, id uuid.UUID) (*models.Property, error) {
	if err := s.authz.Authorize(p, access.ResourceProperty, id, access.ActionRead); err != nil {
		return nil, err
	}

	var property models.Property
	if err := s.db.Preload("Landlord.User").First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) Create(p access.Principal, req *dto.CreatePropertyRequest) (*models.Property, error) {
	if _, err := s.authz.Scope(p, access.ResourceProperty, access.ActionWrite); err != nil {
		return nil, err
	}
	landlordID, err := s.authz.ProfileID(p)
	if err != nil {
		return nil, err
	}

	if err := validateNewProperty(req); err != nil {
		return nil, err
	}

	property := models.Property{
		LandlordID:  landlordID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		State:       strings.TrimSpace(req.State),
		ZipCode:     strings.TrimSpace(req.ZipCode),
		Type:        req.Type,
		Size:        req.Size,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		RentAmount:  req.RentAmount,
		Deposit:     req.Deposit,
		Status:      models.PropertyAvailable,
		Images:      datatypes.JSONSlice[string](req.Images),
		Amenities:   datatypes.JSONSlice[string](req.Amenities),
	}
	if req.Status != nil {
		property.Status = *req.Status
	}

	if err := s.db.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) Update(p access.Principal, id uuid.UUID, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	if err := s.authz.Authorize(p, access.ResourceProperty, id, access.ActionWrite); err != nil {
		return nil, err
	}

	updates, err := propertyUpdates(req)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Property{ID: id}).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes a property with its rentals, payments and agreements.
// A property with an ACTIVE rental is kept.
func (s *PropertyService) Delete(p access.Principal, id uuid.UUID) error {
	if err := s.authz.Authorize(p, access.ResourceProperty, id, access.ActionWrite); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Rental{}).
			Where("property_id = ? AND status = ?", id, models.RentalActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrPropertyHasActiveRental
		}

		rentals := "rental_id IN (SELECT id FROM rentals WHERE property_id = ?)"
		if err := tx.Where(rentals, id).Delete(&models.RentPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Where(rentals, id).Delete(&models.RentAgreement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Rental{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, "id = ?", id).Error
	})
}

func validateNewProperty(req *dto.CreatePropertyRequest) error {
	if err := validation.First(
		validation.Required("name", req.Name, "Property name is required"),
		validation.Required("address", req.Address, "Address is required"),
		validation.Required("city", req.City, "City is required"),
		validation.Required("state", req.State, "State is required"),
		validation.Required("zip_code", req.ZipCode, "Zip code is required"),
		validation.Positive("rent_amount", req.RentAmount, "Rent amount must be positive"),
	); err != nil {
		return err
	}
	if !req.Type.Valid() {
		return validation.New("type", "Invalid property type")
	}
	if req.Status != nil && !req.Status.Valid() {
		return validation.New("status", "Invalid property status")
	}
	if req.Deposit != nil {
		if err := validation.NonNegative("deposit", *req.Deposit, "Deposit must not be negative"); err != nil {
			return err
		}
	}
	return validateRooms(req.Bedrooms, req.Bathrooms)
}

func propertyUpdates(req *dto.UpdatePropertyRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	text := []struct {
		column string
		value  *string
		label  string
	}{
		{"name", req.Name, "Property name"},
		{"address", req.Address, "Address"},
		{"city", req.City, "City"},
		{"state", req.State, "State"},
		{"zip_code", req.ZipCode, "Zip code"},
	}
	for _, field := range text {
		if field.value == nil {
			continue
		}
		if err := validation.Required(field.column, *field.value, field.label+" must not be empty"); err != nil {
			return nil, err
		}
		updates[field.column] = strings.TrimSpace(*field.value)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, validation.New("type", "Invalid property type")
		}
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, validation.New("status", "Invalid property status")
		}
		updates["status"] = *req.Status
	}
	if req.RentAmount != nil {
		if err := validation.Positive("rent_amount", *req.RentAmount, "Rent amount must be positive"); err != nil {
			return nil, err
		}
		updates["rent_amount"] = *req.RentAmount
	}
	if req.Deposit != nil {
		if err := validation.NonNegative("deposit", *req.Deposit, "Deposit must not be negative"); err != nil {
			return nil, err
		}
		updates["deposit"] = *req.Deposit
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if err := validateRooms(req.Bedrooms, req.Bathrooms); err != nil {
		return nil, err
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*req.Images)
	}
	if req.Amenities != nil {
		updates["amenities"] = datatypes.JSONSlice[string](*req.Amenities)
	}
	return updates, nil
}

func validateRooms(bedrooms, bathrooms *int) error {
	if bedrooms != nil && *bedrooms < 0 {
		return validation.New("bedrooms", "Bedrooms must not be negative")
	}
	if bathrooms != nil && *bathrooms < 0 {
		return validation.New("bathrooms", "Bathrooms must not be negative")
	}
	return nil
}
