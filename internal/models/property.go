package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "APARTMENT"
	PropertyHouse     PropertyType = "HOUSE"
	PropertyCondo     PropertyType = "CONDO"
	PropertyStudio    PropertyType = "STUDIO"
	PropertyRoom      PropertyType = "ROOM"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyStudio, PropertyRoom:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "AVAILABLE"
	PropertyOccupied    PropertyStatus = "OCCUPIED"
	PropertyMaintenance PropertyStatus = "MAINTENANCE"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyOccupied, PropertyMaintenance:
		return true
	}
	return false
}

// Property.Status OCCUPIED is kept in step with ACTIVE rentals by the rental
// service; it is not a database constraint.
type Property struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	LandlordID  uuid.UUID                   `gorm:"type:uuid;not null;index" json:"landlord_id"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Description string                      `gorm:"type:text" json:"description"`
	Address     string                      `gorm:"size:255;not null" json:"address"`
	City        string                      `gorm:"size:120;not null;index" json:"city"`
	State       string                      `gorm:"size:120;not null;index" json:"state"`
	ZipCode     string                      `gorm:"size:20;not null" json:"zip_code"`
	Type        PropertyType                `gorm:"size:20;not null;index" json:"type"`
	Size        *decimal.Decimal            `gorm:"type:decimal(10,2)" json:"size,omitempty"`
	Bedrooms    *int                        `json:"bedrooms,omitempty"`
	Bathrooms   *int                        `json:"bathrooms,omitempty"`
	RentAmount  decimal.Decimal             `gorm:"type:decimal(12,2);not null" json:"rent_amount"`
	Deposit     *decimal.Decimal            `gorm:"type:decimal(12,2)" json:"deposit,omitempty"`
	Status      PropertyStatus              `gorm:"size:20;not null;default:'AVAILABLE';index" json:"status"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Landlord    *LandlordProfile            `gorm:"foreignKey:LandlordID" json:"landlord,omitempty"`
	CreatedAt   time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	if p.Status == "" {
		p.Status = PropertyAvailable
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Amenities == nil {
		p.Amenities = datatypes.JSONSlice[string]{}
	}
	return nil
}
