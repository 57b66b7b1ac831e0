package dto

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Address     string                 `json:"address"`
	City        string                 `json:"city"`
	State       string                 `json:"state"`
	ZipCode     string                 `json:"zip_code"`
	Type        models.PropertyType    `json:"type"`
	Size        *decimal.Decimal       `json:"size"`
	Bedrooms    *int                   `json:"bedrooms"`
	Bathrooms   *int                   `json:"bathrooms"`
	RentAmount  decimal.Decimal        `json:"rent_amount"`
	Deposit     *decimal.Decimal       `json:"deposit"`
	Status      *models.PropertyStatus `json:"status"`
	Images      []string               `json:"images"`
	Amenities   []string               `json:"amenities"`
}

type UpdatePropertyRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Address     *string                `json:"address"`
	City        *string                `json:"city"`
	State       *string                `json:"state"`
	ZipCode     *string                `json:"zip_code"`
	Type        *models.PropertyType   `json:"type"`
	Size        *decimal.Decimal       `json:"size"`
	Bedrooms    *int                   `json:"bedrooms"`
	Bathrooms   *int                   `json:"bathrooms"`
	RentAmount  *decimal.Decimal       `json:"rent_amount"`
	Deposit     *decimal.Decimal       `json:"deposit"`
	Status      *models.PropertyStatus `json:"status"`
	Images      *[]string              `json:"images"`
	Amenities   *[]string              `json:"amenities"`
}

type PropertyResponse struct {
	Message  string           `json:"message,omitempty"`
	Property *models.Property `json:"property"`
}

type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
}
