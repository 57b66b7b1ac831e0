package dto

import "github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"

type CreateTenantRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Occupation  string `json:"occupation"`
}

type UpdateTenantRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth"`
	Occupation  *string `json:"occupation"`
}

type TenantResponse struct {
	Message string                `json:"message,omitempty"`
	Tenant  *models.TenantProfile `json:"tenant"`
	// TemporaryPassword is set only when the invitation created a new user.
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

type TenantListResponse struct {
	Tenants []models.TenantProfile `json:"tenants"`
}
