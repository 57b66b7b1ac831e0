// Package seed loads a small demo portfolio: one landlord, two tenants,
// three properties and one active lease with its payments, KYC document
// and signed agreement.
package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LandlordEmail = "landlord@example.com"
	Tenant1Email  = "tenant1@example.com"
	Tenant2Email  = "tenant2@example.com"

	landlordPassword = "landlord123"
	tenantPassword   = "tenant123"
)

const leaseTerms = "This Rental Agreement is entered into on {{agreementDate}} between:\n\n" +
	"LANDLORD: {{landlordName}}\n" +
	"TENANT: {{tenantName}}\n\n" +
	"PROPERTY: {{propertyAddress}}\n\n" +
	"TERMS:\n" +
	"1. Monthly Rent: ${{rentAmount}}\n" +
	"2. Security Deposit: ${{depositAmount}}\n" +
	"3. Lease Term: {{leaseStartDate}} to {{leaseEndDate}}\n\n" +
	"The tenant agrees to pay rent on the first day of each month.\n\n" +
	"LANDLORD SIGNATURE: _________________\n" +
	"TENANT SIGNATURE: _________________"

// Run inserts the demo data in one transaction. It does nothing when the
// demo landlord already exists and reports whether anything was inserted.
func Run(db *gorm.DB) (bool, error) {
	var existing models.User
	err := db.Where("email = ?", LandlordEmail).First(&existing).Error
	if err == nil {
		slog.Info("seed skipped, demo data already present", "email", LandlordEmail)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	landlordHash, err := bcrypt.GenerateFromPassword([]byte(landlordPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	tenantHash, err := bcrypt.GenerateFromPassword([]byte(tenantPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		landlord := models.User{Email: LandlordEmail, Name: "John Landlord", Password: string(landlordHash), Role: models.RoleLandlord}
		if err := tx.Create(&landlord).Error; err != nil {
			return err
		}
		landlordProfile := models.LandlordProfile{UserID: landlord.ID, PhoneNumber: "+1234567890", BusinessName: "Premium Properties LLC"}
		if err := tx.Create(&landlordProfile).Error; err != nil {
			return err
		}

		alice, aliceProfile, err := createTenant(tx, Tenant1Email, "Alice Tenant", string(tenantHash), "+1234567891", date(1990, 5, 15), "Software Engineer", models.KYCApproved)
		if err != nil {
			return err
		}
		if _, _, err := createTenant(tx, Tenant2Email, "Bob Renter", string(tenantHash), "+1234567892", date(1988, 8, 22), "Marketing Manager", models.KYCPending); err != nil {
			return err
		}

		properties := []models.Property{
			{
				LandlordID:  landlordProfile.ID,
				Name:        "Sunset Apartment",
				Description: "Beautiful 2-bedroom apartment with stunning sunset views. Modern amenities and centrally located.",
				Address:     "123 Main Street",
				City:        "San Francisco",
				State:       "California",
				ZipCode:     "94102",
				Type:        models.PropertyApartment,
				Size:        money(1200),
				Bedrooms:    intPtr(2),
				Bathrooms:   intPtr(2),
				RentAmount:  decimal.NewFromInt(2500),
				Deposit:     money(5000),
				Status:      models.PropertyOccupied,
				Images:      datatypes.JSONSlice[string]{"/placeholder-property-1.jpg", "/placeholder-property-2.jpg"},
				Amenities:   datatypes.JSONSlice[string]{"Parking", "Gym", "Pool", "Pet Friendly", "Air Conditioning"},
			},
			{
				LandlordID:  landlordProfile.ID,
				Name:        "Downtown Studio",
				Description: "Cozy studio in the heart of downtown. Perfect for young professionals.",
				Address:     "456 Market Street",
				City:        "San Francisco",
				State:       "California",
				ZipCode:     "94103",
				Type:        models.PropertyStudio,
				Size:        money(500),
				Bedrooms:    intPtr(0),
				Bathrooms:   intPtr(1),
				RentAmount:  decimal.NewFromInt(1800),
				Deposit:     money(3600),
				Status:      models.PropertyAvailable,
				Images:      datatypes.JSONSlice[string]{"/placeholder-studio.jpg"},
				Amenities:   datatypes.JSONSlice[string]{"Heating", "Internet", "Security"},
			},
			{
				LandlordID:  landlordProfile.ID,
				Name:        "Luxury Villa",
				Description: "Spacious 4-bedroom villa with garden and garage. Family-friendly neighborhood.",
				Address:     "789 Oak Avenue",
				City:        "Palo Alto",
				State:       "California",
				ZipCode:     "94301",
				Type:        models.PropertyHouse,
				Size:        money(3000),
				Bedrooms:    intPtr(4),
				Bathrooms:   intPtr(3),
				RentAmount:  decimal.NewFromInt(5000),
				Deposit:     money(10000),
				Status:      models.PropertyAvailable,
				Images:      datatypes.JSONSlice[string]{"/placeholder-house-1.jpg", "/placeholder-house-2.jpg", "/placeholder-house-3.jpg"},
				Amenities:   datatypes.JSONSlice[string]{"Parking", "Garden", "Garage", "Pet Friendly", "Air Conditioning", "Heating"},
			},
		}
		if err := tx.Create(&properties).Error; err != nil {
			return err
		}

		leaseEnd := date(2025, 1, 1)
		rental := models.Rental{
			PropertyID:  properties[0].ID,
			TenantID:    aliceProfile.ID,
			StartDate:   date(2024, 1, 1),
			EndDate:     &leaseEnd,
			MonthlyRent: decimal.NewFromInt(2500),
			Deposit:     decimal.NewFromInt(5000),
			Status:      models.RentalActive,
		}
		if err := tx.Create(&rental).Error; err != nil {
			return err
		}

		paid := date(2024, 9, 28)
		payments := []models.RentPayment{
			{RentalID: rental.ID, Amount: decimal.NewFromInt(2500), DueDate: date(2024, 10, 1), PaidDate: &paid, Status: models.PaymentPaid},
			{RentalID: rental.ID, Amount: decimal.NewFromInt(2500), DueDate: date(2024, 11, 1), Status: models.PaymentPending},
		}
		if err := tx.Create(&payments).Error; err != nil {
			return err
		}

		document := models.Document{
			TenantID: aliceProfile.ID,
			Type:     models.DocumentIDProof,
			FileName: "drivers_license.pdf",
			FileURL:  "/documents/sample-id.pdf",
			FileSize: 1024000,
			Status:   models.DocumentApproved,
		}
		if err := tx.Create(&document).Error; err != nil {
			return err
		}

		agreement := models.RentAgreement{
			RentalID:        rental.ID,
			TemplateName:    "Standard Residential Lease",
			StartDate:       rental.StartDate,
			EndDate:         leaseEnd,
			RentAmount:      rental.MonthlyRent,
			SecurityDeposit: rental.Deposit,
			Terms:           leaseTerms,
			TemplateVariables: datatypes.NewJSONType(map[string]string{
				"agreementDate":   "2024-01-01",
				"landlordName":    landlord.Name,
				"tenantName":      alice.Name,
				"propertyAddress": "123 Main Street, San Francisco, CA 94102",
				"rentAmount":      "2500",
				"depositAmount":   "5000",
				"leaseStartDate":  "2024-01-01",
				"leaseEndDate":    "2025-01-01",
			}),
			Status:  models.AgreementActive,
			Version: 1,
		}
		return tx.Create(&agreement).Error
	})
	if err != nil {
		return false, err
	}

	slog.Info("seeded demo data", "landlord", LandlordEmail, "tenants", 2, "properties", 3)
	return true, nil
}

func createTenant(tx *gorm.DB, email, name, hash, phone string, born time.Time, occupation string, kyc models.KYCStatus) (*models.User, *models.TenantProfile, error) {
	user := models.User{Email: email, Name: name, Password: hash, Role: models.RoleTenant}
	if err := tx.Create(&user).Error; err != nil {
		return nil, nil, err
	}
	profile := models.TenantProfile{
		UserID:      user.ID,
		PhoneNumber: phone,
		DateOfBirth: &born,
		Occupation:  occupation,
		KYCStatus:   kyc,
	}
	if err := tx.Create(&profile).Error; err != nil {
		return nil, nil, err
	}
	return &user, &profile, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }
