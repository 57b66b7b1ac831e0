// Package testutil opens throwaway SQLite databases and inserts fixture rows.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/database"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString()[:8])
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixtures inserts rows with sensible defaults.
type Fixtures struct {
	t  *testing.T
	db *gorm.DB
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) Landlord(email string) (*models.User, *models.LandlordProfile) {
	f.t.Helper()
	user := &models.User{Email: email, Name: "Landlord " + email, Password: "x", Role: models.RoleLandlord}
	require.NoError(f.t, f.db.Create(user).Error)
	profile := &models.LandlordProfile{UserID: user.ID, BusinessName: "Biz " + email}
	require.NoError(f.t, f.db.Create(profile).Error)
	return user, profile
}

func (f *Fixtures) Tenant(email string) (*models.User, *models.TenantProfile) {
	f.t.Helper()
	user := &models.User{Email: email, Name: "Tenant " + email, Password: "x", Role: models.RoleTenant}
	require.NoError(f.t, f.db.Create(user).Error)
	profile := &models.TenantProfile{UserID: user.ID, Occupation: "Engineer"}
	require.NoError(f.t, f.db.Create(profile).Error)
	return user, profile
}

func (f *Fixtures) Property(landlordID uuid.UUID, name string, status models.PropertyStatus) *models.Property {
	f.t.Helper()
	p := &models.Property{
		LandlordID: landlordID,
		Name:       name,
		Address:    "1 " + name + " Street",
		City:       "San Francisco",
		State:      "California",
		ZipCode:    "94102",
		Type:       models.PropertyApartment,
		RentAmount: decimal.NewFromInt(2500),
		Status:     status,
	}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

func (f *Fixtures) Rental(propertyID, tenantID uuid.UUID, status models.RentalStatus) *models.Rental {
	f.t.Helper()
	r := &models.Rental{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(2500),
		Deposit:     decimal.NewFromInt(5000),
		Status:      status,
	}
	require.NoError(f.t, f.db.Create(r).Error)
	return r
}

func (f *Fixtures) Payment(rentalID uuid.UUID, amount int64, due time.Time, status models.PaymentStatus) *models.RentPayment {
	f.t.Helper()
	p := &models.RentPayment{
		RentalID: rentalID,
		Amount:   decimal.NewFromInt(amount),
		DueDate:  due,
		Status:   status,
	}
	if status == models.PaymentPaid {
		paid := due
		p.PaidDate = &paid
	}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

func (f *Fixtures) Document(tenantID uuid.UUID, status models.DocumentStatus) *models.Document {
	f.t.Helper()
	d := &models.Document{
		TenantID: tenantID,
		Type:     models.DocumentIDProof,
		FileName: "license.pdf",
		FileURL:  "/documents/license.pdf",
		FileSize: 1024,
		Status:   status,
	}
	require.NoError(f.t, f.db.Create(d).Error)
	return d
}

func (f *Fixtures) Agreement(rentalID uuid.UUID, status models.AgreementStatus) *models.RentAgreement {
	f.t.Helper()
	a := &models.RentAgreement{
		RentalID:        rentalID,
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		RentAmount:      decimal.NewFromInt(2500),
		SecurityDeposit: decimal.NewFromInt(5000),
		Terms:           "Rent is {{rentAmount}} per month.",
		Status:          status,
	}
	require.NoError(f.t, f.db.Create(a).Error)
	return a
}
