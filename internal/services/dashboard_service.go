package services

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const recentLimit = 5

type DashboardService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewDashboardService(db *gorm.DB, authz *access.Authorizer) *DashboardService {
	return &DashboardService{db: db, authz: authz}
}

// Tenant aggregates the calling tenant's rentals, open payments and
// documents. totalPending sums PENDING and OVERDUE payments.
func (s *DashboardService) Tenant(p access.Principal) (*dto.TenantDashboard, error) {
	if !p.Authenticated() {
		return nil, access.ErrUnauthenticated
	}
	if !p.IsTenant() {
		return nil, access.ErrForbidden
	}
	tenantID, err := s.authz.ProfileID(p)
	if err != nil {
		return nil, err
	}

	out := &dto.TenantDashboard{
		TotalPending:   decimal.Zero,
		RecentRentals:  []models.Rental{},
		RecentPayments: []models.RentPayment{},
	}

	if err := s.db.Model(&models.Rental{}).
		Where("tenant_id = ? AND status = ?", tenantID, models.RentalActive).
		Count(&out.ActiveRentals).Error; err != nil {
		return nil, err
	}

	tenantRentals := "rental_id IN (SELECT id FROM rentals WHERE tenant_id = ?)"
	var open []models.RentPayment
	if err := s.db.Select("id", "amount").
		Where(tenantRentals, tenantID).
		Where("status IN ?", []models.PaymentStatus{models.PaymentPending, models.PaymentOverdue}).
		Find(&open).Error; err != nil {
		return nil, err
	}
	for _, payment := range open {
		out.TotalPending = out.TotalPending.Add(payment.Amount)
	}
	out.UpcomingPayments = len(open)

	if err := s.db.Model(&models.Document{}).
		Where("tenant_id = ? AND status = ?", tenantID, models.DocumentPending).
		Count(&out.PendingDocuments).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Property").
		Where("tenant_id = ?", tenantID).
		Order("start_date DESC").
		Limit(recentLimit).
		Find(&out.RecentRentals).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Rental.Property").
		Where(tenantRentals, tenantID).
		Order("due_date DESC").
		Limit(recentLimit).
		Find(&out.RecentPayments).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Landlord aggregates the calling landlord's portfolio.
func (s *DashboardService) Landlord(p access.Principal) (*dto.LandlordDashboard, error) {
	if !p.Authenticated() {
		return nil, access.ErrUnauthenticated
	}
	if !p.IsLandlord() {
		return nil, access.ErrForbidden
	}
	landlordID, err := s.authz.ProfileID(p)
	if err != nil {
		return nil, err
	}

	out := &dto.LandlordDashboard{}

	var byStatus []struct {
		Status models.PropertyStatus
		Count  int64
	}
	if err := s.db.Model(&models.Property{}).
		Select("status, COUNT(*) AS count").
		Where("landlord_id = ?", landlordID).
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		out.TotalProperties += row.Count
		switch row.Status {
		case models.PropertyAvailable:
			out.AvailableProperties = row.Count
		case models.PropertyOccupied:
			out.OccupiedProperties = row.Count
		case models.PropertyMaintenance:
			out.MaintenanceProperties = row.Count
		}
	}

	ownProperties := "property_id IN (SELECT id FROM properties WHERE landlord_id = ?)"
	if err := s.db.Model(&models.Rental{}).
		Where(ownProperties, landlordID).
		Where("status = ?", models.RentalActive).
		Count(&out.ActiveRentals).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Rental{}).
		Where(ownProperties, landlordID).
		Distinct("tenant_id").
		Count(&out.TenantCount).Error; err != nil {
		return nil, err
	}

	documents, err := s.authz.Scope(p, access.ResourceDocument, access.ActionRead)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Document{}).
		Scopes(documents).
		Where("documents.status = ?", models.DocumentPending).
		Count(&out.PendingDocuments).Error; err != nil {
		return nil, err
	}

	payments, err := s.authz.Scope(p, access.ResourcePayment, access.ActionRead)
	if err != nil {
		return nil, err
	}
	var rows []models.RentPayment
	if err := s.db.Select("id", "amount", "status").Scopes(payments).Find(&rows).Error; err != nil {
		return nil, err
	}
	out.Payments = Summarize(rows)

	return out, nil
}
