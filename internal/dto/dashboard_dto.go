package dto

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/shopspring/decimal"
)

type TenantDashboard struct {
	ActiveRentals    int64                `json:"active_rentals"`
	TotalPending     decimal.Decimal      `json:"total_pending"`
	UpcomingPayments int                  `json:"upcoming_payments"`
	PendingDocuments int64                `json:"pending_documents"`
	RecentRentals    []models.Rental      `json:"recent_rentals"`
	RecentPayments   []models.RentPayment `json:"recent_payments"`
}

type LandlordDashboard struct {
	TotalProperties      int64          `json:"total_properties"`
	AvailableProperties  int64          `json:"available_properties"`
	OccupiedProperties   int64          `json:"occupied_properties"`
	MaintenanceProperties int64         `json:"maintenance_properties"`
	ActiveRentals        int64          `json:"active_rentals"`
	TenantCount          int64          `json:"tenant_count"`
	PendingDocuments     int64          `json:"pending_documents"`
	Payments             PaymentSummary `json:"payments"`
}
