package access

import "github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"

type Resource string

const (
	ResourceProperty  Resource = "property"
	ResourceTenant    Resource = "tenant"
	ResourceRental    Resource = "rental"
	ResourcePayment   Resource = "rent_payment"
	ResourceDocument  Resource = "document"
	ResourceAgreement Resource = "agreement"
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

func (a Action) String() string {
	if a == ActionWrite {
		return "write"
	}
	return "read"
}

func (r Resource) table() string {
	switch r {
	case ResourceProperty:
		return "properties"
	case ResourceTenant:
		return "tenant_profiles"
	case ResourceRental:
		return "rentals"
	case ResourcePayment:
		return "rent_payments"
	case ResourceDocument:
		return "documents"
	case ResourceAgreement:
		return "rent_agreements"
	}
	return ""
}

func (r Resource) label() string {
	switch r {
	case ResourcePayment:
		return "rent payment"
	case "":
		return "resource"
	}
	return string(r)
}

// permitted is the role matrix. Landlords read and write everything they
// own; tenants only read, and never see other tenants' profiles.
func permitted(role models.Role, r Resource, action Action) bool {
	switch role {
	case models.RoleLandlord:
		return r.table() != ""
	case models.RoleTenant:
		if action != ActionRead {
			return false
		}
		switch r {
		case ResourceProperty, ResourceRental, ResourcePayment, ResourceDocument, ResourceAgreement:
			return true
		}
	}
	return false
}
