package access

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProfileNotFound is returned when a user has no profile for its role.
var ErrProfileNotFound = errors.New("profile not found")

// Scope restricts a query to the rows a principal may touch.
type Scope func(db *gorm.DB) *gorm.DB

// landlordRentals selects the ids of rentals on a landlord's properties.
const landlordRentals = "SELECT rentals.id FROM rentals JOIN properties ON properties.id = rentals.property_id WHERE properties.landlord_id = ?"

// landlordTenants selects the ids of tenants renting from a landlord.
const landlordTenants = "SELECT rentals.tenant_id FROM rentals JOIN properties ON properties.id = rentals.property_id WHERE properties.landlord_id = ?"

type Authorizer struct {
	db *gorm.DB
}

func NewAuthorizer(db *gorm.DB) *Authorizer {
	return &Authorizer{db: db}
}

// WithDB returns an Authorizer issuing its queries on tx.
func (a *Authorizer) WithDB(tx *gorm.DB) *Authorizer {
	return &Authorizer{db: tx}
}

func (a *Authorizer) LandlordProfileID(userID uuid.UUID) (uuid.UUID, error) {
	var profile models.LandlordProfile
	err := a.db.Select("id").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrProfileNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return profile.ID, nil
}

func (a *Authorizer) TenantProfileID(userID uuid.UUID) (uuid.UUID, error) {
	var profile models.TenantProfile
	err := a.db.Select("id").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrProfileNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return profile.ID, nil
}

// ProfileID resolves the caller's landlord or tenant profile id. A caller
// without a profile owns nothing and gets ErrForbidden.
func (a *Authorizer) ProfileID(p Principal) (uuid.UUID, error) {
	if !p.Authenticated() {
		return uuid.Nil, ErrUnauthenticated
	}
	var (
		id  uuid.UUID
		err error
	)
	if p.IsLandlord() {
		id, err = a.LandlordProfileID(p.UserID)
	} else {
		id, err = a.TenantProfileID(p.UserID)
	}
	if errors.Is(err, ErrProfileNotFound) {
		return uuid.Nil, fmt.Errorf("%w: %s profile not found", ErrForbidden, roleLabel(p.Role))
	}
	return id, err
}

// Scope returns the scoping predicate for r. A principal whose role may not
// perform action on r gets ErrForbidden; a principal without a profile gets
// a scope that matches nothing.
func (a *Authorizer) Scope(p Principal, r Resource, action Action) (Scope, error) {
	if !p.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !permitted(p.Role, r, action) {
		return nil, ErrForbidden
	}

	id, err := a.ProfileID(p)
	if errors.Is(err, ErrForbidden) {
		return none, nil
	}
	if err != nil {
		return nil, err
	}

	if p.IsLandlord() {
		return landlordScope(r, id), nil
	}
	return tenantScope(r, id), nil
}

// Authorize checks that p may perform action on row id of r. Checks run in
// a fixed order: authentication, existence, then ownership.
func (a *Authorizer) Authorize(p Principal, r Resource, id uuid.UUID, action Action) error {
	if !p.Authenticated() {
		return ErrUnauthenticated
	}

	table := r.table()
	var count int64
	if err := a.db.Table(table).Where(table+".id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound(r)
	}

	scope, err := a.Scope(p, r, action)
	if err != nil {
		return err
	}
	if err := a.db.Table(table).Scopes(scope).Where(table+".id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForbidden
	}
	return nil
}

func landlordScope(r Resource, landlordID uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		switch r {
		case ResourceProperty:
			return db.Where("properties.landlord_id = ?", landlordID)
		case ResourceRental:
			return db.Where("rentals.property_id IN (SELECT id FROM properties WHERE landlord_id = ?)", landlordID)
		case ResourcePayment:
			return db.Where("rent_payments.rental_id IN ("+landlordRentals+")", landlordID)
		case ResourceAgreement:
			return db.Where("rent_agreements.rental_id IN ("+landlordRentals+")", landlordID)
		case ResourceDocument:
			return db.Where("documents.tenant_id IN ("+landlordTenants+")", landlordID)
		case ResourceTenant:
			return db.Where("tenant_profiles.id IN ("+landlordTenants+")", landlordID)
		}
		return none(db)
	}
}

func tenantScope(r Resource, tenantID uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		switch r {
		case ResourceProperty:
			return db.Where("(properties.status = ? OR properties.id IN (SELECT property_id FROM rentals WHERE tenant_id = ?))",
				models.PropertyAvailable, tenantID)
		case ResourceRental:
			return db.Where("rentals.tenant_id = ?", tenantID)
		case ResourcePayment:
			return db.Where("rent_payments.rental_id IN (SELECT id FROM rentals WHERE tenant_id = ?)", tenantID)
		case ResourceAgreement:
			return db.Where("rent_agreements.rental_id IN (SELECT id FROM rentals WHERE tenant_id = ?)", tenantID)
		case ResourceDocument:
			return db.Where("documents.tenant_id = ?", tenantID)
		}
		return none(db)
	}
}

func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func roleLabel(role models.Role) string {
	if role == models.RoleLandlord {
		return "landlord"
	}
	return "tenant"
}
