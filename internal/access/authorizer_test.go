package access_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type world struct {
	db          *gorm.DB
	auth        *access.Authorizer
	landlord1   access.Principal
	landlord2   access.Principal
	tenant      access.Principal
	stranger    access.Principal
	owned       *models.Property
	occupied    *models.Property
	otherListed *models.Property
	tenantID    uuid.UUID
	rental      *models.Rental
	payment     *models.RentPayment
	document    *models.Document
	agreement   *models.RentAgreement
}

func setup(t *testing.T) *world {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)

	l1User, l1 := fx.Landlord("l1@example.com")
	l2User, l2 := fx.Landlord("l2@example.com")
	tUser, tenant := fx.Tenant("t1@example.com")
	sUser, _ := fx.Tenant("t2@example.com")

	owned := fx.Property(l1.ID, "Sunset", models.PropertyAvailable)
	occupied := fx.Property(l1.ID, "Harbor", models.PropertyOccupied)
	otherListed := fx.Property(l2.ID, "Hillside", models.PropertyOccupied)
	rental := fx.Rental(occupied.ID, tenant.ID, models.RentalActive)

	return &world{
		db:          db,
		auth:        access.NewAuthorizer(db),
		landlord1:   access.Principal{UserID: l1User.ID, Role: models.RoleLandlord},
		landlord2:   access.Principal{UserID: l2User.ID, Role: models.RoleLandlord},
		tenant:      access.Principal{UserID: tUser.ID, Role: models.RoleTenant},
		stranger:    access.Principal{UserID: sUser.ID, Role: models.RoleTenant},
		owned:       owned,
		occupied:    occupied,
		otherListed: otherListed,
		tenantID:    tenant.ID,
		rental:      rental,
		payment:     fx.Payment(rental.ID, 2500, time.Now().AddDate(0, 0, 5), models.PaymentPending),
		document:    fx.Document(tenant.ID, models.DocumentPending),
		agreement:   fx.Agreement(rental.ID, models.AgreementDraft),
	}
}

func TestAuthorize_PropertyOwnership(t *testing.T) {
	w := setup(t)

	assert.NoError(t, w.auth.Authorize(w.landlord1, access.ResourceProperty, w.owned.ID, access.ActionWrite))
	assert.ErrorIs(t, w.auth.Authorize(w.landlord2, access.ResourceProperty, w.owned.ID, access.ActionRead), access.ErrForbidden)
	assert.ErrorIs(t, w.auth.Authorize(w.landlord2, access.ResourceProperty, w.owned.ID, access.ActionWrite), access.ErrForbidden)
}

func TestAuthorize_CheckOrder(t *testing.T) {
	w := setup(t)

	err := w.auth.Authorize(access.Principal{}, access.ResourceProperty, uuid.New(), access.ActionRead)
	assert.ErrorIs(t, err, access.ErrUnauthenticated)

	err = w.auth.Authorize(w.landlord2, access.ResourceProperty, uuid.New(), access.ActionRead)
	assert.ErrorIs(t, err, access.ErrNotFound)
	assert.Equal(t, "property not found", err.Error())

	// A tenant may never write a property, but a missing row still reports 404 first.
	err = w.auth.Authorize(w.tenant, access.ResourceProperty, uuid.New(), access.ActionWrite)
	assert.ErrorIs(t, err, access.ErrNotFound)
}

func TestAuthorize_TenantPropertyVisibility(t *testing.T) {
	w := setup(t)

	assert.NoError(t, w.auth.Authorize(w.tenant, access.ResourceProperty, w.owned.ID, access.ActionRead))
	assert.NoError(t, w.auth.Authorize(w.tenant, access.ResourceProperty, w.occupied.ID, access.ActionRead))
	assert.ErrorIs(t, w.auth.Authorize(w.tenant, access.ResourceProperty, w.otherListed.ID, access.ActionRead), access.ErrForbidden)
	assert.ErrorIs(t, w.auth.Authorize(w.stranger, access.ResourceProperty, w.occupied.ID, access.ActionRead), access.ErrForbidden)
	assert.ErrorIs(t, w.auth.Authorize(w.tenant, access.ResourceProperty, w.owned.ID, access.ActionWrite), access.ErrForbidden)
}

func TestAuthorize_OwnershipChain(t *testing.T) {
	w := setup(t)

	cases := []struct {
		resource access.Resource
		id       uuid.UUID
	}{
		{access.ResourceRental, w.rental.ID},
		{access.ResourcePayment, w.payment.ID},
		{access.ResourceDocument, w.document.ID},
		{access.ResourceAgreement, w.agreement.ID},
	}

	for _, tc := range cases {
		t.Run(string(tc.resource), func(t *testing.T) {
			assert.NoError(t, w.auth.Authorize(w.landlord1, tc.resource, tc.id, access.ActionWrite))
			assert.NoError(t, w.auth.Authorize(w.tenant, tc.resource, tc.id, access.ActionRead))
			assert.ErrorIs(t, w.auth.Authorize(w.tenant, tc.resource, tc.id, access.ActionWrite), access.ErrForbidden)
			assert.ErrorIs(t, w.auth.Authorize(w.landlord2, tc.resource, tc.id, access.ActionRead), access.ErrForbidden)
			assert.ErrorIs(t, w.auth.Authorize(w.stranger, tc.resource, tc.id, access.ActionRead), access.ErrForbidden)
		})
	}
}

func TestAuthorize_TenantProfile(t *testing.T) {
	w := setup(t)

	assert.NoError(t, w.auth.Authorize(w.landlord1, access.ResourceTenant, w.tenantID, access.ActionWrite))
	assert.ErrorIs(t, w.auth.Authorize(w.landlord2, access.ResourceTenant, w.tenantID, access.ActionRead), access.ErrForbidden)
	assert.ErrorIs(t, w.auth.Authorize(w.tenant, access.ResourceTenant, w.tenantID, access.ActionRead), access.ErrForbidden)
}

func TestScope_ListsOnlyReachableRows(t *testing.T) {
	w := setup(t)
	scope, err := w.auth.Scope(w.landlord1, access.ResourceProperty, access.ActionRead)
	require.NoError(t, err)

	var props []models.Property
	require.NoError(t, w.db.Scopes(scope).Order("name").Find(&props).Error)
	require.Len(t, props, 2)
	assert.Equal(t, "Harbor", props[0].Name)
	assert.Equal(t, "Sunset", props[1].Name)

	scope, err = w.auth.Scope(w.stranger, access.ResourceProperty, access.ActionRead)
	require.NoError(t, err)
	props = nil
	require.NoError(t, w.db.Scopes(scope).Find(&props).Error)
	require.Len(t, props, 1)
	assert.Equal(t, w.owned.ID, props[0].ID)
}

func TestScope_RoleMatrix(t *testing.T) {
	w := setup(t)

	_, err := w.auth.Scope(w.tenant, access.ResourceTenant, access.ActionRead)
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = w.auth.Scope(w.tenant, access.ResourcePayment, access.ActionWrite)
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = w.auth.Scope(access.Principal{UserID: uuid.New(), Role: "ADMIN"}, access.ResourceProperty, access.ActionRead)
	assert.ErrorIs(t, err, access.ErrUnauthenticated)
}

func TestScope_MissingProfileMatchesNothing(t *testing.T) {
	w := setup(t)
	orphan := access.Principal{UserID: uuid.New(), Role: models.RoleLandlord}

	scope, err := w.auth.Scope(orphan, access.ResourceProperty, access.ActionRead)
	require.NoError(t, err)

	var count int64
	require.NoError(t, w.db.Model(&models.Property{}).Scopes(scope).Count(&count).Error)
	assert.Zero(t, count)

	err = w.auth.Authorize(orphan, access.ResourceProperty, w.owned.ID, access.ActionRead)
	assert.True(t, errors.Is(err, access.ErrForbidden))

	_, err = w.auth.ProfileID(orphan)
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestWithDB_SeesRowsOfTheTransaction(t *testing.T) {
	w := setup(t)
	rollback := errors.New("rollback")

	var pending uuid.UUID
	err := w.db.Transaction(func(tx *gorm.DB) error {
		property := testutil.NewFixtures(t, tx).Property(w.owned.LandlordID, "Draft", models.PropertyAvailable)
		pending = property.ID

		authz := w.auth.WithDB(tx)
		assert.NoError(t, authz.Authorize(w.landlord1, access.ResourceProperty, pending, access.ActionWrite))
		assert.ErrorIs(t, authz.Authorize(w.landlord2, access.ResourceProperty, pending, access.ActionWrite), access.ErrForbidden)
		return rollback
	})
	require.ErrorIs(t, err, rollback)

	assert.ErrorIs(t, w.auth.Authorize(w.landlord1, access.ResourceProperty, pending, access.ActionWrite), access.ErrNotFound)
}
