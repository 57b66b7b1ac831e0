package seed_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/config"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/seed"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	inserted, err := seed.Run(db)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = seed.Run(db)
	require.NoError(t, err)
	assert.False(t, inserted)

	var users, properties int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Property{}).Count(&properties).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 3, properties)
}

func TestSeededAccountsWork(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := seed.Run(db)
	require.NoError(t, err)

	auth := services.NewAuthService(db, &config.Config{JWTSecret: "s"})
	resp, err := auth.Login(&dto.LoginRequest{Email: seed.Tenant1Email, Password: "tenant123"})
	require.NoError(t, err)

	p := access.Principal{UserID: resp.User.ID, Role: resp.User.Role}
	authz := access.NewAuthorizer(db)
	dashboard, err := services.NewDashboardService(db, authz).Tenant(p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dashboard.ActiveRentals)
	assert.True(t, decimal.NewFromInt(2500).Equal(dashboard.TotalPending), dashboard.TotalPending.String())

	agreements, err := services.NewAgreementService(db, authz).List(p, filter.AgreementFilter{})
	require.NoError(t, err)
	require.Len(t, agreements, 1)

	rendered, err := services.NewAgreementService(db, authz).Render(p, agreements[0].ID, services.FormatText)
	require.NoError(t, err)
	assert.Empty(t, rendered.Missing)
	assert.Contains(t, rendered.Content, "TENANT: Alice Tenant")
}
