package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/config"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/routes"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type server struct {
	t    *testing.T
	app  *fiber.App
	db   *gorm.DB
	auth *services.AuthService
	fx   *testutil.Fixtures
}

func newServer(t *testing.T) *server {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		CORSOrigins:      "*",
	}

	authz := access.NewAuthorizer(db)
	auth := services.NewAuthService(db, cfg)
	app := fiber.New()
	routes.Setup(app, cfg, routes.Handlers{
		Auth:       handlers.NewAuthHandler(auth),
		Health:     handlers.NewHealthHandler(db),
		Properties: handlers.NewPropertyHandler(services.NewPropertyService(db, authz)),
		Tenants:    handlers.NewTenantHandler(services.NewTenantService(db, authz)),
		Rentals:    handlers.NewRentalHandler(services.NewRentalService(db, authz)),
		Payments:   handlers.NewPaymentHandler(services.NewPaymentService(db, authz)),
		Documents:  handlers.NewDocumentHandler(services.NewDocumentService(db, authz)),
		Agreements: handlers.NewAgreementHandler(services.NewAgreementService(db, authz)),
		Dashboard:  handlers.NewDashboardHandler(services.NewDashboardService(db, authz)),
	}, routes.Limits{})

	return &server{t: t, app: app, db: db, auth: auth, fx: testutil.NewFixtures(t, db)}
}

func (s *server) token(user *models.User) string {
	s.t.Helper()
	token, err := s.auth.GenerateAccessToken(user)
	require.NoError(s.t, err)
	return token
}

// do sends a request and returns the status and the decoded JSON body.
func (s *server) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	if len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestHealthIsPublic(t *testing.T) {
	s := newServer(t)

	status, body := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/properties", "/api/rents", "/api/auth/me", "/api/landlord/dashboard"} {
		status, body := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.NotEmpty(t, body["error"], path)
	}

	status, _ := s.do(http.MethodGet, "/api/properties", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterThenMe(t *testing.T) {
	s := newServer(t)

	status, body := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "Owner@Example.com",
		"password": "password123",
		"name":     "Owner",
		"role":     "LANDLORD",
	})
	require.Equal(t, http.StatusCreated, status, body)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	status, body = s.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "owner@example.com", user["email"])
	assert.Equal(t, "LANDLORD", user["role"])
	assert.NotEmpty(t, user["profile_id"])

	status, body = s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "x@example.com", "password": "short", "name": "X", "role": "TENANT",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password must be at least 8 characters", body["error"])
}

func TestNonOwnerCannotUpdateProperty(t *testing.T) {
	s := newServer(t)
	_, owner := s.fx.Landlord("owner@example.com")
	other, _ := s.fx.Landlord("other@example.com")
	property := s.fx.Property(owner.ID, "Maple", models.PropertyAvailable)

	status, body := s.do(http.MethodPatch, "/api/properties/"+property.ID.String(), s.token(other),
		map[string]interface{}{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body["error"])

	var stored models.Property
	require.NoError(t, s.db.First(&stored, "id = ?", property.ID).Error)
	assert.Equal(t, "Maple", stored.Name)
}

func TestTenantPropertyVisibility(t *testing.T) {
	s := newServer(t)
	_, landlord := s.fx.Landlord("owner@example.com")
	tenantUser, tenant := s.fx.Tenant("renter@example.com")
	open := s.fx.Property(landlord.ID, "Open", models.PropertyAvailable)
	hidden := s.fx.Property(landlord.ID, "Hidden", models.PropertyMaintenance)
	rented := s.fx.Property(landlord.ID, "Rented", models.PropertyOccupied)
	s.fx.Rental(rented.ID, tenant.ID, models.RentalActive)
	token := s.token(tenantUser)

	status, _ := s.do(http.MethodGet, "/api/properties/"+open.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/api/properties/"+rented.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodGet, "/api/properties/"+hidden.ID.String(), token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body["error"])

	status, _ = s.do(http.MethodPatch, "/api/properties/"+open.ID.String(), token, map[string]string{"name": "Mine"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestUnknownAndMalformedIDsAreNotFound(t *testing.T) {
	s := newServer(t)
	user, _ := s.fx.Landlord("owner@example.com")
	token := s.token(user)

	status, body := s.do(http.MethodGet, "/api/properties/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Property not found", body["error"])

	status, body = s.do(http.MethodGet, "/api/rents/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Rent payment not found", body["error"])
}

func TestAgreementDeleteRequiresDraft(t *testing.T) {
	s := newServer(t)
	user, landlord := s.fx.Landlord("owner@example.com")
	_, tenant := s.fx.Tenant("renter@example.com")
	property := s.fx.Property(landlord.ID, "Maple", models.PropertyOccupied)
	rental := s.fx.Rental(property.ID, tenant.ID, models.RentalActive)
	active := s.fx.Agreement(rental.ID, models.AgreementActive)
	draft := s.fx.Agreement(rental.ID, models.AgreementDraft)
	token := s.token(user)

	status, body := s.do(http.MethodDelete, "/api/agreements/"+active.ID.String(), token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, services.ErrAgreementNotDraft.Error(), body["error"])

	status, _ = s.do(http.MethodDelete, "/api/agreements/"+draft.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, s.db.Model(&models.RentAgreement{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAgreementRenderHTML(t *testing.T) {
	s := newServer(t)
	user, landlord := s.fx.Landlord("owner@example.com")
	_, tenant := s.fx.Tenant("renter@example.com")
	property := s.fx.Property(landlord.ID, "Maple", models.PropertyOccupied)
	rental := s.fx.Rental(property.ID, tenant.ID, models.RentalActive)
	agreement := s.fx.Agreement(rental.ID, models.AgreementDraft)
	token := s.token(user)

	status, _ := s.do(http.MethodPatch, "/api/agreements/"+agreement.ID.String(), token, map[string]interface{}{
		"template_variables": map[string]string{"rentAmount": "<b>$2,500</b>"},
	})
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodGet, "/api/agreements/"+agreement.ID.String()+"/render?format=html", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rent is &lt;b&gt;$2,500&lt;/b&gt; per month.", body["content"])

	status, _ = s.do(http.MethodGet, "/api/agreements/"+agreement.ID.String()+"/render?format=pdf", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDashboardsCheckRole(t *testing.T) {
	s := newServer(t)
	landlordUser, _ := s.fx.Landlord("owner@example.com")
	tenantUser, _ := s.fx.Tenant("renter@example.com")

	status, _ := s.do(http.MethodGet, "/api/landlord/dashboard", s.token(tenantUser), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := s.do(http.MethodGet, "/api/landlord/dashboard", s.token(landlordUser), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "total_properties")

	status, _ = s.do(http.MethodGet, "/api/tenant/dashboard", s.token(landlordUser), nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestTenantCannotCreateProperty(t *testing.T) {
	s := newServer(t)
	tenantUser, _ := s.fx.Tenant("renter@example.com")

	status, body := s.do(http.MethodPost, "/api/properties", s.token(tenantUser), map[string]interface{}{
		"name": "Nope", "address": "1 Main", "city": "Oakland", "state": "California",
		"zip_code": "94607", "type": "HOUSE", "rent_amount": "1800",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body["error"])
}
