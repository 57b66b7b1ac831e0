package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/config"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(CORS(cfg))
	app.Get("/landlord", JWTProtected(cfg), RequireRole(models.RoleLandlord), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func get(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/landlord", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTAndRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", CORSOrigins: "*"}
	app := newApp(cfg)
	now := time.Now()

	claims := func(role models.Role, exp time.Time) jwt.MapClaims {
		return jwt.MapClaims{"sub": uuid.NewString(), "role": string(role), "iat": now.Unix(), "exp": exp.Unix()}
	}

	assert.Equal(t, http.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, sign(t, "other", claims(models.RoleLandlord, now.Add(time.Minute)))))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, sign(t, "secret", claims(models.RoleLandlord, now.Add(-time.Minute)))))
	assert.Equal(t, http.StatusForbidden, get(t, app, sign(t, "secret", claims(models.RoleTenant, now.Add(time.Minute)))))
	assert.Equal(t, http.StatusOK, get(t, app, sign(t, "secret", claims(models.RoleLandlord, now.Add(time.Minute)))))
}

func TestCORSPreflight(t *testing.T) {
	app := newApp(&config.Config{JWTSecret: "secret", CORSOrigins: "https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/landlord", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
