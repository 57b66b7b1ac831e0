// Package session turns a verified access token into an access.Principal.
package session

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKey is the Fiber local under which the JWT middleware stores the token.
const TokenKey = "user"

// Principal returns the caller of c. The zero Principal (unauthenticated)
// is returned when no valid token was attached.
func Principal(c *fiber.Ctx) access.Principal {
	token, ok := c.Locals(TokenKey).(*jwt.Token)
	if !ok || !token.Valid {
		return access.Principal{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Principal{}
	}
	p, err := FromClaims(claims)
	if err != nil {
		return access.Principal{}
	}
	return p
}

// FromClaims reads the sub and role claims of an access token.
func FromClaims(claims jwt.MapClaims) (access.Principal, error) {
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return access.Principal{}, access.ErrUnauthenticated
	}
	p := access.Principal{UserID: id, Role: models.Role(role)}
	if !p.Authenticated() {
		return access.Principal{}, access.ErrUnauthenticated
	}
	return p, nil
}
