// Package access decides which rows a caller may see or change.
//
// Every entity is reachable from exactly one landlord profile and, once
// rented, one tenant profile through foreign keys:
//
//	landlord -> property -> rental -> {tenant, payment, agreement}
//	tenant -> document
//
// The Authorizer turns that ownership chain into GORM scopes so that list
// queries and single-row checks share one predicate per resource.
package access

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

// Principal is the authenticated caller.
type Principal struct {
	UserID uuid.UUID
	Role   models.Role
}

func (p Principal) Authenticated() bool {
	return p.UserID != uuid.Nil && p.Role.Valid()
}

func (p Principal) IsLandlord() bool { return p.Role == models.RoleLandlord }

func (p Principal) IsTenant() bool { return p.Role == models.RoleTenant }

// NotFoundError reports a missing row of a given resource. It matches ErrNotFound.
type NotFoundError struct {
	Resource Resource
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource.label())
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(r Resource) error {
	return &NotFoundError{Resource: r}
}
