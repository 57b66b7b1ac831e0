package services

import "errors"

// Business-rule violations. Handlers report all of them as 400.
var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrEmailIsLandlord         = errors.New("a landlord account already uses this email")
	ErrPropertyHasActiveRental = errors.New("Cannot delete property with active rentals")
	ErrPropertyNotAvailable    = errors.New("Property is not available for rent")
	ErrTenantHasActiveRental   = errors.New("Cannot delete tenant with active rentals")
	ErrRentalNotActive         = errors.New("Rental is not active")
	ErrPaymentTransition       = errors.New("Invalid payment status transition")
	ErrDocumentReviewed        = errors.New("Document has already been reviewed")
	ErrAgreementTransition     = errors.New("Invalid agreement status transition")
	ErrAgreementLocked         = errors.New("Only DRAFT agreements can be edited")
	ErrAgreementNotDraft       = errors.New("Only DRAFT agreements can be deleted")
)

// Authentication failures. Handlers report them as 401.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

var ruleErrors = []error{
	ErrEmailTaken,
	ErrEmailIsLandlord,
	ErrPropertyHasActiveRental,
	ErrPropertyNotAvailable,
	ErrTenantHasActiveRental,
	ErrRentalNotActive,
	ErrPaymentTransition,
	ErrDocumentReviewed,
	ErrAgreementTransition,
	ErrAgreementLocked,
	ErrAgreementNotDraft,
}

// IsRuleViolation reports whether err breaks a business rule.
func IsRuleViolation(err error) bool {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
