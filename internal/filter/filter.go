// Package filter holds typed query filters for list endpoints.
// Each filter is parsed and validated from query parameters before it
// touches the database.
package filter

import (
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Params reads query parameters. *fiber.Ctx satisfies it.
type Params interface {
	Query(key string, defaultValue ...string) string
}

// PropertyFilter narrows GET /api/properties.
type PropertyFilter struct {
	Status models.PropertyStatus
	Type   models.PropertyType
	Search string
}

func ParseProperty(p Params) (PropertyFilter, error) {
	f := PropertyFilter{
		Status: models.PropertyStatus(param(p, "status")),
		Type:   models.PropertyType(param(p, "type")),
		Search: param(p, "search"),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, validation.New("status", "Invalid property status")
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, validation.New("type", "Invalid property type")
	}
	return f, nil
}

func (f PropertyFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("properties.status = ?", f.Status)
	}
	if f.Type != "" {
		db = db.Where("properties.type = ?", f.Type)
	}
	if f.Search != "" {
		db = db.Where(ilike([]string{"properties.name", "properties.address", "properties.city"}), likeArgs(f.Search, 3)...)
	}
	return db
}

// AvailableFilter narrows the public listing at GET /api/properties/available.
type AvailableFilter struct {
	Search   string
	City     string
	State    string
	Type     models.PropertyType
	MinRent  *decimal.Decimal
	MaxRent  *decimal.Decimal
	Bedrooms *int
}

func ParseAvailable(p Params) (AvailableFilter, error) {
	f := AvailableFilter{
		Search: param(p, "search"),
		City:   param(p, "city"),
		State:  param(p, "state"),
		Type:   models.PropertyType(param(p, "propertyType", "type")),
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, validation.New("propertyType", "Invalid property type")
	}

	var err error
	if f.MinRent, err = decimalParam(p, "minRent"); err != nil {
		return f, err
	}
	if f.MaxRent, err = decimalParam(p, "maxRent"); err != nil {
		return f, err
	}
	if f.MinRent != nil && f.MaxRent != nil && f.MinRent.GreaterThan(*f.MaxRent) {
		return f, validation.New("minRent", "minRent must not exceed maxRent")
	}

	if raw := param(p, "bedrooms"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			return f, validation.New("bedrooms", "bedrooms must be a non-negative integer")
		}
		f.Bedrooms = &n
	}
	return f, nil
}

func (f AvailableFilter) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("properties.status = ?", models.PropertyAvailable)
	if f.Search != "" {
		db = db.Where(ilike([]string{"properties.name", "properties.address", "properties.description"}), likeArgs(f.Search, 3)...)
	}
	if f.City != "" {
		db = db.Where("properties.city = ?", f.City)
	}
	if f.State != "" {
		db = db.Where("properties.state = ?", f.State)
	}
	if f.Type != "" {
		db = db.Where("properties.type = ?", f.Type)
	}
	if f.Bedrooms != nil {
		db = db.Where("properties.bedrooms = ?", *f.Bedrooms)
	}
	if f.MinRent != nil {
		db = db.Where("properties.rent_amount >= ?", *f.MinRent)
	}
	if f.MaxRent != nil {
		db = db.Where("properties.rent_amount <= ?", *f.MaxRent)
	}
	return db
}

// TenantFilter narrows GET /api/tenants.
type TenantFilter struct {
	Search    string
	KYCStatus models.KYCStatus
}

func ParseTenant(p Params) (TenantFilter, error) {
	f := TenantFilter{
		Search:    param(p, "search"),
		KYCStatus: models.KYCStatus(param(p, "kycStatus", "kyc_status")),
	}
	if f.KYCStatus != "" && !f.KYCStatus.Valid() {
		return f, validation.New("kycStatus", "Invalid KYC status")
	}
	return f, nil
}

func (f TenantFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.KYCStatus != "" {
		db = db.Where("tenant_profiles.kyc_status = ?", f.KYCStatus)
	}
	if f.Search != "" {
		db = db.Where("tenant_profiles.user_id IN (SELECT id FROM users WHERE "+ilike([]string{"name", "email"})+")",
			likeArgs(f.Search, 2)...)
	}
	return db
}

// RentalFilter narrows GET /api/rentals.
type RentalFilter struct {
	Status     models.RentalStatus
	PropertyID *uuid.UUID
}

func ParseRental(p Params) (RentalFilter, error) {
	f := RentalFilter{Status: models.RentalStatus(param(p, "status"))}
	if f.Status != "" && !f.Status.Valid() {
		return f, validation.New("status", "Invalid rental status")
	}
	var err error
	f.PropertyID, err = uuidParam(p, "propertyId")
	return f, err
}

func (f RentalFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("rentals.status = ?", f.Status)
	}
	if f.PropertyID != nil {
		db = db.Where("rentals.property_id = ?", *f.PropertyID)
	}
	return db
}

// PaymentFilter narrows GET /api/rents.
type PaymentFilter struct {
	Status     models.PaymentStatus
	PropertyID *uuid.UUID
	TenantID   *uuid.UUID
}

func ParsePayment(p Params) (PaymentFilter, error) {
	f := PaymentFilter{Status: models.PaymentStatus(param(p, "status"))}
	if f.Status != "" && !f.Status.Valid() {
		return f, validation.New("status", "Invalid payment status")
	}
	var err error
	if f.PropertyID, err = uuidParam(p, "propertyId"); err != nil {
		return f, err
	}
	f.TenantID, err = uuidParam(p, "tenantId")
	return f, err
}

func (f PaymentFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("rent_payments.status = ?", f.Status)
	}
	if f.PropertyID != nil {
		db = db.Where("rent_payments.rental_id IN (SELECT id FROM rentals WHERE property_id = ?)", *f.PropertyID)
	}
	if f.TenantID != nil {
		db = db.Where("rent_payments.rental_id IN (SELECT id FROM rentals WHERE tenant_id = ?)", *f.TenantID)
	}
	return db
}

// DocumentFilter narrows GET /api/documents.
type DocumentFilter struct {
	Status   models.DocumentStatus
	Type     models.DocumentType
	TenantID *uuid.UUID
}

func ParseDocument(p Params) (DocumentFilter, error) {
	f := DocumentFilter{
		Status: models.DocumentStatus(param(p, "status")),
		Type:   models.DocumentType(param(p, "type")),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, validation.New("status", "Invalid document status")
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, validation.New("type", "Invalid document type")
	}
	var err error
	f.TenantID, err = uuidParam(p, "tenantId")
	return f, err
}

func (f DocumentFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("documents.status = ?", f.Status)
	}
	if f.Type != "" {
		db = db.Where("documents.type = ?", f.Type)
	}
	if f.TenantID != nil {
		db = db.Where("documents.tenant_id = ?", *f.TenantID)
	}
	return db
}

// AgreementFilter narrows GET /api/agreements.
type AgreementFilter struct {
	Status   models.AgreementStatus
	RentalID *uuid.UUID
}

func ParseAgreement(p Params) (AgreementFilter, error) {
	f := AgreementFilter{Status: models.AgreementStatus(param(p, "status"))}
	if f.Status != "" && !f.Status.Valid() {
		return f, validation.New("status", "Invalid agreement status")
	}
	var err error
	f.RentalID, err = uuidParam(p, "rentalId")
	return f, err
}

func (f AgreementFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("rent_agreements.status = ?", f.Status)
	}
	if f.RentalID != nil {
		db = db.Where("rent_agreements.rental_id = ?", *f.RentalID)
	}
	return db
}

// param returns the first non-blank value among keys.
func param(p Params, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(p.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

func decimalParam(p Params, key string) (*decimal.Decimal, error) {
	raw := param(p, key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, validation.New(key, key+" must be a non-negative number")
	}
	return &d, nil
}

func uuidParam(p Params, key string) (*uuid.UUID, error) {
	raw := param(p, key)
	if raw == "" {
		return nil, nil
	}
	id, err := validation.ParseUUID(key, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ilike builds a case-insensitive OR over columns that works on both
// Postgres and SQLite.
func ilike(columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// likeEscaper makes %, _ and the escape character itself match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func likeArgs(search string, n int) []interface{} {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pattern
	}
	return args
}
