package services

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/contract"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultTemplateName = "Standard Residential Lease"

// Render formats.
const (
	FormatText = "text"
	FormatHTML = "html"
)

type AgreementService struct {
	db    *gorm.DB
	authz *access.Authorizer
}

func NewAgreementService(db *gorm.DB, authz *access.Authorizer) *AgreementService {
	return &AgreementService{db: db, authz: authz}
}

func (s *AgreementService) List(p access.Principal, f filter.AgreementFilter) ([]models.RentAgreement, error) {
	scope, err := s.authz.Scope(p, access.ResourceAgreement, access.ActionRead)
	if err != nil {
		return nil, err
	}

	agreements := []models.RentAgreement{}
	err = s.withDetails().Scopes(scope, f.Apply).
		Order("rent_agreements.created_at DESC").
		Find(&agreements).Error
	return agreements, err
}

func (s *AgreementService) Get(p access.Principal, id uuid.UUID) (*models.RentAgreement, error) {
	if err := s.authz.Authorize(p, access.ResourceAgreement, id, access.ActionRead); err != nil {
		return nil, err
	}

	var agreement models.RentAgreement
	if err := s.withDetails().First(&agreement, "rent_agreements.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agreement, nil
}

// Create drafts an agreement for one of the caller's rentals. Status
// defaults to DRAFT; only DRAFT and ACTIVE are accepted on creation.
func (s *AgreementService) Create(p access.Principal, req *dto.CreateAgreementRequest) (*models.RentAgreement, error) {
	if req.RentalID == uuid.Nil {
		return nil, validation.New("rental_id", "Rental is required")
	}
	if err := s.authz.Authorize(p, access.ResourceRental, req.RentalID, access.ActionWrite); err != nil {
		return nil, err
	}

	start, end, err := agreementPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validation.First(
		validation.Positive("rent_amount", req.RentAmount, "Rent amount must be positive"),
		validation.NonNegative("security_deposit", req.SecurityDeposit, "Security deposit must not be negative"),
		validation.Required("terms", req.Terms, "Terms are required"),
	); err != nil {
		return nil, err
	}

	status := models.AgreementDraft
	if req.Status != nil {
		status = *req.Status
	}
	if status != models.AgreementDraft && status != models.AgreementActive {
		return nil, validation.New("status", "New agreements must be DRAFT or ACTIVE")
	}

	name := strings.TrimSpace(req.TemplateName)
	if name == "" {
		name = defaultTemplateName
	}
	vars := req.TemplateVariables
	if vars == nil {
		vars = map[string]string{}
	}

	agreement := models.RentAgreement{
		RentalID:          req.RentalID,
		TemplateName:      name,
		StartDate:         start,
		EndDate:           end,
		RentAmount:        req.RentAmount,
		SecurityDeposit:   req.SecurityDeposit,
		Terms:             req.Terms,
		TemplateVariables: datatypes.NewJSONType(vars),
		Status:            status,
		Version:           1,
	}
	if err := s.db.Create(&agreement).Error; err != nil {
		return nil, err
	}
	return &agreement, nil
}

// Update applies a status transition and, while the agreement is still a
// DRAFT, content edits. A content edit bumps the version. The write is one
// UPDATE guarded by the status it was validated against.
func (s *AgreementService) Update(p access.Principal, id uuid.UUID, req *dto.UpdateAgreementRequest) (*models.RentAgreement, error) {
	if err := s.authz.Authorize(p, access.ResourceAgreement, id, access.ActionWrite); err != nil {
		return nil, err
	}

	var current models.RentAgreement
	if err := s.db.First(&current, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates, err := agreementContentUpdates(&current, req)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if current.Status != models.AgreementDraft {
			return nil, ErrAgreementLocked
		}
		updates["version"] = gorm.Expr("version + 1")
	}

	if req.Status != nil && *req.Status != current.Status {
		if !req.Status.Valid() {
			return nil, validation.New("status", "Invalid agreement status")
		}
		if !current.Status.CanTransition(*req.Status) {
			return nil, ErrAgreementTransition
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.RentAgreement{}).
			Where("id = ? AND status = ?", id, current.Status).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrAgreementTransition
		}
	}

	return s.Get(p, id)
}

// Delete removes a DRAFT agreement. Any other status is left untouched.
func (s *AgreementService) Delete(p access.Principal, id uuid.UUID) error {
	if err := s.authz.Authorize(p, access.ResourceAgreement, id, access.ActionWrite); err != nil {
		return err
	}

	res := s.db.Where("id = ? AND status = ?", id, models.AgreementDraft).Delete(&models.RentAgreement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAgreementNotDraft
	}
	return nil
}

// Render fills the agreement's terms with its template variables. HTML
// output escapes both the template and every value.
func (s *AgreementService) Render(p access.Principal, id uuid.UUID, format string) (*dto.RenderedAgreementResponse, error) {
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatHTML {
		return nil, validation.New("format", "Format must be text or html")
	}

	agreement, err := s.Get(p, id)
	if err != nil {
		return nil, err
	}

	vars := agreement.Variables()
	content := contract.Render(agreement.Terms, vars)
	if format == FormatHTML {
		content = contract.RenderHTML(agreement.Terms, vars)
	}
	return &dto.RenderedAgreementResponse{
		AgreementID: agreement.ID,
		Format:      format,
		Content:     content,
		Missing:     contract.Missing(agreement.Terms, vars),
	}, nil
}

func (s *AgreementService) withDetails() *gorm.DB {
	return s.db.Preload("Rental.Property").Preload("Rental.Tenant.User")
}

func agreementPeriod(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := validation.ParseDate("start_date", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := validation.ParseDate("end_date", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, validation.New("end_date", "End date must be after start date")
	}
	return start, end, nil
}

func agreementContentUpdates(current *models.RentAgreement, req *dto.UpdateAgreementRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		t, err := validation.ParseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		start = t
		updates["start_date"] = t
	}
	if req.EndDate != nil {
		t, err := validation.ParseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		end = t
		updates["end_date"] = t
	}
	if !end.After(start) {
		return nil, validation.New("end_date", "End date must be after start date")
	}

	if req.TemplateName != nil {
		updates["template_name"] = strings.TrimSpace(*req.TemplateName)
	}
	if req.RentAmount != nil {
		if err := validation.Positive("rent_amount", *req.RentAmount, "Rent amount must be positive"); err != nil {
			return nil, err
		}
		updates["rent_amount"] = *req.RentAmount
	}
	if req.SecurityDeposit != nil {
		if err := validation.NonNegative("security_deposit", *req.SecurityDeposit, "Security deposit must not be negative"); err != nil {
			return nil, err
		}
		updates["security_deposit"] = *req.SecurityDeposit
	}
	if req.Terms != nil {
		if err := validation.Required("terms", *req.Terms, "Terms must not be empty"); err != nil {
			return nil, err
		}
		updates["terms"] = *req.Terms
	}
	if req.TemplateVariables != nil {
		updates["template_variables"] = datatypes.NewJSONType(req.TemplateVariables)
	}
	return updates, nil
}
