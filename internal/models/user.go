package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleLandlord Role = "LANDLORD"
	RoleTenant   Role = "TENANT"
)

func (r Role) Valid() bool {
	return r == RoleLandlord || r == RoleTenant
}

// User owns at most one LandlordProfile or one TenantProfile, matching Role.
type User struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string           `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name            string           `gorm:"size:255" json:"name"`
	Password        string           `gorm:"not null" json:"-"`
	Role            Role             `gorm:"size:20;not null;index" json:"role"`
	EmailVerifiedAt *time.Time       `json:"email_verified_at,omitempty"`
	LandlordProfile *LandlordProfile `gorm:"foreignKey:UserID" json:"landlord_profile,omitempty"`
	TenantProfile   *TenantProfile   `gorm:"foreignKey:UserID" json:"tenant_profile,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// UserSummary is the public projection of a User embedded in other payloads.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
