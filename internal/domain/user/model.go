package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role defines what a user is allowed to do across the workshop.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleEngineer   Role = "engineer"
	RoleSales      Role = "sales"
	RoleCustomer   Role = "customer"
)

// Language is the user's preferred notification/UI language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

type User struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	FullName          string    `gorm:"size:120;not null" json:"fullName"`
	Email             string    `gorm:"size:120;not null;unique" json:"email"`
	Username          string    `gorm:"size:50;not null;unique" json:"username"`
	HashedPassword    string    `gorm:"size:255;not null" json:"-"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	PreferredLanguage Language  `gorm:"size:5;not null;default:'en'" json:"preferredLanguage"`
	Specialization    *string   `gorm:"size:50" json:"specialization,omitempty"`
	Role              Role      `gorm:"size:20;not null;default:'customer'" json:"role"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// PasswordResetToken stores a reset credential split into a plain
// selector for lookup and a bcrypt-hashed verifier, so validation never
// scans the whole table.
type PasswordResetToken struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;index" json:"userId"`
	Selector       string    `gorm:"size:32;not null;unique" json:"-"`
	HashedVerifier string    `gorm:"size:255;not null" json:"-"`
	ExpiresAt      time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *PasswordResetToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
