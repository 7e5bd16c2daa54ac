package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable workshop service. Names and descriptions are
// stored in both languages so listings never need re-translation.
type Service struct {
	ID                      string    `gorm:"type:uuid;primaryKey" json:"id"`
	NameAr                  string    `gorm:"not null" json:"nameAr"`
	NameEn                  string    `gorm:"not null" json:"nameEn"`
	DescAr                  *string   `json:"descAr,omitempty"`
	DescEn                  *string   `json:"descEn,omitempty"`
	Price                   float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	ExpectedDurationMinutes *int      `json:"expectedDurationMinutes,omitempty"`
	SpecializationID        *string   `gorm:"type:uuid" json:"specializationId,omitempty"`
	IsActive                bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SparePart struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	NameAr    string    `gorm:"not null" json:"nameAr"`
	NameEn    string    `gorm:"not null" json:"nameEn"`
	PartCode  *string   `json:"partCode,omitempty"`
	UnitPrice float64   `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *SparePart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Specialization is an engineer discipline (electric, mechanic,
// battery, ...) referenced by services and engineer profiles.
type Specialization struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Code   string `gorm:"size:50;not null;unique" json:"code"`
	NameAr string `gorm:"not null" json:"nameAr"`
	NameEn string `gorm:"not null" json:"nameEn"`
}

func (s *Specialization) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
