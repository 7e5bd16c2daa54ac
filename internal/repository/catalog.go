package repository

import (
	"github.com/yemenhybrid/workshop-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type CatalogRepo interface {
	ListServices() ([]catalog.Service, error)
	GetServiceByID(id string) (catalog.Service, error)
	CreateService(s *catalog.Service) error
	UpdateServiceFields(id string, fields map[string]interface{}) error
	DeactivateService(id string) error

	ListSpareParts() ([]catalog.SparePart, error)
	GetSparePartByID(id string) (catalog.SparePart, error)
	CreateSparePart(p *catalog.SparePart) error
	UpdateSparePartFields(id string, fields map[string]interface{}) error
	DeactivateSparePart(id string) error

	ListSpecializations() ([]catalog.Specialization, error)
	GetSpecializationByID(id string) (catalog.Specialization, error)
	CreateSpecialization(s *catalog.Specialization) error
	UpdateSpecializationFields(id string, fields map[string]interface{}) error
	DeleteSpecialization(id string) error

	WithTx(tx *gorm.DB) CatalogRepo
}

type DBCatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *DBCatalogRepo {
	return &DBCatalogRepo{db: db}
}

func (r *DBCatalogRepo) WithTx(tx *gorm.DB) CatalogRepo {
	return &DBCatalogRepo{db: tx}
}

func (r *DBCatalogRepo) ListServices() ([]catalog.Service, error) {
	var services []catalog.Service
	err := r.db.Order("created_at").Find(&services).Error
	return services, err
}

func (r *DBCatalogRepo) GetServiceByID(id string) (catalog.Service, error) {
	var s catalog.Service
	err := r.db.Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *DBCatalogRepo) CreateService(s *catalog.Service) error {
	return r.db.Create(s).Error
}

func (r *DBCatalogRepo) UpdateServiceFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&catalog.Service{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBCatalogRepo) DeactivateService(id string) error {
	return r.db.Model(&catalog.Service{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *DBCatalogRepo) ListSpareParts() ([]catalog.SparePart, error) {
	var parts []catalog.SparePart
	err := r.db.Order("created_at").Find(&parts).Error
	return parts, err
}

func (r *DBCatalogRepo) GetSparePartByID(id string) (catalog.SparePart, error) {
	var p catalog.SparePart
	err := r.db.Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBCatalogRepo) CreateSparePart(p *catalog.SparePart) error {
	return r.db.Create(p).Error
}

func (r *DBCatalogRepo) UpdateSparePartFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&catalog.SparePart{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBCatalogRepo) DeactivateSparePart(id string) error {
	return r.db.Model(&catalog.SparePart{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *DBCatalogRepo) ListSpecializations() ([]catalog.Specialization, error) {
	var specs []catalog.Specialization
	err := r.db.Order("code").Find(&specs).Error
	return specs, err
}

func (r *DBCatalogRepo) GetSpecializationByID(id string) (catalog.Specialization, error) {
	var s catalog.Specialization
	err := r.db.Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *DBCatalogRepo) CreateSpecialization(s *catalog.Specialization) error {
	return r.db.Create(s).Error
}

func (r *DBCatalogRepo) UpdateSpecializationFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&catalog.Specialization{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBCatalogRepo) DeleteSpecialization(id string) error {
	return r.db.Delete(&catalog.Specialization{}, "id = ?", id).Error
}
