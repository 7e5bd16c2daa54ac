package application

import (
	"errors"
	"fmt"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/catalog"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repos *repository.Repos
}

func NewCatalogService(repos *repository.Repos) *CatalogService {
	return &CatalogService{Repos: repos}
}

func (s *CatalogService) ListServices() ([]catalog.Service, error) {
	return s.Repos.Catalog.ListServices()
}

func (s *CatalogService) CreateService(input catalog.CreateServiceInput) (catalog.Service, error) {
	if input.SpecializationID != nil {
		if _, err := s.Repos.Catalog.GetSpecializationByID(*input.SpecializationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.Service{}, fmt.Errorf("%w: specialization %s", apperr.ErrNotFound, *input.SpecializationID)
			}
			return catalog.Service{}, err
		}
	}

	svc := catalog.Service{
		NameAr:                  input.NameAr,
		NameEn:                  input.NameEn,
		DescAr:                  input.DescAr,
		DescEn:                  input.DescEn,
		Price:                   input.Price,
		ExpectedDurationMinutes: input.ExpectedDurationMinutes,
		SpecializationID:        input.SpecializationID,
		IsActive:                true,
	}
	if err := s.Repos.Catalog.CreateService(&svc); err != nil {
		return catalog.Service{}, err
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(id string, input catalog.UpdateServiceInput) (catalog.Service, error) {
	if _, err := s.Repos.Catalog.GetServiceByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Service{}, fmt.Errorf("%w: service %s", apperr.ErrNotFound, id)
		}
		return catalog.Service{}, err
	}

	fields := map[string]interface{}{}
	if input.NameAr != nil {
		fields["name_ar"] = *input.NameAr
	}
	if input.NameEn != nil {
		fields["name_en"] = *input.NameEn
	}
	if input.DescAr != nil {
		fields["desc_ar"] = *input.DescAr
	}
	if input.DescEn != nil {
		fields["desc_en"] = *input.DescEn
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.ExpectedDurationMinutes != nil {
		fields["expected_duration_minutes"] = *input.ExpectedDurationMinutes
	}
	if input.SpecializationID != nil {
		fields["specialization_id"] = *input.SpecializationID
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.Repos.Catalog.UpdateServiceFields(id, fields); err != nil {
			return catalog.Service{}, err
		}
	}
	return s.Repos.Catalog.GetServiceByID(id)
}

func (s *CatalogService) DeactivateService(id string) error {
	if _, err := s.Repos.Catalog.GetServiceByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: service %s", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repos.Catalog.DeactivateService(id)
}

func (s *CatalogService) ListSpareParts() ([]catalog.SparePart, error) {
	return s.Repos.Catalog.ListSpareParts()
}

func (s *CatalogService) CreateSparePart(input catalog.CreateSparePartInput) (catalog.SparePart, error) {
	part := catalog.SparePart{
		NameAr:    input.NameAr,
		NameEn:    input.NameEn,
		PartCode:  input.PartCode,
		UnitPrice: input.UnitPrice,
		IsActive:  true,
	}
	if err := s.Repos.Catalog.CreateSparePart(&part); err != nil {
		return catalog.SparePart{}, err
	}
	return part, nil
}

func (s *CatalogService) UpdateSparePart(id string, input catalog.UpdateSparePartInput) (catalog.SparePart, error) {
	if _, err := s.Repos.Catalog.GetSparePartByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.SparePart{}, fmt.Errorf("%w: spare part %s", apperr.ErrNotFound, id)
		}
		return catalog.SparePart{}, err
	}

	fields := map[string]interface{}{}
	if input.NameAr != nil {
		fields["name_ar"] = *input.NameAr
	}
	if input.NameEn != nil {
		fields["name_en"] = *input.NameEn
	}
	if input.PartCode != nil {
		fields["part_code"] = *input.PartCode
	}
	if input.UnitPrice != nil {
		fields["unit_price"] = *input.UnitPrice
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.Repos.Catalog.UpdateSparePartFields(id, fields); err != nil {
			return catalog.SparePart{}, err
		}
	}
	return s.Repos.Catalog.GetSparePartByID(id)
}

func (s *CatalogService) DeactivateSparePart(id string) error {
	if _, err := s.Repos.Catalog.GetSparePartByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: spare part %s", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repos.Catalog.DeactivateSparePart(id)
}

func (s *CatalogService) ListSpecializations() ([]catalog.Specialization, error) {
	return s.Repos.Catalog.ListSpecializations()
}

func (s *CatalogService) CreateSpecialization(input catalog.CreateSpecializationInput) (catalog.Specialization, error) {
	spec := catalog.Specialization{
		Code:   input.Code,
		NameAr: input.NameAr,
		NameEn: input.NameEn,
	}
	if err := s.Repos.Catalog.CreateSpecialization(&spec); err != nil {
		return catalog.Specialization{}, err
	}
	return spec, nil
}

func (s *CatalogService) UpdateSpecialization(id string, input catalog.UpdateSpecializationInput) (catalog.Specialization, error) {
	if _, err := s.Repos.Catalog.GetSpecializationByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Specialization{}, fmt.Errorf("%w: specialization %s", apperr.ErrNotFound, id)
		}
		return catalog.Specialization{}, err
	}

	fields := map[string]interface{}{}
	if input.Code != nil {
		fields["code"] = *input.Code
	}
	if input.NameAr != nil {
		fields["name_ar"] = *input.NameAr
	}
	if input.NameEn != nil {
		fields["name_en"] = *input.NameEn
	}
	if len(fields) > 0 {
		if err := s.Repos.Catalog.UpdateSpecializationFields(id, fields); err != nil {
			return catalog.Specialization{}, err
		}
	}
	return s.Repos.Catalog.GetSpecializationByID(id)
}

func (s *CatalogService) DeleteSpecialization(id string) error {
	if _, err := s.Repos.Catalog.GetSpecializationByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: specialization %s", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repos.Catalog.DeleteSpecialization(id)
}
