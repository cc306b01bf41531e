package repository

import (
	"errors"

	"go-hospital-booking/internal/domain/entity"
	domainRepo "go-hospital-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type providerRepository struct{}

func NewProviderRepository() domainRepo.ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) Create(db *gorm.DB, provider *entity.Provider) error {
	return db.Create(provider).Error
}

func (r *providerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.Preload("Facility").Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// FindAll lists providers with optional facility, specialty and name filters.
func (r *providerRepository) FindAll(db *gorm.DB, filter *entity.ProviderFilter) ([]entity.Provider, error) {
	var providers []entity.Provider
	query := db.Model(&entity.Provider{})

	if filter != nil {
		if filter.FacilityID != nil {
			query = query.Where("facility_id = ?", *filter.FacilityID)
		}
		if filter.Specialty != "" {
			query = query.Where("specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.Name != "" {
			query = query.Where("full_name ILIKE ?", "%"+filter.Name+"%")
		}
	}

	err := query.Preload("Facility").Order("full_name ASC").Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) Update(db *gorm.DB, provider *entity.Provider) error {
	return db.Omit("Facility").Save(provider).Error
}

func (r *providerRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Provider{})
	return affected.RowsAffected, affected.Error
}
