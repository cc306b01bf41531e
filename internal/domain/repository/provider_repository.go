package repository

import (
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(db *gorm.DB, provider *entity.Provider) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Provider, error)
	FindAll(db *gorm.DB, filter *entity.ProviderFilter) ([]entity.Provider, error)
	Update(db *gorm.DB, provider *entity.Provider) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
