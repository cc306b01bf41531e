package repository

import (
	"errors"
	"time"

	"go-hospital-booking/internal/domain/entity"
	domainRepo "go-hospital-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Where("patient_id = ?", patientID).
		Order("date DESC, start_time DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindActiveByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Where("provider_id = ? AND date = ? AND status != ?",
		providerID, date, entity.ConsultationStatusCancelled).
		Order("start_time ASC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// CancelIfActive atomically cancels a consultation ONLY if it's not already
// cancelled. Returns affected rows: 1 = success, 0 = already cancelled
// (prevents double-cancel race).
func (r *consultationRepository) CancelIfActive(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Consultation{}).
		Where("id = ? AND status != ?", id, entity.ConsultationStatusCancelled).
		Update("status", entity.ConsultationStatusCancelled)
	return result.RowsAffected, result.Error
}
