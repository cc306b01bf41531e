package repository

import (
	"time"

	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Consultation, error)
	// FindActiveByProviderAndDate returns non-cancelled consultations for
	// the provider on the given date, used for conflict checks and for
	// filtering open slots.
	FindActiveByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Consultation, error)
	// CancelIfActive flips a consultation to cancelled only while it is
	// still active. Zero affected rows means it was already cancelled.
	CancelIfActive(db *gorm.DB, id uuid.UUID) (int64, error)
}
