package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultationStatus represents the status of a consultation
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Consultation is a confirmed booking linking one patient to one provider
// at one slot. Provider and facility names are denormalized at booking
// time, and the end time is frozen from the facility's duration at that
// moment, so a later change to the facility default never rewrites an
// existing booking.
//
// The core invariant: at most one non-cancelled consultation may exist per
// (provider, date, start time). A partial unique index enforces it at the
// store level.
type Consultation struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID   uuid.UUID          `gorm:"type:uuid;not null;index:idx_consultation_provider_date" json:"provider_id"`
	ProviderName string             `gorm:"type:varchar(255);not null" json:"provider_name"`
	FacilityID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"facility_id"`
	FacilityName string             `gorm:"type:varchar(255);not null" json:"facility_name"`
	Date         time.Time          `gorm:"type:date;not null;index:idx_consultation_provider_date" json:"date"`
	StartTime    string             `gorm:"type:time;not null" json:"start_time"`
	EndTime      string             `gorm:"type:time;not null" json:"end_time"`
	Status       ConsultationStatus `gorm:"type:consultation_status;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// AfterFind normalizes the TIME columns back to HH:MM on every read.
func (c *Consultation) AfterFind(*gorm.DB) error {
	c.StartTime = NormalizeClock(c.StartTime)
	c.EndTime = NormalizeClock(c.EndTime)
	return nil
}

// IsCancelled checks if the consultation is cancelled
func (c *Consultation) IsCancelled() bool {
	return c.Status == ConsultationStatusCancelled
}

// IsActive reports whether the consultation still occupies its slot.
func (c *Consultation) IsActive() bool {
	return c.Status != ConsultationStatusCancelled
}

// FindSlotConflict returns the first consultation in the list that occupies
// the given start time and is not cancelled, or nil. The booking
// coordinator uses it for the pre-check before its conditional write.
func FindSlotConflict(consultations []Consultation, startTime string) *Consultation {
	for i := range consultations {
		if consultations[i].StartTime == startTime && consultations[i].IsActive() {
			return &consultations[i]
		}
	}
	return nil
}
