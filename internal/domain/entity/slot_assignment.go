package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotAssignmentStatus is the lifecycle state of a declared availability slot.
type SlotAssignmentStatus string

const (
	SlotAssigned  SlotAssignmentStatus = "assigned"
	SlotReserved  SlotAssignmentStatus = "reserved"
	SlotBooked    SlotAssignmentStatus = "booked"
	SlotCancelled SlotAssignmentStatus = "cancelled"
)

// CanTransitionTo encodes the forward-only lifecycle:
// assigned -> reserved -> booked, with cancellation allowed from any
// non-cancelled state. Cancelling a booked slot must also cancel its
// linked consultation; callers enforce that in the same transaction.
func (s SlotAssignmentStatus) CanTransitionTo(to SlotAssignmentStatus) bool {
	switch s {
	case SlotAssigned:
		return to == SlotReserved || to == SlotBooked || to == SlotCancelled
	case SlotReserved:
		return to == SlotBooked || to == SlotCancelled
	case SlotBooked:
		return to == SlotCancelled
	default:
		return false
	}
}

// SlotAssignment is a persisted declaration that a provider is available
// for one concrete slot on one date. Rows are created by bulk assignment
// (one row per generated candidate, tagged with the pattern ID that
// produced it, which is what makes re-assignment idempotent) and consumed
// by booking.
type SlotAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_slot_provider_date" json:"provider_id"`
	FacilityID uuid.UUID `gorm:"type:uuid;not null;index" json:"facility_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_slot_provider_date" json:"date"`
	// PatternID is the stable recurrence-pattern identifier, e.g.
	// "period:matin:08:00-12:00". Empty for ad-hoc single-slot assignments.
	PatternID    string               `gorm:"type:varchar(100);index" json:"pattern_id,omitempty"`
	PatternLabel string               `gorm:"type:varchar(100)" json:"pattern_label,omitempty"`
	StartTime    string               `gorm:"type:time;not null" json:"start_time"`
	EndTime      string               `gorm:"type:time;not null" json:"end_time"`
	Status       SlotAssignmentStatus `gorm:"type:slot_status;not null;default:'assigned';index" json:"status"`
	// ConsultationID links the consultation that consumed this slot.
	ConsultationID *uuid.UUID `gorm:"type:uuid;index" json:"consultation_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Facility Facility `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
}

func (SlotAssignment) TableName() string {
	return "slot_assignments"
}

// AfterFind normalizes the TIME columns back to HH:MM on every read, so
// stored slots compare equal to generated and requested ones.
func (a *SlotAssignment) AfterFind(*gorm.DB) error {
	a.StartTime = NormalizeClock(a.StartTime)
	a.EndTime = NormalizeClock(a.EndTime)
	return nil
}

// IsOpen reports whether a patient could still book this slot.
func (a *SlotAssignment) IsOpen() bool {
	return a.Status == SlotAssigned
}

// IsBooked reports whether a consultation has consumed this slot.
func (a *SlotAssignment) IsBooked() bool {
	return a.Status == SlotBooked
}

// SlotFilter is a domain-level filter for querying slot assignments.
type SlotFilter struct {
	ProviderID uuid.UUID
	Dates      []time.Time // empty means any date
	PatternID  string      // empty means any pattern
}
