package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a doctor offering consultations at one facility. Identity is
// immutable; name and specialty may be updated by the owning administrator.
type Provider struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FacilityID uuid.UUID `gorm:"type:uuid;not null;index" json:"facility_id"`
	FullName   string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialty  string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Facility Facility `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
}

func (Provider) TableName() string {
	return "providers"
}

// ProviderFilter is a domain-level filter for querying providers.
// Used by the repository layer to avoid coupling with delivery DTOs.
type ProviderFilter struct {
	FacilityID *uuid.UUID
	Specialty  string // ILIKE match
	Name       string // ILIKE match
}
