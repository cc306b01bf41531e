package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateProviderRequest struct {
	FacilityID uuid.UUID `json:"facility_id" validate:"required"`
	FullName   string    `json:"full_name" validate:"required,min=2"`
	Specialty  string    `json:"specialty" validate:"required,min=2"`
}

type UpdateProviderRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"required,min=2"`
}

// ListProvidersQuery carries the optional query string filters.
type ListProvidersQuery struct {
	FacilityID *uuid.UUID
	Specialty  string
	Name       string
}

// Response DTOs

type ProviderResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name,omitempty"`
	FullName     string    `json:"full_name"`
	Specialty    string    `json:"specialty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int                `json:"total"`
}
