package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookConsultationRequest struct {
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string    `json:"start_time" validate:"required,clock"`
}

// Response DTOs

type ConsultationResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
