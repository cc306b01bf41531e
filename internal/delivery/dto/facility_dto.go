package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type DayHoursRequest struct {
	Open   string `json:"open" validate:"omitempty,clock"`
	Close  string `json:"close" validate:"omitempty,clock"`
	Closed bool   `json:"closed"`
}

type CreateFacilityRequest struct {
	Name                 string             `json:"name" validate:"required,min=2"`
	Address              string             `json:"address" validate:"omitempty"`
	Latitude             *float64           `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64           `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ConsultationDuration int                `json:"consultation_duration" validate:"required,gte=5,lte=240"`
	ConsultationFee      decimal.Decimal    `json:"consultation_fee"`
	Hours                *[7]DayHoursRequest `json:"hours" validate:"omitempty"`
}

type UpdateFacilityRequest struct {
	Name                 string             `json:"name" validate:"required,min=2"`
	Address              string             `json:"address" validate:"omitempty"`
	Latitude             *float64           `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64           `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ConsultationDuration int                `json:"consultation_duration" validate:"required,gte=5,lte=240"`
	ConsultationFee      decimal.Decimal    `json:"consultation_fee"`
	Hours                *[7]DayHoursRequest `json:"hours" validate:"omitempty"`
}

// Response DTOs

type DayHoursResponse struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type FacilityResponse struct {
	ID                   uuid.UUID           `json:"id"`
	AdminID              uuid.UUID           `json:"admin_id"`
	Name                 string              `json:"name"`
	Address              string              `json:"address,omitempty"`
	Latitude             *float64            `json:"latitude,omitempty"`
	Longitude            *float64            `json:"longitude,omitempty"`
	ConsultationDuration int                 `json:"consultation_duration"`
	ConsultationFee      decimal.Decimal     `json:"consultation_fee"`
	Hours                [7]DayHoursResponse `json:"hours"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}
