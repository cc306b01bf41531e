package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// PatternRequest describes a recurrence pattern to expand into slots.
// Interval minutes are required for kind "interval" and ignored for
// kind "period".
type PatternRequest struct {
	Kind            string `json:"kind" validate:"required,oneof=period interval"`
	Name            string `json:"name" validate:"required,min=1,max=50"`
	StartTime       string `json:"start_time" validate:"required,clock"`
	EndTime         string `json:"end_time" validate:"required,clock"`
	IntervalMinutes int    `json:"interval_minutes" validate:"omitempty,gte=5,lte=240"`
}

type AssignSlotsRequest struct {
	ProviderID uuid.UUID      `json:"provider_id" validate:"required"`
	Dates      []string       `json:"dates" validate:"required,min=1,max=62,dive,datetime=2006-01-02"`
	Pattern    PatternRequest `json:"pattern" validate:"required"`
}

type UnassignSlotsRequest struct {
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	Dates      []string  `json:"dates" validate:"required,min=1,max=62,dive,datetime=2006-01-02"`
	PatternID  string    `json:"pattern_id" validate:"omitempty"`
}

// Response DTOs

type SlotAssignmentResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	Date         string    `json:"date"`
	PatternID    string    `json:"pattern_id,omitempty"`
	PatternLabel string    `json:"pattern_label,omitempty"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssignSlotsResponse reports what the batch actually did: slots already
// occupied by an earlier assignment are skipped, not errors.
type AssignSlotsResponse struct {
	Created     int                      `json:"created"`
	Skipped     int                      `json:"skipped"`
	Assignments []SlotAssignmentResponse `json:"assignments"`
}

type UnassignSlotsResponse struct {
	Removed int `json:"removed"`
}

type SlotAssignmentListResponse struct {
	Assignments []SlotAssignmentResponse `json:"assignments"`
	Total       int                      `json:"total"`
}
