package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

// SlotResponse is one bookable slot as shown to a patient. AssignmentID is
// set only when the slot comes from a stored assignment rather than being
// derived from the facility's opening hours.
type SlotResponse struct {
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`
	Date         string     `json:"date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	PatternLabel string     `json:"pattern_label,omitempty"`
}

type AvailabilityResponse struct {
	ProviderID uuid.UUID      `json:"provider_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	Total      int            `json:"total"`
}
