package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type WizardSelectProviderRequest struct {
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
}

type WizardSelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type WizardSelectSlotRequest struct {
	StartTime string `json:"start_time" validate:"required,clock"`
}

// Response DTOs

// WizardStateResponse is the wizard session after a step. Exactly the
// fields relevant to the current state are populated: provider options
// while selecting a provider, open slots while selecting a slot, and the
// consultation once completed.
type WizardStateResponse struct {
	SessionID    string                `json:"session_id"`
	State        string                `json:"state"`
	ProviderID   *uuid.UUID            `json:"provider_id,omitempty"`
	ProviderName string                `json:"provider_name,omitempty"`
	Date         string                `json:"date,omitempty"`
	StartTime    string                `json:"start_time,omitempty"`
	EndTime      string                `json:"end_time,omitempty"`
	Providers    []ProviderResponse    `json:"providers,omitempty"`
	Slots        []SlotResponse        `json:"slots,omitempty"`
	Consultation *ConsultationResponse `json:"consultation,omitempty"`
}
