package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// WizardState is one step of the guided booking flow.
type WizardState string

const (
	StateSelectingProvider WizardState = "selecting_provider"
	StateSelectingDate     WizardState = "selecting_date"
	StateSelectingSlot     WizardState = "selecting_slot"
	StateConfirming        WizardState = "confirming"
	StateCompleted         WizardState = "completed"
	StateCancelled         WizardState = "cancelled"
)

var (
	ErrWizardInvalidState = errors.New("action not allowed in current wizard state")
)

// WizardSession is the serializable state of one booking wizard. All
// transitions are guarded: an action fired in the wrong state returns
// ErrWizardInvalidState and leaves the session untouched. Stepping back or
// re-selecting an earlier choice clears every selection made after it, so
// a session can never hold a slot choice that contradicts its date or
// provider.
type WizardSession struct {
	SessionID    string      `json:"session_id"`
	PatientID    uuid.UUID   `json:"patient_id"`
	State        WizardState `json:"state"`
	ProviderID   *uuid.UUID  `json:"provider_id,omitempty"`
	ProviderName string      `json:"provider_name,omitempty"`
	Date         string      `json:"date,omitempty"`
	StartTime    string      `json:"start_time,omitempty"`
	EndTime      string      `json:"end_time,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewWizardSession starts a wizard at provider selection.
func NewWizardSession(sessionID string, patientID uuid.UUID) *WizardSession {
	return &WizardSession{
		SessionID: sessionID,
		PatientID: patientID,
		State:     StateSelectingProvider,
		CreatedAt: time.Now().UTC(),
	}
}

// SelectProvider picks or re-picks the provider. Re-picking from a later
// step drops the date and slot, which were chosen against the previous
// provider.
func (s *WizardSession) SelectProvider(providerID uuid.UUID, providerName string) error {
	if s.IsTerminal() {
		return ErrWizardInvalidState
	}
	s.ProviderID = &providerID
	s.ProviderName = providerName
	s.Date = ""
	s.StartTime = ""
	s.EndTime = ""
	s.State = StateSelectingDate
	return nil
}

// SelectDate picks or re-picks the date. Re-picking from a later step
// drops the slot, which was chosen against the previous date.
func (s *WizardSession) SelectDate(date string) error {
	switch s.State {
	case StateSelectingDate, StateSelectingSlot, StateConfirming:
	default:
		return ErrWizardInvalidState
	}
	s.Date = date
	s.StartTime = ""
	s.EndTime = ""
	s.State = StateSelectingSlot
	return nil
}

func (s *WizardSession) SelectSlot(startTime, endTime string) error {
	if s.State != StateSelectingSlot {
		return ErrWizardInvalidState
	}
	s.StartTime = startTime
	s.EndTime = endTime
	s.State = StateConfirming
	return nil
}

// Back steps to the previous selection state, clearing the selection that
// belonged to the state being left.
func (s *WizardSession) Back() error {
	switch s.State {
	case StateConfirming:
		s.StartTime = ""
		s.EndTime = ""
		s.State = StateSelectingSlot
	case StateSelectingSlot:
		s.Date = ""
		s.State = StateSelectingDate
	case StateSelectingDate:
		s.ProviderID = nil
		s.ProviderName = ""
		s.State = StateSelectingProvider
	default:
		return ErrWizardInvalidState
	}
	return nil
}

// Complete is fired after the booking succeeded.
func (s *WizardSession) Complete() error {
	if s.State != StateConfirming {
		return ErrWizardInvalidState
	}
	s.State = StateCompleted
	return nil
}

// Cancel abandons the wizard from any non-terminal state.
func (s *WizardSession) Cancel() error {
	if s.IsTerminal() {
		return ErrWizardInvalidState
	}
	s.State = StateCancelled
	return nil
}

func (s *WizardSession) IsTerminal() bool {
	return s.State == StateCompleted || s.State == StateCancelled
}
