package usecase

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newTestSession(t *testing.T) *WizardSession {
	t.Helper()
	return NewWizardSession("session-1", uuid.New())
}

func advanceToConfirming(t *testing.T, s *WizardSession) uuid.UUID {
	t.Helper()
	providerID := uuid.New()
	if err := s.SelectProvider(providerID, "Dr. Diallo"); err != nil {
		t.Fatalf("SelectProvider: %v", err)
	}
	if err := s.SelectDate("2026-09-15"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if err := s.SelectSlot("09:00", "09:30"); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}
	return providerID
}

func TestWizardHappyPath(t *testing.T) {
	s := newTestSession(t)
	if s.State != StateSelectingProvider {
		t.Fatalf("initial state = %s, want %s", s.State, StateSelectingProvider)
	}

	providerID := advanceToConfirming(t, s)

	if s.State != StateConfirming {
		t.Fatalf("state = %s, want %s", s.State, StateConfirming)
	}
	if s.ProviderID == nil || *s.ProviderID != providerID {
		t.Errorf("provider ID not retained through the flow")
	}
	if s.Date != "2026-09-15" || s.StartTime != "09:00" || s.EndTime != "09:30" {
		t.Errorf("selections not retained: date=%q start=%q end=%q", s.Date, s.StartTime, s.EndTime)
	}

	if err := s.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.State != StateCompleted {
		t.Fatalf("state = %s, want %s", s.State, StateCompleted)
	}
	if !s.IsTerminal() {
		t.Error("completed session should be terminal")
	}
}

func TestWizardGuardsRejectOutOfOrderActions(t *testing.T) {
	tests := []struct {
		name   string
		action func(s *WizardSession) error
	}{
		{"select date before provider", func(s *WizardSession) error { return s.SelectDate("2026-09-15") }},
		{"select slot before provider", func(s *WizardSession) error { return s.SelectSlot("09:00", "09:30") }},
		{"complete before confirming", func(s *WizardSession) error { return s.Complete() }},
		{"back from initial state", func(s *WizardSession) error { return s.Back() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			if err := tt.action(s); !errors.Is(err, ErrWizardInvalidState) {
				t.Errorf("got %v, want ErrWizardInvalidState", err)
			}
			if s.State != StateSelectingProvider {
				t.Errorf("rejected action mutated state to %s", s.State)
			}
		})
	}
}

func TestWizardBackClearsSelections(t *testing.T) {
	s := newTestSession(t)
	advanceToConfirming(t, s)

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.State != StateSelectingSlot {
		t.Fatalf("state = %s, want %s", s.State, StateSelectingSlot)
	}
	if s.StartTime != "" || s.EndTime != "" {
		t.Error("slot selection should be cleared when leaving confirmation")
	}
	if s.Date == "" {
		t.Error("date should survive stepping back one level")
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.State != StateSelectingDate || s.Date != "" {
		t.Errorf("date should be cleared, state=%s date=%q", s.State, s.Date)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.State != StateSelectingProvider || s.ProviderID != nil {
		t.Errorf("provider should be cleared, state=%s", s.State)
	}

	if err := s.Back(); !errors.Is(err, ErrWizardInvalidState) {
		t.Errorf("Back past the first step: got %v, want ErrWizardInvalidState", err)
	}
}

func TestWizardReselectClearsDownstreamSelections(t *testing.T) {
	t.Run("new provider drops date and slot", func(t *testing.T) {
		s := newTestSession(t)
		advanceToConfirming(t, s)

		otherProvider := uuid.New()
		if err := s.SelectProvider(otherProvider, "Dr. Traore"); err != nil {
			t.Fatalf("SelectProvider: %v", err)
		}
		if s.State != StateSelectingDate {
			t.Fatalf("state = %s, want %s", s.State, StateSelectingDate)
		}
		if s.ProviderID == nil || *s.ProviderID != otherProvider {
			t.Error("new provider not recorded")
		}
		if s.Date != "" || s.StartTime != "" || s.EndTime != "" {
			t.Errorf("stale selections survived: date=%q start=%q end=%q", s.Date, s.StartTime, s.EndTime)
		}
	})

	t.Run("new date drops slot but keeps provider", func(t *testing.T) {
		s := newTestSession(t)
		providerID := advanceToConfirming(t, s)

		if err := s.SelectDate("2026-09-16"); err != nil {
			t.Fatalf("SelectDate: %v", err)
		}
		if s.State != StateSelectingSlot {
			t.Fatalf("state = %s, want %s", s.State, StateSelectingSlot)
		}
		if s.ProviderID == nil || *s.ProviderID != providerID {
			t.Error("provider should survive a date change")
		}
		if s.Date != "2026-09-16" {
			t.Errorf("date = %q, want 2026-09-16", s.Date)
		}
		if s.StartTime != "" || s.EndTime != "" {
			t.Errorf("stale slot survived: start=%q end=%q", s.StartTime, s.EndTime)
		}
	})

	t.Run("new date while selecting a slot drops the pending list position", func(t *testing.T) {
		s := newTestSession(t)
		if err := s.SelectProvider(uuid.New(), "Dr. Diallo"); err != nil {
			t.Fatalf("SelectProvider: %v", err)
		}
		if err := s.SelectDate("2026-09-15"); err != nil {
			t.Fatalf("SelectDate: %v", err)
		}
		if err := s.SelectDate("2026-09-17"); err != nil {
			t.Fatalf("re-SelectDate: %v", err)
		}
		if s.State != StateSelectingSlot || s.Date != "2026-09-17" {
			t.Errorf("state=%s date=%q, want %s 2026-09-17", s.State, s.Date, StateSelectingSlot)
		}
	})
}

func TestWizardCancel(t *testing.T) {
	states := []struct {
		name    string
		prepare func(s *WizardSession)
	}{
		{"from selecting provider", func(s *WizardSession) {}},
		{"from selecting date", func(s *WizardSession) {
			_ = s.SelectProvider(uuid.New(), "Dr. Diallo")
		}},
		{"from confirming", func(s *WizardSession) {
			advanceToConfirming(t, s)
		}},
	}

	for _, tt := range states {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			tt.prepare(s)
			if err := s.Cancel(); err != nil {
				t.Fatalf("Cancel: %v", err)
			}
			if s.State != StateCancelled {
				t.Fatalf("state = %s, want %s", s.State, StateCancelled)
			}
		})
	}
}

func TestWizardTerminalStatesAreFrozen(t *testing.T) {
	s := newTestSession(t)
	advanceToConfirming(t, s)
	if err := s.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if err := s.Cancel(); !errors.Is(err, ErrWizardInvalidState) {
		t.Errorf("Cancel after completion: got %v, want ErrWizardInvalidState", err)
	}
	if err := s.Back(); !errors.Is(err, ErrWizardInvalidState) {
		t.Errorf("Back after completion: got %v, want ErrWizardInvalidState", err)
	}
	if err := s.SelectDate("2026-09-16"); !errors.Is(err, ErrWizardInvalidState) {
		t.Errorf("SelectDate after completion: got %v, want ErrWizardInvalidState", err)
	}

	cancelled := newTestSession(t)
	if err := cancelled.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := cancelled.Cancel(); !errors.Is(err, ErrWizardInvalidState) {
		t.Errorf("double Cancel: got %v, want ErrWizardInvalidState", err)
	}
}
