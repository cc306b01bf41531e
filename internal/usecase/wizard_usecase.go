package usecase

import (
	"context"
	"errors"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWizardSessionNotFound = errors.New("wizard session not found or expired")
	ErrWizardNotOwned        = errors.New("wizard session does not belong to you")
)

type WizardUsecase interface {
	Start(ctx context.Context) (*dto.WizardStateResponse, error)
	GetState(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	SelectProvider(ctx context.Context, sessionID string, req *dto.WizardSelectProviderRequest) (*dto.WizardStateResponse, error)
	SelectDate(ctx context.Context, sessionID string, req *dto.WizardSelectDateRequest) (*dto.WizardStateResponse, error)
	SelectSlot(ctx context.Context, sessionID string, req *dto.WizardSelectSlotRequest) (*dto.WizardStateResponse, error)
	Confirm(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Back(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Cancel(ctx context.Context, sessionID string) error
}

type wizardUsecase struct {
	log             *logrus.Logger
	wizardStore     service.WizardStore
	providerUsecase ProviderUsecase
	availability    AvailabilityUsecase
	bookingUsecase  BookingUsecase
}

func NewWizardUsecase(
	log *logrus.Logger,
	wizardStore service.WizardStore,
	providerUsecase ProviderUsecase,
	availability AvailabilityUsecase,
	bookingUsecase BookingUsecase,
) WizardUsecase {
	return &wizardUsecase{
		log:             log,
		wizardStore:     wizardStore,
		providerUsecase: providerUsecase,
		availability:    availability,
		bookingUsecase:  bookingUsecase,
	}
}

func (u *wizardUsecase) Start(ctx context.Context) (*dto.WizardStateResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	session := NewWizardSession(uuid.NewString(), patientID)
	if err := u.wizardStore.Save(ctx, session.SessionID, session); err != nil {
		return nil, err
	}

	return u.stateResponse(ctx, session)
}

func (u *wizardUsecase) GetState(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.stateResponse(ctx, session)
}

func (u *wizardUsecase) SelectProvider(ctx context.Context, sessionID string, req *dto.WizardSelectProviderRequest) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	provider, err := u.providerUsecase.GetProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	if err := session.SelectProvider(provider.ID, provider.FullName); err != nil {
		return nil, err
	}
	if err := u.wizardStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return u.stateResponse(ctx, session)
}

func (u *wizardUsecase) SelectDate(ctx context.Context, sessionID string, req *dto.WizardSelectDateRequest) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.SelectDate(req.Date); err != nil {
		return nil, err
	}
	if err := u.wizardStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return u.stateResponse(ctx, session)
}

func (u *wizardUsecase) SelectSlot(ctx context.Context, sessionID string, req *dto.WizardSelectSlotRequest) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != StateSelectingSlot {
		return nil, ErrWizardInvalidState
	}

	// The slot must still be open right now; a stale pick fails here
	// instead of at confirmation.
	slot, err := u.findOpenSlot(ctx, session, req.StartTime)
	if err != nil {
		return nil, err
	}

	if err := session.SelectSlot(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}
	if err := u.wizardStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return u.stateResponse(ctx, session)
}

// Confirm books the selected slot. On a conflict the wizard drops back to
// slot selection and saves that state before returning the error, so the
// next GetState shows fresh open slots.
func (u *wizardUsecase) Confirm(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != StateConfirming {
		return nil, ErrWizardInvalidState
	}

	consultation, err := u.bookingUsecase.BookConsultation(ctx, &dto.BookConsultationRequest{
		ProviderID: *session.ProviderID,
		Date:       session.Date,
		StartTime:  session.StartTime,
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrSlotAlreadyBooked) {
			if backErr := session.Back(); backErr == nil {
				if saveErr := u.wizardStore.Save(ctx, sessionID, session); saveErr != nil {
					u.log.Warnf("Failed to save wizard session after conflict: %+v", saveErr)
				}
			}
		}
		return nil, err
	}

	if err := session.Complete(); err != nil {
		return nil, err
	}
	if err := u.wizardStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	resp, err := u.stateResponse(ctx, session)
	if err != nil {
		return nil, err
	}
	resp.Consultation = consultation
	return resp, nil
}

func (u *wizardUsecase) Back(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Back(); err != nil {
		return nil, err
	}
	if err := u.wizardStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return u.stateResponse(ctx, session)
}

func (u *wizardUsecase) Cancel(ctx context.Context, sessionID string) error {
	session, err := u.loadOwnedSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := session.Cancel(); err != nil {
		return err
	}

	return u.wizardStore.Delete(ctx, sessionID)
}

func (u *wizardUsecase) loadOwnedSession(ctx context.Context, sessionID string) (*WizardSession, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	var session WizardSession
	if err := u.wizardStore.Find(ctx, sessionID, &session); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, ErrWizardSessionNotFound
		}
		return nil, err
	}
	if session.PatientID != patientID {
		return nil, ErrWizardNotOwned
	}

	return &session, nil
}

// stateResponse builds the step payload: the option list a client needs
// for the session's current state rides along with the state itself.
func (u *wizardUsecase) stateResponse(ctx context.Context, session *WizardSession) (*dto.WizardStateResponse, error) {
	resp := &dto.WizardStateResponse{
		SessionID:    session.SessionID,
		State:        string(session.State),
		ProviderID:   session.ProviderID,
		ProviderName: session.ProviderName,
		Date:         session.Date,
		StartTime:    session.StartTime,
		EndTime:      session.EndTime,
	}

	switch session.State {
	case StateSelectingProvider:
		providers, err := u.providerUsecase.GetAllProviders(ctx, nil)
		if err != nil {
			return nil, err
		}
		resp.Providers = providers.Providers
	case StateSelectingSlot:
		availability, err := u.availability.ListOpenSlots(ctx, *session.ProviderID, session.Date)
		if err != nil {
			return nil, err
		}
		resp.Slots = availability.Slots
	}

	return resp, nil
}

func (u *wizardUsecase) findOpenSlot(ctx context.Context, session *WizardSession, startTime string) (*dto.SlotResponse, error) {
	availability, err := u.availability.ListOpenSlots(ctx, *session.ProviderID, session.Date)
	if err != nil {
		return nil, err
	}
	for i := range availability.Slots {
		if availability.Slots[i].StartTime == startTime {
			return &availability.Slots[i], nil
		}
	}
	return nil, ErrSlotNotAvailable
}
