package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
	"go-hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type WizardHandler struct {
	wizardUsecase usecase.WizardUsecase
	validator     *validator.CustomValidator
}

func NewWizardHandler(wizardUsecase usecase.WizardUsecase, validator *validator.CustomValidator) *WizardHandler {
	return &WizardHandler{
		wizardUsecase: wizardUsecase,
		validator:     validator,
	}
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Start(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start booking wizard")
		return
	}

	response.Success(w, http.StatusCreated, "Booking wizard started", state)
}

func (h *WizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.GetState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeWizardError(w, err, "Failed to get wizard state")
		return
	}

	response.Success(w, http.StatusOK, "Wizard state retrieved", state)
}

func (h *WizardHandler) SelectProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.WizardSelectProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SelectProvider(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeWizardError(w, err, "Failed to select provider")
		return
	}

	response.Success(w, http.StatusOK, "Provider selected", state)
}

func (h *WizardHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dto.WizardSelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SelectDate(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeWizardError(w, err, "Failed to select date")
		return
	}

	response.Success(w, http.StatusOK, "Date selected", state)
}

func (h *WizardHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.WizardSelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SelectSlot(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeWizardError(w, err, "Failed to select slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot selected", state)
}

// Confirm books the selected slot. A 409 means another booking won the
// slot; the wizard has already stepped back to slot selection and GetState
// returns fresh options.
func (h *WizardHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Confirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeWizardError(w, err, "Failed to confirm booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed", state)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeWizardError(w, err, "Failed to step back")
		return
	}

	response.Success(w, http.StatusOK, "Stepped back", state)
}

func (h *WizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.wizardUsecase.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeWizardError(w, err, "Failed to cancel wizard")
		return
	}

	response.Success(w, http.StatusOK, "Wizard cancelled", nil)
}

func (h *WizardHandler) writeWizardError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrWizardSessionNotFound:
		response.NotFound(w, "Wizard session not found or expired")
	case usecase.ErrWizardNotOwned:
		response.Forbidden(w, "Wizard session does not belong to you")
	case usecase.ErrWizardInvalidState:
		response.Conflict(w, "Action not allowed in current wizard state")
	case usecase.ErrSlotConflict, usecase.ErrSlotAlreadyBooked:
		response.Conflict(w, "Slot is already taken, pick another slot")
	case usecase.ErrSlotNotAvailable:
		response.Conflict(w, "Slot is no longer available")
	case usecase.ErrProviderNotFound:
		response.NotFound(w, "Provider not found")
	case usecase.ErrDateInPast:
		response.Error(w, http.StatusUnprocessableEntity, "Cannot book a past date", nil)
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
