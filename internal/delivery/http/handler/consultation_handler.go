package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
	"go-hospital-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewConsultationHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// BookConsultation books a slot for the logged-in patient
// @Summary Book a consultation
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookConsultationRequest true "Booking Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /consultations [post]
func (h *ConsultationHandler) BookConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.BookConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.bookingUsecase.BookConsultation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrSlotConflict, usecase.ErrSlotAlreadyBooked:
			response.Conflict(w, "Slot is already taken")
		case usecase.ErrSlotNotAvailable:
			response.Error(w, http.StatusUnprocessableEntity, "Slot is not available for booking", nil)
		case usecase.ErrDateInPast:
			response.Error(w, http.StatusUnprocessableEntity, "Cannot book a past date", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to book consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation booked successfully", consultation)
}

// CancelConsultation cancels one of the patient's consultations.
func (h *ConsultationHandler) CancelConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	if err := h.bookingUsecase.CancelConsultation(r.Context(), consultationID); err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrConsultationNotOwned:
			response.Forbidden(w, "Consultation does not belong to you")
		case usecase.ErrConsultationAlreadyCancelled:
			response.Conflict(w, "Consultation is already cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation cancelled successfully", nil)
}

// GetMyConsultations returns the patient's booking history.
func (h *ConsultationHandler) GetMyConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.bookingUsecase.GetMyConsultations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}
