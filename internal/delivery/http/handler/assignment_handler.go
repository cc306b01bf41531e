package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
	"go-hospital-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

// AssignSlots expands a pattern over dates and stores the resulting slots
// @Summary Bulk assign availability slots
// @Tags Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssignSlotsRequest true "Assignment Request"
// @Success 201 {object} response.Response
// @Router /admin/slots/assign [post]
func (h *AssignmentHandler) AssignSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.assignmentUsecase.AssignSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Provider does not belong to your facility")
		case usecase.ErrInvalidPattern, usecase.ErrNoCandidateSlots:
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to assign slots")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slots assigned successfully", result)
}

// UnassignSlots removes matching open slots; the batch fails whole if any
// matching slot is booked.
func (h *AssignmentHandler) UnassignSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.UnassignSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.assignmentUsecase.UnassignSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Provider does not belong to your facility")
		case usecase.ErrSlotAlreadyBooked:
			response.Conflict(w, "Batch contains booked slots, cancel those bookings first")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to unassign slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots unassigned successfully", result)
}

// CancelSlot invalidates one slot and its linked consultation if any.
func (h *AssignmentHandler) CancelSlot(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot assignment ID", nil)
		return
	}

	if err := h.assignmentUsecase.CancelBookedSlot(r.Context(), assignmentID); err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot assignment not found")
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Slot does not belong to your facility")
		default:
			response.InternalServerError(w, "Failed to cancel slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot cancelled successfully", nil)
}

// GetProviderSlots lists a provider's slot assignments for the dates given
// as ?dates=YYYY-MM-DD,YYYY-MM-DD.
func (h *AssignmentHandler) GetProviderSlots(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	var dates []string
	if raw := r.URL.Query().Get("dates"); raw != "" {
		dates = strings.Split(raw, ",")
	}

	result, err := h.assignmentUsecase.GetProviderSlots(r.Context(), providerID, dates)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Provider does not belong to your facility")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", result)
}
