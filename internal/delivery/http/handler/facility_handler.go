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

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
	validator       *validator.CustomValidator
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase, validator *validator.CustomValidator) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		validator:       validator,
	}
}

func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.CreateFacility(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create facility")
		return
	}

	response.Success(w, http.StatusCreated, "Facility created successfully", facility)
}

func (h *FacilityHandler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	facilityID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	var req dto.UpdateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.UpdateFacility(r.Context(), facilityID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Facility does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update facility")
		}
		return
	}

	response.Success(w, http.StatusOK, "Facility updated successfully", facility)
}

func (h *FacilityHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	facilityID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	if err := h.facilityUsecase.DeleteFacility(r.Context(), facilityID); err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Facility does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete facility")
		}
		return
	}

	response.Success(w, http.StatusOK, "Facility deleted successfully", nil)
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	facilityID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	facility, err := h.facilityUsecase.GetFacility(r.Context(), facilityID)
	if err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		default:
			response.InternalServerError(w, "Failed to get facility")
		}
		return
	}

	response.Success(w, http.StatusOK, "Facility retrieved successfully", facility)
}

func (h *FacilityHandler) GetMyFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilityUsecase.GetMyFacilities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

func (h *FacilityHandler) GetAllFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilityUsecase.GetAllFacilities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}
