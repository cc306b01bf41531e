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

type ProviderHandler struct {
	providerUsecase usecase.ProviderUsecase
	validator       *validator.CustomValidator
}

func NewProviderHandler(providerUsecase usecase.ProviderUsecase, validator *validator.CustomValidator) *ProviderHandler {
	return &ProviderHandler{
		providerUsecase: providerUsecase,
		validator:       validator,
	}
}

func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider, err := h.providerUsecase.CreateProvider(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Facility does not belong to you")
		default:
			response.InternalServerError(w, "Failed to create provider")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Provider created successfully", provider)
}

func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	var req dto.UpdateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider, err := h.providerUsecase.UpdateProvider(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Provider does not belong to your facility")
		default:
			response.InternalServerError(w, "Failed to update provider")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider updated successfully", provider)
}

func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	if err := h.providerUsecase.DeleteProvider(r.Context(), providerID); err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrFacilityNotOwned:
			response.Forbidden(w, "Provider does not belong to your facility")
		default:
			response.InternalServerError(w, "Failed to delete provider")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider deleted successfully", nil)
}

func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	provider, err := h.providerUsecase.GetProvider(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get provider")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", provider)
}

// GetAllProviders lists providers, optionally filtered by facility,
// specialty or name via query string.
func (h *ProviderHandler) GetAllProviders(w http.ResponseWriter, r *http.Request) {
	query := &dto.ListProvidersQuery{
		Specialty: r.URL.Query().Get("specialty"),
		Name:      r.URL.Query().Get("name"),
	}

	if raw := r.URL.Query().Get("facility_id"); raw != "" {
		facilityID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
			return
		}
		query.FacilityID = &facilityID
	}

	providers, err := h.providerUsecase.GetAllProviders(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get providers")
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved successfully", providers)
}
