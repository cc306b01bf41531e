package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderToResponse converts a Provider entity to ProviderResponse DTO
func ProviderToResponse(provider *entity.Provider) *dto.ProviderResponse {
	if provider == nil {
		return nil
	}

	response := &dto.ProviderResponse{
		ID:         provider.ID,
		FacilityID: provider.FacilityID,
		FullName:   provider.FullName,
		Specialty:  provider.Specialty,
		CreatedAt:  provider.CreatedAt,
		UpdatedAt:  provider.UpdatedAt,
	}

	// Include facility name if preloaded
	if provider.Facility.ID != uuid.Nil {
		response.FacilityName = provider.Facility.Name
	}

	return response
}

// ProvidersToResponses converts a slice of Provider entities to slice of ProviderResponse DTOs
func ProvidersToResponses(providers []entity.Provider) []dto.ProviderResponse {
	responses := make([]dto.ProviderResponse, len(providers))
	for i := range providers {
		responses[i] = *ProviderToResponse(&providers[i])
	}
	return responses
}
