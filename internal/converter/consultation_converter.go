package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to ConsultationResponse DTO
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	return &dto.ConsultationResponse{
		ID:           consultation.ID,
		PatientID:    consultation.PatientID,
		ProviderID:   consultation.ProviderID,
		ProviderName: consultation.ProviderName,
		FacilityID:   consultation.FacilityID,
		FacilityName: consultation.FacilityName,
		Date:         consultation.Date.Format("2006-01-02"),
		StartTime:    consultation.StartTime,
		EndTime:      consultation.EndTime,
		Status:       string(consultation.Status),
		CreatedAt:    consultation.CreatedAt,
		UpdatedAt:    consultation.UpdatedAt,
	}
}

// ConsultationsToResponses converts a slice of Consultation entities to slice of ConsultationResponse DTOs
func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i])
	}
	return responses
}
