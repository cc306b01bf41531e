package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
)

// FacilityToResponse converts a Facility entity to FacilityResponse DTO
func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	var hours [7]dto.DayHoursResponse
	for i, day := range facility.Hours {
		hours[i] = dto.DayHoursResponse{
			Open:   day.Open,
			Close:  day.Close,
			Closed: day.Closed,
		}
	}

	return &dto.FacilityResponse{
		ID:                   facility.ID,
		AdminID:              facility.AdminID,
		Name:                 facility.Name,
		Address:              facility.Address,
		Latitude:             facility.Latitude,
		Longitude:            facility.Longitude,
		ConsultationDuration: facility.ConsultationDuration,
		ConsultationFee:      facility.ConsultationFee,
		Hours:                hours,
		CreatedAt:            facility.CreatedAt,
		UpdatedAt:            facility.UpdatedAt,
	}
}

// FacilitiesToResponses converts a slice of Facility entities to slice of FacilityResponse DTOs
func FacilitiesToResponses(facilities []entity.Facility) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(facilities))
	for i := range facilities {
		responses[i] = *FacilityToResponse(&facilities[i])
	}
	return responses
}

// HoursFromRequest converts request hours into the entity representation.
func HoursFromRequest(hours *[7]dto.DayHoursRequest) entity.WeeklyHours {
	var result entity.WeeklyHours
	if hours == nil {
		return result
	}
	for i, day := range hours {
		result[i] = entity.DayHours{
			Open:   day.Open,
			Close:  day.Close,
			Closed: day.Closed,
		}
	}
	return result
}
