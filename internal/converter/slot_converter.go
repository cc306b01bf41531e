package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/scheduling"
)

// SlotAssignmentToResponse converts a SlotAssignment entity to SlotAssignmentResponse DTO
func SlotAssignmentToResponse(assignment *entity.SlotAssignment) *dto.SlotAssignmentResponse {
	if assignment == nil {
		return nil
	}

	return &dto.SlotAssignmentResponse{
		ID:           assignment.ID,
		ProviderID:   assignment.ProviderID,
		FacilityID:   assignment.FacilityID,
		Date:         assignment.Date.Format("2006-01-02"),
		PatternID:    assignment.PatternID,
		PatternLabel: assignment.PatternLabel,
		StartTime:    assignment.StartTime,
		EndTime:      assignment.EndTime,
		Status:       string(assignment.Status),
		CreatedAt:    assignment.CreatedAt,
		UpdatedAt:    assignment.UpdatedAt,
	}
}

// SlotAssignmentsToResponses converts a slice of SlotAssignment entities to slice of SlotAssignmentResponse DTOs
func SlotAssignmentsToResponses(assignments []entity.SlotAssignment) []dto.SlotAssignmentResponse {
	responses := make([]dto.SlotAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *SlotAssignmentToResponse(&assignments[i])
	}
	return responses
}

// AssignmentToSlotResponse converts an open SlotAssignment into the patient
// facing slot representation.
func AssignmentToSlotResponse(assignment *entity.SlotAssignment) dto.SlotResponse {
	id := assignment.ID
	return dto.SlotResponse{
		AssignmentID: &id,
		Date:         assignment.Date.Format("2006-01-02"),
		StartTime:    assignment.StartTime,
		EndTime:      assignment.EndTime,
		PatternLabel: assignment.PatternLabel,
	}
}

// CandidateToSlotResponse converts a generated candidate into the patient
// facing slot representation. Candidates have no assignment ID.
func CandidateToSlotResponse(candidate scheduling.Candidate) dto.SlotResponse {
	return dto.SlotResponse{
		Date:      candidate.Date.Format("2006-01-02"),
		StartTime: candidate.Start,
		EndTime:   candidate.End,
	}
}
