package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-booking/internal/converter"
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/domain/repository"
	"go-hospital-booking/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type AvailabilityUsecase interface {
	ListOpenSlots(ctx context.Context, providerID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	providerRepo     repository.ProviderRepository
	slotRepo         repository.SlotAssignmentRepository
	consultationRepo repository.ConsultationRepository
	defaultDuration  int
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	slotRepo repository.SlotAssignmentRepository,
	consultationRepo repository.ConsultationRepository,
	defaultDuration int,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		providerRepo:     providerRepo,
		slotRepo:         slotRepo,
		consultationRepo: consultationRepo,
		defaultDuration:  defaultDuration,
	}
}

// ListOpenSlots returns the bookable slots for a provider on one date.
// When the provider has stored slot assignments for the date those are
// authoritative; otherwise slots are derived from the facility's opening
// hours at the facility's default consultation length. Either way, slots
// already taken by an active consultation are filtered out.
func (u *availabilityUsecase) ListOpenSlots(ctx context.Context, providerID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	assignments, err := u.slotRepo.FindByProviderAndDate(u.db.WithContext(ctx), providerID, day)
	if err != nil {
		u.log.Warnf("Failed to find slot assignments for provider %s: %+v", providerID, err)
		return nil, err
	}

	consultations, err := u.consultationRepo.FindActiveByProviderAndDate(u.db.WithContext(ctx), providerID, day)
	if err != nil {
		u.log.Warnf("Failed to find consultations for provider %s: %+v", providerID, err)
		return nil, err
	}

	var slots []dto.SlotResponse
	if hasDeclaredSlots(assignments) {
		for i := range assignments {
			a := &assignments[i]
			if !a.IsOpen() {
				continue
			}
			if entity.FindSlotConflict(consultations, a.StartTime) != nil {
				continue
			}
			slots = append(slots, converter.AssignmentToSlotResponse(a))
		}
	} else {
		slots = u.deriveFromOpeningHours(&provider.Facility, day, consultations)
	}

	return &dto.AvailabilityResponse{
		ProviderID: providerID,
		Date:       date,
		Slots:      slots,
		Total:      len(slots),
	}, nil
}

// hasDeclaredSlots reports whether any non-cancelled assignment exists for
// the date. A fully cancelled set falls back to opening hours.
func hasDeclaredSlots(assignments []entity.SlotAssignment) bool {
	for i := range assignments {
		if assignments[i].Status != entity.SlotCancelled {
			return true
		}
	}
	return false
}

func (u *availabilityUsecase) deriveFromOpeningHours(facility *entity.Facility, day time.Time, consultations []entity.Consultation) []dto.SlotResponse {
	hours := facility.HoursFor(day.Weekday())
	if hours.Closed || hours.Open == "" || hours.Close == "" {
		return nil
	}

	duration := facility.ConsultationDuration
	if duration <= 0 {
		duration = u.defaultDuration
	}

	pattern := scheduling.Pattern{
		Kind:     scheduling.PatternInterval,
		Name:     "opening-hours",
		Start:    hours.Open,
		End:      hours.Close,
		Interval: duration,
	}

	candidates := scheduling.GenerateForDates(pattern, []time.Time{day}, duration)

	var slots []dto.SlotResponse
	for _, c := range candidates {
		if entity.FindSlotConflict(consultations, c.Start) != nil {
			continue
		}
		slots = append(slots, converter.CandidateToSlotResponse(c))
	}
	return slots
}
