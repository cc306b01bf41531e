package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-booking/internal/converter"
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/domain/repository"
	"go-hospital-booking/internal/scheduling"
	"go-hospital-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotConflict                 = errors.New("slot is already taken")
	ErrSlotAlreadyBooked            = errors.New("slot is already booked")
	ErrSlotNotAvailable             = errors.New("slot is not available for booking")
	ErrConsultationNotFound         = errors.New("consultation not found")
	ErrConsultationNotOwned         = errors.New("consultation does not belong to you")
	ErrConsultationAlreadyCancelled = errors.New("consultation is already cancelled")
	ErrDateInPast                   = errors.New("cannot book a past date")
)

type BookingUsecase interface {
	BookConsultation(ctx context.Context, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error)
	CancelConsultation(ctx context.Context, consultationID uuid.UUID) error
	GetMyConsultations(ctx context.Context) (*dto.ConsultationListResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	providerRepo     repository.ProviderRepository
	slotRepo         repository.SlotAssignmentRepository
	consultationRepo repository.ConsultationRepository
	slotLocker       service.SlotLocker
	auditService     service.AuditService
	defaultDuration  int
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	slotRepo repository.SlotAssignmentRepository,
	consultationRepo repository.ConsultationRepository,
	slotLocker service.SlotLocker,
	auditService service.AuditService,
	defaultDuration int,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		providerRepo:     providerRepo,
		slotRepo:         slotRepo,
		consultationRepo: consultationRepo,
		slotLocker:       slotLocker,
		auditService:     auditService,
		defaultDuration:  defaultDuration,
	}
}

// BookConsultation atomically books one slot for the logged-in patient.
//
// Flow:
//  1. Resolve provider and facility, validate the requested slot
//  2. Acquire the per-slot Redis lock (contenders fail fast)
//  3. In one DB transaction: re-check for an active consultation at the
//     same slot, insert the consultation, flip the slot assignment to
//     booked, write the audit entry
//
// The partial unique index on consultations is the last line of defense:
// if two writers slip past the lock and the pre-check, the second insert
// fails with a unique violation and is mapped to ErrSlotConflict.
func (u *bookingUsecase) BookConsultation(ctx context.Context, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, ErrDateInPast
	}

	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", req.ProviderID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	facility := provider.Facility

	// Resolve the slot: a stored assignment wins; otherwise the slot must
	// fall inside the facility's opening hours.
	assignment, err := u.slotRepo.FindBySlot(u.db.WithContext(ctx), req.ProviderID, day, req.StartTime)
	if err != nil {
		u.log.Warnf("Failed to find slot assignment: %+v", err)
		return nil, err
	}

	duration := facility.ConsultationDuration
	if duration <= 0 {
		duration = u.defaultDuration
	}

	endTime := scheduling.AddMinutes(req.StartTime, duration)
	if assignment != nil {
		if assignment.IsBooked() || assignment.Status == entity.SlotReserved {
			return nil, ErrSlotAlreadyBooked
		}
		endTime = assignment.EndTime
	} else if !withinOpeningHours(&facility, day, req.StartTime, duration) {
		return nil, ErrSlotNotAvailable
	}

	var consultation *entity.Consultation

	lockErr := u.slotLocker.WithSlotLock(ctx, req.ProviderID, day, req.StartTime, func(ctx context.Context) error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			active, err := u.consultationRepo.FindActiveByProviderAndDate(tx, req.ProviderID, day)
			if err != nil {
				return err
			}
			if entity.FindSlotConflict(active, req.StartTime) != nil {
				return ErrSlotConflict
			}

			consultation = &entity.Consultation{
				PatientID:    patientID,
				ProviderID:   provider.ID,
				ProviderName: provider.FullName,
				FacilityID:   facility.ID,
				FacilityName: facility.Name,
				Date:         day,
				StartTime:    req.StartTime,
				EndTime:      endTime,
				Status:       entity.ConsultationStatusConfirmed,
			}

			if err := u.consultationRepo.Create(tx, consultation); err != nil {
				if isDuplicateKeyError(err, "consultations") {
					return ErrSlotConflict
				}
				return err
			}

			if assignment != nil {
				affected, err := u.slotRepo.TransitionStatus(tx, assignment.ID,
					[]entity.SlotAssignmentStatus{entity.SlotAssigned, entity.SlotReserved},
					entity.SlotBooked, &consultation.ID)
				if err != nil {
					return err
				}
				if affected == 0 {
					return ErrSlotAlreadyBooked
				}
			}

			return u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionConsultationBook,
				"consultation", consultation.ID.String(), consultation)
		})
	})

	if lockErr != nil {
		if errors.Is(lockErr, service.ErrSlotLockNotAcquired) {
			return nil, ErrSlotConflict
		}
		if errors.Is(lockErr, ErrSlotConflict) || errors.Is(lockErr, ErrSlotAlreadyBooked) {
			return nil, lockErr
		}
		u.log.Warnf("Failed to book consultation for patient %s: %+v", patientID, lockErr)
		return nil, lockErr
	}

	return converter.ConsultationToResponse(consultation), nil
}

// CancelConsultation cancels the patient's consultation and reopens the
// slot. The booked assignment row is retired and a fresh assigned row is
// inserted in the same transaction, so the slot shows up as available
// again without ever rewinding a booked row's lifecycle.
func (u *bookingUsecase) CancelConsultation(ctx context.Context, consultationID uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	consultation, err := u.consultationRepo.FindByID(u.db.WithContext(ctx), consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", consultationID, err)
		return err
	}
	if consultation == nil {
		return ErrConsultationNotFound
	}
	if consultation.PatientID != patientID {
		return ErrConsultationNotOwned
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.consultationRepo.CancelIfActive(tx, consultationID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConsultationAlreadyCancelled
		}

		assignment, err := u.slotRepo.FindBySlot(tx, consultation.ProviderID, consultation.Date, consultation.StartTime)
		if err != nil {
			return err
		}
		if assignment != nil && assignment.ConsultationID != nil && *assignment.ConsultationID == consultationID {
			if _, err := u.slotRepo.TransitionStatus(tx, assignment.ID,
				[]entity.SlotAssignmentStatus{entity.SlotBooked},
				entity.SlotCancelled, nil); err != nil {
				return err
			}

			reopened := &entity.SlotAssignment{
				ProviderID:   assignment.ProviderID,
				FacilityID:   assignment.FacilityID,
				Date:         assignment.Date,
				PatternID:    assignment.PatternID,
				PatternLabel: assignment.PatternLabel,
				StartTime:    assignment.StartTime,
				EndTime:      assignment.EndTime,
				Status:       entity.SlotAssigned,
			}
			if _, err := u.slotRepo.CreateIfAbsent(tx, reopened); err != nil {
				return err
			}
		}

		return u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionConsultationCancel,
			"consultation", consultationID.String(), entity.ConsultationStatusConfirmed, entity.ConsultationStatusCancelled)
	})
}

func (u *bookingUsecase) GetMyConsultations(ctx context.Context) (*dto.ConsultationListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	consultations, err := u.consultationRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find consultations for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations),
		Total:         len(consultations),
	}, nil
}

// withinOpeningHours reports whether a consultation starting at startTime
// fits the facility's opening window for the weekday, leaving room for the
// full default duration.
func withinOpeningHours(facility *entity.Facility, day time.Time, startTime string, duration int) bool {
	hours := facility.HoursFor(day.Weekday())
	if hours.Closed || hours.Open == "" || hours.Close == "" {
		return false
	}

	pattern := scheduling.Pattern{
		Kind:     scheduling.PatternInterval,
		Name:     "opening-hours",
		Start:    hours.Open,
		End:      hours.Close,
		Interval: duration,
	}

	for _, c := range scheduling.GenerateForDates(pattern, []time.Time{day}, duration) {
		if c.Start == startTime {
			return true
		}
	}
	return false
}
