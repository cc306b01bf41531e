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
	ErrInvalidPattern     = errors.New("invalid slot pattern")
	ErrSlotNotFound       = errors.New("slot assignment not found")
	ErrNoCandidateSlots   = errors.New("pattern produces no slots for the given dates")
	ErrSlotBatchHasBooked = errors.New("batch contains booked slots")
)

type AssignmentUsecase interface {
	AssignSlots(ctx context.Context, req *dto.AssignSlotsRequest) (*dto.AssignSlotsResponse, error)
	UnassignSlots(ctx context.Context, req *dto.UnassignSlotsRequest) (*dto.UnassignSlotsResponse, error)
	CancelBookedSlot(ctx context.Context, assignmentID uuid.UUID) error
	GetProviderSlots(ctx context.Context, providerID uuid.UUID, dates []string) (*dto.SlotAssignmentListResponse, error)
}

type assignmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	providerRepo     repository.ProviderRepository
	slotRepo         repository.SlotAssignmentRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
	defaultDuration  int
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	slotRepo repository.SlotAssignmentRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
	defaultDuration int,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:               db,
		log:              log,
		providerRepo:     providerRepo,
		slotRepo:         slotRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
		defaultDuration:  defaultDuration,
	}
}

// AssignSlots expands a recurrence pattern over the requested dates and
// inserts one assignment per candidate slot, all in one transaction.
// Candidates whose slot already has an open or booked row are skipped, so
// re-running the same assignment is idempotent and never clobbers a
// booking.
func (u *assignmentUsecase) AssignSlots(ctx context.Context, req *dto.AssignSlotsRequest) (*dto.AssignSlotsResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	provider, err := u.findOwnedProvider(ctx, req.ProviderID, adminID)
	if err != nil {
		return nil, err
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}

	pattern := scheduling.Pattern{
		Kind:     scheduling.PatternKind(req.Pattern.Kind),
		Name:     req.Pattern.Name,
		Start:    req.Pattern.StartTime,
		End:      req.Pattern.EndTime,
		Interval: req.Pattern.IntervalMinutes,
	}
	duration := provider.Facility.ConsultationDuration
	if duration <= 0 {
		duration = u.defaultDuration
	}
	if pattern.Kind == scheduling.PatternInterval && pattern.Interval == 0 {
		pattern.Interval = duration
	}
	if err := pattern.Validate(); err != nil {
		return nil, ErrInvalidPattern
	}

	candidates := scheduling.GenerateForDates(pattern, dates, duration)
	if len(candidates) == 0 {
		return nil, ErrNoCandidateSlots
	}

	var (
		created     int
		skipped     int
		assignments []entity.SlotAssignment
	)

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range candidates {
			assignment := entity.SlotAssignment{
				ProviderID:   provider.ID,
				FacilityID:   provider.FacilityID,
				Date:         c.Date,
				PatternID:    pattern.ID(),
				PatternLabel: pattern.Name,
				StartTime:    c.Start,
				EndTime:      c.End,
				Status:       entity.SlotAssigned,
			}

			inserted, err := u.slotRepo.CreateIfAbsent(tx, &assignment)
			if err != nil {
				return err
			}
			if inserted {
				created++
				assignments = append(assignments, assignment)
			} else {
				skipped++
			}
		}

		return u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionSlotsAssign,
			"slot_assignment", provider.ID.String(), map[string]interface{}{
				"pattern_id": pattern.ID(),
				"dates":      req.Dates,
				"created":    created,
				"skipped":    skipped,
			})
	})
	if err != nil {
		u.log.Warnf("Failed to assign slots for provider %s: %+v", provider.ID, err)
		return nil, err
	}

	return &dto.AssignSlotsResponse{
		Created:     created,
		Skipped:     skipped,
		Assignments: converter.SlotAssignmentsToResponses(assignments),
	}, nil
}

// UnassignSlots removes the matching open slots in one transaction. The
// whole batch fails if any matching slot is booked or reserved; nothing is
// removed and the caller must cancel those bookings first.
func (u *assignmentUsecase) UnassignSlots(ctx context.Context, req *dto.UnassignSlotsRequest) (*dto.UnassignSlotsResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	provider, err := u.findOwnedProvider(ctx, req.ProviderID, adminID)
	if err != nil {
		return nil, err
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}

	var removed int64

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matching, err := u.slotRepo.FindMatching(tx, &entity.SlotFilter{
			ProviderID: provider.ID,
			Dates:      dates,
			PatternID:  req.PatternID,
		})
		if err != nil {
			return err
		}

		ids, err := collectOpenBatch(matching)
		if err != nil {
			return err
		}

		if len(ids) > 0 {
			removed, err = u.slotRepo.DeleteAssigned(tx, ids)
			if err != nil {
				return err
			}
			// The delete only touches rows still in 'assigned', so a
			// short count means a concurrent booking flipped a member
			// after the read above. The batch must fail whole.
			if removed != int64(len(ids)) {
				return ErrSlotBatchHasBooked
			}
		}

		return u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionSlotsUnassign,
			"slot_assignment", provider.ID.String(), map[string]interface{}{
				"pattern_id": req.PatternID,
				"dates":      req.Dates,
				"removed":    removed,
			})
	})
	if err != nil {
		if errors.Is(err, ErrSlotBatchHasBooked) {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to unassign slots for provider %s: %+v", provider.ID, err)
		return nil, err
	}

	return &dto.UnassignSlotsResponse{Removed: int(removed)}, nil
}

// CancelBookedSlot lets an administrator invalidate one slot regardless of
// its state. A linked consultation is cancelled in the same transaction.
func (u *assignmentUsecase) CancelBookedSlot(ctx context.Context, assignmentID uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	assignment, err := u.slotRepo.FindByID(u.db.WithContext(ctx), assignmentID)
	if err != nil {
		u.log.Warnf("Failed to find slot assignment %s: %+v", assignmentID, err)
		return err
	}
	if assignment == nil {
		return ErrSlotNotFound
	}

	if _, err := u.findOwnedProvider(ctx, assignment.ProviderID, adminID); err != nil {
		return err
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.slotRepo.TransitionStatus(tx, assignmentID,
			[]entity.SlotAssignmentStatus{entity.SlotAssigned, entity.SlotReserved, entity.SlotBooked},
			entity.SlotCancelled, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrSlotNotFound
		}

		if assignment.ConsultationID != nil {
			if _, err := u.consultationRepo.CancelIfActive(tx, *assignment.ConsultationID); err != nil {
				return err
			}
		}

		return u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionSlotCancel,
			"slot_assignment", assignmentID.String(), assignment.Status, entity.SlotCancelled)
	})
}

func (u *assignmentUsecase) GetProviderSlots(ctx context.Context, providerID uuid.UUID, dates []string) (*dto.SlotAssignmentListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	provider, err := u.findOwnedProvider(ctx, providerID, adminID)
	if err != nil {
		return nil, err
	}

	parsed, err := parseDates(dates)
	if err != nil {
		return nil, err
	}

	assignments, err := u.slotRepo.FindMatching(u.db.WithContext(ctx), &entity.SlotFilter{
		ProviderID: provider.ID,
		Dates:      parsed,
	})
	if err != nil {
		u.log.Warnf("Failed to find slot assignments for provider %s: %+v", providerID, err)
		return nil, err
	}

	return &dto.SlotAssignmentListResponse{
		Assignments: converter.SlotAssignmentsToResponses(assignments),
		Total:       len(assignments),
	}, nil
}

func (u *assignmentUsecase) findOwnedProvider(ctx context.Context, providerID, adminID uuid.UUID) (*entity.Provider, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	if !provider.Facility.IsOwnedBy(adminID) {
		return nil, ErrFacilityNotOwned
	}
	return provider, nil
}

// collectOpenBatch returns the IDs of the open members of a matching
// batch. Any booked or reserved member fails the whole batch; cancelled
// members are ignored.
func collectOpenBatch(matching []entity.SlotAssignment) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for i := range matching {
		switch matching[i].Status {
		case entity.SlotBooked, entity.SlotReserved:
			return nil, ErrSlotBatchHasBooked
		case entity.SlotAssigned:
			ids = append(ids, matching[i].ID)
		}
	}
	return ids, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dates = append(dates, d)
	}
	return dates, nil
}
