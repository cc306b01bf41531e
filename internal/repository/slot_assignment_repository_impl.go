package repository

import (
	"errors"
	"time"

	"go-hospital-booking/internal/domain/entity"
	domainRepo "go-hospital-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slotAssignmentRepository struct{}

func NewSlotAssignmentRepository() domainRepo.SlotAssignmentRepository {
	return &slotAssignmentRepository{}
}

// CreateIfAbsent relies on the partial unique index over
// (provider_id, date, start_time) WHERE status <> 'cancelled': the insert
// is a no-op when an open or booked row already occupies the slot, which is
// what makes repeated bulk assignment idempotent.
func (r *slotAssignmentRepository) CreateIfAbsent(db *gorm.DB, assignment *entity.SlotAssignment) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "provider_id"}, {Name: "date"}, {Name: "start_time"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("status <> ?", entity.SlotCancelled),
		}},
		DoNothing: true,
	}).Create(assignment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *slotAssignmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.SlotAssignment, error) {
	var assignment entity.SlotAssignment
	err := db.Preload("Provider").Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *slotAssignmentRepository) FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.SlotAssignment, error) {
	var assignments []entity.SlotAssignment
	err := db.Where("provider_id = ? AND date = ?", providerID, date).
		Order("start_time ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *slotAssignmentRepository) FindBySlot(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime string) (*entity.SlotAssignment, error) {
	var assignment entity.SlotAssignment
	err := db.Where("provider_id = ? AND date = ? AND start_time = ? AND status != ?",
		providerID, date, startTime, entity.SlotCancelled).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *slotAssignmentRepository) FindMatching(db *gorm.DB, filter *entity.SlotFilter) ([]entity.SlotAssignment, error) {
	var assignments []entity.SlotAssignment
	query := db.Where("provider_id = ?", filter.ProviderID)

	if len(filter.Dates) > 0 {
		query = query.Where("date IN ?", filter.Dates)
	}
	if filter.PatternID != "" {
		query = query.Where("pattern_id = ?", filter.PatternID)
	}

	err := query.Order("date ASC, start_time ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// TransitionStatus atomically moves an assignment between lifecycle states.
// The WHERE clause restricts the update to the expected source states, so
// affected rows = 0 means a concurrent writer changed the row first.
func (r *slotAssignmentRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from []entity.SlotAssignmentStatus, to entity.SlotAssignmentStatus, consultationID *uuid.UUID) (int64, error) {
	updates := map[string]interface{}{"status": to}
	if consultationID != nil {
		updates["consultation_id"] = *consultationID
	}
	result := db.Model(&entity.SlotAssignment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *slotAssignmentRepository) DeleteAssigned(db *gorm.DB, ids []uuid.UUID) (int64, error) {
	result := db.Where("id IN ? AND status = ?", ids, entity.SlotAssigned).
		Delete(&entity.SlotAssignment{})
	return result.RowsAffected, result.Error
}

func (r *slotAssignmentRepository) CancelOpenByProvider(db *gorm.DB, providerID uuid.UUID) (int64, error) {
	result := db.Model(&entity.SlotAssignment{}).
		Where("provider_id = ? AND status IN ?", providerID,
			[]entity.SlotAssignmentStatus{entity.SlotAssigned, entity.SlotReserved}).
		Update("status", entity.SlotCancelled)
	return result.RowsAffected, result.Error
}
