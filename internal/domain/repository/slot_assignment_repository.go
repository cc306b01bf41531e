package repository

import (
	"time"

	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotAssignmentRepository is the availability store's write surface.
// CreateIfAbsent and TransitionStatus are the compare-and-swap primitives:
// they report what actually happened instead of assuming a prior read is
// still valid, so coordinators never rely on read-then-write.
type SlotAssignmentRepository interface {
	// CreateIfAbsent inserts the assignment unless a non-cancelled row for
	// the same (provider, date, start) already exists. Returns whether a
	// row was written.
	CreateIfAbsent(db *gorm.DB, assignment *entity.SlotAssignment) (bool, error)

	FindByID(db *gorm.DB, id uuid.UUID) (*entity.SlotAssignment, error)
	FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.SlotAssignment, error)
	// FindBySlot resolves the non-cancelled assignment occupying one
	// concrete (provider, date, start) key, or nil.
	FindBySlot(db *gorm.DB, providerID uuid.UUID, date time.Time, startTime string) (*entity.SlotAssignment, error)
	FindMatching(db *gorm.DB, filter *entity.SlotFilter) ([]entity.SlotAssignment, error)

	// TransitionStatus conditionally moves an assignment between states.
	// The update only applies while the current status is one of from;
	// zero affected rows means another writer won the race.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from []entity.SlotAssignmentStatus, to entity.SlotAssignmentStatus, consultationID *uuid.UUID) (int64, error)

	// DeleteAssigned removes the given rows, but only those still in the
	// assigned state. Returns how many were deleted.
	DeleteAssigned(db *gorm.DB, ids []uuid.UUID) (int64, error)

	// CancelOpenByProvider invalidates all assigned/reserved rows for a
	// provider, used when the provider itself is deleted.
	CancelOpenByProvider(db *gorm.DB, providerID uuid.UUID) (int64, error)
}
