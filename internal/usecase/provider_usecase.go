package usecase

import (
	"context"
	"errors"

	"go-hospital-booking/internal/converter"
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/domain/repository"
	"go-hospital-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
)

type ProviderUsecase interface {
	CreateProvider(ctx context.Context, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error)
	UpdateProvider(ctx context.Context, providerID uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	DeleteProvider(ctx context.Context, providerID uuid.UUID) error
	GetProvider(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error)
	GetAllProviders(ctx context.Context, query *dto.ListProvidersQuery) (*dto.ProviderListResponse, error)
}

type providerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
	facilityRepo repository.FacilityRepository
	slotRepo     repository.SlotAssignmentRepository
	auditService service.AuditService
}

func NewProviderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	facilityRepo repository.FacilityRepository,
	slotRepo repository.SlotAssignmentRepository,
	auditService service.AuditService,
) ProviderUsecase {
	return &providerUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
		facilityRepo: facilityRepo,
		slotRepo:     slotRepo,
		auditService: auditService,
	}
}

func (u *providerUsecase) CreateProvider(ctx context.Context, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), req.FacilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", req.FacilityID, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}
	if !facility.IsOwnedBy(adminID) {
		return nil, ErrFacilityNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	provider := &entity.Provider{
		FacilityID: req.FacilityID,
		FullName:   req.FullName,
		Specialty:  req.Specialty,
	}

	if err := u.providerRepo.Create(tx, provider); err != nil {
		// The facility was verified above but may have been deleted since.
		if isForeignKeyError(err, "facility") {
			return nil, ErrFacilityNotFound
		}
		u.log.Warnf("Failed to create provider: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionProviderCreate, "provider", provider.ID.String(), provider); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	provider.Facility = *facility
	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) UpdateProvider(ctx context.Context, providerID uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	provider, err := u.findOwnedProvider(ctx, providerID, adminID)
	if err != nil {
		return nil, err
	}

	oldValue := *provider
	provider.FullName = req.FullName
	provider.Specialty = req.Specialty

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.providerRepo.Update(tx, provider); err != nil {
		u.log.Warnf("Failed to update provider %s: %+v", providerID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionProviderUpdate, "provider", provider.ID.String(), oldValue, provider); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProviderToResponse(provider), nil
}

// DeleteProvider removes a provider and invalidates every open slot it
// still had, in one transaction. Booked slots and their consultations are
// left untouched so patients keep their history.
func (u *providerUsecase) DeleteProvider(ctx context.Context, providerID uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	provider, err := u.findOwnedProvider(ctx, providerID, adminID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	cancelled, err := u.slotRepo.CancelOpenByProvider(tx, providerID)
	if err != nil {
		u.log.Warnf("Failed to cancel open slots for provider %s: %+v", providerID, err)
		return err
	}

	affected, err := u.providerRepo.Delete(tx, providerID)
	if err != nil {
		u.log.Warnf("Failed to delete provider %s: %+v", providerID, err)
		return err
	}
	if affected == 0 {
		return ErrProviderNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionProviderDelete, "provider", providerID.String(), map[string]interface{}{
		"provider":        provider,
		"cancelled_slots": cancelled,
	}); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *providerUsecase) GetProvider(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) GetAllProviders(ctx context.Context, query *dto.ListProvidersQuery) (*dto.ProviderListResponse, error) {
	var filter *entity.ProviderFilter
	if query != nil {
		filter = &entity.ProviderFilter{
			FacilityID: query.FacilityID,
			Specialty:  query.Specialty,
			Name:       query.Name,
		}
	}

	providers, err := u.providerRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find providers: %+v", err)
		return nil, err
	}

	return &dto.ProviderListResponse{
		Providers: converter.ProvidersToResponses(providers),
		Total:     len(providers),
	}, nil
}

// findOwnedProvider resolves a provider and verifies the calling admin
// owns its facility.
func (u *providerUsecase) findOwnedProvider(ctx context.Context, providerID, adminID uuid.UUID) (*entity.Provider, error) {
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
