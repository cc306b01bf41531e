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
	ErrFacilityNotFound = errors.New("facility not found")
	ErrFacilityNotOwned = errors.New("facility does not belong to you")
)

type FacilityUsecase interface {
	CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	UpdateFacility(ctx context.Context, facilityID uuid.UUID, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error)
	DeleteFacility(ctx context.Context, facilityID uuid.UUID) error
	GetFacility(ctx context.Context, facilityID uuid.UUID) (*dto.FacilityResponse, error)
	GetMyFacilities(ctx context.Context) (*dto.FacilityListResponse, error)
	GetAllFacilities(ctx context.Context) (*dto.FacilityListResponse, error)
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
	auditService service.AuditService
}

func NewFacilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	facilityRepo repository.FacilityRepository,
	auditService service.AuditService,
) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		facilityRepo: facilityRepo,
		auditService: auditService,
	}
}

func (u *facilityUsecase) CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	facility := &entity.Facility{
		AdminID:              adminID,
		Name:                 req.Name,
		Address:              req.Address,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		ConsultationDuration: req.ConsultationDuration,
		ConsultationFee:      req.ConsultationFee,
		Hours:                converter.HoursFromRequest(req.Hours),
	}

	if err := u.facilityRepo.Create(tx, facility); err != nil {
		u.log.Warnf("Failed to create facility: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionFacilityCreate, "facility", facility.ID.String(), facility); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) UpdateFacility(ctx context.Context, facilityID uuid.UUID, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", facilityID, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}
	if !facility.IsOwnedBy(adminID) {
		return nil, ErrFacilityNotOwned
	}

	oldValue := *facility

	facility.Name = req.Name
	facility.Address = req.Address
	facility.Latitude = req.Latitude
	facility.Longitude = req.Longitude
	facility.ConsultationDuration = req.ConsultationDuration
	facility.ConsultationFee = req.ConsultationFee
	if req.Hours != nil {
		facility.Hours = converter.HoursFromRequest(req.Hours)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.facilityRepo.Update(tx, facility); err != nil {
		u.log.Warnf("Failed to update facility %s: %+v", facilityID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionFacilityUpdate, "facility", facility.ID.String(), oldValue, facility); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) DeleteFacility(ctx context.Context, facilityID uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", facilityID, err)
		return err
	}
	if facility == nil {
		return ErrFacilityNotFound
	}
	if !facility.IsOwnedBy(adminID) {
		return ErrFacilityNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.facilityRepo.Delete(tx, facilityID)
	if err != nil {
		u.log.Warnf("Failed to delete facility %s: %+v", facilityID, err)
		return err
	}
	if affected == 0 {
		return ErrFacilityNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionFacilityDelete, "facility", facilityID.String(), facility); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *facilityUsecase) GetFacility(ctx context.Context, facilityID uuid.UUID) (*dto.FacilityResponse, error) {
	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", facilityID, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) GetMyFacilities(ctx context.Context) (*dto.FacilityListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	facilities, err := u.facilityRepo.FindByAdminID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find facilities for admin %s: %+v", adminID, err)
		return nil, err
	}

	return &dto.FacilityListResponse{
		Facilities: converter.FacilitiesToResponses(facilities),
		Total:      len(facilities),
	}, nil
}

func (u *facilityUsecase) GetAllFacilities(ctx context.Context) (*dto.FacilityListResponse, error) {
	facilities, err := u.facilityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all facilities: %+v", err)
		return nil, err
	}

	return &dto.FacilityListResponse{
		Facilities: converter.FacilitiesToResponses(facilities),
		Total:      len(facilities),
	}, nil
}
