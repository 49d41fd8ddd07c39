// Package service provides business logic for fields and slot booking.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	"github.com/tdnguyen-dev/sanbong/internal/field/repository"
)

// Service defines field business logic operations.
type Service interface {
	// CreateField registers a field; the actor must hold the FIELD_OWNER role.
	CreateField(ctx context.Context, ownerID uint, req *fieldModel.CreateFieldRequest) (*fieldModel.Field, error)

	// GetFieldByID returns a field by id.
	GetFieldByID(ctx context.Context, id uint) (*fieldModel.Field, error)

	// GetFieldsByOwner returns fields owned by a user.
	GetFieldsByOwner(ctx context.Context, ownerID uint) ([]fieldModel.Field, error)

	// GetFieldsByCity returns fields in a city.
	GetFieldsByCity(ctx context.Context, city string) ([]fieldModel.Field, error)

	// CreateAvailability publishes a slot; it must not overlap existing slots.
	CreateAvailability(ctx context.Context, fieldID, actorID uint, req *fieldModel.CreateAvailabilityRequest) (*fieldModel.FieldAvailability, error)

	// GetFieldAvailability returns a field's slots.
	GetFieldAvailability(ctx context.Context, fieldID uint) ([]fieldModel.FieldAvailability, error)

	// GetAvailableFields returns fields with a free slot in the window.
	GetAvailableFields(ctx context.Context, q fieldModel.AvailableFieldsQuery) ([]fieldModel.Field, error)

	// BookSlot books an unbooked slot; exactly one of two racing calls wins.
	BookSlot(ctx context.Context, availabilityID uint) (*fieldModel.FieldAvailability, error)

	// ReleaseSlot frees a slot; releasing a free slot is a no-op.
	ReleaseSlot(ctx context.Context, availabilityID uint) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a field service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

func (s *service) CreateField(ctx context.Context, ownerID uint, req *fieldModel.CreateFieldRequest) (*fieldModel.Field, error) {
	if req.Capacity <= 0 || req.HourlyRate <= 0 {
		return nil, fieldModel.ErrInvalidFieldData
	}

	role, err := s.repo.GetUserRole(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}
	if role != string(authModel.RoleFieldOwner) && role != string(authModel.RoleAdmin) {
		return nil, fieldModel.ErrOwnerRoleRequired
	}

	field := &fieldModel.Field{
		OwnerID:     ownerID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		SurfaceType: req.SurfaceType,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
	}
	if err := s.repo.CreateField(ctx, field); err != nil {
		return nil, err
	}

	s.logger.Infow("field created", "field_id", field.ID, "owner_id", ownerID)
	return field, nil
}

func (s *service) GetFieldByID(ctx context.Context, id uint) (*fieldModel.Field, error) {
	return s.repo.GetFieldByID(ctx, id)
}

func (s *service) GetFieldsByOwner(ctx context.Context, ownerID uint) ([]fieldModel.Field, error) {
	return s.repo.ListFieldsByOwner(ctx, ownerID)
}

func (s *service) GetFieldsByCity(ctx context.Context, city string) ([]fieldModel.Field, error) {
	return s.repo.ListFieldsByCity(ctx, city)
}

func (s *service) CreateAvailability(ctx context.Context, fieldID, actorID uint, req *fieldModel.CreateAvailabilityRequest) (*fieldModel.FieldAvailability, error) {
	if !fieldModel.ValidWindow(req.StartTime, req.EndTime) {
		return nil, fieldModel.ErrInvalidTimeWindow
	}

	field, err := s.repo.GetFieldByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field.OwnerID != actorID {
		return nil, fieldModel.ErrNotFieldOwner
	}

	slot := &fieldModel.FieldAvailability{
		FieldID:   fieldID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	// Overlap check and insert run in one transaction.
	window := fieldModel.AvailableFieldsQuery{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		overlaps, txErr := txRepo.HasOverlappingSlot(ctx, fieldID, window)
		if txErr != nil {
			return txErr
		}
		if overlaps {
			return fieldModel.ErrSlotConflict
		}
		return txRepo.CreateSlot(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *service) GetFieldAvailability(ctx context.Context, fieldID uint) ([]fieldModel.FieldAvailability, error) {
	if _, err := s.repo.GetFieldByID(ctx, fieldID); err != nil {
		return nil, err
	}
	return s.repo.ListSlotsByField(ctx, fieldID)
}

func (s *service) GetAvailableFields(ctx context.Context, q fieldModel.AvailableFieldsQuery) ([]fieldModel.Field, error) {
	if !fieldModel.ValidWindow(q.StartTime, q.EndTime) {
		return nil, fieldModel.ErrInvalidTimeWindow
	}
	return s.repo.ListAvailableFields(ctx, q)
}

func (s *service) BookSlot(ctx context.Context, availabilityID uint) (*fieldModel.FieldAvailability, error) {
	if err := s.repo.BookSlot(ctx, availabilityID); err != nil {
		return nil, err
	}
	return s.repo.GetSlotByID(ctx, availabilityID)
}

func (s *service) ReleaseSlot(ctx context.Context, availabilityID uint) error {
	if _, err := s.repo.GetSlotByID(ctx, availabilityID); err != nil {
		return err
	}
	return s.repo.ReleaseSlot(ctx, availabilityID)
}
