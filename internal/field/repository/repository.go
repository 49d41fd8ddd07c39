// Package repository provides data access for the field module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
)

// Repository defines field and availability data access operations.
type Repository interface {
	// CreateField inserts a field.
	CreateField(ctx context.Context, field *fieldModel.Field) error

	// GetFieldByID finds a field by id.
	GetFieldByID(ctx context.Context, id uint) (*fieldModel.Field, error)

	// ListFieldsByOwner returns fields owned by a user.
	ListFieldsByOwner(ctx context.Context, ownerID uint) ([]fieldModel.Field, error)

	// ListFieldsByCity returns fields in a city.
	ListFieldsByCity(ctx context.Context, city string) ([]fieldModel.Field, error)

	// GetUserRole returns a user's role, or auth's not-found error.
	GetUserRole(ctx context.Context, userID uint) (string, error)

	// CreateSlot inserts an availability slot.
	CreateSlot(ctx context.Context, slot *fieldModel.FieldAvailability) error

	// GetSlotByID finds a slot by id.
	GetSlotByID(ctx context.Context, id uint) (*fieldModel.FieldAvailability, error)

	// ListSlotsByField returns a field's slots ordered by date, start time.
	ListSlotsByField(ctx context.Context, fieldID uint) ([]fieldModel.FieldAvailability, error)

	// HasOverlappingSlot reports whether any slot of the field overlaps
	// [start,end) on the date.
	HasOverlappingSlot(ctx context.Context, fieldID uint, q fieldModel.AvailableFieldsQuery) (bool, error)

	// ListAvailableFields returns fields in a city with at least one unbooked
	// slot overlapping the window.
	ListAvailableFields(ctx context.Context, q fieldModel.AvailableFieldsQuery) ([]fieldModel.Field, error)

	// BookSlot atomically sets is_booked on an unbooked slot. Exactly one of
	// two racing calls succeeds; the loser gets ErrSlotAlreadyBooked.
	BookSlot(ctx context.Context, id uint) error

	// ReleaseSlot clears is_booked. Releasing a free slot is a no-op.
	ReleaseSlot(ctx context.Context, id uint) error

	// FindExactSlot finds the slot matching (field, date, start, end) exactly.
	FindExactSlot(ctx context.Context, fieldID uint, q fieldModel.AvailableFieldsQuery) (*fieldModel.FieldAvailability, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a field repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateField(ctx context.Context, field *fieldModel.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *repository) GetFieldByID(ctx context.Context, id uint) (*fieldModel.Field, error) {
	var field fieldModel.Field
	err := r.db.WithContext(ctx).First(&field, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldModel.ErrFieldNotFound
		}
		return nil, err
	}
	return &field, nil
}

func (r *repository) ListFieldsByOwner(ctx context.Context, ownerID uint) ([]fieldModel.Field, error) {
	var fields []fieldModel.Field
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []fieldModel.Field{}
	}
	return fields, nil
}

func (r *repository) ListFieldsByCity(ctx context.Context, city string) ([]fieldModel.Field, error) {
	var fields []fieldModel.Field
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("name ASC").
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []fieldModel.Field{}
	}
	return fields, nil
}

func (r *repository) GetUserRole(ctx context.Context, userID uint) (string, error) {
	var role string
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role").
		Where("id = ?", userID).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	if role == "" {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *repository) CreateSlot(ctx context.Context, slot *fieldModel.FieldAvailability) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *repository) GetSlotByID(ctx context.Context, id uint) (*fieldModel.FieldAvailability, error) {
	var slot fieldModel.FieldAvailability
	err := r.db.WithContext(ctx).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldModel.ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *repository) ListSlotsByField(ctx context.Context, fieldID uint) ([]fieldModel.FieldAvailability, error) {
	var slots []fieldModel.FieldAvailability
	err := r.db.WithContext(ctx).
		Where("field_id = ?", fieldID).
		Order("date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []fieldModel.FieldAvailability{}
	}
	return slots, nil
}

func (r *repository) HasOverlappingSlot(ctx context.Context, fieldID uint, q fieldModel.AvailableFieldsQuery) (bool, error) {
	// Half-open interval overlap: new.start < old.end AND new.end > old.start.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&fieldModel.FieldAvailability{}).
		Where("field_id = ? AND date = ?", fieldID, q.Date).
		Where("start_time < ? AND end_time > ?", q.EndTime, q.StartTime).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListAvailableFields(ctx context.Context, q fieldModel.AvailableFieldsQuery) ([]fieldModel.Field, error) {
	var fields []fieldModel.Field
	err := r.db.WithContext(ctx).
		Model(&fieldModel.Field{}).
		Distinct("fields.*").
		Joins("JOIN field_availability fa ON fa.field_id = fields.id").
		Where("fields.city = ?", q.City).
		Where("fa.date = ? AND fa.is_booked = ?", q.Date, false).
		Where("fa.start_time < ? AND fa.end_time > ?", q.EndTime, q.StartTime).
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []fieldModel.Field{}
	}
	return fields, nil
}

func (r *repository) BookSlot(ctx context.Context, id uint) error {
	// Compare-and-set: only an unbooked row is updated.
	res := r.db.WithContext(ctx).
		Model(&fieldModel.FieldAvailability{}).
		Where("id = ? AND is_booked = ?", id, false).
		Update("is_booked", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetSlotByID(ctx, id); err != nil {
			return err
		}
		return fieldModel.ErrSlotAlreadyBooked
	}
	return nil
}

func (r *repository) ReleaseSlot(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&fieldModel.FieldAvailability{}).
		Where("id = ?", id).
		Update("is_booked", false).Error
}

func (r *repository) FindExactSlot(ctx context.Context, fieldID uint, q fieldModel.AvailableFieldsQuery) (*fieldModel.FieldAvailability, error) {
	var slot fieldModel.FieldAvailability
	err := r.db.WithContext(ctx).
		Where("field_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			fieldID, q.Date, q.StartTime, q.EndTime).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldModel.ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}
