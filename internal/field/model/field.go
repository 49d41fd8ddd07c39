// Package model provides field and availability entities and DTOs.
package model

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

// Field represents a bookable football field.
type Field struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     uint      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Address     string    `gorm:"column:address;not null" json:"address"`
	City        string    `gorm:"column:city;not null;index" json:"city"`
	SurfaceType string    `gorm:"column:surface_type;not null" json:"surface_type"`
	Capacity    int       `gorm:"column:capacity;not null" json:"capacity"`
	HourlyRate  float64   `gorm:"column:hourly_rate;type:numeric(10,2);not null" json:"hourly_rate"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Field) TableName() string {
	return "fields"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (f *Field) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return nil
}

// FieldAvailability is a field's advertised time slot. Windows are half-open
// [StartTime, EndTime) on Date; no two slots of one field may overlap.
type FieldAvailability struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	FieldID   uint      `gorm:"column:field_id;not null;index:idx_field_availability_field_date" json:"field_id"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_field_availability_field_date" json:"date"`
	StartTime string    `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   string    `gorm:"column:end_time;not null" json:"end_time"`
	IsBooked  bool      `gorm:"column:is_booked;not null;default:false" json:"is_booked"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (FieldAvailability) TableName() string {
	return "field_availability"
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidWindow reports whether start and end form a valid "HH:MM" window.
// Lexicographic comparison is correct for zero-padded 24h clock strings.
func ValidWindow(start, end string) bool {
	return clockRe.MatchString(start) && clockRe.MatchString(end) && start < end
}
