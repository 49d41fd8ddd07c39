package model

import "errors"

var (
	// ErrFieldNotFound indicates the requested field does not exist.
	ErrFieldNotFound = errors.New("field not found")
	// ErrSlotNotFound indicates the requested availability slot does not exist.
	ErrSlotNotFound = errors.New("availability slot not found")
	// ErrNotFieldOwner indicates the actor does not own the field.
	ErrNotFieldOwner = errors.New("only the field owner may perform this action")
	// ErrOwnerRoleRequired indicates the actor does not hold the FIELD_OWNER role.
	ErrOwnerRoleRequired = errors.New("field owner role required")
	// ErrSlotConflict indicates the new slot overlaps an existing one.
	ErrSlotConflict = errors.New("slot overlaps an existing availability")
	// ErrSlotAlreadyBooked indicates the slot is already booked.
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	// ErrInvalidTimeWindow indicates a malformed or inverted HH:MM window.
	ErrInvalidTimeWindow = errors.New("invalid time window")
	// ErrInvalidFieldData indicates capacity or hourly rate out of range.
	ErrInvalidFieldData = errors.New("capacity and hourly rate must be positive")
)
