package model

import "errors"

var (
	// ErrNotificationNotFound indicates the requested notification does not exist.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotRecipient indicates the actor does not own the notification.
	ErrNotRecipient = errors.New("notification belongs to another user")
	// ErrInvalidType indicates an unknown notification type.
	ErrInvalidType = errors.New("invalid notification type")
)
