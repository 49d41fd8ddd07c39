package model

import "errors"

var (
	// ErrMessageNotFound is returned when the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrSelfMessage is returned when a user messages themselves.
	ErrSelfMessage = errors.New("cannot send a message to yourself")

	// ErrNotRecipient is returned when someone other than the recipient
	// marks a message as read.
	ErrNotRecipient = errors.New("only the recipient may mark a message as read")

	// ErrNotSender is returned when someone other than the sender deletes
	// a message.
	ErrNotSender = errors.New("only the sender may delete a message")

	// ErrEmptyContent is returned for a blank message body.
	ErrEmptyContent = errors.New("message content cannot be empty")
)
