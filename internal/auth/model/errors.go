package model

import "errors"

var (
	// ErrEmailTaken indicates an account with the given email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole indicates an unknown role value.
	ErrInvalidRole = errors.New("invalid user role")
)
