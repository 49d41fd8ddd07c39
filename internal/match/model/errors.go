package model

import "errors"

var (
	// ErrMatchNotFound is returned when no match exists with the given id.
	ErrMatchNotFound = errors.New("match not found")

	// ErrNotParticipant is returned when the actor owns neither team and
	// does not own the field.
	ErrNotParticipant = errors.New("user is not a participant of this match")

	// ErrInvalidTransition is returned for a status edge the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid match status transition")

	// ErrNotCancellable is returned when cancelling a completed or
	// already cancelled match.
	ErrNotCancellable = errors.New("match can no longer be cancelled")

	// ErrSameTeams is returned when a match is created with a team
	// against itself.
	ErrSameTeams = errors.New("a team cannot play against itself")

	// ErrInvalidMatchData is returned for malformed match input.
	ErrInvalidMatchData = errors.New("invalid match data")
)
