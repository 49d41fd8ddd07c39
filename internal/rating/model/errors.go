package model

import "errors"

var (
	// ErrRatingNotFound is returned when the requested rating does not exist.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrDuplicateRating is returned when the triple (match, rater, rated)
	// has already been rated.
	ErrDuplicateRating = errors.New("this team has already been rated for this match")

	// ErrMatchNotCompleted is returned when rating a match that has not
	// finished.
	ErrMatchNotCompleted = errors.New("only completed matches can be rated")

	// ErrTeamNotInMatch is returned when the rater or rated team did not
	// play in the match.
	ErrTeamNotInMatch = errors.New("team did not participate in this match")

	// ErrNotRaterCaptain is returned when the actor does not own the rating
	// team.
	ErrNotRaterCaptain = errors.New("only the rating team's owner may submit a rating")

	// ErrSelfRating is returned when a team rates itself.
	ErrSelfRating = errors.New("a team cannot rate itself")

	// ErrInvalidScore is returned for a score outside the 1..5 scale.
	ErrInvalidScore = errors.New("ratings must be between 1 and 5")
)
