package model

import "errors"

var (
	// ErrTeamNotFound indicates the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotTeamOwner indicates the actor is not the team's owner.
	ErrNotTeamOwner = errors.New("only the team owner may perform this action")
	// ErrAlreadyMember indicates the user is already on the team.
	ErrAlreadyMember = errors.New("user is already a team member")
	// ErrMemberNotFound indicates the user is not on the team.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrCannotRemoveOwner indicates an attempt to remove the owner from the team.
	ErrCannotRemoveOwner = errors.New("the team owner cannot be removed")
	// ErrInvalidSkillLevel indicates an unknown skill level value.
	ErrInvalidSkillLevel = errors.New("invalid skill level")
)
