package model

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name        string     `json:"name" binding:"required"`
	City        string     `json:"city" binding:"required"`
	SkillLevel  SkillLevel `json:"skill_level" binding:"required"`
	Description *string    `json:"description"`
}

// UpdateTeamRequest is the payload for updating a team. Nil fields are left
// unchanged.
type UpdateTeamRequest struct {
	Name        *string     `json:"name"`
	City        *string     `json:"city"`
	SkillLevel  *SkillLevel `json:"skill_level"`
	Description *string     `json:"description"`
}

// AddMemberRequest is the payload for adding a user to a team.
type AddMemberRequest struct {
	UserID          uint    `json:"user_id" binding:"required"`
	SkillEvaluation *string `json:"skill_evaluation"`
}

// UpdateEvaluationRequest is the payload for updating a member's evaluation.
type UpdateEvaluationRequest struct {
	SkillEvaluation string `json:"skill_evaluation" binding:"required"`
}

// TeamResponse is a team with its member list.
type TeamResponse struct {
	Team    *Team        `json:"team"`
	Members []TeamMember `json:"members"`
}
