package teams

type InviteToTeamRequestDTO struct {
	ApplicationID string `json:"applicationId" binding:"required"`
}
