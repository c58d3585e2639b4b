package teams

import (
	"net/http"

	"builderspace-backend/internal/features/posts"
	users_middleware "builderspace-backend/internal/features/users/middleware"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamController struct {
	teamService *TeamService
}

func (c *TeamController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/teams/invite", c.InviteToTeam)
	router.GET("/teams/:postType/:postId", c.GetTeam)
	router.DELETE("/teams/:postType/:postId/members/:userId", c.RemoveMember)
}

// InviteToTeam
// @Summary Invite an applicant to the team
// @Description Turn an accepted application into a team membership
// @Tags teams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body InviteToTeamRequestDTO true "Accepted application"
// @Success 200 {object} TeamMember
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/invite [post]
func (c *TeamController) InviteToTeam(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request InviteToTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.teamService.InviteToTeam(user.ID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// GetTeam
// @Summary List the team of a post
// @Description List team members with names and roles; members only
// @Tags teams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param postType path string true "Post type (STARTUP or HACKATHON)"
// @Param postId path string true "Post ID"
// @Success 200 {array} workspaces_interfaces.TeamMemberInfo
// @Failure 403 {object} map[string]string
// @Router /teams/{postType}/{postId} [get]
func (c *TeamController) GetTeam(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postType := posts.PostType(ctx.Param("postType"))
	if !postType.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post type"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("postId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	members, err := c.teamService.GetTeam(user.ID, postType, postID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// RemoveMember
// @Summary Remove a team member
// @Description Remove a non-founder member; founder only
// @Tags teams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param postType path string true "Post type (STARTUP or HACKATHON)"
// @Param postId path string true "Post ID"
// @Param userId path string true "Member's user ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{postType}/{postId}/members/{userId} [delete]
func (c *TeamController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postType := posts.PostType(ctx.Param("postType"))
	if !postType.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post type"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("postId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.teamService.RemoveMember(user.ID, postType, postID, memberUserID); err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}
