package workspaces_controllers

import (
	"net/http"

	users_middleware "builderspace-backend/internal/features/users/middleware"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SharedLinkController struct {
	sharedLinkService *workspaces_services.SharedLinkService
}

func (c *SharedLinkController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:workspaceId/links", c.AddLink)
	router.GET("/workspaces/:workspaceId/links", c.GetLinks)
	router.DELETE("/workspaces/:workspaceId/links/:linkId", c.DeleteLink)
}

// AddLink
// @Summary Share a link
// @Description Share a link in the workspace; the URL is checked against phishing heuristics
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.AddLinkRequestDTO true "Link data"
// @Success 200 {object} workspaces_models.SharedLink
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/links [post]
func (c *SharedLinkController) AddLink(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	var request workspaces_dto.AddLinkRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	link, err := c.sharedLinkService.AddSharedLink(user, workspaceID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, link)
}

// GetLinks
// @Summary List shared links
// @Description List the workspace's shared links, most recent first
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {array} workspaces_models.SharedLink
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/links [get]
func (c *SharedLinkController) GetLinks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	links, err := c.sharedLinkService.GetSharedLinks(user.ID, workspaceID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, links)
}

// DeleteLink
// @Summary Delete a shared link
// @Description Delete a shared link; only the member who shared it may delete it
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param linkId path string true "Link ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/links/{linkId} [delete]
func (c *SharedLinkController) DeleteLink(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	linkID, err := uuid.Parse(ctx.Param("linkId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link ID"})
		return
	}

	if err := c.sharedLinkService.DeleteSharedLink(user.ID, workspaceID, linkID); err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}
