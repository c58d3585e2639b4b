package workspaces_controllers

import (
	"net/http"

	"builderspace-backend/internal/features/audit_logs"
	users_middleware "builderspace-backend/internal/features/users/middleware"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
	auditLogService  *audit_logs.AuditLogService
}

func (c *WorkspaceController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/workspaces", c.GetUserWorkspaces)
	router.GET("/workspaces/:workspaceId", c.GetWorkspace)
	router.GET("/workspaces/:workspaceId/members", c.GetWorkspaceMembers)
	router.GET("/workspaces/:workspaceId/audit-logs", c.GetWorkspaceAuditLogs)
}

// GetUserWorkspaces
// @Summary List my workspaces
// @Description List the workspaces of every team the current user belongs to
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} workspaces_models.Workspace
// @Failure 401 {object} map[string]string
// @Router /workspaces [get]
func (c *WorkspaceController) GetUserWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaces, err := c.workspaceService.GetUserWorkspaces(user.ID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspaces)
}

// GetWorkspace
// @Summary Get a workspace
// @Description Get a workspace the current user is a team member of
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
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

	workspace, err := c.workspaceService.GetWorkspaceForMember(workspaceID, user.ID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// GetWorkspaceMembers
// @Summary List workspace members
// @Description List the team members behind a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {array} workspaces_interfaces.TeamMemberInfo
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [get]
func (c *WorkspaceController) GetWorkspaceMembers(ctx *gin.Context) {
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

	members, err := c.workspaceService.GetWorkspaceMembers(workspaceID, user.ID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// GetWorkspaceAuditLogs
// @Summary Get workspace audit logs
// @Description Paginated audit log history for a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param limit query int false "Page size (default 100, max 500)"
// @Param offset query int false "Offset"
// @Param beforeDate query string false "Only entries before this RFC3339 timestamp"
// @Success 200 {object} audit_logs.GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/audit-logs [get]
func (c *WorkspaceController) GetWorkspaceAuditLogs(ctx *gin.Context) {
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

	if _, err := c.workspaceService.GetWorkspaceForMember(workspaceID, user.ID); err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	var request audit_logs.GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.auditLogService.GetWorkspaceAuditLogs(workspaceID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
