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

type GroupChatController struct {
	groupChatService *workspaces_services.GroupChatService
}

func (c *GroupChatController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:workspaceId/messages", c.SendMessage)
	router.GET("/workspaces/:workspaceId/messages", c.GetMessages)
}

// SendMessage
// @Summary Send a group chat message
// @Description Send a message to the workspace group chat
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.SendMessageRequestDTO true "Message content"
// @Success 200 {object} workspaces_dto.GroupMessageResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/messages [post]
func (c *GroupChatController) SendMessage(ctx *gin.Context) {
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

	var request workspaces_dto.SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.groupChatService.SendGroupMessage(user, workspaceID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// GetMessages
// @Summary Get group chat history
// @Description Full message history with sender names, most recent first
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.GetMessagesResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/messages [get]
func (c *GroupChatController) GetMessages(ctx *gin.Context) {
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

	messages, err := c.groupChatService.GetGroupMessages(user.ID, workspaceID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &workspaces_dto.GetMessagesResponseDTO{Messages: messages})
}
