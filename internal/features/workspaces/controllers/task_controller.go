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

type TaskController struct {
	taskService *workspaces_services.TaskService
}

func (c *TaskController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:workspaceId/tasks", c.CreateTask)
	router.GET("/workspaces/:workspaceId/tasks", c.GetTasks)
	router.PUT("/workspaces/:workspaceId/tasks/:taskId", c.UpdateTask)
	router.DELETE("/workspaces/:workspaceId/tasks/:taskId", c.DeleteTask)
}

// CreateTask
// @Summary Create a task
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.CreateTaskRequestDTO true "Task data"
// @Success 200 {object} workspaces_models.Task
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
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

	var request workspaces_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.CreateTask(user, workspaceID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// GetTasks
// @Summary List tasks
// @Description List the workspace's tasks, most recent first
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {array} workspaces_models.Task
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
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

	tasks, err := c.taskService.GetTasks(user.ID, workspaceID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// UpdateTask
// @Summary Update a task
// @Description Partial update; any team member may edit or complete any task
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Param request body workspaces_dto.UpdateTaskRequestDTO true "Fields to update"
// @Success 200 {object} workspaces_models.Task
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
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

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request workspaces_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.UpdateTask(user, workspaceID, taskID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param workspaceId path string true "Workspace ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
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

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(user.ID, workspaceID, taskID); err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
