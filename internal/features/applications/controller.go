package applications

import (
	"net/http"

	"builderspace-backend/internal/features/posts"
	users_middleware "builderspace-backend/internal/features/users/middleware"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationController struct {
	applicationService *ApplicationService
}

func (c *ApplicationController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/applications", c.Apply)
	router.GET("/applications/my", c.GetMyApplications)
	router.GET("/applications/post/:postType/:postId", c.GetApplicationsForPost)
	router.PUT("/applications/:applicationId/review", c.ReviewApplication)
	router.POST("/applications/:applicationId/messages", c.SendScreeningMessage)
	router.GET("/applications/:applicationId/messages", c.GetScreeningMessages)
}

// Apply
// @Summary Apply to a post
// @Description Apply to join a startup or hackathon team
// @Tags applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body ApplyRequestDTO true "Application data"
// @Success 200 {object} Application
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request ApplyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	application, err := c.applicationService.Apply(user, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// GetMyApplications
// @Summary List my applications
// @Tags applications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} Application
// @Router /applications/my [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applications, err := c.applicationService.GetMyApplications(user.ID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// GetApplicationsForPost
// @Summary List applications for a post
// @Description List a post's applications; only the post owner may view them
// @Tags applications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param postType path string true "Post type (STARTUP or HACKATHON)"
// @Param postId path string true "Post ID"
// @Success 200 {array} Application
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /applications/post/{postType}/{postId} [get]
func (c *ApplicationController) GetApplicationsForPost(ctx *gin.Context) {
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

	applications, err := c.applicationService.GetApplicationsForPost(user.ID, postType, postID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// ReviewApplication
// @Summary Review an application
// @Description Accept or reject a pending application; the decision is final
// @Tags applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param applicationId path string true "Application ID"
// @Param request body ReviewApplicationRequestDTO true "Review decision"
// @Success 200 {object} Application
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications/{applicationId}/review [put]
func (c *ApplicationController) ReviewApplication(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var request ReviewApplicationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	application, err := c.applicationService.ReviewApplication(user.ID, applicationID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// SendScreeningMessage
// @Summary Send a screening chat message
// @Description Message the other party of an application
// @Tags applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param applicationId path string true "Application ID"
// @Param request body SendScreeningMessageRequestDTO true "Message content"
// @Success 200 {object} ScreeningMessage
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /applications/{applicationId}/messages [post]
func (c *ApplicationController) SendScreeningMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var request SendScreeningMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.applicationService.SendScreeningMessage(user, applicationID, &request)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// GetScreeningMessages
// @Summary Get screening chat history
// @Description Chat history of an application, oldest first
// @Tags applications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param applicationId path string true "Application ID"
// @Success 200 {array} ScreeningMessage
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /applications/{applicationId}/messages [get]
func (c *ApplicationController) GetScreeningMessages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	messages, err := c.applicationService.GetScreeningMessages(user.ID, applicationID)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, messages)
}
