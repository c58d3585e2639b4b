package posts

import (
	"net/http"

	users_middleware "builderspace-backend/internal/features/users/middleware"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostController struct {
	postService *PostService
}

func (c *PostController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/startups", c.CreateStartup)
	router.GET("/startups/:id", c.GetStartup)
	router.POST("/hackathons", c.CreateHackathon)
	router.GET("/hackathons/:id", c.GetHackathon)
}

// CreateStartup
// @Summary Create a startup post
// @Description Create a startup; the creator becomes its founder and a team workspace is set up
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStartupRequestDTO true "Startup data"
// @Success 200 {object} Startup
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /startups [post]
func (c *PostController) CreateStartup(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateStartupRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	startup, err := c.postService.CreateStartup(&request, user)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, startup)
}

// GetStartup
// @Summary Get startup details
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Startup ID"
// @Success 200 {object} Startup
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /startups/{id} [get]
func (c *PostController) GetStartup(ctx *gin.Context) {
	startupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startup ID"})
		return
	}

	startup, err := c.postService.postRepository.GetStartupByID(startupID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "startup not found"})
		return
	}

	ctx.JSON(http.StatusOK, startup)
}

// CreateHackathon
// @Summary Create a hackathon post
// @Description Create a hackathon; the creator becomes its organizer and a team workspace is set up
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHackathonRequestDTO true "Hackathon data"
// @Success 200 {object} Hackathon
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /hackathons [post]
func (c *PostController) CreateHackathon(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateHackathonRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	hackathon, err := c.postService.CreateHackathon(&request, user)
	if err != nil {
		ctx.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}

// GetHackathon
// @Summary Get hackathon details
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hackathon ID"
// @Success 200 {object} Hackathon
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id} [get]
func (c *PostController) GetHackathon(ctx *gin.Context) {
	hackathonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID"})
		return
	}

	hackathon, err := c.postService.postRepository.GetHackathonByID(hackathonID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "hackathon not found"})
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}
