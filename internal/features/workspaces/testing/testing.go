package workspaces_testing

import (
	"fmt"
	"sync"

	"builderspace-backend/internal/features/applications"
	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/teams"
	users_middleware "builderspace-backend/internal/features/users/middleware"
	users_models "builderspace-backend/internal/features/users/models"
	users_services "builderspace-backend/internal/features/users/services"
	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	"builderspace-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

var setupOnce sync.Once

// Setup migrates every table the collaboration flow touches and wires the
// cross-feature dependencies, once per test binary.
func Setup() {
	setupOnce.Do(func() {
		users_testing.MigrateUsers()

		err := storage.Migrate(
			&posts.Startup{},
			&posts.Hackathon{},
			&applications.Application{},
			&applications.ScreeningMessage{},
			&teams.TeamMember{},
			&workspaces_models.Workspace{},
			&workspaces_models.Message{},
			&workspaces_models.SharedLink{},
			&workspaces_models.Task{},
			&audit_logs.AuditLog{},
		)
		if err != nil {
			panic(fmt.Sprintf("failed to migrate collaboration tables: %v", err))
		}

		teams.SetupDependencies()
	})
}

type ControllerInterface interface {
	RegisterRoutes(router gin.IRoutes)
}

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	Setup()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

// CreateTestStartupWithWorkspace publishes a startup for the founder; the
// post-created hook seeds the founder membership and workspace.
func CreateTestStartupWithWorkspace(
	founder *users_testing.TestUser,
	name string,
) (*posts.PostInfo, *workspaces_models.Workspace) {
	Setup()

	startup, err := posts.GetPostService().CreateStartup(&posts.CreateStartupRequestDTO{
		Name:  name,
		Stage: "idea",
	}, founder.User)
	if err != nil {
		panic(fmt.Sprintf("failed to create test startup: %v", err))
	}

	post := &posts.PostInfo{
		ID:      startup.ID,
		Type:    posts.PostTypeStartup,
		Name:    startup.Name,
		OwnerID: startup.FounderID,
	}

	workspace, err := workspaces_services.GetWorkspaceService().EnsureWorkspaceForPost(post)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve test workspace: %v", err))
	}

	return post, workspace
}

// JoinTeam walks a user through the whole funnel: apply, get accepted,
// get invited.
func JoinTeam(
	founder *users_testing.TestUser,
	applicant *users_models.User,
	post *posts.PostInfo,
) *teams.TeamMember {
	Setup()

	applicationService := applications.GetApplicationService()

	application, err := applicationService.Apply(applicant, &applications.ApplyRequestDTO{
		PostType: post.Type,
		PostID:   post.ID.String(),
		Message:  "I would love to join",
	})
	if err != nil {
		panic(fmt.Sprintf("failed to apply: %v", err))
	}

	_, err = applicationService.ReviewApplication(
		founder.User.ID,
		application.ID,
		&applications.ReviewApplicationRequestDTO{Status: applications.ApplicationStatusAccepted},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to accept application: %v", err))
	}

	member, err := teams.GetTeamService().InviteToTeam(founder.User.ID, &teams.InviteToTeamRequestDTO{
		ApplicationID: application.ID.String(),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to invite to team: %v", err))
	}

	return member
}
