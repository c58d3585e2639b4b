package teams

import (
	"builderspace-backend/internal/features/applications"
	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
	users_repositories "builderspace-backend/internal/features/users/repositories"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
)

var teamMemberRepository = &TeamMemberRepository{}

var teamService = &TeamService{
	teamMemberRepository: teamMemberRepository,
	userRepository:       users_repositories.GetUserRepository(),
	applicationService:   applications.GetApplicationService(),
	postService:          posts.GetPostService(),
	workspaceService:     workspaces_services.GetWorkspaceService(),
	stateSyncService:     realtime.GetStateSyncService(),
	auditLogService:      audit_logs.GetAuditLogService(),
}

var teamController = &TeamController{
	teamService,
}

func GetTeamService() *TeamService {
	return teamService
}

func GetTeamController() *TeamController {
	return teamController
}

// SetupDependencies wires the cross-feature hooks that cannot be expressed
// as plain imports: the teams feature is the membership source behind
// workspaces and realtime, and reacts to every new post.
func SetupDependencies() {
	posts.GetPostService().AddPostCreatedListener(teamService)

	workspaces_services.GetWorkspaceService().SetMembershipSource(teamService)
	realtime.GetConnectionRegistry().SetMembershipSource(teamService)
	realtime.GetStateSyncService().SetMembershipSource(teamService)
}
