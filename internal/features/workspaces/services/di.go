package workspaces_services

import (
	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/realtime"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}

var workspaceService = &WorkspaceService{
	workspaceRepository: workspaceRepository,
	auditLogService:     audit_logs.GetAuditLogService(),
}

var groupChatService = &GroupChatService{
	workspaceService:  workspaceService,
	messageRepository: &workspaces_repositories.MessageRepository{},
	stateSyncService:  realtime.GetStateSyncService(),
}

var sharedLinkService = &SharedLinkService{
	workspaceService: workspaceService,
	linkRepository:   &workspaces_repositories.LinkRepository{},
	stateSyncService: realtime.GetStateSyncService(),
}

var taskService = &TaskService{
	workspaceService: workspaceService,
	taskRepository:   &workspaces_repositories.TaskRepository{},
	stateSyncService: realtime.GetStateSyncService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetGroupChatService() *GroupChatService {
	return groupChatService
}

func GetSharedLinkService() *SharedLinkService {
	return sharedLinkService
}

func GetTaskService() *TaskService {
	return taskService
}
