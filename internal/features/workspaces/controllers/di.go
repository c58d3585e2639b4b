package workspaces_controllers

import (
	"builderspace-backend/internal/features/audit_logs"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
)

var workspaceController = &WorkspaceController{
	workspaces_services.GetWorkspaceService(),
	audit_logs.GetAuditLogService(),
}

var groupChatController = &GroupChatController{
	workspaces_services.GetGroupChatService(),
}

var sharedLinkController = &SharedLinkController{
	workspaces_services.GetSharedLinkService(),
}

var taskController = &TaskController{
	workspaces_services.GetTaskService(),
}

func GetWorkspaceController() *WorkspaceController {
	return workspaceController
}

func GetGroupChatController() *GroupChatController {
	return groupChatController
}

func GetSharedLinkController() *SharedLinkController {
	return sharedLinkController
}

func GetTaskController() *TaskController {
	return taskController
}
