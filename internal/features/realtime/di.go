package realtime

import (
	"net/http"

	users_services "builderspace-backend/internal/features/users/services"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"

	"github.com/gorilla/websocket"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}

var connectionRegistry = NewConnectionRegistry(workspaceRepository)

var stateSyncService = NewStateSyncService(
	connectionRegistry,
	workspaceRepository,
	&workspaces_repositories.MessageRepository{},
	&workspaces_repositories.LinkRepository{},
	&workspaces_repositories.TaskRepository{},
)

var realtimeController = &RealtimeController{
	users_services.GetUserService(),
	connectionRegistry,
	stateSyncService,
	websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Cross-origin access is governed by the CORS layer; the WS
		// handshake itself accepts any origin.
		CheckOrigin: func(r *http.Request) bool { return true },
	},
}

var connectionPruneBackgroundService = &ConnectionPruneBackgroundService{
	connectionRegistry,
}

func GetConnectionRegistry() *ConnectionRegistry {
	return connectionRegistry
}

func GetStateSyncService() *StateSyncService {
	return stateSyncService
}

func GetRealtimeController() *RealtimeController {
	return realtimeController
}

func GetConnectionPruneBackgroundService() *ConnectionPruneBackgroundService {
	return connectionPruneBackgroundService
}
