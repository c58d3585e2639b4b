package realtime

import (
	"sync"

	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	"builderspace-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

// ConnectionRegistry tracks which users are currently reachable over a live
// socket. A user may hold several connections at once (multi-tab); all of
// them receive every message addressed to the user. State is process-local:
// horizontal scaling would need a shared pub/sub backplane instead.
type ConnectionRegistry struct {
	mu          sync.Mutex
	connections map[uuid.UUID][]Connection

	workspaceRepository *workspaces_repositories.WorkspaceRepository
	membershipSource    workspaces_interfaces.MembershipSource
}

func NewConnectionRegistry(
	workspaceRepository *workspaces_repositories.WorkspaceRepository,
) *ConnectionRegistry {
	return &ConnectionRegistry{
		connections:         make(map[uuid.UUID][]Connection),
		workspaceRepository: workspaceRepository,
	}
}

func (r *ConnectionRegistry) SetMembershipSource(
	source workspaces_interfaces.MembershipSource,
) {
	r.membershipSource = source
}

// AddConnection registers a connection for a user. There is no enforced
// upper bound on connections per user.
func (r *ConnectionRegistry) AddConnection(userID uuid.UUID, conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[userID] = append(r.connections[userID], conn)
}

// RemoveConnection deregisters exactly the given connection. Removing a
// connection that is already gone is a no-op. When the last connection for
// a user is removed, the user is considered offline.
func (r *ConnectionRegistry) RemoveConnection(userID uuid.UUID, conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeConnectionLocked(userID, conn)
}

func (r *ConnectionRegistry) removeConnectionLocked(userID uuid.UUID, conn Connection) {
	conns := r.connections[userID]
	for i, existing := range conns {
		if existing == conn {
			r.connections[userID] = append(conns[:i:i], conns[i+1:]...)
			break
		}
	}

	if len(r.connections[userID]) == 0 {
		delete(r.connections, userID)
	}
}

// IsUserOnline reports whether the user has at least one live connection.
func (r *ConnectionRegistry) IsUserOnline(userID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.connections[userID]) > 0
}

// ConnectionCount returns the number of live connections for a user.
func (r *ConnectionRegistry) ConnectionCount(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.connections[userID])
}

// SendToUser writes the message to every live connection of the user.
// An offline user is a silent no-op. A failed write is logged, the broken
// connection is dropped from the registry, and the error is never raised.
func (r *ConnectionRegistry) SendToUser(userID uuid.UUID, message *OutboundMessage) {
	r.mu.Lock()
	conns := make([]Connection, len(r.connections[userID]))
	copy(conns, r.connections[userID])
	r.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			log.Warn("Failed to write to connection, dropping it",
				"userId", userID, "error", err)

			r.mu.Lock()
			r.removeConnectionLocked(userID, conn)
			r.mu.Unlock()

			_ = conn.Close()
		}
	}
}

// BroadcastGroupMessage delivers a message to every current team member of
// the workspace's post except excludeUserID. Delivery is best-effort per
// recipient; resolution failures are logged and swallowed so a successful
// write never fails because fan-out did.
func (r *ConnectionRegistry) BroadcastGroupMessage(
	workspaceID uuid.UUID,
	message *OutboundMessage,
	excludeUserID *uuid.UUID,
) {
	if r.membershipSource == nil {
		log.Error("Broadcast skipped: membership source is not configured")
		return
	}

	workspace, err := r.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil || workspace == nil {
		log.Warn("Broadcast skipped: workspace not found",
			"workspaceId", workspaceID, "error", err)
		return
	}

	memberIDs, err := r.membershipSource.GetTeamMemberIDs(workspace.PostType, workspace.PostID)
	if err != nil {
		log.Warn("Broadcast skipped: failed to resolve team members",
			"workspaceId", workspaceID, "error", err)
		return
	}

	for _, memberID := range memberIDs {
		if excludeUserID != nil && memberID == *excludeUserID {
			continue
		}

		r.SendToUser(memberID, message)
	}
}

// PruneDeadConnections pings every registered connection and drops the ones
// that fail. Called periodically by the background service.
func (r *ConnectionRegistry) PruneDeadConnections() {
	r.mu.Lock()
	snapshot := make(map[uuid.UUID][]Connection, len(r.connections))
	for userID, conns := range r.connections {
		snapshot[userID] = append([]Connection(nil), conns...)
	}
	r.mu.Unlock()

	for userID, conns := range snapshot {
		for _, conn := range conns {
			if err := conn.Ping(); err != nil {
				log.Info("Pruning dead connection", "userId", userID)

				r.mu.Lock()
				r.removeConnectionLocked(userID, conn)
				r.mu.Unlock()

				_ = conn.Close()
			}
		}
	}
}
