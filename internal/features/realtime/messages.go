package realtime

import (
	"time"

	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeConnected        MessageType = "connected"
	MessageTypeFullStateSync    MessageType = "full-state-sync"
	MessageTypeGroupMessage     MessageType = "group-message"
	MessageTypeScreeningMessage MessageType = "screening-message"
	MessageTypeLinkAdded        MessageType = "link-added"
	MessageTypeLinkRemoved      MessageType = "link-removed"
	MessageTypeTaskCreated      MessageType = "task-created"
	MessageTypeTaskUpdated      MessageType = "task-updated"
	MessageTypeTaskDeleted      MessageType = "task-deleted"
	MessageTypeTeamMemberJoined MessageType = "team-member-joined"
	MessageTypeStateUpdate      MessageType = "state-update"
	MessageTypeError            MessageType = "error"
)

// OutboundMessage is the wire envelope for every WebSocket payload.
type OutboundMessage struct {
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	SenderID  *uuid.UUID  `json:"senderId,omitempty"`
}

func NewOutboundMessage(
	messageType MessageType,
	payload any,
	senderID *uuid.UUID,
) *OutboundMessage {
	return &OutboundMessage{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		SenderID:  senderID,
	}
}

type EntityType string

const (
	EntityTypeMessage EntityType = "message"
	EntityTypeLink    EntityType = "link"
	EntityTypeTask    EntityType = "task"
	EntityTypeMember  EntityType = "member"
)

type UpdateAction string

const (
	ActionCreate UpdateAction = "create"
	ActionUpdate UpdateAction = "update"
	ActionDelete UpdateAction = "delete"
)

// StateUpdate is a tagged workspace change broadcast to team members.
// Version is assigned by the sync service just before fan-out.
type StateUpdate struct {
	EntityType EntityType   `json:"entityType"`
	Action     UpdateAction `json:"action"`
	Data       any          `json:"data"`
	Timestamp  time.Time    `json:"timestamp"`
	Version    int64        `json:"version"`
}

// FullWorkspaceState is the complete snapshot pushed on (re)connect.
// Collections are most-recent-first; LastUpdated is the snapshot assembly
// time, not the time of the last underlying write.
type FullWorkspaceState struct {
	WorkspaceID uuid.UUID                             `json:"workspaceId"`
	Messages    []*workspaces_models.Message          `json:"messages"`
	Links       []*workspaces_models.SharedLink       `json:"links"`
	Tasks       []*workspaces_models.Task             `json:"tasks"`
	Members     []workspaces_interfaces.TeamMemberInfo `json:"members"`
	LastUpdated time.Time                             `json:"lastUpdated"`
}

// InboundMessage is what clients send over the socket.
type InboundMessage struct {
	Type        string    `json:"type"`
	WorkspaceID uuid.UUID `json:"workspaceId"`
}
