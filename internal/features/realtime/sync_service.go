package realtime

import (
	"fmt"
	"sync"
	"time"

	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
)

type ConflictStrategy string

const (
	// StrategyLastWriteWins retries the operation unchanged: the most
	// recent successful write stands.
	StrategyLastWriteWins ConflictStrategy = "LAST_WRITE_WINS"
	// StrategyMerge is currently an alias of last-write-wins. Field-level
	// merging is deliberately not implemented.
	StrategyMerge ConflictStrategy = "MERGE"
	// StrategyReject aborts on the first conflict without retrying.
	StrategyReject ConflictStrategy = "REJECT"
)

const (
	maxRetryAttempts  = 3
	defaultRetryDelay = 100 * time.Millisecond
	maxRetryDelay     = time.Second
)

// StateSyncService gives a (re)connecting member a complete view of
// workspace state and mediates concurrent writes. The per-workspace version
// counter is in-memory only: it resets on process restart and is a
// same-process ordering hint, never a durability token.
type StateSyncService struct {
	registry            *ConnectionRegistry
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	messageRepository   *workspaces_repositories.MessageRepository
	linkRepository      *workspaces_repositories.LinkRepository
	taskRepository      *workspaces_repositories.TaskRepository
	membershipSource    workspaces_interfaces.MembershipSource

	retryBaseDelay time.Duration

	mu       sync.Mutex
	versions map[uuid.UUID]int64
}

func NewStateSyncService(
	registry *ConnectionRegistry,
	workspaceRepository *workspaces_repositories.WorkspaceRepository,
	messageRepository *workspaces_repositories.MessageRepository,
	linkRepository *workspaces_repositories.LinkRepository,
	taskRepository *workspaces_repositories.TaskRepository,
) *StateSyncService {
	return &StateSyncService{
		registry:            registry,
		workspaceRepository: workspaceRepository,
		messageRepository:   messageRepository,
		linkRepository:      linkRepository,
		taskRepository:      taskRepository,
		retryBaseDelay:      defaultRetryDelay,
		versions:            make(map[uuid.UUID]int64),
	}
}

func (s *StateSyncService) SetMembershipSource(
	source workspaces_interfaces.MembershipSource,
) {
	s.membershipSource = source
}

// GetFullState assembles the complete mutable state of a workspace: full
// message/link/task history (most recent first) and the current team member
// list. LastUpdated is the snapshot assembly time.
func (s *StateSyncService) GetFullState(workspaceID uuid.UUID) (*FullWorkspaceState, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, errs.NotFound("workspace not found")
	}

	messages, err := s.messageRepository.GetMessagesByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	links, err := s.linkRepository.GetLinksByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}

	tasks, err := s.taskRepository.GetTasksByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	members, err := s.membershipSource.GetTeamMembers(workspace.PostType, workspace.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	return &FullWorkspaceState{
		WorkspaceID: workspaceID,
		Messages:    messages,
		Links:       links,
		Tasks:       tasks,
		Members:     members,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// SyncUserState pushes the full workspace state to a single user. The user
// must be a team member of the workspace's post.
func (s *StateSyncService) SyncUserState(userID, workspaceID uuid.UUID) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return errs.NotFound("workspace not found")
	}

	isMember, err := s.membershipSource.IsTeamMember(workspace.PostType, workspace.PostID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return errs.Unauthorized("user is not a team member")
	}

	state, err := s.GetFullState(workspaceID)
	if err != nil {
		return err
	}

	s.registry.SendToUser(userID, NewOutboundMessage(MessageTypeFullStateSync, state, nil))

	return nil
}

// BroadcastUpdate stamps the update with the next workspace version and fans
// it out to every team member except excludeUserID.
func (s *StateSyncService) BroadcastUpdate(
	workspaceID uuid.UUID,
	update StateUpdate,
	excludeUserID *uuid.UUID,
) {
	update.Version = s.nextVersion(workspaceID)
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now().UTC()
	}

	s.registry.BroadcastGroupMessage(
		workspaceID,
		NewOutboundMessage(envelopeTypeFor(update), update, excludeUserID),
		excludeUserID,
	)
}

func envelopeTypeFor(update StateUpdate) MessageType {
	switch {
	case update.EntityType == EntityTypeMessage && update.Action == ActionCreate:
		return MessageTypeGroupMessage
	case update.EntityType == EntityTypeLink && update.Action == ActionCreate:
		return MessageTypeLinkAdded
	case update.EntityType == EntityTypeLink && update.Action == ActionDelete:
		return MessageTypeLinkRemoved
	case update.EntityType == EntityTypeTask && update.Action == ActionCreate:
		return MessageTypeTaskCreated
	case update.EntityType == EntityTypeTask && update.Action == ActionUpdate:
		return MessageTypeTaskUpdated
	case update.EntityType == EntityTypeTask && update.Action == ActionDelete:
		return MessageTypeTaskDeleted
	case update.EntityType == EntityTypeMember && update.Action == ActionCreate:
		return MessageTypeTeamMemberJoined
	default:
		return MessageTypeStateUpdate
	}
}

// RunWithConflictRetry executes a state-mutating operation, retrying
// conflicts and transient storage errors according to the strategy.
// Non-retryable errors propagate immediately. After maxRetryAttempts the
// last failure is surfaced with the attempt count.
func (s *StateSyncService) RunWithConflictRetry(
	workspaceID uuid.UUID,
	operation func() error,
	strategy ConflictStrategy,
) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if !errs.IsRetryable(err) {
			return err
		}

		if strategy == StrategyReject {
			return errs.Wrap(errs.KindConflict, "concurrent modification rejected", err)
		}

		// LAST_WRITE_WINS and MERGE both bump the version and retry the
		// operation unchanged.
		s.nextVersion(workspaceID)
		lastErr = err

		if attempt < maxRetryAttempts {
			time.Sleep(s.backoffDelay(attempt))
		}
	}

	return errs.Wrap(
		errs.KindConflict,
		fmt.Sprintf("operation failed after %d attempts", maxRetryAttempts),
		lastErr,
	)
}

func (s *StateSyncService) backoffDelay(attempt int) time.Duration {
	delay := s.retryBaseDelay << (attempt - 1)
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}

	return delay
}

func (s *StateSyncService) nextVersion(workspaceID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions[workspaceID]++

	return s.versions[workspaceID]
}

// GetStateVersion returns the current in-memory version for a workspace;
// zero means no update has been broadcast since process start.
func (s *StateSyncService) GetStateVersion(workspaceID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.versions[workspaceID]
}

// ResetStateVersion clears the counter for a workspace.
func (s *StateSyncService) ResetStateVersion(workspaceID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.versions, workspaceID)
}
