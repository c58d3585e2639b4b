package workspaces_services

import (
	"fmt"

	"builderspace-backend/internal/features/realtime"
	users_models "builderspace-backend/internal/features/users/models"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	sanitize_utils "builderspace-backend/internal/util/sanitize"

	"github.com/google/uuid"
)

const maxMessageLength = 5000

type GroupChatService struct {
	workspaceService  *WorkspaceService
	messageRepository *workspaces_repositories.MessageRepository
	stateSyncService  *realtime.StateSyncService
}

// SendGroupMessage persists a chat message and fans it out to every other
// online team member. The sender must be a team member; content is
// HTML-sanitized before it is stored or broadcast.
func (s *GroupChatService) SendGroupMessage(
	sender *users_models.User,
	workspaceID uuid.UUID,
	request *workspaces_dto.SendMessageRequestDTO,
) (*workspaces_dto.GroupMessageResponseDTO, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, sender.ID); err != nil {
		return nil, err
	}

	content, err := sanitize_utils.CleanAndValidate(request.Content, "message", maxMessageLength)
	if err != nil {
		return nil, err
	}

	message := &workspaces_models.Message{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		SenderID:    sender.ID,
		Content:     content,
	}

	if err := s.messageRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	response := &workspaces_dto.GroupMessageResponseDTO{
		ID:          message.ID,
		WorkspaceID: message.WorkspaceID,
		SenderID:    message.SenderID,
		SenderName:  sender.Name,
		Content:     message.Content,
		CreatedAt:   message.CreatedAt,
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeMessage,
			Action:     realtime.ActionCreate,
			Data:       response,
		},
		&sender.ID,
	)

	return response, nil
}

// GetGroupMessages returns the workspace's message history with sender
// names, most recent first.
func (s *GroupChatService) GetGroupMessages(
	userID, workspaceID uuid.UUID,
) ([]*workspaces_dto.GroupMessageResponseDTO, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.GetMessagesWithSenders(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}
