package workspaces_repositories

import (
	"time"

	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func (r *MessageRepository) CreateMessage(message *workspaces_models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return storage.TranslateError(storage.GetDb().Create(message).Error)
}

// GetMessagesByWorkspace returns the full message history, most recent first.
func (r *MessageRepository) GetMessagesByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.Message, error) {
	var messages []*workspaces_models.Message

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&messages).Error

	return messages, err
}

// GetMessagesWithSenders joins sender display names in, most recent first.
func (r *MessageRepository) GetMessagesWithSenders(
	workspaceID uuid.UUID,
) ([]*workspaces_dto.GroupMessageResponseDTO, error) {
	var messages []*workspaces_dto.GroupMessageResponseDTO

	err := storage.GetDb().
		Table("workspace_messages m").
		Select("m.id, m.workspace_id, m.sender_id, u.name as sender_name, m.content, m.created_at").
		Joins("JOIN users u ON m.sender_id = u.id").
		Where("m.workspace_id = ?", workspaceID).
		Order("m.created_at DESC").
		Scan(&messages).Error

	return messages, err
}
