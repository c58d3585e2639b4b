package workspaces_repositories

import (
	"time"

	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkRepository struct{}

func (r *LinkRepository) CreateLink(link *workspaces_models.SharedLink) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	return storage.TranslateError(storage.GetDb().Create(link).Error)
}

func (r *LinkRepository) GetLinkByID(linkID uuid.UUID) (*workspaces_models.SharedLink, error) {
	var link workspaces_models.SharedLink

	if err := storage.GetDb().Where("id = ?", linkID).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &link, nil
}

func (r *LinkRepository) GetLinksByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.SharedLink, error) {
	var links []*workspaces_models.SharedLink

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&links).Error

	return links, err
}

func (r *LinkRepository) DeleteLink(linkID uuid.UUID) error {
	return storage.TranslateError(
		storage.GetDb().
			Where("id = ?", linkID).
			Delete(&workspaces_models.SharedLink{}).Error,
	)
}
