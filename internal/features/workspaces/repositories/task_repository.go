package workspaces_repositories

import (
	"time"

	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *workspaces_models.Task) error {
	now := time.Now().UTC()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}

	task.UpdatedAt = now

	return storage.TranslateError(storage.GetDb().Create(task).Error)
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*workspaces_models.Task, error) {
	var task workspaces_models.Task

	if err := storage.GetDb().Where("id = ?", taskID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.Task, error) {
	var tasks []*workspaces_models.Task

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) UpdateTask(task *workspaces_models.Task) error {
	task.UpdatedAt = time.Now().UTC()

	return storage.TranslateError(storage.GetDb().Save(task).Error)
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.TranslateError(
		storage.GetDb().
			Where("id = ?", taskID).
			Delete(&workspaces_models.Task{}).Error,
	)
}
