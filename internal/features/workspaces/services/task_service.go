package workspaces_services

import (
	"fmt"
	"time"

	"builderspace-backend/internal/features/realtime"
	users_models "builderspace-backend/internal/features/users/models"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_repositories "builderspace-backend/internal/features/workspaces/repositories"
	"builderspace-backend/internal/util/errs"
	sanitize_utils "builderspace-backend/internal/util/sanitize"

	"github.com/google/uuid"
)

const (
	maxTaskTitleLength       = 200
	maxTaskDescriptionLength = 2000
)

type TaskService struct {
	workspaceService *WorkspaceService
	taskRepository   *workspaces_repositories.TaskRepository
	stateSyncService *realtime.StateSyncService
}

func (s *TaskService) CreateTask(
	creator *users_models.User,
	workspaceID uuid.UUID,
	request *workspaces_dto.CreateTaskRequestDTO,
) (*workspaces_models.Task, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, creator.ID); err != nil {
		return nil, err
	}

	title, err := sanitize_utils.CleanAndValidate(request.Title, "title", maxTaskTitleLength)
	if err != nil {
		return nil, err
	}

	description, err := sanitize_utils.CleanOptional(
		request.Description,
		"description",
		maxTaskDescriptionLength,
	)
	if err != nil {
		return nil, err
	}

	task := &workspaces_models.Task{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		CreatorID:   creator.ID,
		Title:       title,
		Description: description,
	}

	err = s.stateSyncService.RunWithConflictRetry(workspaceID, func() error {
		return s.taskRepository.CreateTask(task)
	}, realtime.StrategyLastWriteWins)
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeTask,
			Action:     realtime.ActionCreate,
			Data:       task,
		},
		&creator.ID,
	)

	return task, nil
}

func (s *TaskService) GetTasks(
	userID, workspaceID uuid.UUID,
) ([]*workspaces_models.Task, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.GetTasksByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update. Any team member may edit any task;
// marking a task completed records who completed it and when, and clearing
// the flag resets both.
func (s *TaskService) UpdateTask(
	user *users_models.User,
	workspaceID, taskID uuid.UUID,
	request *workspaces_dto.UpdateTaskRequestDTO,
) (*workspaces_models.Task, error) {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, user.ID); err != nil {
		return nil, err
	}

	task, err := s.getWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		title, err := sanitize_utils.CleanAndValidate(*request.Title, "title", maxTaskTitleLength)
		if err != nil {
			return nil, err
		}

		task.Title = title
	}

	if request.Description != nil {
		description, err := sanitize_utils.CleanOptional(
			*request.Description,
			"description",
			maxTaskDescriptionLength,
		)
		if err != nil {
			return nil, err
		}

		task.Description = description
	}

	if request.Completed != nil && *request.Completed != task.Completed {
		task.Completed = *request.Completed

		if task.Completed {
			now := time.Now().UTC()
			task.CompletedBy = &user.ID
			task.CompletedAt = &now
		} else {
			task.CompletedBy = nil
			task.CompletedAt = nil
		}
	}

	err = s.stateSyncService.RunWithConflictRetry(workspaceID, func() error {
		return s.taskRepository.UpdateTask(task)
	}, realtime.StrategyLastWriteWins)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeTask,
			Action:     realtime.ActionUpdate,
			Data:       task,
		},
		&user.ID,
	)

	return task, nil
}

func (s *TaskService) DeleteTask(
	userID, workspaceID, taskID uuid.UUID,
) error {
	if _, err := s.workspaceService.GetWorkspaceForMember(workspaceID, userID); err != nil {
		return err
	}

	task, err := s.getWorkspaceTask(workspaceID, taskID)
	if err != nil {
		return err
	}

	err = s.stateSyncService.RunWithConflictRetry(workspaceID, func() error {
		return s.taskRepository.DeleteTask(taskID)
	}, realtime.StrategyLastWriteWins)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.stateSyncService.BroadcastUpdate(
		workspaceID,
		realtime.StateUpdate{
			EntityType: realtime.EntityTypeTask,
			Action:     realtime.ActionDelete,
			Data:       task,
		},
		&userID,
	)

	return nil
}

func (s *TaskService) getWorkspaceTask(
	workspaceID, taskID uuid.UUID,
) (*workspaces_models.Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil || task.WorkspaceID != workspaceID {
		return nil, errs.NotFound("task not found")
	}

	return task, nil
}
