package workspaces_services_test

import (
	"testing"

	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	workspaces_testing "builderspace-backend/internal/features/workspaces/testing"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateTask_StoresSanitizedTask(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Tasks")

	task, err := workspaces_services.GetTaskService().CreateTask(
		founder.User,
		workspace.ID,
		&workspaces_dto.CreateTaskRequestDTO{
			Title:       "Ship <b>MVP</b>",
			Description: "<script>x</script>cut scope first",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "Ship MVP", task.Title)
	assert.Equal(t, "cut scope first", task.Description)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedBy)
}

func Test_UpdateTask_AnyMemberCanComplete(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	member := users_testing.CreateTestUser("Member")

	post, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Task Complete")
	workspaces_testing.JoinTeam(founder, member.User, post)

	taskService := workspaces_services.GetTaskService()

	task, err := taskService.CreateTask(founder.User, workspace.ID,
		&workspaces_dto.CreateTaskRequestDTO{Title: "Write docs"})
	require.NoError(t, err)

	completed := true
	updated, err := taskService.UpdateTask(member.User, workspace.ID, task.ID,
		&workspaces_dto.UpdateTaskRequestDTO{Completed: &completed})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedBy)
	assert.Equal(t, member.User.ID, *updated.CompletedBy)
	assert.NotNil(t, updated.CompletedAt)

	// clearing the flag resets completion metadata
	notCompleted := false
	reopened, err := taskService.UpdateTask(founder.User, workspace.ID, task.ID,
		&workspaces_dto.UpdateTaskRequestDTO{Completed: &notCompleted})
	require.NoError(t, err)

	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedBy)
	assert.Nil(t, reopened.CompletedAt)
}

func Test_UpdateTask_PartialFieldUpdate(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Task Edit")

	taskService := workspaces_services.GetTaskService()

	task, err := taskService.CreateTask(founder.User, workspace.ID,
		&workspaces_dto.CreateTaskRequestDTO{Title: "Old title", Description: "keep me"})
	require.NoError(t, err)

	newTitle := "New title"
	updated, err := taskService.UpdateTask(founder.User, workspace.ID, task.ID,
		&workspaces_dto.UpdateTaskRequestDTO{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
}

func Test_DeleteTask_RemovesTask(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Task Delete")

	taskService := workspaces_services.GetTaskService()

	task, err := taskService.CreateTask(founder.User, workspace.ID,
		&workspaces_dto.CreateTaskRequestDTO{Title: "Throwaway"})
	require.NoError(t, err)

	require.NoError(t, taskService.DeleteTask(founder.User.ID, workspace.ID, task.ID))

	tasks, err := taskService.GetTasks(founder.User.ID, workspace.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func Test_TaskOperations_WrongWorkspace_IsNotFound(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	_, workspaceA := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Task A")
	_, workspaceB := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Task B")

	taskService := workspaces_services.GetTaskService()

	task, err := taskService.CreateTask(founder.User, workspaceA.ID,
		&workspaces_dto.CreateTaskRequestDTO{Title: "Scoped"})
	require.NoError(t, err)

	// a task is only addressable through its own workspace
	err = taskService.DeleteTask(founder.User.ID, workspaceB.ID, task.ID)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))

	err = taskService.DeleteTask(founder.User.ID, workspaceA.ID, uuid.New())
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}
