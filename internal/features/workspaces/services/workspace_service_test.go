package workspaces_services_test

import (
	"testing"

	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	workspaces_testing "builderspace-backend/internal/features/workspaces/testing"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EnsureWorkspaceForPost_IsIdempotent(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	post, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Idempotent")

	again, err := workspaces_services.GetWorkspaceService().EnsureWorkspaceForPost(post)
	require.NoError(t, err)

	assert.Equal(t, workspace.ID, again.ID)
}

func Test_GetWorkspaceForMember_DistinguishesMissingAndForbidden(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	outsider := users_testing.CreateTestUser("Outsider")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Gated")

	workspaceService := workspaces_services.GetWorkspaceService()

	_, err := workspaceService.GetWorkspaceForMember(uuid.New(), founder.User.ID)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
	assert.Contains(t, err.Error(), "workspace not found")

	_, err = workspaceService.GetWorkspaceForMember(workspace.ID, outsider.User.ID)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
	assert.Contains(t, err.Error(), "user is not a team member")

	found, err := workspaceService.GetWorkspaceForMember(workspace.ID, founder.User.ID)
	require.NoError(t, err)
	assert.Equal(t, workspace.ID, found.ID)
}

func Test_GetUserWorkspaces_ListsEveryTeamWorkspace(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	member := users_testing.CreateTestUser("Member")

	post1, workspace1 := workspaces_testing.CreateTestStartupWithWorkspace(founder, "First")
	_, _ = workspaces_testing.CreateTestStartupWithWorkspace(founder, "Second")

	workspaces_testing.JoinTeam(founder, member.User, post1)

	founderWorkspaces, err := workspaces_services.GetWorkspaceService().
		GetUserWorkspaces(founder.User.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(founderWorkspaces), 2)

	memberWorkspaces, err := workspaces_services.GetWorkspaceService().
		GetUserWorkspaces(member.User.ID)
	require.NoError(t, err)
	require.Len(t, memberWorkspaces, 1)
	assert.Equal(t, workspace1.ID, memberWorkspaces[0].ID)
}

func Test_SyncUserState_NonMember_IsUnauthorized(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	outsider := users_testing.CreateTestUser("Outsider")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Sync Gate")

	err := realtime.GetStateSyncService().SyncUserState(outsider.User.ID, workspace.ID)

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
	assert.Contains(t, err.Error(), "user is not a team member")
}

func Test_GetFullState_ContainsMembersAndHistory(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	member := users_testing.CreateTestUser("Member")

	post, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Snapshot")
	workspaces_testing.JoinTeam(founder, member.User, post)

	_, err := workspaces_services.GetGroupChatService().SendGroupMessage(
		founder.User,
		workspace.ID,
		&workspaces_dto.SendMessageRequestDTO{Content: "kickoff at 5"},
	)
	require.NoError(t, err)

	state, err := realtime.GetStateSyncService().GetFullState(workspace.ID)
	require.NoError(t, err)

	assert.Equal(t, workspace.ID, state.WorkspaceID)
	assert.Len(t, state.Members, 2)
	require.Len(t, state.Messages, 1)
	assert.Equal(t, "kickoff at 5", state.Messages[0].Content)
	assert.False(t, state.LastUpdated.IsZero())
}

func Test_GetPost_UnknownPost_IsNotFound(t *testing.T) {
	workspaces_testing.Setup()

	_, err := posts.GetPostService().GetPost(posts.PostTypeStartup, uuid.New())

	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}
