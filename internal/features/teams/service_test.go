package teams_test

import (
	"testing"

	"builderspace-backend/internal/features/applications"
	"builderspace-backend/internal/features/teams"
	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_testing "builderspace-backend/internal/features/workspaces/testing"
	"builderspace-backend/internal/util/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateStartup_SeedsFounderMembershipAndWorkspace(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Alice")

	post, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Rocket")

	assert.Equal(t, "Rocket Workspace", workspace.Name)
	assert.Equal(t, post.ID, workspace.PostID)

	isMember, err := teams.GetTeamService().IsTeamMember(post.Type, post.ID, founder.User.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	members, err := teams.GetTeamService().GetTeamMembers(post.Type, post.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, string(teams.TeamRoleFounder), members[0].Role)
	assert.Equal(t, "Alice", members[0].Name)
}

func Test_InviteToTeam_AcceptedApplicant_BecomesMember(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Invite Flow")
	member := workspaces_testing.JoinTeam(founder, applicant.User, post)

	assert.Equal(t, teams.TeamRoleMember, member.Role)
	assert.Equal(t, applicant.User.ID, member.UserID)

	isMember, err := teams.GetTeamService().IsTeamMember(post.Type, post.ID, applicant.User.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func Test_InviteToTeam_PendingApplication_IsRejected(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Pending Invite")

	application, err := applications.GetApplicationService().Apply(
		applicant.User,
		&applications.ApplyRequestDTO{
			PostType: post.Type,
			PostID:   post.ID.String(),
		},
	)
	require.NoError(t, err)

	_, err = teams.GetTeamService().InviteToTeam(founder.User.ID, &teams.InviteToTeamRequestDTO{
		ApplicationID: application.ID.String(),
	})

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Contains(t, err.Error(), "only accepted applications can be invited")
}

func Test_InviteToTeam_NonOwner_IsUnauthorized(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")
	stranger := users_testing.CreateTestUser("Stranger")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Foreign Invite")

	application, err := applications.GetApplicationService().Apply(
		applicant.User,
		&applications.ApplyRequestDTO{
			PostType: post.Type,
			PostID:   post.ID.String(),
		},
	)
	require.NoError(t, err)

	_, err = teams.GetTeamService().InviteToTeam(stranger.User.ID, &teams.InviteToTeamRequestDTO{
		ApplicationID: application.ID.String(),
	})

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func Test_InviteToTeam_ExistingMember_IsConflict(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Double Invite")

	applicationService := applications.GetApplicationService()
	application, err := applicationService.Apply(applicant.User, &applications.ApplyRequestDTO{
		PostType: post.Type,
		PostID:   post.ID.String(),
	})
	require.NoError(t, err)

	_, err = applicationService.ReviewApplication(
		founder.User.ID,
		application.ID,
		&applications.ReviewApplicationRequestDTO{Status: applications.ApplicationStatusAccepted},
	)
	require.NoError(t, err)

	teamService := teams.GetTeamService()
	inviteRequest := &teams.InviteToTeamRequestDTO{ApplicationID: application.ID.String()}

	_, err = teamService.InviteToTeam(founder.User.ID, inviteRequest)
	require.NoError(t, err)

	_, err = teamService.InviteToTeam(founder.User.ID, inviteRequest)

	assert.True(t, errs.IsKind(err, errs.KindConflict))
	assert.Contains(t, err.Error(), "already a team member")
}

func Test_RemoveMember_FounderRemovesMember(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Removal")
	workspaces_testing.JoinTeam(founder, applicant.User, post)

	err := teams.GetTeamService().RemoveMember(
		founder.User.ID,
		post.Type,
		post.ID,
		applicant.User.ID,
	)
	require.NoError(t, err)

	isMember, err := teams.GetTeamService().IsTeamMember(post.Type, post.ID, applicant.User.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func Test_RemoveMember_NonFounder_IsUnauthorized(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")
	applicant := users_testing.CreateTestUser("Applicant")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Member Removal")
	workspaces_testing.JoinTeam(founder, applicant.User, post)

	err := teams.GetTeamService().RemoveMember(
		applicant.User.ID,
		post.Type,
		post.ID,
		founder.User.ID,
	)

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func Test_RemoveMember_Founder_IsImmutable(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	post, _ := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Founder Immutable")

	err := teams.GetTeamService().RemoveMember(
		founder.User.ID,
		post.Type,
		post.ID,
		founder.User.ID,
	)

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Contains(t, err.Error(), "founder cannot be removed")
}
