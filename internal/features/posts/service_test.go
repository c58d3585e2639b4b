package posts_test

import (
	"testing"
	"time"

	"builderspace-backend/internal/features/posts"
	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_services "builderspace-backend/internal/features/workspaces/services"
	workspaces_testing "builderspace-backend/internal/features/workspaces/testing"
	"builderspace-backend/internal/util/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateStartup_SanitizesNameAndDescription(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	startup, err := posts.GetPostService().CreateStartup(&posts.CreateStartupRequestDTO{
		Name:        "<b>CleanMe</b>",
		Description: "<script>x</script>we build things",
		Stage:       "seed",
	}, founder.User)
	require.NoError(t, err)

	assert.Equal(t, "CleanMe", startup.Name)
	assert.Equal(t, "we build things", startup.Description)
	assert.Equal(t, founder.User.ID, startup.FounderID)
}

func Test_CreateStartup_OnlyMarkupName_IsRejected(t *testing.T) {
	workspaces_testing.Setup()
	founder := users_testing.CreateTestUser("Founder")

	_, err := posts.GetPostService().CreateStartup(&posts.CreateStartupRequestDTO{
		Name: "<script>alert(1)</script>",
	}, founder.User)

	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Contains(t, err.Error(), "name must not be empty")
}

func Test_CreateHackathon_SeedsWorkspace(t *testing.T) {
	workspaces_testing.Setup()
	organizer := users_testing.CreateTestUser("Organizer")

	hackathon, err := posts.GetPostService().CreateHackathon(&posts.CreateHackathonRequestDTO{
		Name:     "Spring Jam",
		Location: "Berlin",
		StartsAt: time.Now().UTC().Add(30 * 24 * time.Hour),
	}, organizer.User)
	require.NoError(t, err)

	post, err := posts.GetPostService().GetPost(posts.PostTypeHackathon, hackathon.ID)
	require.NoError(t, err)
	assert.Equal(t, organizer.User.ID, post.OwnerID)

	workspaces, err := workspaces_services.GetWorkspaceService().
		GetUserWorkspaces(organizer.User.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, "Spring Jam Workspace", workspaces[0].Name)
}
