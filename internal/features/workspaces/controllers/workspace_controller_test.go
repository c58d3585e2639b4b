package workspaces_controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	users_testing "builderspace-backend/internal/features/users/testing"
	workspaces_dto "builderspace-backend/internal/features/workspaces/dto"
	workspaces_interfaces "builderspace-backend/internal/features/workspaces/interfaces"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	workspaces_testing "builderspace-backend/internal/features/workspaces/testing"
	test_utils "builderspace-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetUserWorkspaces_ReturnsOwnWorkspaces(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Listed")

	var response []*workspaces_models.Workspace
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces",
		"Bearer "+founder.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response, 1)
	assert.Equal(t, workspace.ID, response[0].ID)
	assert.Equal(t, "Listed Workspace", response[0].Name)
}

func Test_GetUserWorkspaces_WithoutAuthToken_ReturnsUnauthorized(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())

	test_utils.MakeGetRequest(t, router, "/api/v1/workspaces", "", http.StatusUnauthorized)
}

func Test_GetWorkspace_NonMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	founder := users_testing.CreateTestUser("Founder")
	outsider := users_testing.CreateTestUser("Outsider")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Private")

	resp := test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID),
		"Bearer "+outsider.Token,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "user is not a team member")
}

func Test_GetWorkspaceMembers_ReturnsTeam(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	founder := users_testing.CreateTestUser("Founder")
	member := users_testing.CreateTestUser("Member")

	post, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Crew")
	workspaces_testing.JoinTeam(founder, member.User, post)

	var response []workspaces_interfaces.TeamMemberInfo
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response, 2)

	roles := []string{response[0].Role, response[1].Role}
	assert.Contains(t, roles, "FOUNDER")
	assert.Contains(t, roles, "MEMBER")
}

func Test_SendMessage_EndToEnd(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetGroupChatController(),
	)
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "HTTP Chat")

	var message workspaces_dto.GroupMessageResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/messages", workspace.ID),
		"Bearer "+founder.Token,
		workspaces_dto.SendMessageRequestDTO{Content: "hello <b>team</b>"},
		http.StatusOK,
		&message,
	)

	assert.Equal(t, "hello team", message.Content)
	assert.Equal(t, founder.User.ID, message.SenderID)

	var history workspaces_dto.GetMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/messages", workspace.ID),
		"Bearer "+founder.Token,
		http.StatusOK,
		&history,
	)

	require.Len(t, history.Messages, 1)
	assert.Equal(t, "hello team", history.Messages[0].Content)
}

func Test_SendMessage_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetGroupChatController())
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Bad JSON")

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            fmt.Sprintf("/api/v1/workspaces/%s/messages", workspace.ID),
		Body:           "invalid json",
		AuthToken:      "Bearer " + founder.Token,
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_AddLink_SuspiciousURL_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetSharedLinkController())
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "HTTP Links")

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/links", workspace.ID),
		"Bearer "+founder.Token,
		workspaces_dto.AddLinkRequestDTO{Title: "shady", URL: "https://bit.ly/abc"},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "url shorteners are not allowed")
}

func Test_TaskLifecycle_OverHTTP(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetTaskController())
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "HTTP Tasks")
	base := fmt.Sprintf("/api/v1/workspaces/%s/tasks", workspace.ID)

	var task workspaces_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		base,
		"Bearer "+founder.Token,
		workspaces_dto.CreateTaskRequestDTO{Title: "Demo prep"},
		http.StatusOK,
		&task,
	)

	completed := true
	var updated workspaces_models.Task
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("%s/%s", base, task.ID),
		"Bearer "+founder.Token,
		workspaces_dto.UpdateTaskRequestDTO{Completed: &completed},
		http.StatusOK,
		&updated,
	)
	assert.True(t, updated.Completed)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("%s/%s", base, task.ID),
		"Bearer "+founder.Token,
		http.StatusOK,
	)

	var remaining []*workspaces_models.Task
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		base,
		"Bearer "+founder.Token,
		http.StatusOK,
		&remaining,
	)
	assert.Empty(t, remaining)
}

func Test_CreateTask_TooLongTitle_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetTaskController())
	founder := users_testing.CreateTestUser("Founder")

	_, workspace := workspaces_testing.CreateTestStartupWithWorkspace(founder, "Long Title")

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/tasks", workspace.ID),
		"Bearer "+founder.Token,
		workspaces_dto.CreateTaskRequestDTO{Title: strings.Repeat("a", 201)},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "title must be at most 200 characters")
}
