package audit_logs

import (
	"testing"

	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteAndReadWorkspaceAuditLogs(t *testing.T) {
	require.NoError(t, storage.Migrate(&AuditLog{}))

	service := GetAuditLogService()
	workspaceID := uuid.New()
	userID := uuid.New()

	service.WriteAuditLog("Workspace created: Alpha Workspace", nil, &workspaceID)
	service.WriteAuditLog("Team member joined: Bob", &userID, &workspaceID)
	service.WriteAuditLog("Unrelated entry", nil, nil)

	response, err := service.GetWorkspaceAuditLogs(workspaceID, &GetAuditLogsRequest{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), response.Total)
	require.Len(t, response.AuditLogs, 2)
	// most recent first
	assert.Equal(t, "Team member joined: Bob", response.AuditLogs[0].Message)
	assert.Equal(t, "Workspace created: Alpha Workspace", response.AuditLogs[1].Message)
}

func Test_GetWorkspaceAuditLogs_LimitAndOffset(t *testing.T) {
	require.NoError(t, storage.Migrate(&AuditLog{}))

	service := GetAuditLogService()
	workspaceID := uuid.New()

	for i := 0; i < 5; i++ {
		service.WriteAuditLog("entry", nil, &workspaceID)
	}

	page, err := service.GetWorkspaceAuditLogs(workspaceID, &GetAuditLogsRequest{
		Limit:  2,
		Offset: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.AuditLogs, 2)
	assert.Equal(t, 2, page.Limit)

	rest, err := service.GetWorkspaceAuditLogs(workspaceID, &GetAuditLogsRequest{
		Limit:  10,
		Offset: 4,
	})
	require.NoError(t, err)
	assert.Len(t, rest.AuditLogs, 1)
}

func Test_GetWorkspaceAuditLogs_LimitDefaultsApplied(t *testing.T) {
	require.NoError(t, storage.Migrate(&AuditLog{}))

	response, err := GetAuditLogService().GetWorkspaceAuditLogs(
		uuid.New(),
		&GetAuditLogsRequest{Limit: 10_000},
	)
	require.NoError(t, err)

	assert.Equal(t, 100, response.Limit)
	assert.Equal(t, int64(0), response.Total)
}
