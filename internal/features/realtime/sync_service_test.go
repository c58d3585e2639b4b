package realtime

import (
	"errors"
	"testing"
	"time"

	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSyncService() *StateSyncService {
	service := NewStateSyncService(NewConnectionRegistry(nil), nil, nil, nil, nil)
	service.retryBaseDelay = time.Millisecond
	return service
}

func Test_RunWithConflictRetry_SucceedsFirstTry(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		return nil
	}, StrategyLastWriteWins)

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func Test_RunWithConflictRetry_RetriesConflictsUntilSuccess(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		if calls < 3 {
			return errs.Conflict("write conflict")
		}
		return nil
	}, StrategyLastWriteWins)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func Test_RunWithConflictRetry_ExhaustedRetries_ReportsAttemptCount(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		return errs.New(errs.KindTransient, "database is locked")
	}, StrategyLastWriteWins)

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, errs.IsKind(err, errs.KindConflict))
	assert.Contains(t, err.Error(), "operation failed after 3 attempts")
}

func Test_RunWithConflictRetry_NonRetryableError_FailsImmediately(t *testing.T) {
	service := newTestSyncService()
	calls := 0
	validationErr := errs.Validation("title must not be empty")

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		return validationErr
	}, StrategyLastWriteWins)

	assert.Equal(t, 1, calls)
	assert.Same(t, validationErr, err)
}

func Test_RunWithConflictRetry_UnclassifiedError_FailsImmediately(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		return errors.New("disk on fire")
	}, StrategyLastWriteWins)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func Test_RunWithConflictRetry_RejectStrategy_NoRetry(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		return errs.Conflict("write conflict")
	}, StrategyReject)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, errs.IsKind(err, errs.KindConflict))
	assert.Contains(t, err.Error(), "concurrent modification rejected")
}

func Test_RunWithConflictRetry_MergeStrategy_BehavesLikeLastWriteWins(t *testing.T) {
	service := newTestSyncService()
	calls := 0

	err := service.RunWithConflictRetry(uuid.New(), func() error {
		calls++
		if calls < 2 {
			return errs.Conflict("write conflict")
		}
		return nil
	}, StrategyMerge)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func Test_StateVersions_AreIndependentPerWorkspace(t *testing.T) {
	service := newTestSyncService()
	workspaceA := uuid.New()
	workspaceB := uuid.New()

	assert.Equal(t, int64(0), service.GetStateVersion(workspaceA))

	service.BroadcastUpdate(workspaceA, StateUpdate{
		EntityType: EntityTypeTask,
		Action:     ActionCreate,
	}, nil)
	service.BroadcastUpdate(workspaceA, StateUpdate{
		EntityType: EntityTypeTask,
		Action:     ActionUpdate,
	}, nil)

	assert.Equal(t, int64(2), service.GetStateVersion(workspaceA))
	assert.Equal(t, int64(0), service.GetStateVersion(workspaceB))

	service.ResetStateVersion(workspaceA)
	assert.Equal(t, int64(0), service.GetStateVersion(workspaceA))
}

func Test_EnvelopeTypeFor_MapsEntityAndAction(t *testing.T) {
	tests := []struct {
		entityType EntityType
		action     UpdateAction
		expected   MessageType
	}{
		{EntityTypeMessage, ActionCreate, MessageTypeGroupMessage},
		{EntityTypeLink, ActionCreate, MessageTypeLinkAdded},
		{EntityTypeLink, ActionDelete, MessageTypeLinkRemoved},
		{EntityTypeTask, ActionCreate, MessageTypeTaskCreated},
		{EntityTypeTask, ActionUpdate, MessageTypeTaskUpdated},
		{EntityTypeTask, ActionDelete, MessageTypeTaskDeleted},
		{EntityTypeMember, ActionCreate, MessageTypeTeamMemberJoined},
		{EntityTypeMember, ActionDelete, MessageTypeStateUpdate},
	}

	for _, tt := range tests {
		actual := envelopeTypeFor(StateUpdate{EntityType: tt.entityType, Action: tt.action})
		assert.Equal(t, tt.expected, actual)
	}
}
