package realtime

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeConnection struct {
	mu       sync.Mutex
	written  []any
	writeErr error
	pingErr  error
	closed   bool
}

func (c *fakeConnection) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeErr != nil {
		return c.writeErr
	}

	c.written = append(c.written, v)
	return nil
}

func (c *fakeConnection) Ping() error {
	return c.pingErr
}

func (c *fakeConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

func (c *fakeConnection) writtenCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.written)
}

func Test_AddConnection_MultipleTabs_AllTracked(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()

	tab1 := &fakeConnection{}
	tab2 := &fakeConnection{}
	registry.AddConnection(userID, tab1)
	registry.AddConnection(userID, tab2)

	assert.True(t, registry.IsUserOnline(userID))
	assert.Equal(t, 2, registry.ConnectionCount(userID))
}

func Test_RemoveConnection_IsIdempotent(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()
	conn := &fakeConnection{}

	registry.AddConnection(userID, conn)
	registry.RemoveConnection(userID, conn)
	registry.RemoveConnection(userID, conn)

	assert.False(t, registry.IsUserOnline(userID))
	assert.Equal(t, 0, registry.ConnectionCount(userID))
}

func Test_RemoveConnection_OnlyRemovesGivenConnection(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()

	tab1 := &fakeConnection{}
	tab2 := &fakeConnection{}
	registry.AddConnection(userID, tab1)
	registry.AddConnection(userID, tab2)

	registry.RemoveConnection(userID, tab1)

	assert.True(t, registry.IsUserOnline(userID))
	assert.Equal(t, 1, registry.ConnectionCount(userID))
}

func Test_SendToUser_DeliversToEveryTab(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()

	tab1 := &fakeConnection{}
	tab2 := &fakeConnection{}
	registry.AddConnection(userID, tab1)
	registry.AddConnection(userID, tab2)

	registry.SendToUser(userID, NewOutboundMessage(MessageTypeStateUpdate, "payload", nil))

	assert.Equal(t, 1, tab1.writtenCount())
	assert.Equal(t, 1, tab2.writtenCount())
}

func Test_SendToUser_OfflineUser_IsNoOp(t *testing.T) {
	registry := NewConnectionRegistry(nil)

	// must not panic or error
	registry.SendToUser(uuid.New(), NewOutboundMessage(MessageTypeStateUpdate, "payload", nil))
}

func Test_SendToUser_FailedWrite_DropsConnection(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()

	broken := &fakeConnection{writeErr: errors.New("broken pipe")}
	healthy := &fakeConnection{}
	registry.AddConnection(userID, broken)
	registry.AddConnection(userID, healthy)

	registry.SendToUser(userID, NewOutboundMessage(MessageTypeStateUpdate, "payload", nil))

	assert.Equal(t, 1, registry.ConnectionCount(userID))
	assert.True(t, broken.closed)
	assert.Equal(t, 1, healthy.writtenCount())
}

func Test_PruneDeadConnections_DropsFailingPings(t *testing.T) {
	registry := NewConnectionRegistry(nil)
	userID := uuid.New()

	dead := &fakeConnection{pingErr: errors.New("timeout")}
	alive := &fakeConnection{}
	registry.AddConnection(userID, dead)
	registry.AddConnection(userID, alive)

	registry.PruneDeadConnections()

	assert.Equal(t, 1, registry.ConnectionCount(userID))
	assert.True(t, dead.closed)
	assert.False(t, alive.closed)
}
