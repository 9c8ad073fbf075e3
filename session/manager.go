package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
	"github.com/tonebridge-io/tonebridge-sdk-go/store"
)

// Manager keeps one session per room id.
type Manager struct {
	mu       sync.Mutex
	store    store.MessageStore
	assist   *tonesdk.ToneAssist
	config   Config
	sessions map[string]*RoomSession
}

// NewManager creates a session manager over the store and pipeline.
func NewManager(st store.MessageStore, assist *tonesdk.ToneAssist, config ...Config) *Manager {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Manager{
		store:    st,
		assist:   assist,
		config:   cfg,
		sessions: make(map[string]*RoomSession),
	}
}

// Open returns the room's session, creating it (and persisting the
// room) on first use.
func (m *Manager) Open(ctx context.Context, room tonesdk.ChatRoom) (*RoomSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[room.ID]; ok {
		return s, nil
	}
	if err := m.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	s := New(room, m.store, m.assist, m.config)
	m.sessions[room.ID] = s
	return s, nil
}

// Get returns the room's session when one is open.
func (m *Manager) Get(roomID string) (*RoomSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[roomID]
	return s, ok
}

// Close forgets the room's session. Any live subscription keeps running
// until its context is cancelled; the session is simply no longer
// handed out.
func (m *Manager) Close(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, roomID)
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
