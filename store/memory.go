package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ──────────────────────────────────────────────
// In-memory store
// ──────────────────────────────────────────────

// MemoryStore is a thread-safe in-memory MessageStore for development
// and tests. Data is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	rooms     map[string]tonesdk.ChatRoom
	messages  map[string][]Message          // roomID -> ordered messages
	reactions map[string]map[string][]string // roomID -> messageID -> emojis
	unread    map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:     make(map[string]tonesdk.ChatRoom),
		messages:  make(map[string][]Message),
		reactions: make(map[string]map[string][]string),
		unread:    make(map[string]int),
	}
}

var _ MessageStore = (*MemoryStore)(nil)

func (s *MemoryStore) SaveRoom(ctx context.Context, room tonesdk.ChatRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	return nil
}

func (s *MemoryStore) Room(ctx context.Context, id string) (tonesdk.ChatRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return tonesdk.ChatRoom{}, ErrRoomNotFound
	}
	return room, nil
}

func (s *MemoryStore) Rooms(ctx context.Context) ([]tonesdk.ChatRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]tonesdk.ChatRoom, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (s *MemoryStore) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	delete(s.messages, id)
	delete(s.reactions, id)
	delete(s.unread, id)
	return nil
}

func (s *MemoryStore) AppendMessage(ctx context.Context, msg Message) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages[msg.RoomID] = append(s.messages[msg.RoomID], msg)
	if msg.Direction == DirectionIncoming {
		s.unread[msg.RoomID]++
	}
	return msg, nil
}

// Messages returns the most recent messages in chronological order.
// limit <= 0 returns everything.
func (s *MemoryStore) Messages(ctx context.Context, roomID string, limit int) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[roomID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemoryStore) AddReaction(ctx context.Context, roomID, messageID, emoji string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reactions[roomID] == nil {
		s.reactions[roomID] = make(map[string][]string)
	}
	s.reactions[roomID][messageID] = append(s.reactions[roomID][messageID], emoji)
	return nil
}

func (s *MemoryStore) Reactions(ctx context.Context, roomID, messageID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emojis := s.reactions[roomID][messageID]
	out := make([]string, len(emojis))
	copy(out, emojis)
	return out, nil
}

func (s *MemoryStore) MarkRead(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unread[roomID] = 0
	return nil
}

func (s *MemoryStore) UnreadCount(ctx context.Context, roomID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread[roomID], nil
}
