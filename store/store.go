// Package store provides pluggable persistence for rooms, messages,
// reactions and read state. The in-memory store backs tests and demos;
// RedisStore is the production backend and Archive keeps a durable
// SQLite history.
package store

import (
	"context"
	"errors"
	"time"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ──────────────────────────────────────────────
// Store contract
// ──────────────────────────────────────────────

// Direction says who authored a message relative to the SDK user.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// Message is one chat message as persisted by the store.
type Message struct {
	ID        string               `json:"id"`
	RoomID    string               `json:"room_id"`
	Direction Direction            `json:"direction"`
	Content   string               `json:"content"`
	Emotion   tonesdk.EmotionLabel `json:"emotion,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// ErrRoomNotFound is returned when a room id is unknown to the store.
var ErrRoomNotFound = errors.New("store: room not found")

// MessageStore is the persistence contract the session layer runs on.
//
// AppendMessage assigns the message an ID and timestamp when absent and
// returns the stored form. Appending an incoming message increments the
// room's unread counter; MarkRead resets it.
type MessageStore interface {
	SaveRoom(ctx context.Context, room tonesdk.ChatRoom) error
	Room(ctx context.Context, id string) (tonesdk.ChatRoom, error)
	Rooms(ctx context.Context) ([]tonesdk.ChatRoom, error)
	DeleteRoom(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, msg Message) (Message, error)
	Messages(ctx context.Context, roomID string, limit int) ([]Message, error)

	AddReaction(ctx context.Context, roomID, messageID, emoji string) error
	Reactions(ctx context.Context, roomID, messageID string) ([]string, error)

	MarkRead(ctx context.Context, roomID string) error
	UnreadCount(ctx context.Context, roomID string) (int, error)
}
