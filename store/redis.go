package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ──────────────────────────────────────────────
// Redis-backed store
// ──────────────────────────────────────────────
//
// Key layout (prefix default "tone"):
//
//	{prefix}:rooms                      set of room ids
//	{prefix}:room:{roomID}              room JSON
//	{prefix}:msgs:{roomID}              list of message JSON, oldest first
//	{prefix}:react:{roomID}:{messageID} list of emojis
//	{prefix}:unread:{roomID}            unread counter

// RedisStore implements MessageStore on a go-redis client.
type RedisStore struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	maxMsgs int64
	logger  *zap.Logger
}

// RedisStoreConfig configures the Redis store.
type RedisStoreConfig struct {
	Prefix      string        // key prefix, default "tone"
	TTL         time.Duration // expiry for room keys, 0 = no expiry
	MaxMessages int64         // per-room history cap, default 500
	Logger      *zap.Logger   // nil = nop
}

// NewRedisStore creates a MessageStore backed by Redis.
func NewRedisStore(client redis.UniversalClient, config ...RedisStoreConfig) *RedisStore {
	cfg := RedisStoreConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "tone"
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 500
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &RedisStore{
		client:  client,
		prefix:  cfg.Prefix,
		ttl:     cfg.TTL,
		maxMsgs: cfg.MaxMessages,
		logger:  cfg.Logger,
	}
}

var _ MessageStore = (*RedisStore)(nil)

func (s *RedisStore) roomsKey() string               { return s.prefix + ":rooms" }
func (s *RedisStore) roomKey(id string) string       { return fmt.Sprintf("%s:room:%s", s.prefix, id) }
func (s *RedisStore) msgsKey(roomID string) string   { return fmt.Sprintf("%s:msgs:%s", s.prefix, roomID) }
func (s *RedisStore) unreadKey(roomID string) string { return fmt.Sprintf("%s:unread:%s", s.prefix, roomID) }
func (s *RedisStore) reactKey(roomID, messageID string) string {
	return fmt.Sprintf("%s:react:%s:%s", s.prefix, roomID, messageID)
}

func (s *RedisStore) SaveRoom(ctx context.Context, room tonesdk.ChatRoom) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}
	if err := s.client.Set(ctx, s.roomKey(room.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	if err := s.client.SAdd(ctx, s.roomsKey(), room.ID).Err(); err != nil {
		return fmt.Errorf("index room: %w", err)
	}
	return nil
}

func (s *RedisStore) Room(ctx context.Context, id string) (tonesdk.ChatRoom, error) {
	data, err := s.client.Get(ctx, s.roomKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return tonesdk.ChatRoom{}, ErrRoomNotFound
	}
	if err != nil {
		return tonesdk.ChatRoom{}, fmt.Errorf("load room: %w", err)
	}
	var room tonesdk.ChatRoom
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return tonesdk.ChatRoom{}, fmt.Errorf("decode room: %w", err)
	}
	return room, nil
}

func (s *RedisStore) Rooms(ctx context.Context) ([]tonesdk.ChatRoom, error) {
	ids, err := s.client.SMembers(ctx, s.roomsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	rooms := make([]tonesdk.ChatRoom, 0, len(ids))
	for _, id := range ids {
		room, err := s.Room(ctx, id)
		if errors.Is(err, ErrRoomNotFound) {
			// index entry outlived the room key (TTL); drop it
			s.client.SRem(ctx, s.roomsKey(), id)
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *RedisStore) DeleteRoom(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.roomKey(id), s.msgsKey(id), s.unreadKey(id)).Err(); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return s.client.SRem(ctx, s.roomsKey(), id).Err()
}

func (s *RedisStore) AppendMessage(ctx context.Context, msg Message) (Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return Message{}, fmt.Errorf("marshal message: %w", err)
	}
	key := s.msgsKey(msg.RoomID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return Message{}, fmt.Errorf("append message: %w", err)
	}
	if err := s.client.LTrim(ctx, key, -s.maxMsgs, -1).Err(); err != nil {
		return Message{}, fmt.Errorf("trim history: %w", err)
	}
	if msg.Direction == DirectionIncoming {
		if err := s.client.Incr(ctx, s.unreadKey(msg.RoomID)).Err(); err != nil {
			return Message{}, fmt.Errorf("bump unread: %w", err)
		}
	}
	s.logger.Debug("message stored",
		zap.String("room_id", msg.RoomID),
		zap.String("message_id", msg.ID),
		zap.String("direction", string(msg.Direction)))
	return msg, nil
}

func (s *RedisStore) Messages(ctx context.Context, roomID string, limit int) ([]Message, error) {
	start := int64(0)
	if limit > 0 {
		start = -int64(limit)
	}
	raw, err := s.client.LRange(ctx, s.msgsKey(roomID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (s *RedisStore) AddReaction(ctx context.Context, roomID, messageID, emoji string) error {
	if err := s.client.RPush(ctx, s.reactKey(roomID, messageID), emoji).Err(); err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}
	return nil
}

func (s *RedisStore) Reactions(ctx context.Context, roomID, messageID string) ([]string, error) {
	emojis, err := s.client.LRange(ctx, s.reactKey(roomID, messageID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load reactions: %w", err)
	}
	return emojis, nil
}

func (s *RedisStore) MarkRead(ctx context.Context, roomID string) error {
	if err := s.client.Del(ctx, s.unreadKey(roomID)).Err(); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

func (s *RedisStore) UnreadCount(ctx context.Context, roomID string) (int, error) {
	count, err := s.client.Get(ctx, s.unreadKey(roomID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}
