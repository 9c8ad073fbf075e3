// Package session owns the per-room runtime: a cancellable subscription
// that polls the store for new messages, classifies incoming traffic and
// feeds the reaction bot. One RoomSession per room, shut down through
// its context — no ambient timers.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
	"github.com/tonebridge-io/tonebridge-sdk-go/store"
)

// EventType classifies session events.
type EventType string

const (
	// EventMessage fires for every newly observed message, either
	// direction.
	EventMessage EventType = "message"
	// EventSuggestions follows an incoming message and carries the
	// reaction-bot panel for it.
	EventSuggestions EventType = "suggestions"
)

// Event is one item on a session's subscription channel.
type Event struct {
	Type        EventType
	Message     store.Message
	Suggestions *tonesdk.IncomingSuggestions // set for EventSuggestions
}

// ErrAlreadySubscribed is returned by Subscribe when the session already
// has a live subscription.
var ErrAlreadySubscribed = errors.New("session: already subscribed")

// Config tunes a RoomSession.
type Config struct {
	// PollInterval is the store polling cadence, default 500ms.
	PollInterval time.Duration
	// Archive, when set, receives a copy of every message the session
	// stores or observes.
	Archive *store.Archive
	// Logger, nil = nop.
	Logger *zap.Logger
}

// RoomSession drives one chat room: outgoing sends go through the
// pre-send gates, incoming messages surface as events with reaction
// suggestions attached.
type RoomSession struct {
	id         string
	room       tonesdk.ChatRoom
	store      store.MessageStore
	assist     *tonesdk.ToneAssist
	archive    *store.Archive
	limiter    *rate.Limiter
	logger     *zap.Logger
	subscribed *atomic.Bool
	delivered  *atomic.Int64 // messages already emitted
}

// New creates a session for the room using the given store and pipeline.
func New(room tonesdk.ChatRoom, st store.MessageStore, assist *tonesdk.ToneAssist, config ...Config) *RoomSession {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &RoomSession{
		id:         id,
		room:       room,
		store:      st,
		assist:     assist,
		archive:    cfg.Archive,
		limiter:    rate.NewLimiter(rate.Every(cfg.PollInterval), 1),
		logger:     cfg.Logger.With(zap.String("session_id", id), zap.String("room_id", room.ID)),
		subscribed: atomic.NewBool(false),
		delivered:  atomic.NewInt64(0),
	}
}

// ID returns the session's unique id.
func (s *RoomSession) ID() string { return s.id }

// Room returns the room this session drives.
func (s *RoomSession) Room() tonesdk.ChatRoom { return s.room }

// Send runs the draft through the pre-send gates and, when no gate
// blocks outright, persists it. The review is always returned so the
// caller can surface suggestions even for stored messages; an
// aggressive draft is NOT stored and comes back with the review only.
func (s *RoomSession) Send(ctx context.Context, draft string) (store.Message, *tonesdk.OutgoingReview, error) {
	review := s.assist.CheckOutgoing(ctx, draft, s.room)
	if review.Aggression != nil && review.Aggression.IsAggressive {
		s.logger.Info("send held by aggression gate",
			zap.String("type", review.Aggression.Type),
			zap.Float64("confidence", review.Aggression.Confidence))
		return store.Message{}, review, nil
	}

	msg, err := s.store.AppendMessage(ctx, store.Message{
		RoomID:    s.room.ID,
		Direction: store.DirectionOutgoing,
		Content:   draft,
	})
	if err != nil {
		return store.Message{}, review, fmt.Errorf("store outgoing message: %w", err)
	}
	if s.archive != nil {
		if err := s.archive.Save(ctx, msg); err != nil {
			s.logger.Warn("archive write failed", zap.Error(err))
		}
	}
	return msg, review, nil
}

// Receive records an incoming message from the counterpart, tagging it
// with its classified emotion.
func (s *RoomSession) Receive(ctx context.Context, content string) (store.Message, error) {
	msg, err := s.store.AppendMessage(ctx, store.Message{
		RoomID:    s.room.ID,
		Direction: store.DirectionIncoming,
		Content:   content,
		Emotion:   tonesdk.AnalyzeMessageEmotion(content),
	})
	if err != nil {
		return store.Message{}, fmt.Errorf("store incoming message: %w", err)
	}
	if s.archive != nil {
		if err := s.archive.Save(ctx, msg); err != nil {
			s.logger.Warn("archive write failed", zap.Error(err))
		}
	}
	return msg, nil
}

// Subscribe starts the polling loop and returns its event channel. The
// loop stops and the channel closes when ctx is cancelled. A session
// supports one live subscription at a time; messages already present in
// the store are not replayed.
func (s *RoomSession) Subscribe(ctx context.Context) (<-chan Event, error) {
	if !s.subscribed.CompareAndSwap(false, true) {
		return nil, ErrAlreadySubscribed
	}

	// skip history present before the subscription
	existing, err := s.store.Messages(ctx, s.room.ID, 0)
	if err != nil {
		s.subscribed.Store(false)
		return nil, fmt.Errorf("read room history: %w", err)
	}
	s.delivered.Store(int64(len(existing)))

	events := make(chan Event, 16)
	go s.poll(ctx, events)
	return events, nil
}

func (s *RoomSession) poll(ctx context.Context, events chan<- Event) {
	defer func() {
		close(events)
		s.subscribed.Store(false)
		s.logger.Debug("subscription closed")
	}()

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}
		msgs, err := s.store.Messages(ctx, s.room.ID, 0)
		if err != nil {
			s.logger.Warn("poll failed", zap.Error(err))
			continue
		}
		seen := int(s.delivered.Load())
		if seen > len(msgs) {
			// history trimmed underneath us; realign
			seen = len(msgs)
			s.delivered.Store(int64(seen))
		}
		for _, msg := range msgs[seen:] {
			if !s.emit(ctx, events, Event{Type: EventMessage, Message: msg}) {
				return
			}
			if msg.Direction == store.DirectionIncoming {
				suggestions := s.assist.SuggestIncoming(ctx, msg.Content, s.room)
				if suggestions != nil {
					if !s.emit(ctx, events, Event{Type: EventSuggestions, Message: msg, Suggestions: suggestions}) {
						return
					}
				}
			}
			s.delivered.Inc()
		}
	}
}

func (s *RoomSession) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
