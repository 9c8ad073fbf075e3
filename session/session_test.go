package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
	"github.com/tonebridge-io/tonebridge-sdk-go/store"
)

// ══════════════════════════════════════════════
// RoomSession
// ══════════════════════════════════════════════

func testAssist() *tonesdk.ToneAssist {
	cfg := tonesdk.DefaultAssistConfig()
	cfg.Timezone = "UTC"
	// weekday afternoon so the schedule gate stays quiet
	cfg.Now = func() time.Time { return time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC) }
	return tonesdk.NewToneAssist(cfg)
}

func bossRoom() tonesdk.ChatRoom {
	return tonesdk.ChatRoom{ID: "r-boss", Name: "김부장님", Relationship: tonesdk.RelationshipBoss}
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed early")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestSession_SendStoresCleanDraft(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	s := New(bossRoom(), st, testAssist())

	msg, review, err := s.Send(ctx, "네, 확인했습니다.")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID == "" || msg.Direction != store.DirectionOutgoing {
		t.Fatalf("message %+v", msg)
	}
	if !review.SendReady {
		t.Fatalf("review %+v", review)
	}

	msgs, _ := st.Messages(ctx, "r-boss", 0)
	if len(msgs) != 1 || msgs[0].Content != "네, 확인했습니다." {
		t.Fatalf("stored: %+v", msgs)
	}
}

func TestSession_SendHoldsAggressiveDraft(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	s := New(bossRoom(), st, testAssist())

	msg, review, err := s.Send(ctx, "참 잘한다")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID != "" {
		t.Fatalf("aggressive draft stored: %+v", msg)
	}
	if review.Aggression == nil || !review.Aggression.IsAggressive {
		t.Fatalf("review %+v", review)
	}

	msgs, _ := st.Messages(ctx, "r-boss", 0)
	if len(msgs) != 0 {
		t.Fatalf("store should be empty: %+v", msgs)
	}
}

func TestSession_SubscribeDeliversIncoming(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st := store.NewMemoryStore()
	s := New(bossRoom(), st, testAssist(), Config{PollInterval: 5 * time.Millisecond})

	// history from before the subscription must not replay
	if _, err := s.Receive(ctx, "어제 회의록입니다"); err != nil {
		t.Fatal(err)
	}

	events, err := s.Subscribe(ctx)
	if err != nil {
		t.Fatal(err)
	}

	incoming, err := s.Receive(ctx, "드디어 합격했어!")
	if err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, events)
	if ev.Type != EventMessage || ev.Message.ID != incoming.ID {
		t.Fatalf("first event %+v", ev)
	}
	if ev.Message.Emotion != tonesdk.EmotionCongratulation {
		t.Fatalf("emotion %s", ev.Message.Emotion)
	}

	ev = waitEvent(t, events)
	if ev.Type != EventSuggestions || ev.Suggestions == nil {
		t.Fatalf("second event %+v", ev)
	}
	if ev.Suggestions.Emotion != tonesdk.EmotionCongratulation || len(ev.Suggestions.Emojis) != 4 {
		t.Fatalf("suggestions %+v", ev.Suggestions)
	}

	cancel()
	for range events {
		// drain until close
	}
}

func TestSession_SubscribeOutgoingHasNoSuggestions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st := store.NewMemoryStore()
	s := New(bossRoom(), st, testAssist(), Config{PollInterval: 5 * time.Millisecond})

	events, err := s.Subscribe(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Send(ctx, "네, 확인했습니다."); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, events)
	if ev.Type != EventMessage || ev.Message.Direction != store.DirectionOutgoing {
		t.Fatalf("event %+v", ev)
	}

	select {
	case extra := <-events:
		t.Fatalf("unexpected follow-up event %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSession_SecondSubscribeRejected(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(bossRoom(), store.NewMemoryStore(), testAssist(), Config{PollInterval: 5 * time.Millisecond})

	if _, err := s.Subscribe(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Subscribe(ctx); err != ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestSession_ResubscribeAfterCancel(t *testing.T) {
	st := store.NewMemoryStore()
	s := New(bossRoom(), st, testAssist(), Config{PollInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	events, err := s.Subscribe(ctx)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	for range events {
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	if _, err := s.Subscribe(ctx2); err != nil {
		t.Fatalf("resubscribe after cancel: %v", err)
	}
}

func TestSession_ArchivesTraffic(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	archive, err := store.OpenArchive(filepath.Join(t.TempDir(), "session.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer archive.Close()

	s := New(bossRoom(), st, testAssist(), Config{Archive: archive})
	if _, _, err := s.Send(ctx, "네, 확인했습니다."); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Receive(ctx, "감사합니다"); err != nil {
		t.Fatal(err)
	}

	history, err := archive.History(ctx, "r-boss", 0)
	if err != nil || len(history) != 2 {
		t.Fatalf("archive history: %+v, %v", history, err)
	}
}

// ══════════════════════════════════════════════
// Manager
// ══════════════════════════════════════════════

func TestManager_OpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	m := NewManager(st, testAssist())

	first, err := m.Open(ctx, bossRoom())
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Open(ctx, bossRoom())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("expected the same session for the same room")
	}
	if m.Len() != 1 {
		t.Fatalf("open sessions %d", m.Len())
	}

	// the room is persisted on first open
	room, err := st.Room(ctx, "r-boss")
	if err != nil || room.Name != "김부장님" {
		t.Fatalf("room: %+v, %v", room, err)
	}

	m.Close("r-boss")
	if _, ok := m.Get("r-boss"); ok {
		t.Fatal("closed session still handed out")
	}
}
