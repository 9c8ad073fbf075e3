package tonesdk

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// ToneAssist — unified entry point for the tone-adaptation pipeline
// ──────────────────────────────────────────────

// AssistConfig controls which pipeline stages are enabled.
type AssistConfig struct {
	// Recommended (default ON, zero remote cost)
	AggressionGuard    bool // default true
	ScheduleAdvice     bool // default true
	ReactionSuggestion bool // default true

	// AutoTransform proposes a register rewrite before every send.
	// Runtime-togglable via ToneAssist.SetAutoTransform.
	AutoTransform bool // default true

	// Remote advisor (optional, nil = local rules only). Wrapped in a
	// fallback so remote failures never reach the caller.
	Remote Advisor

	// Timezone for schedule advice, default "Asia/Seoul".
	Timezone string

	// Now overrides the clock, for tests. nil = time.Now.
	Now func() time.Time
}

// DefaultAssistConfig returns the recommended baseline.
func DefaultAssistConfig() AssistConfig {
	return AssistConfig{
		AggressionGuard:    true,
		ScheduleAdvice:     true,
		ReactionSuggestion: true,
		AutoTransform:      true,
		Timezone:           "Asia/Seoul",
	}
}

// OutgoingReview is everything the UI needs before letting a send through.
type OutgoingReview struct {
	Draft      string             `json:"draft"`
	Aggression *AggressionMatch   `json:"aggression,omitempty"` // nil when the guard is disabled
	Transform  *TransformResponse `json:"transform,omitempty"`  // nil when auto-transform is off
	Schedule   *ScheduleAdvice    `json:"schedule,omitempty"`   // nil when schedule advice is disabled

	// SendReady is true when no gate wants the user's attention: the
	// draft is non-aggressive, no rewrite suggestion applies, and no
	// deferral is advised.
	SendReady bool `json:"send_ready"`
}

// IncomingSuggestions feeds the reaction-bot panel for a received message.
type IncomingSuggestions struct {
	Emotion       EmotionLabel `json:"emotion"`
	Emojis        []string     `json:"emojis"`
	TextReactions []string     `json:"text_reactions"`
	QuickReplies  []string     `json:"quick_replies"`
}

// ToneAssist orchestrates the pre-send gates and the reaction bot.
// Safe for concurrent use.
type ToneAssist struct {
	config        AssistConfig
	advisor       Advisor
	autoTransform *atomic.Bool
	location      *time.Location
	now           func() time.Time
}

// NewToneAssist creates the pipeline. Unknown timezones fall back to UTC.
func NewToneAssist(config ...AssistConfig) *ToneAssist {
	cfg := DefaultAssistConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		loc = time.UTC
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ToneAssist{
		config:        cfg,
		advisor:       NewFallbackAdvisor(cfg.Remote, nil),
		autoTransform: atomic.NewBool(cfg.AutoTransform),
		location:      loc,
		now:           nowFn,
	}
}

// SetAutoTransform flips the auto-transform toggle at runtime.
func (t *ToneAssist) SetAutoTransform(on bool) { t.autoTransform.Store(on) }

// AutoTransform reports the current toggle state.
func (t *ToneAssist) AutoTransform() bool { return t.autoTransform.Load() }

// CheckOutgoing runs the pre-send gates on a draft: aggression scan,
// register-rewrite suggestion (when the auto-transform toggle is on), and
// send-schedule advice. The message is final only after the caller has
// resolved every gate with the user.
func (t *ToneAssist) CheckOutgoing(ctx context.Context, draft string, room ChatRoom) *OutgoingReview {
	review := &OutgoingReview{Draft: draft}
	persona := PersonaForRoom(room)
	formality := CalculateFormalityLevel(room)

	if t.config.AggressionGuard {
		match := DetectAggression(draft)
		review.Aggression = &match
	}

	if t.autoTransform.Load() {
		resp, err := t.advisor.TransformText(ctx, TransformRequest{
			Text:           draft,
			PersonaID:      persona.ID,
			FormalityLevel: formality,
			Relationship:   room.Relationship,
			RoomID:         room.ID,
		})
		if err == nil {
			review.Transform = resp
		}
	}

	if t.config.ScheduleAdvice {
		advice := ShouldScheduleMessage(room, t.now().In(t.location))
		review.Schedule = &advice
	}

	review.SendReady = (review.Aggression == nil || !review.Aggression.IsAggressive) &&
		(review.Transform == nil || !review.Transform.ShouldSuggest) &&
		(review.Schedule == nil || !review.Schedule.Should)
	return review
}

// SuggestIncoming populates the reaction-bot panel for the last received
// message. Returns nil when reaction suggestions are disabled.
func (t *ToneAssist) SuggestIncoming(ctx context.Context, lastMessage string, room ChatRoom) *IncomingSuggestions {
	if !t.config.ReactionSuggestion {
		return nil
	}
	persona := PersonaForRoom(room)
	resp, err := t.advisor.SuggestReactions(ctx, ReactionRequest{
		MessageContent: lastMessage,
		Relationship:   room.Relationship,
		FormalityLevel: CalculateFormalityLevel(room),
		PersonaID:      persona.ID,
	})
	if err != nil {
		// FallbackAdvisor never errors, but keep the local path anyway.
		return &IncomingSuggestions{
			Emotion:       AnalyzeMessageEmotion(lastMessage),
			Emojis:        SuggestReactions(lastMessage, room),
			TextReactions: SuggestTextReactions(lastMessage, room),
			QuickReplies:  SuggestQuickReplies(lastMessage, room, persona),
		}
	}
	return &IncomingSuggestions{
		Emotion:       resp.Emotion,
		Emojis:        resp.SuggestedEmojis,
		TextReactions: resp.SuggestedTexts,
		QuickReplies:  resp.QuickReplies,
	}
}
