package tonesdk

import (
	"fmt"
	"log"
	"sync"
)

// ──────────────────────────────────────────────
// Send Guard — pre-send checks on outgoing drafts
// ──────────────────────────────────────────────

// SendBlocked is returned when a send guard blocks a draft.
type SendBlocked struct {
	GuardName  string
	Reason     string
	Suggestion string // softened rewrite if the guard produced one, "" otherwise
}

func (e *SendBlocked) Error() string {
	return fmt.Sprintf("Send guard triggered: %s — %s", e.GuardName, e.Reason)
}

// GuardContext is passed to guard functions.
type GuardContext struct {
	Text  string
	Room  ChatRoom
	Extra map[string]interface{}
}

// GuardResult holds the outcome of a single guard check.
type GuardResult struct {
	Passed     bool
	Reason     string
	GuardName  string
	Suggestion string
}

// GuardFunc is the signature for send-guard check functions.
type GuardFunc func(ctx *GuardContext) *GuardResult

type guardDef struct {
	name string
	fn   GuardFunc
}

// SendGuard runs registered guards against outgoing drafts.
//
// Usage:
//
//	guard := tonesdk.NewSendGuard()
//	err := guard.Check("참 잘한다", room, nil)
//	var blocked *tonesdk.SendBlocked
//	if errors.As(err, &blocked) {
//	    offer(blocked.Suggestion)
//	}
//
// The aggression guard is installed by default; callers may append their
// own with AddGuard. Guards run sequentially in registration order and
// stop at the first failure.
type SendGuard struct {
	guards []guardDef
	mu     sync.RWMutex
}

// NewSendGuard creates a guard set with the built-in aggression guard.
func NewSendGuard() *SendGuard {
	g := &SendGuard{}
	g.AddGuard("aggression", aggressionGuard)
	return g
}

// NewEmptySendGuard creates a guard set with no built-ins.
func NewEmptySendGuard() *SendGuard { return &SendGuard{} }

// AddGuard registers a guard. Guards run in registration order.
func (g *SendGuard) AddGuard(name string, fn GuardFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.guards = append(g.guards, guardDef{name: name, fn: fn})
}

// GuardCount returns the number of registered guards.
func (g *SendGuard) GuardCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.guards)
}

// Check runs all guards. Returns a *SendBlocked error on the first failure.
func (g *SendGuard) Check(text string, room ChatRoom, extra map[string]interface{}) error {
	result := g.CheckSafe(text, room, extra)
	if !result.Passed {
		return &SendBlocked{GuardName: result.GuardName, Reason: result.Reason, Suggestion: result.Suggestion}
	}
	return nil
}

// CheckSafe runs all guards and returns the first failing result without
// wrapping it in an error.
func (g *SendGuard) CheckSafe(text string, room ChatRoom, extra map[string]interface{}) *GuardResult {
	g.mu.RLock()
	guards := make([]guardDef, len(g.guards))
	copy(guards, g.guards)
	g.mu.RUnlock()

	if len(guards) == 0 {
		return &GuardResult{Passed: true}
	}
	if extra == nil {
		extra = make(map[string]interface{})
	}
	ctx := &GuardContext{Text: text, Room: room, Extra: extra}

	for _, gd := range guards {
		result := execGuard(gd, ctx)
		if !result.Passed {
			return result
		}
	}
	return &GuardResult{Passed: true}
}

func execGuard(gd guardDef, ctx *GuardContext) (result *GuardResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[SendGuard] %s panic: %v", gd.name, r)
			result = &GuardResult{
				Passed:    false,
				Reason:    fmt.Sprintf("guard panicked: %v", r),
				GuardName: gd.name,
			}
		}
	}()
	result = gd.fn(ctx)
	if result == nil {
		result = &GuardResult{Passed: true}
	}
	result.GuardName = gd.name
	return result
}

// aggressionGuard blocks drafts the rule-based detector classifies as
// aggressive, carrying the detector's softened rewrite (or the generic
// softening pass when the winning pattern had none).
func aggressionGuard(ctx *GuardContext) *GuardResult {
	match := DetectAggression(ctx.Text)
	if !match.IsAggressive {
		return &GuardResult{Passed: true}
	}
	suggestion := match.SuggestedReplacement
	if suggestion == "" {
		suggestion = SoftenMessage(ctx.Text)
	}
	return &GuardResult{
		Passed:     false,
		Reason:     fmt.Sprintf("%s (%.2f)", match.Type, match.Confidence),
		Suggestion: suggestion,
	}
}
