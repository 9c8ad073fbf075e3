package tonesdk

import (
	"context"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Remote advisor contract — local fallback implementation
// ──────────────────────────────────────────────
//
// A remote AI service may provide more sophisticated transforms, emotion
// guarding, and reaction suggestions. Remote and local are interchangeable
// by contract: same request/response shapes, the local variant just being
// coarser. The surrounding layer must never surface a remote failure to
// the end user — it falls back to the local advisor instead.

// TransformRequest asks for a register rewrite of a draft.
type TransformRequest struct {
	Text           string       `json:"text"`
	PersonaID      string       `json:"personaId,omitempty"` // wins over FormalityLevel when set
	FormalityLevel int          `json:"formalityLevel"`
	Relationship   Relationship `json:"relationship,omitempty"`
	RoomID         string       `json:"roomId,omitempty"`
}

// ChangeDetail describes one category of change the transform made.
type ChangeDetail struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TransformResponse is the transform result shared by remote and local.
type TransformResponse struct {
	OriginalText     string         `json:"originalText"`
	TransformedText  string         `json:"transformedText"`
	AppliedPersona   string         `json:"appliedPersona"`
	Changes          []ChangeDetail `json:"changes"`
	ShouldSuggest    bool           `json:"shouldSuggest"`
	SuggestionReason string         `json:"suggestionReason,omitempty"`
}

// GuardRequest asks whether a draft reads as aggressive.
type GuardRequest struct {
	Text      string `json:"text"`
	PersonaID string `json:"personaId,omitempty"`
}

// GuardResponse is the emotion-guard verdict.
type GuardResponse struct {
	IsAggressive    bool    `json:"isAggressive"`
	AggressionType  string  `json:"aggressionType,omitempty"`
	AggressionScore float64 `json:"aggressionScore"`
	Suggestion      string  `json:"suggestion,omitempty"`
	WarningMessage  string  `json:"warningMessage,omitempty"`
}

// ReactionRequest asks for reaction suggestions to a received message.
type ReactionRequest struct {
	MessageContent string       `json:"messageContent"`
	Relationship   Relationship `json:"relationship,omitempty"`
	FormalityLevel int          `json:"formalityLevel"`
	PersonaID      string       `json:"personaId,omitempty"`
	History        []string     `json:"history,omitempty"` // recent messages, oldest first
}

// ReactionResponse bundles every reaction surface the bot panel shows.
type ReactionResponse struct {
	Emotion         EmotionLabel `json:"emotion"`
	EmotionScore    float64      `json:"emotionScore"`
	SuggestedEmojis []string     `json:"suggestedEmojis"`
	SuggestedTexts  []string     `json:"suggestedTexts"`
	QuickReplies    []string     `json:"quickReplies"`
}

// Advisor is the transform/guard/reaction contract. LocalAdvisor is the
// deterministic reference implementation; the openai package provides a
// remote one.
type Advisor interface {
	TransformText(ctx context.Context, req TransformRequest) (*TransformResponse, error)
	CheckEmotionGuard(ctx context.Context, req GuardRequest) (*GuardResponse, error)
	SuggestReactions(ctx context.Context, req ReactionRequest) (*ReactionResponse, error)
}

// guardWarning is shown alongside a tripped emotion guard.
const guardWarning = "조금 더 부드럽게 말해볼까요?"

// LocalAdvisor implements Advisor with the deterministic rule engine.
// It never returns an error.
type LocalAdvisor struct{}

// NewLocalAdvisor creates a local advisor.
func NewLocalAdvisor() *LocalAdvisor { return &LocalAdvisor{} }

var _ Advisor = (*LocalAdvisor)(nil)

// personaForRequest resolves the effective persona: explicit id first,
// formality banding otherwise.
func personaForRequest(personaID string, formalityLevel int) Persona {
	if personaID != "" {
		if p, ok := PersonaByID(personaID); ok {
			return p
		}
	}
	return PersonaByFormalityLevel(formalityLevel)
}

// TransformText rewrites the draft with the local tables and annotates
// what changed.
func (a *LocalAdvisor) TransformText(ctx context.Context, req TransformRequest) (*TransformResponse, error) {
	persona := personaForRequest(req.PersonaID, req.FormalityLevel)
	resp := &TransformResponse{
		OriginalText:   req.Text,
		AppliedPersona: persona.ID,
	}

	transformed := TransformMessage(req.Text, persona, nil)
	resp.TransformedText = transformed
	resp.Changes = SummarizeChanges(req.Text, transformed, req.FormalityLevel)

	changed := transformed != req.Text
	resp.ShouldSuggest = changed && (req.FormalityLevel >= 60 || req.Relationship.IsAuthority())
	if resp.ShouldSuggest {
		resp.SuggestionReason = SuggestionReason(req.Relationship, req.FormalityLevel)
	}
	return resp, nil
}

// CheckEmotionGuard runs the rule-based detector and, when it trips,
// offers the softened rewrite.
func (a *LocalAdvisor) CheckEmotionGuard(ctx context.Context, req GuardRequest) (*GuardResponse, error) {
	match := DetectAggression(req.Text)
	resp := &GuardResponse{
		IsAggressive:    match.IsAggressive,
		AggressionType:  match.Type,
		AggressionScore: match.Confidence,
	}
	if match.IsAggressive {
		resp.WarningMessage = guardWarning
		if match.SuggestedReplacement != "" {
			resp.Suggestion = match.SuggestedReplacement
		} else {
			resp.Suggestion = SoftenMessage(req.Text)
		}
	}
	return resp, nil
}

// SuggestReactions produces the full reaction panel from the local rules.
func (a *LocalAdvisor) SuggestReactions(ctx context.Context, req ReactionRequest) (*ReactionResponse, error) {
	room := ChatRoom{Relationship: req.Relationship}
	if req.FormalityLevel > 0 {
		level := req.FormalityLevel
		room.FormalityLevel = &level
	}
	persona := personaForRequest(req.PersonaID, CalculateFormalityLevel(room))

	emotion := AnalyzeMessageEmotion(req.MessageContent)
	score := 0.5
	if emotion != EmotionNeutral {
		score = 0.8
	}
	return &ReactionResponse{
		Emotion:         emotion,
		EmotionScore:    score,
		SuggestedEmojis: SuggestReactions(req.MessageContent, room),
		SuggestedTexts:  SuggestTextReactions(req.MessageContent, room),
		QuickReplies:    SuggestQuickReplies(req.MessageContent, room, persona),
	}, nil
}

// SummarizeChanges describes what a transform did, by formality band.
// Shared by the local advisor and remote implementations, which annotate
// the AI rewrite with the same categories.
func SummarizeChanges(original, transformed string, formalityLevel int) []ChangeDetail {
	changes := []ChangeDetail{}
	if original == transformed {
		return changes
	}
	if formalityLevel >= 60 {
		changes = append(changes, ChangeDetail{Type: "tone", Description: "반말을 정중한 존댓말로 변경"})
		if utf8.RuneCountInString(transformed)*2 > utf8.RuneCountInString(original)*3 {
			changes = append(changes, ChangeDetail{Type: "detail", Description: "구체적인 응답으로 확장"})
		}
	} else if formalityLevel <= 30 {
		changes = append(changes, ChangeDetail{Type: "tone", Description: "격식을 낮추고 친근하게 변경"})
	}
	return changes
}

// SuggestionReason explains why a rewrite is worth showing.
func SuggestionReason(relationship Relationship, formalityLevel int) string {
	switch relationship {
	case RelationshipBoss:
		return "상사와의 대화에서 더 격식있는 표현이 적합합니다."
	case RelationshipSenior:
		return "선배와의 대화에서 예의있는 표현을 사용하는 것이 좋습니다."
	}
	if formalityLevel >= 80 {
		return "업무 상황에서 더 정중한 표현이 적절합니다."
	}
	return "상황에 맞는 적절한 표현을 사용해보세요."
}
