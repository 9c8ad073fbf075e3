package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ──────────────────────────────────────────────
// Advisor implementation — prompts and response mapping
// ──────────────────────────────────────────────

// personaGuide is the per-tier tone instruction embedded in prompts.
func personaGuide(tier tonesdk.PersonaTier) string {
	switch tier {
	case tonesdk.TierVeryFormal:
		return "- 매우 격식있는 존댓말 사용 (예: ~하십니다, ~입니까, 말씀드리겠습니다)\n" +
			"- 상사, 고객, 높은 분에게 쓰는 공손한 말투\n" +
			"- 겸손하고 정중한 표현"
	case tonesdk.TierFormal:
		return "- 격식있는 존댓말 사용 (예: ~합니다, ~입니다, 확인했습니다)\n" +
			"- 업무 상황이나 공식적인 자리에서의 존댓말\n" +
			"- 정중하면서도 명확한 표현"
	case tonesdk.TierCasualPolite:
		return "- 친근하지만 예의있는 존댓말 (예: ~해요, ~이에요, 좋아요)\n" +
			"- 선배, 동료에게 쓰는 편한 존댓말\n" +
			"- 부드럽고 친근한 표현"
	case tonesdk.TierCasual:
		return "- 친근한 반말 사용 (예: ~해, ~야, 그래, 알았어)\n" +
			"- 친구, 동료와의 편한 대화\n" +
			"- 자연스럽고 친밀한 표현"
	case tonesdk.TierVeryCasual:
		return "- 매우 친근하고 편한 반말 (예: ㅇㅇ, ㅋㅋ, ㅇㅋ, 알겠)\n" +
			"- 친한 친구, 가까운 사이에서 쓰는 말투\n" +
			"- 축약어, 짧은 표현, 이모티콘 느낌 사용 (ㄱㅅ, ㄱㄱ 등)"
	}
	return ""
}

func resolvePersona(personaID string, formalityLevel int) tonesdk.Persona {
	if personaID != "" {
		if p, ok := tonesdk.PersonaByID(personaID); ok {
			return p
		}
	}
	return tonesdk.PersonaByFormalityLevel(formalityLevel)
}

// TransformText asks the model to rewrite the draft in the persona's
// register, then annotates the result with the shared change summary.
func (c *Client) TransformText(ctx context.Context, req tonesdk.TransformRequest) (*tonesdk.TransformResponse, error) {
	persona := resolvePersona(req.PersonaID, req.FormalityLevel)

	system := "당신은 텍스트를 다양한 격식 수준과 관계에 맞게 변환하는 전문가입니다."
	user := fmt.Sprintf(
		"다음 텍스트를 '%s' 말투로 변환해주세요.\n\n"+
			"**말투 가이드:**\n%s\n\n"+
			"**변환 규칙:**\n"+
			"- 원본 텍스트의 의미는 그대로 유지\n"+
			"- 말투와 문체만 변경\n"+
			"- 변환된 텍스트만 출력 (설명 없이)\n\n"+
			"**원본 텍스트:**\n%s",
		persona.ID, personaGuide(persona.Tier), req.Text)

	transformed, err := c.complete(ctx, system, user, 0.7, 500)
	if err != nil {
		c.logger.Warn("remote transform failed", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, err
	}

	resp := &tonesdk.TransformResponse{
		OriginalText:    req.Text,
		TransformedText: transformed,
		AppliedPersona:  persona.ID,
		Changes:         tonesdk.SummarizeChanges(req.Text, transformed, req.FormalityLevel),
	}
	changed := transformed != req.Text
	resp.ShouldSuggest = changed && (req.FormalityLevel >= 60 || req.Relationship.IsAuthority())
	if resp.ShouldSuggest {
		resp.SuggestionReason = tonesdk.SuggestionReason(req.Relationship, req.FormalityLevel)
	}
	c.logger.Debug("remote transform done",
		zap.String("persona", persona.ID), zap.Bool("changed", changed))
	return resp, nil
}

// CheckEmotionGuard asks the model for an aggression verdict in JSON.
func (c *Client) CheckEmotionGuard(ctx context.Context, req tonesdk.GuardRequest) (*tonesdk.GuardResponse, error) {
	persona := resolvePersona(req.PersonaID, 50)

	system := "당신은 텍스트의 감정을 분석하는 전문가입니다. 공격적이거나 비꼬는 표현을 감지합니다."
	user := fmt.Sprintf(
		"다음 텍스트를 분석하여 JSON 형식으로 응답해주세요.\n\n"+
			"**말투 설정:** %s\n%s\n\n"+
			"{\n"+
			"  \"isAggressive\": true/false,\n"+
			"  \"aggressionType\": \"sarcasm|passive_aggressive|direct_attack|dismissive\",\n"+
			"  \"aggressionScore\": 0.0-1.0,\n"+
			"  \"suggestion\": \"위 말투에 맞는 더 나은 표현 제안\"\n"+
			"}\n\n"+
			"**중요:** suggestion은 반드시 위의 말투 가이드를 정확히 따라야 합니다!\n\n"+
			"텍스트: %s",
		persona.ID, personaGuide(persona.Tier), req.Text)

	raw, err := c.complete(ctx, system, user, 0.5, 300)
	if err != nil {
		c.logger.Warn("remote emotion guard failed", zap.Error(err))
		return nil, err
	}

	var verdict struct {
		IsAggressive    bool    `json:"isAggressive"`
		AggressionType  string  `json:"aggressionType"`
		AggressionScore float64 `json:"aggressionScore"`
		Suggestion      string  `json:"suggestion"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &verdict); err != nil {
		return nil, fmt.Errorf("decode guard verdict: %w", err)
	}

	resp := &tonesdk.GuardResponse{
		IsAggressive:    verdict.IsAggressive,
		AggressionType:  verdict.AggressionType,
		AggressionScore: verdict.AggressionScore,
	}
	if verdict.IsAggressive {
		resp.Suggestion = verdict.Suggestion
		resp.WarningMessage = "조금 더 부드럽게 말해볼까요?"
	}
	return resp, nil
}

// SuggestReactions asks the model for the full reaction panel in JSON.
func (c *Client) SuggestReactions(ctx context.Context, req tonesdk.ReactionRequest) (*tonesdk.ReactionResponse, error) {
	persona := resolvePersona(req.PersonaID, req.FormalityLevel)

	var history strings.Builder
	if len(req.History) > 0 {
		history.WriteString("**최근 대화 내역:**\n")
		for _, line := range req.History {
			history.WriteString("- " + line + "\n")
		}
		history.WriteString("\n")
	}

	system := "당신은 메시지 감정을 분석하고 적절한 반응을 추천하는 전문가입니다. 대화의 맥락을 고려하여 자연스럽고 적절한 반응을 제안합니다."
	user := fmt.Sprintf(
		"다음 메시지를 분석하여 JSON 형식으로 응답해주세요.\n\n"+
			"%s**말투 설정:** %s\n%s\n\n"+
			"{\n"+
			"  \"emotion\": \"happy|sad|angry|surprised|excited|worried|neutral\",\n"+
			"  \"emotionScore\": 0.0-1.0,\n"+
			"  \"suggestedEmojis\": [\"😊\", \"❤️\", ...],\n"+
			"  \"suggestedTexts\": [\"위 말투에 정확히 맞는 답장 텍스트\", ...],\n"+
			"  \"quickReplies\": [\"위 말투에 정확히 맞는 빠른 답장\", ...]\n"+
			"}\n\n"+
			"**중요:** suggestedTexts와 quickReplies는 반드시 위의 말투 가이드를 정확히 따라야 합니다!\n\n"+
			"**현재 메시지:** %s",
		history.String(), persona.ID, personaGuide(persona.Tier), req.MessageContent)

	raw, err := c.complete(ctx, system, user, 0.7, 500)
	if err != nil {
		c.logger.Warn("remote reaction suggest failed", zap.Error(err))
		return nil, err
	}

	var panel struct {
		Emotion         string   `json:"emotion"`
		EmotionScore    float64  `json:"emotionScore"`
		SuggestedEmojis []string `json:"suggestedEmojis"`
		SuggestedTexts  []string `json:"suggestedTexts"`
		QuickReplies    []string `json:"quickReplies"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &panel); err != nil {
		return nil, fmt.Errorf("decode reaction panel: %w", err)
	}

	return &tonesdk.ReactionResponse{
		Emotion:         mapModelEmotion(panel.Emotion),
		EmotionScore:    panel.EmotionScore,
		SuggestedEmojis: panel.SuggestedEmojis,
		SuggestedTexts:  panel.SuggestedTexts,
		QuickReplies:    panel.QuickReplies,
	}, nil
}

// mapModelEmotion folds the model's emotion vocabulary into the SDK's
// label set.
func mapModelEmotion(emotion string) tonesdk.EmotionLabel {
	switch strings.ToLower(strings.TrimSpace(emotion)) {
	case "happy", "excited":
		return tonesdk.EmotionPositive
	case "sad", "worried", "angry":
		return tonesdk.EmotionNegative
	case "surprised":
		return tonesdk.EmotionSurprise
	case "congratulation":
		return tonesdk.EmotionCongratulation
	case "support":
		return tonesdk.EmotionSupport
	}
	return tonesdk.EmotionNeutral
}
