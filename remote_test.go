package tonesdk

import (
	"context"
	"reflect"
	"testing"
)

// ══════════════════════════════════════════════
// LocalAdvisor
// ══════════════════════════════════════════════

func TestLocalAdvisor_TransformText(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.TransformText(context.Background(), TransformRequest{
		Text:           "응 보고서 보낼게",
		FormalityLevel: 95,
		Relationship:   RelationshipBoss,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.TransformedText != "네, 보고서 보내드리겠습니다." {
		t.Fatalf("transformed %q", resp.TransformedText)
	}
	if resp.AppliedPersona != "very-formal" {
		t.Fatalf("applied persona %q", resp.AppliedPersona)
	}
	if !resp.ShouldSuggest {
		t.Fatal("expected suggestion for boss room")
	}
	if resp.SuggestionReason != "상사와의 대화에서 더 격식있는 표현이 적합합니다." {
		t.Fatalf("reason %q", resp.SuggestionReason)
	}
	if len(resp.Changes) != 2 {
		t.Fatalf("expected tone + detail changes, got %+v", resp.Changes)
	}
	if resp.Changes[0].Type != "tone" || resp.Changes[1].Type != "detail" {
		t.Fatalf("unexpected change types %+v", resp.Changes)
	}
}

func TestLocalAdvisor_TransformTextNoChange(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.TransformText(context.Background(), TransformRequest{
		Text:           "네, 확인했습니다.",
		FormalityLevel: 95,
		Relationship:   RelationshipBoss,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.TransformedText != resp.OriginalText {
		t.Fatalf("unexpected rewrite %q", resp.TransformedText)
	}
	if resp.ShouldSuggest || resp.SuggestionReason != "" {
		t.Fatalf("no-op transform must not suggest: %+v", resp)
	}
	if len(resp.Changes) != 0 {
		t.Fatalf("expected no changes, got %+v", resp.Changes)
	}
}

func TestLocalAdvisor_PersonaIDWinsOverFormality(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.TransformText(context.Background(), TransformRequest{
		Text:           "네, 확인해드리겠습니다",
		PersonaID:      "very-casual",
		FormalityLevel: 20,
		Relationship:   RelationshipFriend,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.AppliedPersona != "very-casual" {
		t.Fatalf("applied persona %q", resp.AppliedPersona)
	}
	if resp.TransformedText != "ㅇㅇ 확인해줌ㅋ" {
		t.Fatalf("transformed %q", resp.TransformedText)
	}
	if len(resp.Changes) != 1 || resp.Changes[0].Description != "격식을 낮추고 친근하게 변경" {
		t.Fatalf("changes %+v", resp.Changes)
	}
	if resp.ShouldSuggest {
		t.Fatal("casual downshift must not auto-suggest")
	}
}

func TestLocalAdvisor_GuardWithReplacement(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.CheckEmotionGuard(context.Background(), GuardRequest{Text: "참 잘한다"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsAggressive || resp.AggressionType != "비꼬기" {
		t.Fatalf("verdict %+v", resp)
	}
	if resp.AggressionScore != 0.9 {
		t.Fatalf("score %v", resp.AggressionScore)
	}
	if resp.Suggestion != "다음에는 조금 더 신경 써주시면 감사하겠습니다." {
		t.Fatalf("suggestion %q", resp.Suggestion)
	}
	if resp.WarningMessage != "조금 더 부드럽게 말해볼까요?" {
		t.Fatalf("warning %q", resp.WarningMessage)
	}
}

func TestLocalAdvisor_GuardSoftenFallback(t *testing.T) {
	// The winning pattern carries no canned replacement, so the guard
	// falls back to the softener; with no softening rule firing either,
	// the suggestion echoes the draft.
	adv := NewLocalAdvisor()
	resp, err := adv.CheckEmotionGuard(context.Background(), GuardRequest{Text: "뭐 먹었니"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsAggressive || resp.AggressionType != "반말 어미" {
		t.Fatalf("verdict %+v", resp)
	}
	if resp.Suggestion != "뭐 먹었니" {
		t.Fatalf("suggestion %q", resp.Suggestion)
	}
}

func TestLocalAdvisor_GuardCleanText(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.CheckEmotionGuard(context.Background(), GuardRequest{Text: "감사합니다"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.IsAggressive || resp.Suggestion != "" || resp.WarningMessage != "" {
		t.Fatalf("clean text tripped guard: %+v", resp)
	}
}

func TestLocalAdvisor_SuggestReactions(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.SuggestReactions(context.Background(), ReactionRequest{
		MessageContent: "드디어 합격했어!",
		Relationship:   RelationshipFriend,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Emotion != EmotionCongratulation || resp.EmotionScore != 0.8 {
		t.Fatalf("emotion %s score %v", resp.Emotion, resp.EmotionScore)
	}
	if !reflect.DeepEqual(resp.SuggestedEmojis, []string{"🎉", "👏", "💯", "🥳"}) {
		t.Fatalf("emojis %v", resp.SuggestedEmojis)
	}
	if !reflect.DeepEqual(resp.QuickReplies, []string{"축하드려요!"}) {
		t.Fatalf("quick replies %v", resp.QuickReplies)
	}
}

func TestLocalAdvisor_SuggestReactionsNeutral(t *testing.T) {
	adv := NewLocalAdvisor()
	resp, err := adv.SuggestReactions(context.Background(), ReactionRequest{
		MessageContent: "내일 봬요",
		Relationship:   RelationshipColleague,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Emotion != EmotionNeutral || resp.EmotionScore != 0.5 {
		t.Fatalf("emotion %s score %v", resp.Emotion, resp.EmotionScore)
	}
	if !reflect.DeepEqual(resp.QuickReplies, []string{"ㅇㅋ!", "알겠어~"}) {
		t.Fatalf("quick replies %v", resp.QuickReplies)
	}
}
