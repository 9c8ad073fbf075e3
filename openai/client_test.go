package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ══════════════════════════════════════════════
// Client (against httptest)
// ══════════════════════════════════════════════

// completionServer answers every chat-completions call with content,
// recording the last request body.
func completionServer(t *testing.T, content string) (*httptest.Server, *map[string]interface{}) {
	t.Helper()
	var lastRequest map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&lastRequest); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		lastRequest["_auth"] = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server, &lastRequest
}

func TestClient_TransformText(t *testing.T) {
	server, lastRequest := completionServer(t, "네, 보고서 보내드리겠습니다. 확인 부탁드립니다.")
	client := NewClient(Config{Endpoint: server.URL, APIKey: "sk-test", Model: "gpt-4o-mini"})

	resp, err := client.TransformText(context.Background(), tonesdk.TransformRequest{
		Text:           "응 보고서 보낼게",
		FormalityLevel: 95,
		Relationship:   tonesdk.RelationshipBoss,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.TransformedText != "네, 보고서 보내드리겠습니다. 확인 부탁드립니다." {
		t.Fatalf("transformed %q", resp.TransformedText)
	}
	if resp.AppliedPersona != "very-formal" {
		t.Fatalf("persona %q", resp.AppliedPersona)
	}
	if !resp.ShouldSuggest || len(resp.Changes) == 0 {
		t.Fatalf("annotations missing: %+v", resp)
	}

	req := *lastRequest
	if req["model"] != "gpt-4o-mini" {
		t.Fatalf("model %v", req["model"])
	}
	if req["_auth"] != "Bearer sk-test" {
		t.Fatalf("auth header %v", req["_auth"])
	}
	messages := req["messages"].([]interface{})
	user := messages[1].(map[string]interface{})["content"].(string)
	if !strings.Contains(user, "very-formal") || !strings.Contains(user, "응 보고서 보낼게") {
		t.Fatalf("prompt missing persona/draft: %q", user)
	}
	if !strings.Contains(user, "말씀드리겠습니다") {
		t.Fatalf("persona guide missing from prompt: %q", user)
	}
}

func TestClient_TransformTextUnchangedDoesNotSuggest(t *testing.T) {
	server, _ := completionServer(t, "네, 확인했습니다.")
	client := NewClient(Config{Endpoint: server.URL})

	resp, err := client.TransformText(context.Background(), tonesdk.TransformRequest{
		Text:           "네, 확인했습니다.",
		FormalityLevel: 95,
		Relationship:   tonesdk.RelationshipBoss,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.ShouldSuggest || len(resp.Changes) != 0 {
		t.Fatalf("echoed draft must not suggest: %+v", resp)
	}
}

func TestClient_CheckEmotionGuard(t *testing.T) {
	verdict := "```json\n" + `{"isAggressive": true, "aggressionType": "sarcasm", "aggressionScore": 0.88, "suggestion": "다음에는 조금 더 신경 써주시면 감사하겠습니다."}` + "\n```"
	server, _ := completionServer(t, verdict)
	client := NewClient(Config{Endpoint: server.URL})

	resp, err := client.CheckEmotionGuard(context.Background(), tonesdk.GuardRequest{
		Text:      "참 잘한다",
		PersonaID: "very-formal",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsAggressive || resp.AggressionType != "sarcasm" || resp.AggressionScore != 0.88 {
		t.Fatalf("verdict %+v", resp)
	}
	if resp.Suggestion != "다음에는 조금 더 신경 써주시면 감사하겠습니다." {
		t.Fatalf("suggestion %q", resp.Suggestion)
	}
	if resp.WarningMessage != "조금 더 부드럽게 말해볼까요?" {
		t.Fatalf("warning %q", resp.WarningMessage)
	}
}

func TestClient_SuggestReactions(t *testing.T) {
	panel := `{"emotion": "happy", "emotionScore": 0.9,
		"suggestedEmojis": ["🎉", "👏"],
		"suggestedTexts": ["축하드립니다!"],
		"quickReplies": ["정말 잘됐네요!"]}`
	server, lastRequest := completionServer(t, panel)
	client := NewClient(Config{Endpoint: server.URL})

	resp, err := client.SuggestReactions(context.Background(), tonesdk.ReactionRequest{
		MessageContent: "드디어 합격했어!",
		Relationship:   tonesdk.RelationshipFriend,
		FormalityLevel: 5,
		History:        []string{"시험 어떻게 됐어?"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Emotion != tonesdk.EmotionPositive || resp.EmotionScore != 0.9 {
		t.Fatalf("emotion %s score %v", resp.Emotion, resp.EmotionScore)
	}
	if len(resp.SuggestedEmojis) != 2 || resp.QuickReplies[0] != "정말 잘됐네요!" {
		t.Fatalf("panel %+v", resp)
	}

	messages := (*lastRequest)["messages"].([]interface{})
	user := messages[1].(map[string]interface{})["content"].(string)
	if !strings.Contains(user, "시험 어떻게 됐어?") {
		t.Fatalf("history missing from prompt: %q", user)
	}
}

func TestClient_HTTPErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{Endpoint: server.URL})

	if _, err := client.TransformText(context.Background(), tonesdk.TransformRequest{Text: "응"}); err == nil {
		t.Fatal("expected error on http failure")
	}
}

func TestClient_MalformedJSONSurfaces(t *testing.T) {
	server, _ := completionServer(t, "죄송하지만 분석할 수 없습니다.")
	client := NewClient(Config{Endpoint: server.URL})

	if _, err := client.CheckEmotionGuard(context.Background(), tonesdk.GuardRequest{Text: "참 잘한다"}); err == nil {
		t.Fatal("expected decode error for non-JSON verdict")
	}
}

func TestMapModelEmotion(t *testing.T) {
	tests := []struct {
		in   string
		want tonesdk.EmotionLabel
	}{
		{"happy", tonesdk.EmotionPositive},
		{"Excited", tonesdk.EmotionPositive},
		{"sad", tonesdk.EmotionNegative},
		{"angry", tonesdk.EmotionNegative},
		{"surprised", tonesdk.EmotionSurprise},
		{"neutral", tonesdk.EmotionNeutral},
		{"whatever", tonesdk.EmotionNeutral},
	}
	for _, tt := range tests {
		if got := mapModelEmotion(tt.in); got != tt.want {
			t.Fatalf("mapModelEmotion(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
