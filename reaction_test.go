package tonesdk

import (
	"reflect"
	"testing"
)

// ══════════════════════════════════════════════
// SuggestReactions / SuggestTextReactions / SuggestQuickReplies
// ══════════════════════════════════════════════

func TestReactions_EmojiByEmotion(t *testing.T) {
	room := ChatRoom{Relationship: RelationshipColleague}
	tests := []struct {
		text string
		want []string
	}{
		{"승진 축하드려요!", []string{"🎉", "👏", "💯", "🥳"}},
		{"정말 감사합니다", []string{"❤️", "👍", "🙏", "😊"}},
		{"너무 속상해요", []string{"😢", "🙏", "❤️", "💪"}},
		{"헐 대박", []string{"😮", "🔥", "💯", "😱"}},
		{"파이팅!", []string{"🔥", "💪", "👏", "❤️"}},
		{"내일 봬요", []string{"👍", "❤️", "👏", "😊"}},
	}
	for _, tt := range tests {
		got := SuggestReactions(tt.text, room)
		if len(got) != 4 {
			t.Fatalf("expected 4 emojis for %q, got %d", tt.text, len(got))
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SuggestReactions(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestReactions_TextByEmotion(t *testing.T) {
	room := ChatRoom{Relationship: RelationshipFriend}
	got := SuggestTextReactions("합격했대!", room)
	want := []string{"축하드려요!", "대박!!", "정말 잘됐네요!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_QuestionByTier(t *testing.T) {
	persona := PersonaByTier(TierVeryFormal)
	boss := ChatRoom{Relationship: RelationshipBoss}
	got := SuggestQuickReplies("내일 2시에 가능하실까요?", boss, persona)
	want := []string{"네, 알겠습니다.", "확인 후 말씀드리겠습니다."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	friend := ChatRoom{Relationship: RelationshipFriend}
	got = SuggestQuickReplies("내일 갈래?", friend, PersonaByTier(TierVeryCasual))
	want = []string{"응, 알겠어!", "좋아, 그렇게 하자!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_GratitudeAndTruncation(t *testing.T) {
	// Question + gratitude both fire for a boss; accumulation order is
	// question replies first, then gratitude, truncated to three.
	boss := ChatRoom{Relationship: RelationshipBoss}
	got := SuggestQuickReplies("어제는 감사했습니다. 오늘도 가능할까요?", boss, PersonaByTier(TierVeryFormal))
	want := []string{"네, 알겠습니다.", "확인 후 말씀드리겠습니다.", "별말씀을요."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_WorkContext(t *testing.T) {
	colleague := ChatRoom{Relationship: RelationshipColleague}
	got := SuggestQuickReplies("회의 자료 먼저 공유해 줘", colleague, PersonaByTier(TierCasualPolite))
	want := []string{"지금 확인했습니다!", "잠시만요!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_EmotionAppends(t *testing.T) {
	friend := ChatRoom{Relationship: RelationshipFriend}
	got := SuggestQuickReplies("오늘 너무 지쳐서 쓰러질 것 같아", friend, PersonaByTier(TierCasual))
	want := []string{"고생하셨어요ㅠㅠ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_DefaultFallbackByTier(t *testing.T) {
	boss := ChatRoom{Relationship: RelationshipBoss}
	got := SuggestQuickReplies("네.", boss, PersonaByTier(TierVeryFormal))
	want := []string{"지금 확인했습니다!", "잠시만요!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	family := ChatRoom{Relationship: RelationshipFamily}
	got = SuggestQuickReplies("집이야", family, PersonaByTier(TierCasual))
	want = []string{"ㅇㅋ!", "알겠어~"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQuickReplies_NoDeduplication(t *testing.T) {
	// The accumulation is deliberately not deduplicated: the rule set is
	// additive and truncation happens last. Today no two rules emit the
	// same literal before the default branch, so duplicates cannot
	// actually surface — this test pins the policy (count-based
	// truncation, no set semantics) rather than an observable duplicate.
	boss := ChatRoom{Relationship: RelationshipBoss}
	got := SuggestQuickReplies("회의 감사했습니다. 다음에도 가능할까요?", boss, PersonaByTier(TierVeryFormal))
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 after truncation, got %v", got)
	}
	// question(2) + gratitude(2) + work(2) accumulated, first three kept
	want := []string{"네, 알겠습니다.", "확인 후 말씀드리겠습니다.", "별말씀을요."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
