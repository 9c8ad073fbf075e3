package tonesdk

import "testing"

// ══════════════════════════════════════════════
// AnalyzeMessageEmotion
// ══════════════════════════════════════════════

func TestEmotion_Labels(t *testing.T) {
	tests := []struct {
		text string
		want EmotionLabel
	}{
		{"드디어 합격했어!", EmotionCongratulation},
		{"응원할게, 파이팅!", EmotionSupport},
		{"요즘 너무 힘들어", EmotionNegative},
		{"헐 그게 무슨 일이야", EmotionSurprise},
		{"정말 감사합니다", EmotionPositive},
		{"내일 2시에 보자", EmotionNeutral},
		{"", EmotionNeutral},
	}
	for _, tt := range tests {
		if got := AnalyzeMessageEmotion(tt.text); got != tt.want {
			t.Fatalf("AnalyzeMessageEmotion(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestEmotion_CongratulationBeatsNegative(t *testing.T) {
	// 축하 (congratulation) and 힘들 (negative) in one message: precedence
	// must pick congratulation, never negative.
	if got := AnalyzeMessageEmotion("축하해! 그동안 힘들었지?"); got != EmotionCongratulation {
		t.Fatalf("got %s, want congratulation", got)
	}
}

func TestEmotion_SupportBeatsNegative(t *testing.T) {
	// 응원 (support) keywords outrank shared distress vocabulary.
	if got := AnalyzeMessageEmotion("힘든 거 알아, 항상 응원해"); got != EmotionSupport {
		t.Fatalf("got %s, want support", got)
	}
}

func TestEmotion_NegativeBeatsSurpriseAndPositive(t *testing.T) {
	if got := AnalyzeMessageEmotion("진짜 좋은 기회였는데 아쉽다"); got != EmotionNegative {
		t.Fatalf("got %s, want negative", got)
	}
}

func TestEmotion_CaseSensitiveContainment(t *testing.T) {
	// Matching is literal substring containment with no normalization.
	if got := AnalyzeMessageEmotion("축 하"); got != EmotionNeutral {
		t.Fatalf("split keyword must not match, got %s", got)
	}
}
