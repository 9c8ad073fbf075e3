package tonesdk

import "strings"

// ──────────────────────────────────────────────
// Emotion Classifier — keyword containment with fixed precedence
// ──────────────────────────────────────────────

// EmotionLabel is the emotional category of a received message.
type EmotionLabel string

const (
	EmotionPositive       EmotionLabel = "positive"
	EmotionNegative       EmotionLabel = "negative"
	EmotionNeutral        EmotionLabel = "neutral"
	EmotionSurprise       EmotionLabel = "surprise"
	EmotionCongratulation EmotionLabel = "congratulation"
	EmotionSupport        EmotionLabel = "support"
)

// Keyword sets are checked by strict precedence, not match count:
// congratulation > support > negative > surprise > positive > neutral.
// Congratulations must not be misread as merely positive, and supportive
// language ("힘내") must not be misread as distress even though the
// negative set contains it.
var (
	positiveKeywords = []string{"감사", "고마", "좋아", "최고", "잘했", "훌륭", "대단", "멋지", "좋은", "행복", "기뻐"}
	negativeKeywords = []string{"아쉽", "힘들", "어려", "안타깝", "슬프", "걱정", "힘내", "속상", "우울", "지쳐"}
	surpriseKeywords = []string{"진짜", "헐", "대박", "와", "놀라", "세상에", "믿기", "어떻게"}
	congratsKeywords = []string{"축하", "성공", "합격", "완료", "완성", "승진", "결혼", "생일"}
	supportKeywords  = []string{"응원", "파이팅", "화이팅", "할 수 있", "믿어", "잘 될"}
)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// AnalyzeMessageEmotion classifies a short text into one of the six
// emotion labels. Membership is case-sensitive substring containment with
// no normalization; the first matching set in precedence order wins.
func AnalyzeMessageEmotion(text string) EmotionLabel {
	switch {
	case containsAny(text, congratsKeywords):
		return EmotionCongratulation
	case containsAny(text, supportKeywords):
		return EmotionSupport
	case containsAny(text, negativeKeywords):
		return EmotionNegative
	case containsAny(text, surpriseKeywords):
		return EmotionSurprise
	case containsAny(text, positiveKeywords):
		return EmotionPositive
	}
	return EmotionNeutral
}
