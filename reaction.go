package tonesdk

import "strings"

// ──────────────────────────────────────────────
// Reaction Advisor — emoji, text-reaction and quick-reply suggestions
// ──────────────────────────────────────────────

// maxQuickReplies caps the accumulated quick-reply list.
const maxQuickReplies = 3

// SuggestReactions returns a ranked 4-emoji list for reacting to the
// message, selected purely by its classified emotion. No blending: one
// label, one curated tuple, with a positive-leaning default for neutral.
func SuggestReactions(messageContent string, room ChatRoom) []string {
	switch AnalyzeMessageEmotion(messageContent) {
	case EmotionCongratulation:
		return []string{"🎉", "👏", "💯", "🥳"}
	case EmotionPositive:
		return []string{"❤️", "👍", "🙏", "😊"}
	case EmotionNegative:
		return []string{"😢", "🙏", "❤️", "💪"}
	case EmotionSurprise:
		return []string{"😮", "🔥", "💯", "😱"}
	case EmotionSupport:
		return []string{"🔥", "💪", "👏", "❤️"}
	}
	return []string{"👍", "❤️", "👏", "😊"}
}

// SuggestTextReactions returns short text reactions keyed by the
// message's classified emotion.
func SuggestTextReactions(messageContent string, room ChatRoom) []string {
	switch AnalyzeMessageEmotion(messageContent) {
	case EmotionCongratulation:
		return []string{"축하드려요!", "대박!!", "정말 잘됐네요!"}
	case EmotionPositive:
		return []string{"감사합니다!", "좋네요~", "다행이에요!"}
	case EmotionNegative:
		return []string{"고생하셨어요ㅠㅠ", "힘내세요!", "괜찮아요~"}
	case EmotionSurprise:
		return []string{"헐 진짜요?", "오 대박!!", "세상에..."}
	case EmotionSupport:
		return []string{"화이팅!", "응원해요!", "잘 될 거예요!"}
	}
	return []string{"네~", "알겠어요!", "확인했어요!"}
}

// SuggestQuickReplies builds reply candidates additively: question
// handling, gratitude, work topics, emotion-based, then a tiered default
// when nothing else fired. The accumulated list is truncated to the first
// three entries and deliberately not deduplicated — two rules emitting the
// same literal keep both slots before truncation.
func SuggestQuickReplies(messageContent string, room ChatRoom, persona Persona) []string {
	var replies []string
	emotion := AnalyzeMessageEmotion(messageContent)

	// Question markers ("shall we / will you" suffixes included)
	if strings.Contains(messageContent, "?") ||
		strings.Contains(messageContent, "까요") ||
		strings.Contains(messageContent, "할래") {
		if room.Relationship.IsAuthority() {
			replies = append(replies, "네, 알겠습니다.", "확인 후 말씀드리겠습니다.")
		} else {
			replies = append(replies, "응, 알겠어!", "좋아, 그렇게 하자!")
		}
	}

	// Gratitude
	if strings.Contains(messageContent, "감사") || strings.Contains(messageContent, "고마") {
		if room.Relationship.IsAuthority() {
			replies = append(replies, "별말씀을요.", "감사합니다.")
		} else {
			replies = append(replies, "별거 아니야~", "응응!")
		}
	}

	// Work context (tier-independent)
	if strings.Contains(messageContent, "회의") ||
		strings.Contains(messageContent, "자료") ||
		strings.Contains(messageContent, "보고") {
		replies = append(replies, "지금 확인했습니다!", "잠시만요!")
	}

	// Emotion-based
	if emotion == EmotionNegative {
		replies = append(replies, "고생하셨어요ㅠㅠ")
	} else if emotion == EmotionCongratulation {
		replies = append(replies, "축하드려요!")
	}

	// Default fallback
	if len(replies) == 0 {
		if room.Relationship.IsAuthority() {
			replies = append(replies, "지금 확인했습니다!", "잠시만요!")
		} else {
			replies = append(replies, "ㅇㅋ!", "알겠어~")
		}
	}

	if len(replies) > maxQuickReplies {
		replies = replies[:maxQuickReplies]
	}
	return replies
}
