package tonesdk

import (
	"strings"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Suggestion Engine — canned rewrites for short stock drafts
// ──────────────────────────────────────────────

type suggestionEntry struct {
	key   string
	value string
}

// Strict table for authority conversations (boss/senior register).
var formalSuggestions = []suggestionEntry{
	{"알겠어", "네, 확인했습니다. 말씀하신 내용 반영하여 진행하겠습니다."},
	{"알았어", "네, 확인했습니다. 말씀하신 대로 처리하겠습니다."},
	{"응", "네, 알겠습니다."},
	{"ㅇㅇ", "네, 확인했습니다."},
	{"오케이", "네, 알겠습니다. 바로 진행하겠습니다."},
	{"ㅇㅋ", "네, 알겠습니다."},
	{"그래", "네, 그렇게 하겠습니다."},
	{"고마워", "감사합니다."},
	{"미안", "죄송합니다."},
	{"확인", "확인했습니다."},
	{"좋아", "네, 좋습니다. 진행하겠습니다."},
}

// Strict table for friend/family conversations (casual register).
var casualSuggestions = []suggestionEntry{
	{"네", "ㅇㅇ"},
	{"알겠습니다", "ㅇㅋㅇㅋ 알겠어~"},
	{"확인했습니다", "확인~"},
	{"감사합니다", "ㅋㅋ 고마워!"},
}

func tierSuggestions(tier PersonaTier) []suggestionEntry {
	switch tier {
	case TierVeryFormal:
		return formalSuggestions
	case TierFormal:
		return []suggestionEntry{
			{"알겠어", "네, 알겠습니다."},
			{"알았어", "네, 알겠습니다."},
			{"응", "네, 확인했습니다."},
			{"ㅇㅇ", "네"},
			{"오케이", "네, 확인했습니다."},
			{"ㅇㅋ", "네, 알겠습니다."},
			{"그래", "네, 그렇게 할게요."},
			{"고마워", "감사합니다!"},
			{"미안", "죄송해요."},
		}
	case TierCasualPolite:
		return []suggestionEntry{
			{"알겠어", "네, 알겠어요~"},
			{"응", "네~"},
			{"오케이", "네, 알겠어요!"},
			{"그래", "네, 그럴게요!"},
		}
	case TierCasual:
		return casualSuggestions
	case TierVeryCasual:
		return []suggestionEntry{
			{"네", "ㅇㅇ"},
			{"알겠습니다", "ㅇㅋㅇㅋ"},
		}
	}
	return nil
}

func lookupSuggestion(table []suggestionEntry, trimmed string) (string, bool) {
	for _, e := range table {
		if strings.EqualFold(trimmed, e.key) || trimmed == e.key {
			return e.value, true
		}
	}
	return "", false
}

// GenerateAISuggestion proposes a canned substitution for a short stock
// draft, or "" with ok=false when nothing applies.
//
// Lookup order: when room formality is >= 70 and the persona is a formal
// tier, the strict authority table is tried first; when formality is <= 30
// and the persona is a casual tier, the strict casual table. Then the
// generic per-tier table. As a last resort for formal tiers, drafts longer
// than two runes go through the full transformer and its output is
// returned only when it changed something.
func GenerateAISuggestion(text string, persona Persona, room ChatRoom) (string, bool) {
	trimmed := strings.TrimSpace(text)
	formalityLevel := CalculateFormalityLevel(room)

	if formalityLevel >= 70 && persona.Tier.IsFormalSide() {
		if v, ok := lookupSuggestion(formalSuggestions, trimmed); ok {
			return v, true
		}
	} else if formalityLevel <= 30 && persona.Tier.IsCasualSide() {
		if v, ok := lookupSuggestion(casualSuggestions, trimmed); ok {
			return v, true
		}
	}

	if v, ok := lookupSuggestion(tierSuggestions(persona.Tier), trimmed); ok {
		return v, true
	}

	if utf8.RuneCountInString(trimmed) > 2 && persona.Tier.IsFormalSide() {
		if transformed := TransformMessage(trimmed, persona, &room); transformed != trimmed {
			return transformed, true
		}
	}

	return "", false
}
