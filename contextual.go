package tonesdk

import (
	"hash/fnv"
	"strings"
)

// ──────────────────────────────────────────────
// Contextual Auto-Reply — demo/simulation reply generator
// ──────────────────────────────────────────────

type contextualPair struct {
	keyword string
	formal  string
	casual  string
}

// Keyword-keyed reply pairs, checked in table order.
var contextualReplies = []contextualPair{
	{"알겠어", "네, 알겠습니다. 바로 조치하겠습니다.", "ㅇㅇ 알겠음 이따 봐!"},
	{"알았어", "네, 알겠습니다. 확인 후 진행하겠습니다.", "ㅇㅋㅇㅋ 알겠어ㅋㅋ"},
	{"고마워", "별말씀을요. 더 필요하신 게 있으시면 말씀해주세요.", "ㅋㅋ 별거 아니야~ 언제든!"},
	{"미안", "괜찮습니다. 신경 쓰지 마세요.", "ㅋㅋ 괜찮아 괜찮아~"},
	{"확인", "네, 확인했습니다.", "ㅇㅇ 확인~"},
}

var contextualFormalDefaults = []string{
	"네, 확인했습니다.",
	"알겠습니다. 진행하겠습니다.",
	"네, 말씀하신 대로 하겠습니다.",
	"확인 후 보고드리겠습니다.",
}

var contextualCasualDefaults = []string{
	"ㅇㅇ 알겠어ㅋㅋ",
	"ㅋㅋㅋ 오키~",
	"ㅇㅋ 그러자!",
	"ㅎㅎ 알겠어 이따 봐!",
}

// GenerateContextualResponse produces a plausible counterpart reply to a
// sent message, tiered by relationship. Used by demo/simulation modes.
// The default-pool pick is a stable hash of the message rather than a
// random draw, so identical inputs always produce identical outputs.
func GenerateContextualResponse(userMessage string, room ChatRoom) string {
	isAuthority := room.Relationship.IsAuthority()
	isCasualTie := room.Relationship == RelationshipFriend || room.Relationship == RelationshipFamily

	for _, pair := range contextualReplies {
		if strings.Contains(userMessage, pair.keyword) {
			if isAuthority {
				return pair.formal
			}
			if isCasualTie {
				return pair.casual
			}
		}
	}

	if strings.Contains(userMessage, "?") ||
		strings.Contains(userMessage, "까요") ||
		strings.Contains(userMessage, "할래") {
		if isAuthority {
			return "네, 말씀하신 대로 진행하겠습니다."
		}
		return "ㅇㅋㅇㅋ 그러자ㅋㅋ"
	}

	if isAuthority {
		return contextualFormalDefaults[stablePick(userMessage, len(contextualFormalDefaults))]
	}
	return contextualCasualDefaults[stablePick(userMessage, len(contextualCasualDefaults))]
}

// stablePick maps text to an index in [0, n) deterministically.
func stablePick(text string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(text))
	return int(h.Sum32() % uint32(n))
}
