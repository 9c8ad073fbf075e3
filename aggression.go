package tonesdk

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Aggression Detector — rule-based pre-send safety scan
// ──────────────────────────────────────────────

// AggressionMatch is the result of scanning a draft for aggressive,
// sarcastic, or passive-aggressive phrasing.
type AggressionMatch struct {
	IsAggressive         bool    `json:"is_aggressive"`
	Type                 string  `json:"type,omitempty"`       // label of the winning pattern, "" if none
	Confidence           float64 `json:"confidence"`           // weight of the winning pattern, 0 if none
	SuggestedReplacement string  `json:"suggestion,omitempty"` // softened rewrite, "" if the winner has none
}

// aggressionThreshold is the confidence floor above which a match is
// reported as aggressive.
const aggressionThreshold = 0.6

type aggressionPattern struct {
	pattern     *regexp.Regexp
	label       string
	weight      float64
	replacement string // "" = no softened form for this pattern
}

// Sentence-final patterns. Checked before the whole-sentence table so an
// equal-weight whole-sentence match never displaces an ending match.
var aggressionEndingPatterns = []aggressionPattern{
	{regexp.MustCompile(`(?i)왜\s*그러니\??$`), "비꼬기", 0.85, "혹시 무슨 일 있나요? 제가 도와드릴 게 있을까요?"},
	{regexp.MustCompile(`(?i)왜\s*그래\??$`), "비꼬기", 0.8, "어떤 상황인지 여쭤봐도 될까요?"},
	{regexp.MustCompile(`(?i)뭐\s*하냐\??$`), "공격성", 0.75, "지금 어떤 일을 하고 계신가요?"},
	{regexp.MustCompile(`(?i)왜\s*이래\??$`), "비꼬기", 0.8, "무슨 일이 있으신 건가요?"},
	{regexp.MustCompile(`(?i)(니|냐)\??$`), "반말 어미", 0.6, ""},
	{regexp.MustCompile(`(?i)참나$`), "짜증", 0.7, "조금 어려운 상황이네요."},
	{regexp.MustCompile(`(?i)됐어$`), "거부", 0.65, "괜찮습니다. 제가 다시 확인해볼게요."},
	{regexp.MustCompile(`(?i)아\s*됐어$`), "수동적 공격", 0.8, "괜찮습니다. 다음에 다시 말씀해 주세요."},
}

// Whole-sentence patterns, matched anywhere in the text.
var aggressionSentencePatterns = []aggressionPattern{
	{regexp.MustCompile(`(?i)참\s*잘\s*한다`), "비꼬기", 0.9, "다음에는 조금 더 신경 써주시면 감사하겠습니다."},
	{regexp.MustCompile(`(?i)잘\s*하시네요?`), "비꼬기", 0.85, "노력해 주셔서 감사합니다."},
	{regexp.MustCompile(`(?i)대단하시네요?`), "비꼬기", 0.85, "수고하셨습니다."},
	{regexp.MustCompile(`(?i)너\s*왜\s*그러니`), "비꼬기", 0.9, "혹시 무슨 일 있나요? 제가 도와드릴 게 있을까요?"},
	{regexp.MustCompile(`(?i)뭐야\s*이게`), "공격성", 0.8, "이 부분은 어떻게 된 건가요?"},
	{regexp.MustCompile(`(?i)했잖아`), "수동적 공격", 0.75, "말씀드렸던 것처럼"},
	{regexp.MustCompile(`(?i)말했잖아`), "수동적 공격", 0.8, "앞서 말씀드렸듯이"},
	{regexp.MustCompile(`(?i)알아서\s*해`), "수동적 공격", 0.75, "편하신 대로 진행해 주세요."},
	{regexp.MustCompile(`(?i)마음대로`), "수동적 공격", 0.7, "원하시는 대로 해주세요."},
	{regexp.MustCompile(`(?i)그러시든지`), "수동적 공격", 0.75, "네, 알겠습니다."},
	{regexp.MustCompile(`(?i)답답해`), "감정 표현", 0.8, "조금 더 설명이 필요할 것 같아요."},
	{regexp.MustCompile(`(?i)짜증나`), "감정 표현", 0.85, "조금 어려운 상황이네요."},
	{regexp.MustCompile(`(?i)화[가나]`), "감정 표현", 0.85, "아쉬운 점이 있어요."},
}

// DetectAggression scans text against both pattern tables and returns the
// single highest-weight match. Every pattern is evaluated — the tables are
// never short-circuited. On exact weight ties the first-seen pattern wins
// (ending table before sentence table, table order within each). The
// suggested replacement comes from the winning pattern only: a winner
// without a replacement yields none even if a lower-weight pattern had one.
func DetectAggression(text string) AggressionMatch {
	if strings.TrimSpace(text) == "" {
		return AggressionMatch{}
	}

	var (
		maxConfidence float64
		detectedType  string
		replacement   string
	)
	scan := func(table []aggressionPattern) {
		for _, p := range table {
			if p.pattern.MatchString(text) && p.weight > maxConfidence {
				maxConfidence = p.weight
				detectedType = p.label
				replacement = p.replacement
			}
		}
	}
	scan(aggressionEndingPatterns)
	scan(aggressionSentencePatterns)

	return AggressionMatch{
		IsAggressive:         maxConfidence >= aggressionThreshold,
		Type:                 detectedType,
		Confidence:           maxConfidence,
		SuggestedReplacement: replacement,
	}
}
