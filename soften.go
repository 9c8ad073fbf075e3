package tonesdk

import "regexp"

// ──────────────────────────────────────────────
// Message Softener — unconditional emotion-guard remediation pass
// ──────────────────────────────────────────────

// softeningRules is a single register-independent substitution table used
// when the emotion guard trips. Unlike TransformMessage, every rule is
// unanchored and replaces all occurrences.
var softeningRules = []rewriteRule{
	{regexp.MustCompile(`(?i)너\s*왜\s*그러니\??`), "혹시 무슨 일 있나요? 제가 도와드릴 게 있을까요?"},
	{regexp.MustCompile(`(?i)참\s*잘\s*한다`), "조금 더 신경 써주시면 감사하겠습니다."},
	{regexp.MustCompile(`(?i)잘\s*하시네요?`), "노력해 주셔서 감사합니다."},
	{regexp.MustCompile(`(?i)대단하시네요?`), "수고하셨습니다."},
	{regexp.MustCompile(`(?i)아\s*됐어`), "괜찮습니다. 다음에 다시 말씀해 주세요."},
	{regexp.MustCompile(`(?i)뭐야`), "어떻게 된 건가요?"},
	{regexp.MustCompile(`(?i)왜\s*안\s*해`), "혹시 진행이 어려우신 부분이 있으신가요?"},
	{regexp.MustCompile(`(?i)했잖아`), "말씀드렸던 것처럼"},
	{regexp.MustCompile(`(?i)말했잖아`), "앞서 말씀드렸듯이"},
	{regexp.MustCompile(`(?i)몰라`), "확인이 필요할 것 같아요"},
	{regexp.MustCompile(`(?i)알아서\s*해`), "편하신 대로 진행해 주세요"},
	{regexp.MustCompile(`(?i)답답해`), "조금 더 논의가 필요할 것 같아요"},
	{regexp.MustCompile(`(?i)짜증나`), "조금 어려운 상황이네요"},
	{regexp.MustCompile(`(?i)화[가나]`), "아쉬운 점이 있어요"},
	{regexp.MustCompile(`(?i)왜\s*이래`), "어떤 상황인지 여쭤봐도 될까요?"},
	{regexp.MustCompile(`(?i)마음대로`), "원하시는 대로"},
	{regexp.MustCompile(`(?i)그러시든지`), "네, 알겠습니다"},
}

// SoftenMessage rewrites known aggressive phrasings into neutral,
// polite equivalents. It applies every rule in table order regardless of
// persona or formality — register adaptation is TransformMessage's job.
func SoftenMessage(text string) string {
	result := text
	for _, r := range softeningRules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}
