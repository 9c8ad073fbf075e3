package tonesdk

import "regexp"

// ──────────────────────────────────────────────
// Tone Transformer — opener/closer rewriting per persona tier
// ──────────────────────────────────────────────

// TransformResult pairs a draft with its register-adjusted form.
type TransformResult struct {
	OriginalText    string  `json:"original_text"`
	TransformedText string  `json:"transformed_text"`
	Persona         Persona `json:"persona"`
	Changed         bool    `json:"changed"`
}

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Opener rules rewrite informal (or over-formal) acknowledgement openers.
// Patterns are start-anchored; within a tier the rules apply in table order,
// each against the running result.
var (
	openersVeryFormal = []rewriteRule{
		{regexp.MustCompile(`(?i)^응\.?\s*`), "네, "},
		{regexp.MustCompile(`(?i)^ㅇㅇ\.?\s*`), "네, 확인했습니다. "},
		{regexp.MustCompile(`(?i)^오케이\.?\s*`), "네, 알겠습니다. "},
		{regexp.MustCompile(`(?i)^알겠어\.?\s*`), "네, 알겠습니다. "},
		{regexp.MustCompile(`(?i)^알았어\.?\s*`), "네, 알겠습니다. "},
		{regexp.MustCompile(`(?i)^그래\.?\s*`), "네, 그렇게 하겠습니다. "},
		{regexp.MustCompile(`(?i)^ㅇㅋ\.?\s*`), "네, 알겠습니다. "},
	}
	openersFormal = []rewriteRule{
		{regexp.MustCompile(`(?i)^응\.?\s*`), "네, "},
		{regexp.MustCompile(`(?i)^ㅇㅇ\.?\s*`), "네, "},
		{regexp.MustCompile(`(?i)^오케이\.?\s*`), "네, 확인했습니다. "},
		{regexp.MustCompile(`(?i)^알겠어\.?\s*`), "네, 알겠습니다. "},
		{regexp.MustCompile(`(?i)^알았어\.?\s*`), "네, 알겠습니다. "},
	}
	openersCasualPolite = []rewriteRule{
		{regexp.MustCompile(`(?i)^응\.?\s*`), "네~ "},
		{regexp.MustCompile(`(?i)^ㅇㅇ\.?\s*`), "네~ "},
	}
	openersCasual = []rewriteRule{
		{regexp.MustCompile(`(?i)^네,?\s*`), "응 "},
		{regexp.MustCompile(`(?i)^알겠습니다\.?\s*`), "알겠어~ "},
	}
	openersVeryCasual = []rewriteRule{
		{regexp.MustCompile(`(?i)^네,?\s*`), "ㅇㅇ "},
		{regexp.MustCompile(`(?i)^알겠습니다\.?\s*`), "ㅇㅋ "},
	}
)

// Closer rules rewrite verb endings and politeness markers. End-anchored.
// Formal tiers only rewrite casual→formal closers; casual tiers only the
// reverse. The casual-polite tier defines no closer direction at all.
var (
	closersVeryFormal = []rewriteRule{
		{regexp.MustCompile(`(?i)줄게\.?$`), "드리겠습니다."},
		{regexp.MustCompile(`(?i)볼게\.?$`), "보겠습니다."},
		{regexp.MustCompile(`(?i)할게\.?$`), "하겠습니다."},
		{regexp.MustCompile(`(?i)갈게\.?$`), "가겠습니다."},
		{regexp.MustCompile(`(?i)올게\.?$`), "오겠습니다."},
		{regexp.MustCompile(`(?i)보낼게\.?$`), "보내드리겠습니다."},
		{regexp.MustCompile(`(?i)연락할게\.?$`), "연락드리겠습니다."},
		{regexp.MustCompile(`(?i)확인할게\.?$`), "확인하겠습니다."},
		{regexp.MustCompile(`(?i)처리할게\.?$`), "처리하겠습니다."},
		{regexp.MustCompile(`(?i)전달할게\.?$`), "전달드리겠습니다."},
		{regexp.MustCompile(`(?i)고마워\.?$`), "감사합니다."},
		{regexp.MustCompile(`(?i)미안\.?$`), "죄송합니다."},
		{regexp.MustCompile(`(?i)미안해\.?$`), "죄송합니다."},
		{regexp.MustCompile(`(?i)중에\s*줄게\.?$`), "중에 드리겠습니다."},
		{regexp.MustCompile(`(?i)중으로\s*줄게\.?$`), "중으로 드리겠습니다."},
	}
	closersFormal = []rewriteRule{
		{regexp.MustCompile(`(?i)줄게\.?$`), "드릴게요."},
		{regexp.MustCompile(`(?i)볼게\.?$`), "볼게요."},
		{regexp.MustCompile(`(?i)할게\.?$`), "할게요."},
		{regexp.MustCompile(`(?i)갈게\.?$`), "갈게요."},
		{regexp.MustCompile(`(?i)올게\.?$`), "올게요."},
		{regexp.MustCompile(`(?i)보낼게\.?$`), "보내드릴게요."},
		{regexp.MustCompile(`(?i)연락할게\.?$`), "연락드릴게요."},
		{regexp.MustCompile(`(?i)고마워\.?$`), "감사합니다."},
		{regexp.MustCompile(`(?i)미안\.?$`), "죄송해요."},
		{regexp.MustCompile(`(?i)중에\s*줄게\.?$`), "중에 드릴게요."},
	}
	closersCasualPolite = []rewriteRule{
		{regexp.MustCompile(`(?i)줄게\.?$`), "줄게요~"},
		{regexp.MustCompile(`(?i)할게\.?$`), "할게요~"},
		{regexp.MustCompile(`(?i)고마워\.?$`), "고마워요!"},
	}
	closersCasual = []rewriteRule{
		{regexp.MustCompile(`(?i)드리겠습니다\.?$`), "줄게~"},
		{regexp.MustCompile(`(?i)하겠습니다\.?$`), "할게~"},
	}
	closersVeryCasual = []rewriteRule{
		{regexp.MustCompile(`(?i)드리겠습니다\.?$`), "줌ㅋ"},
		{regexp.MustCompile(`(?i)하겠습니다\.?$`), "함ㅋ"},
	}
)

func openerRules(tier PersonaTier) []rewriteRule {
	switch tier {
	case TierVeryFormal:
		return openersVeryFormal
	case TierFormal:
		return openersFormal
	case TierCasualPolite:
		return openersCasualPolite
	case TierCasual:
		return openersCasual
	case TierVeryCasual:
		return openersVeryCasual
	}
	return nil
}

func closerRules(tier PersonaTier) []rewriteRule {
	switch tier {
	case TierVeryFormal:
		return closersVeryFormal
	case TierFormal:
		return closersFormal
	case TierCasualPolite:
		return closersCasualPolite
	case TierCasual:
		return closersCasual
	case TierVeryCasual:
		return closersVeryCasual
	}
	return nil
}

// TransformMessage rewrites a draft's opening and closing clauses for the
// persona's register. Opener rules apply first, then closer rules; every
// rule in a table may independently fire against the running string. A tier
// with no rules for a phase is a no-op for that phase. When nothing fires,
// the input comes back unchanged.
//
// The room is accepted for signature symmetry with the remote transform
// contract; the local algorithm needs nothing beyond the persona.
func TransformMessage(text string, persona Persona, room *ChatRoom) string {
	result := text
	for _, r := range openerRules(persona.Tier) {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	for _, r := range closerRules(persona.Tier) {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Transform is TransformMessage with the full result record.
func Transform(text string, persona Persona, room *ChatRoom) TransformResult {
	transformed := TransformMessage(text, persona, room)
	return TransformResult{
		OriginalText:    text,
		TransformedText: transformed,
		Persona:         persona,
		Changed:         transformed != text,
	}
}
