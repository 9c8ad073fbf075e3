package tonesdk

import "fmt"

// ──────────────────────────────────────────────
// Persona — formality tiers and the formality model
// ──────────────────────────────────────────────

// PersonaTier identifies one of the five built-in formality tiers.
// Tiers are ordered from most formal to least formal.
type PersonaTier int

const (
	TierVeryFormal PersonaTier = iota
	TierFormal
	TierCasualPolite
	TierCasual
	TierVeryCasual
)

// ID returns the stable string key for the tier ("very-formal", "formal", ...).
func (t PersonaTier) ID() string {
	switch t {
	case TierVeryFormal:
		return "very-formal"
	case TierFormal:
		return "formal"
	case TierCasualPolite:
		return "casual-polite"
	case TierCasual:
		return "casual"
	case TierVeryCasual:
		return "very-casual"
	}
	return "casual-polite"
}

// String implements fmt.Stringer.
func (t PersonaTier) String() string { return t.ID() }

// IsFormalSide reports whether the tier is very-formal or formal.
func (t PersonaTier) IsFormalSide() bool {
	return t == TierVeryFormal || t == TierFormal
}

// IsCasualSide reports whether the tier is casual or very-casual.
func (t PersonaTier) IsCasualSide() bool {
	return t == TierCasual || t == TierVeryCasual
}

// ParsePersonaTier maps a tier id string to its PersonaTier.
func ParsePersonaTier(id string) (PersonaTier, error) {
	switch id {
	case "very-formal":
		return TierVeryFormal, nil
	case "formal":
		return TierFormal, nil
	case "casual-polite":
		return TierCasualPolite, nil
	case "casual":
		return TierCasual, nil
	case "very-casual":
		return TierVeryCasual, nil
	}
	return TierCasualPolite, fmt.Errorf("unknown persona tier: %q", id)
}

// Persona is an immutable formality tier with display metadata.
// The five built-in personas partition the formality range [0,100]
// with no gaps and no overlaps.
type Persona struct {
	Tier        PersonaTier `json:"-"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	PromptStyle string      `json:"prompt_style"` // opaque instruction, passed through to remote transform
	RangeLo     int         `json:"range_lo"`
	RangeHi     int         `json:"range_hi"`
}

// Contains reports whether the formality level falls inside the persona's range.
func (p Persona) Contains(level int) bool {
	return level >= p.RangeLo && level <= p.RangeHi
}

// Personas returns the five built-in personas, most formal first.
// The slice is freshly allocated; callers may not mutate the built-ins.
func Personas() []Persona {
	return []Persona{
		{
			Tier:        TierVeryFormal,
			ID:          "very-formal",
			Name:        "매우 정중함",
			Description: "최대한 격식을 차린 표현",
			Icon:        "👔",
			PromptStyle: "매우 공손하고 격식있는 표현으로 변환해주세요.",
			RangeLo:     80, RangeHi: 100,
		},
		{
			Tier:        TierFormal,
			ID:          "formal",
			Name:        "정중함",
			Description: "예의 바른 표현",
			Icon:        "🤝",
			PromptStyle: "정중하고 예의바른 표현으로 변환해주세요.",
			RangeLo:     60, RangeHi: 79,
		},
		{
			Tier:        TierCasualPolite,
			ID:          "casual-polite",
			Name:        "친근하지만 예의있게",
			Description: "편안하면서도 예의있는 표현",
			Icon:        "😊",
			PromptStyle: "친근하면서도 예의있는 표현으로 변환해주세요.",
			RangeLo:     40, RangeHi: 59,
		},
		{
			Tier:        TierCasual,
			ID:          "casual",
			Name:        "친근함",
			Description: "편안한 대화체",
			Icon:        "🙂",
			PromptStyle: "친근하고 편안한 표현으로 변환해주세요.",
			RangeLo:     20, RangeHi: 39,
		},
		{
			Tier:        TierVeryCasual,
			ID:          "very-casual",
			Name:        "매우 친근함",
			Description: "친한 친구와의 대화",
			Icon:        "😎",
			PromptStyle: "매우 친근하고 캐주얼한 표현으로 변환해주세요.",
			RangeLo:     0, RangeHi: 19,
		},
	}
}

// PersonaByTier returns the built-in persona for the tier.
func PersonaByTier(tier PersonaTier) Persona {
	for _, p := range Personas() {
		if p.Tier == tier {
			return p
		}
	}
	// unreachable for valid tiers; middle tier is the defensive default
	return PersonaByTier(TierCasualPolite)
}

// PersonaByID looks up a built-in persona by its stable id.
func PersonaByID(id string) (Persona, bool) {
	for _, p := range Personas() {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// PersonaByFormalityLevel returns the persona whose range contains level.
// Exactly one persona matches any level in [0,100]. Out-of-range input
// falls back to the middle tier rather than failing; callers are expected
// to clamp upstream.
func PersonaByFormalityLevel(level int) Persona {
	for _, p := range Personas() {
		if p.Contains(level) {
			return p
		}
	}
	return PersonaByTier(TierCasualPolite)
}
