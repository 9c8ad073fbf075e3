package tonesdk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ──────────────────────────────────────────────
// Catalogs — emoticon packs and quick-response presets
// ──────────────────────────────────────────────

// Emoticon is a sticker-style image reaction.
type Emoticon struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Category string `json:"category" yaml:"category"`
}

// EmoticonPack groups emoticons under a display name.
type EmoticonPack struct {
	Name      string     `json:"name" yaml:"name"`
	Emoticons []Emoticon `json:"emoticons" yaml:"emoticons"`
}

// QuickResponse is a one-tap preset reply with a display icon.
type QuickResponse struct {
	Text string `json:"text" yaml:"text"`
	Icon string `json:"icon" yaml:"icon"`
}

// Catalog bundles the loadable static assets an app ships with.
type Catalog struct {
	EmoticonPacks  []EmoticonPack             `yaml:"emoticon_packs"`
	QuickResponses map[string][]QuickResponse `yaml:"quick_responses"` // keyed by persona tier id
}

// LoadCatalog reads a YAML catalog file. Apps use this to replace or
// extend the built-in packs.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// DefaultEmoticonPacks returns the built-in packs (기본/비즈니스).
func DefaultEmoticonPacks() []EmoticonPack {
	return []EmoticonPack{
		{
			Name: "기본",
			Emoticons: []Emoticon{
				{ID: "e1", Name: "좋아요", ImageURL: "/emoticons/basic-thumbs-up.jpg", Category: "기본"},
				{ID: "e2", Name: "하트", ImageURL: "/emoticons/basic-heart.jpg", Category: "기본"},
				{ID: "e3", Name: "웃음", ImageURL: "/emoticons/basic-laugh.jpg", Category: "기본"},
				{ID: "e4", Name: "놀람", ImageURL: "/emoticons/basic-surprised.jpg", Category: "기본"},
				{ID: "e5", Name: "슬픔", ImageURL: "/emoticons/basic-sad.jpg", Category: "기본"},
				{ID: "e6", Name: "화남", ImageURL: "/emoticons/basic-angry.jpg", Category: "기본"},
				{ID: "e7", Name: "감사", ImageURL: "/emoticons/basic-thanks.jpg", Category: "기본"},
				{ID: "e8", Name: "응원", ImageURL: "/emoticons/basic-cheer.jpg", Category: "기본"},
			},
		},
		{
			Name: "비즈니스",
			Emoticons: []Emoticon{
				{ID: "b1", Name: "확인", ImageURL: "/emoticons/biz-check.jpg", Category: "비즈니스"},
				{ID: "b2", Name: "회의중", ImageURL: "/emoticons/biz-meeting.jpg", Category: "비즈니스"},
				{ID: "b3", Name: "잠시만", ImageURL: "/emoticons/biz-wait.jpg", Category: "비즈니스"},
				{ID: "b4", Name: "고생했어요", ImageURL: "/emoticons/biz-good-job.jpg", Category: "비즈니스"},
			},
		},
	}
}

// QuickResponsesByTier returns the built-in one-tap presets for a tier.
func QuickResponsesByTier(tier PersonaTier) []QuickResponse {
	switch tier {
	case TierVeryFormal:
		return []QuickResponse{
			{Text: "네, 말씀하신 대로 진행하겠습니다.", Icon: "✅"},
			{Text: "확인 후 다시 보고드리겠습니다.", Icon: "📋"},
			{Text: "감사합니다. 좋은 하루 되세요.", Icon: "🙏"},
		}
	case TierFormal:
		return []QuickResponse{
			{Text: "네, 확인했습니다. 진행할게요.", Icon: "✅"},
			{Text: "잠시 후에 다시 연락드릴게요.", Icon: "📞"},
			{Text: "감사합니다!", Icon: "🙏"},
		}
	case TierCasualPolite:
		return []QuickResponse{
			{Text: "네~ 알겠어요!", Icon: "👍"},
			{Text: "확인했어요, 고마워요!", Icon: "✅"},
			{Text: "잠시만요, 바로 할게요!", Icon: "⏰"},
		}
	case TierCasual:
		return []QuickResponse{
			{Text: "ㅇㅋ 알겠어~", Icon: "👍"},
			{Text: "ㄱㅅ!", Icon: "🙏"},
			{Text: "잠만 기다려~", Icon: "⏰"},
		}
	case TierVeryCasual:
		return []QuickResponse{
			{Text: "ㅇㅇ ㄱㄱ", Icon: "👍"},
			{Text: "ㅋㅋㅋ ㅇㅋ", Icon: "😂"},
			{Text: "ㄴㄴ 안됨", Icon: "❌"},
		}
	}
	return nil
}

// GenericQuickResponses returns the relationship-agnostic presets.
func GenericQuickResponses() []QuickResponse {
	return []QuickResponse{
		{Text: "지금 회의 중이라 30분 뒤에 자세히 답변드릴게요!", Icon: "⏰"},
		{Text: "네, 확인했습니다. 말씀하신 대로 진행할게요.", Icon: "✅"},
		{Text: "감사합니다! 좋은 하루 보내세요.", Icon: "🙏"},
		{Text: "죄송합니다, 잠시 후에 다시 연락드릴게요.", Icon: "📞"},
	}
}

// ReactionEmojis is the full picker palette, in display order.
var ReactionEmojis = []string{"👍", "❤️", "😂", "😮", "😢", "👏", "🎉", "🔥", "💯", "🙏"}
