package tonesdk

import "sort"

// ──────────────────────────────────────────────
// Profile Matching — which rooms fit a sender profile
// ──────────────────────────────────────────────

// Profile is a sender identity with a preferred persona tier.
type Profile struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Avatar         string      `json:"avatar,omitempty"`
	Description    string      `json:"description,omitempty"`
	DefaultPersona PersonaTier `json:"default_persona"`
}

// RoomMatch scores how well a room suits a profile.
type RoomMatch struct {
	RoomID     string `json:"room_id"`
	RoomName   string `json:"room_name"`
	MatchScore int    `json:"match_score"` // 0-100
	Reason     string `json:"reason"`
}

// MatchScore rates a profile against a room: base 50, +30 when the
// profile's persona class (formal/casual) matches the room's formality
// class, +20 when a formal persona meets an authority room, capped at 100.
func MatchScore(profile Profile, room ChatRoom) int {
	score := 50
	formality := CalculateFormalityLevel(room)

	if profile.DefaultPersona.IsFormalSide() && formality >= 60 {
		score += 30
	} else if profile.DefaultPersona.IsCasualSide() && formality <= 39 {
		score += 30
	}

	if room.Relationship.IsAuthority() && profile.DefaultPersona.IsFormalSide() {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	return score
}

// MatchReason explains a match in one phrase.
func MatchReason(profile Profile, room ChatRoom) string {
	switch room.Relationship {
	case RelationshipBoss:
		return "회사/업무 관련 프로필, 상사 관계"
	case RelationshipSenior:
		return "격식있는 말투, 선배 관계"
	case RelationshipColleague:
		return "업무 동료 관계"
	}
	if profile.DefaultPersona.IsFormalSide() {
		return "격식있는 프로필에 적합"
	}
	return "프로필 성향과 잘 맞음"
}

// RankRooms scores every room for the profile and returns matches sorted
// by score, highest first. Ties keep the input order.
func RankRooms(profile Profile, rooms []ChatRoom) []RoomMatch {
	matches := make([]RoomMatch, 0, len(rooms))
	for _, room := range rooms {
		matches = append(matches, RoomMatch{
			RoomID:     room.ID,
			RoomName:   room.Name,
			MatchScore: MatchScore(profile, room),
			Reason:     MatchReason(profile, room),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}
