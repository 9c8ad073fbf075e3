package tonesdk

// ──────────────────────────────────────────────
// ChatRoom — read-only view of the conversation the core advises on
// ──────────────────────────────────────────────

// Relationship classifies who the counterpart in a chat room is.
// It is the primary driver of the default formality level.
type Relationship string

const (
	RelationshipBoss      Relationship = "boss"
	RelationshipSenior    Relationship = "senior"
	RelationshipColleague Relationship = "colleague"
	RelationshipFriend    Relationship = "friend"
	RelationshipFamily    Relationship = "family"
)

// IsAuthority reports whether the counterpart outranks the sender
// (boss or senior). Authority rooms get stricter send gating.
func (r Relationship) IsAuthority() bool {
	return r == RelationshipBoss || r == RelationshipSenior
}

// ChatRoom is the core's view of a conversation. It is owned by the
// session layer; the core never mutates it.
type ChatRoom struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Relationship Relationship `json:"relationship"`

	// FormalityLevel is authoritative when set. When nil, the default
	// is derived from Relationship.
	FormalityLevel *int `json:"formality_level,omitempty"`
}

// CalculateFormalityLevel returns the room's formality level in [0,100].
// An explicit FormalityLevel wins; otherwise the relationship-keyed
// default applies, with colleague-level 50 for unknown relationships.
func CalculateFormalityLevel(room ChatRoom) int {
	if room.FormalityLevel != nil {
		return *room.FormalityLevel
	}
	switch room.Relationship {
	case RelationshipBoss:
		return 95
	case RelationshipSenior:
		return 70
	case RelationshipColleague:
		return 50
	case RelationshipFriend:
		return 5
	case RelationshipFamily:
		return 10
	}
	return 50
}

// PersonaForRoom picks the built-in persona matching the room's
// computed formality level.
func PersonaForRoom(room ChatRoom) Persona {
	return PersonaByFormalityLevel(CalculateFormalityLevel(room))
}
