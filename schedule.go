package tonesdk

import "time"

// ──────────────────────────────────────────────
// Send Schedule Advisor — off-hours deferral for authority rooms
// ──────────────────────────────────────────────

// ScheduleAdvice says whether a send should be deferred, and to when.
// Computed fresh from the supplied clock; never cached.
type ScheduleAdvice struct {
	Should        bool      `json:"should"`
	SuggestedTime time.Time `json:"suggested_time,omitempty"` // zero when Should is false
	Reason        string    `json:"reason,omitempty"`
}

const (
	lateNightStartHour = 22
	morningStartHour   = 7
	suggestedSendHour  = 9
)

// ShouldScheduleMessage decides whether sending now is ill-advised for the
// room's relationship. Two rules, first match wins:
//
//  1. Late night (hour >= 22 or < 7) to a boss or senior — defer to the
//     next 09:00 (same morning when before 07:00).
//  2. Weekend to a boss — defer to Monday 09:00.
//
// When both conditions hold at once, rule 1's outcome is returned; the
// precedence is intentional, the rules never combine. The hour and weekday
// are read in now's location, so the caller controls the local timezone.
func ShouldScheduleMessage(room ChatRoom, now time.Time) ScheduleAdvice {
	hour := now.Hour()

	if (hour >= lateNightStartHour || hour < morningStartHour) && room.Relationship.IsAuthority() {
		suggested := time.Date(now.Year(), now.Month(), now.Day(), suggestedSendHour, 0, 0, 0, now.Location())
		if hour >= lateNightStartHour {
			suggested = suggested.AddDate(0, 0, 1)
		}
		who := "선배"
		if room.Relationship == RelationshipBoss {
			who = "상사"
		}
		return ScheduleAdvice{
			Should:        true,
			SuggestedTime: suggested,
			Reason:        "밤 늦은 시간에 " + who + "님께 메시지를 보내시려고 합니다.",
		}
	}

	if day := now.Weekday(); (day == time.Saturday || day == time.Sunday) && room.Relationship == RelationshipBoss {
		daysUntilMonday := 2
		if day == time.Sunday {
			daysUntilMonday = 1
		}
		suggested := time.Date(now.Year(), now.Month(), now.Day(), suggestedSendHour, 0, 0, 0, now.Location()).
			AddDate(0, 0, daysUntilMonday)
		return ScheduleAdvice{
			Should:        true,
			SuggestedTime: suggested,
			Reason:        "주말에 상사님께 메시지를 보내시려고 합니다.",
		}
	}

	return ScheduleAdvice{}
}
