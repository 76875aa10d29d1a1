package models

import "time"

// Care event types.
const (
	CareFeeding     = "FEEDING"
	CareWaterChange = "WATER_CHANGE"
	CareMilestone   = "MILESTONE"
	CareNote        = "NOTE"
)

// CareEvent is a single caretaking log entry.
type CareEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // FEEDING | WATER_CHANGE | MILESTONE | NOTE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// IsCareType reports whether typ is one of the known care event types.
func IsCareType(typ string) bool {
	switch typ {
	case CareFeeding, CareWaterChange, CareMilestone, CareNote:
		return true
	}
	return false
}
