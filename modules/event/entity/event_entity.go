package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the canonical stored event. Times are UTC instants; EventTimezone
// keeps the authoring offset so wall-clock rendering survives the round trip.
type Event struct {
	ID               uuid.UUID `db:"id" json:"event_id"`
	CalendarID       uuid.UUID `db:"calendar_id" json:"calendar_id"`
	EventName        string    `db:"event_name" json:"event_name"`
	EventDescription string    `db:"event_description" json:"event_description"`
	StartTime        time.Time `db:"start_time" json:"start_time"`
	EndTime          time.Time `db:"end_time" json:"end_time"`
	EventTimezone    int       `db:"event_timezone" json:"event_timezone"`
	AllDayEvent      bool      `db:"all_day_event" json:"all_day_event"`
}
