package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invite links a user to an event. The own_* columns hold per-invitee
// overrides of the canonical event fields; they only take effect once
// HasEdited is set.
type Invite struct {
	ID               uuid.UUID  `db:"id" json:"invite_id"`
	EventID          uuid.UUID  `db:"event_id" json:"event_id"`
	UserID           uuid.UUID  `db:"user_id" json:"-"`
	IsOwner          bool       `db:"is_owner" json:"is_owner"`
	HasEdited        bool       `db:"has_edited" json:"-"`
	OwnName          *string    `db:"own_name" json:"-"`
	OwnDescription   *string    `db:"own_description" json:"-"`
	OwnStartTime     *time.Time `db:"own_start_time" json:"-"`
	OwnEndTime       *time.Time `db:"own_end_time" json:"-"`
	OwnTimezone      *int       `db:"own_timezone" json:"-"`
	OwnAllDayEvent   *bool      `db:"own_all_day_event" json:"-"`
	AttendanceStatus int        `db:"attendance_status" json:"attendance_status"`
}

// InviteRow is an invite joined with its event's canonical fields, the raw
// material for the per-field override merge.
type InviteRow struct {
	Invite
	CalendarID       uuid.UUID `db:"calendar_id"`
	EventName        string    `db:"event_name"`
	EventDescription string    `db:"event_description"`
	StartTime        time.Time `db:"start_time"`
	EndTime          time.Time `db:"end_time"`
	EventTimezone    int       `db:"event_timezone"`
	AllDayEvent      bool      `db:"all_day_event"`
}

// Guest is a single invitee with their attendance answer.
type Guest struct {
	Username         string `db:"username"`
	AttendanceStatus int    `db:"attendance_status"`
}

// Override is the set of own_* values written by an invitee edit. Nil fields
// stay untouched in storage, so an invitee can override a subset and keep
// following the owner's values for the rest.
type Override struct {
	OwnName        *string
	OwnDescription *string
	OwnStartTime   *time.Time
	OwnEndTime     *time.Time
	OwnTimezone    *int
	OwnAllDayEvent *bool
}
