package entity

import "github.com/google/uuid"

// Calendar is owned by exactly one user. Deleting the owner cascades to the
// calendar, its shares and its events.
type Calendar struct {
	ID            uuid.UUID `db:"id" json:"calendar_id"`
	OwnerID       uuid.UUID `db:"owner_id" json:"-"`
	CalendarName  string    `db:"calendar_name" json:"calendar_name"`
	CalendarColor string    `db:"calendar_color" json:"calendar_color"`
}

// Share grants a non-owner user access to a calendar, read-only or writable.
// Unique per (calendar, user).
type Share struct {
	ID              uuid.UUID `db:"id" json:"share_id"`
	CalendarID      uuid.UUID `db:"calendar_id" json:"calendar_id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	WritePermission bool      `db:"write_permission" json:"write_permission"`
}

// SharedCalendarRow is a calendar visible through a share, with its owner's name.
type SharedCalendarRow struct {
	Owner           string    `db:"owner" json:"owner"`
	CalendarID      uuid.UUID `db:"calendar_id" json:"calendar_id"`
	CalendarName    string    `db:"calendar_name" json:"calendar_name"`
	CalendarColor   string    `db:"calendar_color" json:"calendar_color"`
	WritePermission bool      `db:"write_permission" json:"write_permission"`
}

// ShareListRow is a share of one of the user's own calendars, with the
// grantee's name.
type ShareListRow struct {
	ShareID         uuid.UUID `db:"share_id" json:"share_id"`
	CalendarName    string    `db:"calendar_name" json:"calendar_name"`
	CalendarColor   string    `db:"calendar_color" json:"calendar_color"`
	WritePermission bool      `db:"write_permission" json:"write_permission"`
	SharedWith      string    `db:"shared_with" json:"shared_with"`
}

// ShareGrant is one share row of a privilege lookup.
type ShareGrant struct {
	UserID          uuid.UUID `db:"user_id"`
	WritePermission bool      `db:"write_permission"`
}

// PrivilegeLookup carries everything needed to resolve a user's privilege on
// one calendar: the owner id plus all share grants.
type PrivilegeLookup struct {
	OwnerID uuid.UUID
	Shares  []ShareGrant
}
