package service

import (
	evententity "github.com/MFrackowiak/mf-simple-calendar/modules/event/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/entity"
)

// resolveView merges an invite's own_* overrides over the canonical event,
// field by field. Overrides only apply once the invitee has edited; a nil
// override field keeps following the owner's value, so a later owner edit
// shows through everywhere the invitee did not touch.
func resolveView(row *entity.InviteRow) *evententity.Event {
	event := &evententity.Event{
		ID:               row.EventID,
		CalendarID:       row.CalendarID,
		EventName:        row.EventName,
		EventDescription: row.EventDescription,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
		EventTimezone:    row.EventTimezone,
		AllDayEvent:      row.AllDayEvent,
	}
	if !row.HasEdited {
		return event
	}

	if row.OwnName != nil {
		event.EventName = *row.OwnName
	}
	if row.OwnDescription != nil {
		event.EventDescription = *row.OwnDescription
	}
	if row.OwnStartTime != nil {
		event.StartTime = *row.OwnStartTime
	}
	if row.OwnEndTime != nil {
		event.EndTime = *row.OwnEndTime
	}
	if row.OwnTimezone != nil {
		event.EventTimezone = *row.OwnTimezone
	}
	if row.OwnAllDayEvent != nil {
		event.AllDayEvent = *row.OwnAllDayEvent
	}
	return event
}
