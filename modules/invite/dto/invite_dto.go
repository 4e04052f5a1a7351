package dto

import (
	eventdto "github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// OverrideRequest is an invitee's edit of their view of an event. Every field
// is optional; omitted fields keep following the canonical event. Owner edits
// go through the same shape but must fill every field, since they change the
// event itself.
type OverrideRequest struct {
	EventName        *string `json:"event_name"`
	EventDescription *string `json:"event_description"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	EventTimezone    *int    `json:"event_timezone"`
	AllDayEvent      *bool   `json:"all_day_event"`
}

type AttendanceRequest struct {
	AttendanceStatus *int `json:"attendance_status" validate:"required"`
}

// ===================== Response DTOs =====================

// InviteResponse is an invite rendered through the override merge: the event
// fields reflect the invitee's own values wherever they edited them.
type InviteResponse struct {
	InviteID         uuid.UUID `json:"invite_id"`
	IsOwner          bool      `json:"is_owner"`
	HasEdited        bool      `json:"has_edited"`
	AttendanceStatus int       `json:"attendance_status"`
	eventdto.EventResponse
}

type InvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}
