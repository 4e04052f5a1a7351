package dto

import (
	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// EventRequest carries event fields in the wire time format. Times either
// embed a zone suffix or come as naive wall-clock strings with EventTimezone
// set alongside.
type EventRequest struct {
	EventName        string `json:"event_name" validate:"required"`
	EventDescription string `json:"event_description"`
	StartTime        string `json:"start_time" validate:"required"`
	EndTime          string `json:"end_time"`
	EventTimezone    *int   `json:"event_timezone"`
	AllDayEvent      bool   `json:"all_day_event"`
}

type InviteUserRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// ===================== Response DTOs =====================

type CreateEventResponse struct {
	EventID uuid.UUID `json:"event_id"`
}

// EventResponse renders an event twice: once in the authoring timezone and
// once converted for the requesting user.
type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventName        string    `json:"event_name"`
	EventDescription string    `json:"event_description"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	UserStartTime    string    `json:"user_start_time"`
	UserEndTime      string    `json:"user_end_time"`
	EventTimezone    int       `json:"event_timezone"`
	UserTimezone     int       `json:"user_timezone"`
	AllDayEvent      bool      `json:"all_day_event"`
}

type CalendarEventsResponse struct {
	CalendarID uuid.UUID       `json:"calendar_id"`
	Events     []EventResponse `json:"events"`
}

type CreateInviteResponse struct {
	InviteID uuid.UUID `json:"invite_id"`
}

// GuestsResponse groups invitee usernames by their attendance answer.
type GuestsResponse struct {
	Unknown []string `json:"unknown"`
	No      []string `json:"no"`
	Maybe   []string `json:"maybe"`
	Yes     []string `json:"yes"`
}
