package dto

import (
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CalendarRequest struct {
	CalendarName  string `json:"calendar_name" validate:"required"`
	CalendarColor string `json:"calendar_color" validate:"required"`
}

type ShareRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	WritePermission bool      `json:"write_permission"`
}

type UpdateShareRequest struct {
	WritePermission bool `json:"write_permission"`
}

// ===================== Response DTOs =====================

type CreateCalendarResponse struct {
	CalendarID uuid.UUID `json:"calendar_id"`
}

type CalendarsResponse struct {
	MyCalendars  []entity.Calendar          `json:"my_calendars"`
	SharedWithMe []entity.SharedCalendarRow `json:"shared_with_me"`
}

type CreateShareResponse struct {
	ShareID uuid.UUID `json:"share_id"`
}

type SharesResponse struct {
	Shares []entity.ShareListRow `json:"shares"`
}
