package service

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/MFrackowiak/mf-simple-calendar/core/constants"
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/core/timeutil"
	calendarservice "github.com/MFrackowiak/mf-simple-calendar/modules/calendar/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/repository"
	inviterepo "github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"

	"github.com/google/uuid"
)

// Attendance answers an invitee can give.
const (
	AttendanceUnknown = 0
	AttendanceNo      = 1
	AttendanceMaybe   = 2
	AttendanceYes     = 3
)

// EventService handles event business logic: normalizing wire times into
// canonical UTC storage and rendering them back per viewer.
type EventService struct {
	repo      repository.EventRepositoryInterface
	invites   inviterepo.InviteRepositoryInterface
	privilege *calendarservice.PrivilegeService
}

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.EventRequest) (*dto.CreateEventResponse, *errors.AppError)
	GetEvent(ctx context.Context, userID uuid.UUID, userTimezone int, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetCalendarEvents(ctx context.Context, userID uuid.UUID, userTimezone int, calendarID uuid.UUID) (*dto.CalendarEventsResponse, *errors.AppError)
	EditEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.EventRequest) *errors.AppError
	DeleteEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError

	InviteUser(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.InviteUserRequest) (*dto.CreateInviteResponse, *errors.AppError)
	GetGuests(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.GuestsResponse, *errors.AppError)
}

func NewEventService(
	repo repository.EventRepositoryInterface,
	invites inviterepo.InviteRepositoryInterface,
	privilege *calendarservice.PrivilegeService,
) EventServiceInterface {
	return &EventService{repo: repo, invites: invites, privilege: privilege}
}

// ValidateEventInput checks the text fields and normalizes the times into a
// canonical span. Shared with invite overrides, which accept the same shape.
func ValidateEventInput(req *dto.EventRequest) (string, string, timeutil.Span, *errors.AppError) {
	name := strings.TrimSpace(req.EventName)
	description := strings.TrimSpace(req.EventDescription)

	if len(name) < constants.NameMinLength || len(name) > constants.NameMaxLength {
		return "", "", timeutil.Span{}, errors.NewAppError(errors.ErrValidation,
			"Event name should have between 4 and 30 characters.", nil)
	}
	if len(description) > constants.DescriptionMaxLength {
		return "", "", timeutil.Span{}, errors.NewAppError(errors.ErrValidation,
			"Event description should have at most 200 characters.", nil)
	}

	span, appErr := SpanFromRequest(req)
	if appErr != nil {
		return "", "", timeutil.Span{}, appErr
	}
	return name, description, span, nil
}

// SpanFromRequest parses the wire times, branching on the all-day flag.
func SpanFromRequest(req *dto.EventRequest) (timeutil.Span, *errors.AppError) {
	var span timeutil.Span
	var err error

	if req.AllDayEvent {
		span, err = timeutil.ParseAllDay(req.StartTime, req.EventTimezone)
	} else {
		if strings.TrimSpace(req.EndTime) == "" {
			return timeutil.Span{}, errors.NewAppError(errors.ErrValidation,
				"End time is required for timed events.", nil)
		}
		span, err = timeutil.ParseTimed(req.StartTime, req.EndTime, req.EventTimezone)
	}
	if err != nil {
		return timeutil.Span{}, timeErrToAppError(err)
	}
	return span, nil
}

func timeErrToAppError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, timeutil.ErrBadFormat):
		return errors.NewAppError(errors.ErrMalformed,
			"Dates must use format YYYY-MM-DD HH:MM:SS, with a UTC offset or an explicit event timezone.", err)
	case stderrors.Is(err, timeutil.ErrZoneMismatch):
		return errors.NewAppError(errors.ErrMalformed,
			"Start time and end time must have the same timezone.", err)
	case stderrors.Is(err, timeutil.ErrEndBeforeStart):
		return errors.NewAppError(errors.ErrValidation,
			"Event cannot end before it started.", err)
	case stderrors.Is(err, timeutil.ErrOffsetRange):
		return errors.NewAppError(errors.ErrValidation,
			"Timezone offset must be between -11 and +14.", err)
	default:
		return errors.NewAppError(errors.ErrMalformed, "Could not parse event times.", err)
	}
}

// RenderEvent converts a stored event into the wire shape, shown both in the
// authoring timezone and converted for the viewer. All-day events keep the
// authored calendar date unless the viewer is more than half a day away.
func RenderEvent(event *entity.Event, viewerOffset int) dto.EventResponse {
	span := timeutil.Span{Start: event.StartTime, End: event.EndTime, Offset: event.EventTimezone}

	resp := dto.EventResponse{
		EventID:          event.ID,
		EventName:        event.EventName,
		EventDescription: event.EventDescription,
		EventTimezone:    event.EventTimezone,
		UserTimezone:     viewerOffset,
		AllDayEvent:      event.AllDayEvent,
	}

	if event.AllDayEvent {
		authorStart := span.Start.In(timeutil.FixedOffset(span.Offset))
		authorEnd := span.End.In(timeutil.FixedOffset(span.Offset))
		userStart, userEnd := timeutil.AllDayWindow(span, viewerOffset)
		resp.StartTime = timeutil.Format(authorStart)
		resp.EndTime = timeutil.Format(authorEnd)
		resp.UserStartTime = timeutil.Format(userStart)
		resp.UserEndTime = timeutil.Format(userEnd)
		return resp
	}

	start, end, userStart, userEnd := timeutil.RenderTimed(span, viewerOffset)
	resp.StartTime = timeutil.Format(start)
	resp.EndTime = timeutil.Format(end)
	resp.UserStartTime = timeutil.Format(userStart)
	resp.UserEndTime = timeutil.Format(userEnd)
	return resp
}

// eventCalendarID resolves an event to its calendar for privilege checks.
func (s *EventService) eventCalendarID(ctx context.Context, eventID uuid.UUID) (uuid.UUID, *errors.AppError) {
	calendarID, found, err := s.repo.GetCalendarIDForEvent(ctx, eventID)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if !found {
		return uuid.Nil, errors.NewAppError(errors.ErrStore, "Event not found.", nil)
	}
	return calendarID, nil
}

func (s *EventService) requireEdit(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) *errors.AppError {
	canEdit, appErr := s.privilege.CanEdit(ctx, userID, calendarID)
	if appErr != nil {
		return appErr
	}
	if !canEdit {
		return errors.NewAppError(errors.ErrPermission, "Calendar edit permission required to perform this action.", nil)
	}
	return nil
}

func (s *EventService) requireRead(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) *errors.AppError {
	canRead, appErr := s.privilege.CanRead(ctx, userID, calendarID)
	if appErr != nil {
		return appErr
	}
	if !canRead {
		return errors.NewAppError(errors.ErrPermission, "Calendar read permission required to perform this action.", nil)
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.EventRequest) (*dto.CreateEventResponse, *errors.AppError) {
	if appErr := s.requireEdit(ctx, userID, calendarID); appErr != nil {
		return nil, appErr
	}

	name, description, span, appErr := ValidateEventInput(req)
	if appErr != nil {
		return nil, appErr
	}

	event := &entity.Event{
		CalendarID:       calendarID,
		EventName:        name,
		EventDescription: description,
		StartTime:        span.Start,
		EndTime:          span.End,
		EventTimezone:    span.Offset,
		AllDayEvent:      req.AllDayEvent,
	}
	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	// The creator gets an owner invite so the event shows up in their invite
	// list with delegation rights. The event itself exists either way.
	if _, err := s.invites.CreateInvite(ctx, id, userID, true); err != nil {
		logger.Error("EventService:CreateEvent:OwnerInvite:Error:", err)
	}

	logger.Info("EventService:CreateEvent:Created", "event_id", id, "calendar_id", calendarID, "user_id", userID)
	return &dto.CreateEventResponse{EventID: id}, nil
}

func (s *EventService) GetEvent(ctx context.Context, userID uuid.UUID, userTimezone int, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	calendarID, appErr := s.eventCalendarID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.requireRead(ctx, userID, calendarID); appErr != nil {
		return nil, appErr
	}

	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrStore, "Event not found.", nil)
	}

	resp := RenderEvent(event, userTimezone)
	return &resp, nil
}

func (s *EventService) GetCalendarEvents(ctx context.Context, userID uuid.UUID, userTimezone int, calendarID uuid.UUID) (*dto.CalendarEventsResponse, *errors.AppError) {
	if appErr := s.requireRead(ctx, userID, calendarID); appErr != nil {
		return nil, appErr
	}

	events, err := s.repo.GetEventsForCalendar(ctx, calendarID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	rendered := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		rendered = append(rendered, RenderEvent(&events[i], userTimezone))
	}
	return &dto.CalendarEventsResponse{CalendarID: calendarID, Events: rendered}, nil
}

func (s *EventService) EditEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.EventRequest) *errors.AppError {
	calendarID, appErr := s.eventCalendarID(ctx, eventID)
	if appErr != nil {
		return appErr
	}
	if appErr := s.requireEdit(ctx, userID, calendarID); appErr != nil {
		return appErr
	}

	name, description, span, appErr := ValidateEventInput(req)
	if appErr != nil {
		return appErr
	}

	event := &entity.Event{
		ID:               eventID,
		EventName:        name,
		EventDescription: description,
		StartTime:        span.Start,
		EndTime:          span.End,
		EventTimezone:    span.Offset,
		AllDayEvent:      req.AllDayEvent,
	}
	rows, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Event update affected no rows.", nil)
	}
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	calendarID, appErr := s.eventCalendarID(ctx, eventID)
	if appErr != nil {
		return appErr
	}
	if appErr := s.requireEdit(ctx, userID, calendarID); appErr != nil {
		return appErr
	}

	rows, err := s.repo.DeleteEvent(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Event delete affected no rows.", nil)
	}

	logger.Info("EventService:DeleteEvent:Deleted", "event_id", eventID, "user_id", userID)
	return nil
}

func (s *EventService) InviteUser(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.InviteUserRequest) (*dto.CreateInviteResponse, *errors.AppError) {
	calendarID, appErr := s.eventCalendarID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.requireEdit(ctx, userID, calendarID); appErr != nil {
		return nil, appErr
	}

	id, err := s.invites.CreateInvite(ctx, eventID, req.UserID, false)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrValidation, "User already invited to this event.", err)
		}
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	logger.Info("EventService:InviteUser:Created", "invite_id", id, "event_id", eventID, "user_id", req.UserID)
	return &dto.CreateInviteResponse{InviteID: id}, nil
}

func (s *EventService) GetGuests(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.GuestsResponse, *errors.AppError) {
	calendarID, appErr := s.eventCalendarID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.requireRead(ctx, userID, calendarID); appErr != nil {
		return nil, appErr
	}

	guests, err := s.invites.GetGuestsForEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	resp := &dto.GuestsResponse{
		Unknown: []string{},
		No:      []string{},
		Maybe:   []string{},
		Yes:     []string{},
	}
	for _, g := range guests {
		switch g.AttendanceStatus {
		case AttendanceNo:
			resp.No = append(resp.No, g.Username)
		case AttendanceMaybe:
			resp.Maybe = append(resp.Maybe, g.Username)
		case AttendanceYes:
			resp.Yes = append(resp.Yes, g.Username)
		default:
			resp.Unknown = append(resp.Unknown, g.Username)
		}
	}
	return resp, nil
}
