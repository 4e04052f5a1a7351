package service

import (
	"context"
	"strings"

	"github.com/MFrackowiak/mf-simple-calendar/core/constants"
	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	eventdto "github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"
	eventservice "github.com/MFrackowiak/mf-simple-calendar/modules/event/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"

	"github.com/google/uuid"
)

// InviteService handles the invitee side of events: listing invites, the
// per-invitee override merge, and attendance answers.
type InviteService struct {
	repo   repository.InviteRepositoryInterface
	events eventservice.EventServiceInterface
}

type InviteServiceInterface interface {
	GetInvites(ctx context.Context, userID uuid.UUID, userTimezone int, archived bool) (*dto.InvitesResponse, *errors.AppError)
	GetInvite(ctx context.Context, userID uuid.UUID, userTimezone int, inviteID uuid.UUID) (*dto.InviteResponse, *errors.AppError)
	EditOverride(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID, req *dto.OverrideRequest) *errors.AppError
	RestoreInvite(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID) *errors.AppError
	SetAttendance(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID, req *dto.AttendanceRequest) *errors.AppError
}

func NewInviteService(repo repository.InviteRepositoryInterface, events eventservice.EventServiceInterface) InviteServiceInterface {
	return &InviteService{repo: repo, events: events}
}

// renderInvite resolves the override merge and renders the effective event
// for the invitee's timezone.
func renderInvite(row *entity.InviteRow, userTimezone int) dto.InviteResponse {
	view := resolveView(row)
	return dto.InviteResponse{
		InviteID:         row.ID,
		IsOwner:          row.IsOwner,
		HasEdited:        row.HasEdited,
		AttendanceStatus: row.AttendanceStatus,
		EventResponse:    eventservice.RenderEvent(view, userTimezone),
	}
}

// ownInvite loads an invite and checks it belongs to the acting user.
// Invites are personal: nobody else can read or change them.
func (s *InviteService) ownInvite(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID) (*entity.InviteRow, *errors.AppError) {
	row, err := s.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if row == nil {
		return nil, errors.NewAppError(errors.ErrStore, "Invite not found.", nil)
	}
	if row.UserID != userID {
		return nil, errors.NewAppError(errors.ErrPermission, "Invite belongs to another user.", nil)
	}
	return row, nil
}

func (s *InviteService) GetInvites(ctx context.Context, userID uuid.UUID, userTimezone int, archived bool) (*dto.InvitesResponse, *errors.AppError) {
	rows, err := s.repo.GetInvitesForUser(ctx, userID, archived)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	invites := make([]dto.InviteResponse, 0, len(rows))
	for i := range rows {
		invites = append(invites, renderInvite(&rows[i], userTimezone))
	}
	return &dto.InvitesResponse{Invites: invites}, nil
}

func (s *InviteService) GetInvite(ctx context.Context, userID uuid.UUID, userTimezone int, inviteID uuid.UUID) (*dto.InviteResponse, *errors.AppError) {
	row, appErr := s.ownInvite(ctx, userID, inviteID)
	if appErr != nil {
		return nil, appErr
	}

	resp := renderInvite(row, userTimezone)
	return &resp, nil
}

// ownerEventRequest converts a full override payload into an event edit.
// Owner edits change the canonical event for everyone, so a partial payload
// is rejected rather than guessed at.
func ownerEventRequest(req *dto.OverrideRequest) (*eventdto.EventRequest, *errors.AppError) {
	missing := req.EventName == nil || req.StartTime == nil || req.AllDayEvent == nil
	if !missing && !*req.AllDayEvent {
		missing = req.EndTime == nil
	}
	if missing {
		return nil, errors.NewAppError(errors.ErrMalformed,
			"Owner edits change the event itself and must provide all event fields.", nil)
	}

	eventReq := &eventdto.EventRequest{
		EventName:     *req.EventName,
		StartTime:     *req.StartTime,
		EventTimezone: req.EventTimezone,
		AllDayEvent:   *req.AllDayEvent,
	}
	if req.EventDescription != nil {
		eventReq.EventDescription = *req.EventDescription
	}
	if req.EndTime != nil {
		eventReq.EndTime = *req.EndTime
	}
	return eventReq, nil
}

// overrideFromRequest validates an invitee's partial edit against the merged
// view and produces the own_* values to store. Time fields are normalized the
// same way canonical events are, using the effective all-day flag.
func (s *InviteService) overrideFromRequest(row *entity.InviteRow, req *dto.OverrideRequest) (*entity.Override, *errors.AppError) {
	override := &entity.Override{}
	touched := false

	if req.EventName != nil {
		name := strings.TrimSpace(*req.EventName)
		if len(name) < constants.NameMinLength || len(name) > constants.NameMaxLength {
			return nil, errors.NewAppError(errors.ErrValidation,
				"Event name should have between 4 and 30 characters.", nil)
		}
		override.OwnName = &name
		touched = true
	}
	if req.EventDescription != nil {
		description := strings.TrimSpace(*req.EventDescription)
		if len(description) > constants.DescriptionMaxLength {
			return nil, errors.NewAppError(errors.ErrValidation,
				"Event description should have at most 200 characters.", nil)
		}
		override.OwnDescription = &description
		touched = true
	}

	if req.StartTime != nil || req.EndTime != nil || req.EventTimezone != nil || req.AllDayEvent != nil {
		view := resolveView(row)
		allDay := view.AllDayEvent
		if req.AllDayEvent != nil {
			allDay = *req.AllDayEvent
		}
		if req.StartTime == nil {
			return nil, errors.NewAppError(errors.ErrValidation,
				"Start time is required when changing event times.", nil)
		}

		timeReq := &eventdto.EventRequest{
			StartTime:     *req.StartTime,
			EventTimezone: req.EventTimezone,
			AllDayEvent:   allDay,
		}
		if req.EndTime != nil {
			timeReq.EndTime = *req.EndTime
		}
		span, appErr := eventservice.SpanFromRequest(timeReq)
		if appErr != nil {
			return nil, appErr
		}

		override.OwnStartTime = &span.Start
		override.OwnEndTime = &span.End
		override.OwnTimezone = &span.Offset
		override.OwnAllDayEvent = &allDay
		touched = true
	}

	if !touched {
		return nil, errors.NewAppError(errors.ErrValidation, "Nothing to change.", nil)
	}
	return override, nil
}

func (s *InviteService) EditOverride(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID, req *dto.OverrideRequest) *errors.AppError {
	row, appErr := s.ownInvite(ctx, userID, inviteID)
	if appErr != nil {
		return appErr
	}

	// The owner's invite carries no overrides; their edit is delegated to the
	// event itself so every invitee sees it.
	if row.IsOwner {
		eventReq, appErr := ownerEventRequest(req)
		if appErr != nil {
			return appErr
		}
		return s.events.EditEvent(ctx, userID, row.EventID, eventReq)
	}

	override, appErr := s.overrideFromRequest(row, req)
	if appErr != nil {
		return appErr
	}

	rows, err := s.repo.UpdateInviteOverride(ctx, inviteID, override)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Invite update affected no rows.", nil)
	}

	logger.Info("InviteService:EditOverride:Updated", "invite_id", inviteID, "user_id", userID)
	return nil
}

func (s *InviteService) RestoreInvite(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownInvite(ctx, userID, inviteID); appErr != nil {
		return appErr
	}

	rows, err := s.repo.RestoreInviteOverride(ctx, inviteID)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Invite restore affected no rows.", nil)
	}
	return nil
}

func (s *InviteService) SetAttendance(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID, req *dto.AttendanceRequest) *errors.AppError {
	if _, appErr := s.ownInvite(ctx, userID, inviteID); appErr != nil {
		return appErr
	}

	status := *req.AttendanceStatus
	if status < eventservice.AttendanceUnknown || status > eventservice.AttendanceYes {
		return errors.NewAppError(errors.ErrValidation, "Unknown attendance status.", nil)
	}

	rows, err := s.repo.UpdateInviteAttendance(ctx, inviteID, status)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Attendance update affected no rows.", nil)
	}
	return nil
}
