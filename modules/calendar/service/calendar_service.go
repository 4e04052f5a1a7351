package service

import (
	"context"
	"strings"

	"github.com/MFrackowiak/mf-simple-calendar/core/constants"
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"

	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

// CalendarService handles calendar and share business logic.
type CalendarService struct {
	repo      repository.CalendarRepositoryInterface
	privilege *PrivilegeService
}

type CalendarServiceInterface interface {
	CreateCalendar(ctx context.Context, userID uuid.UUID, req *dto.CalendarRequest) (*dto.CreateCalendarResponse, *errors.AppError)
	GetCalendars(ctx context.Context, userID uuid.UUID) (*dto.CalendarsResponse, *errors.AppError)
	EditCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.CalendarRequest) *errors.AppError
	DeleteCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) *errors.AppError

	ShareCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.ShareRequest) (*dto.CreateShareResponse, *errors.AppError)
	GetShares(ctx context.Context, userID uuid.UUID) (*dto.SharesResponse, *errors.AppError)
	UpdateShare(ctx context.Context, userID uuid.UUID, shareID uuid.UUID, req *dto.UpdateShareRequest) *errors.AppError
	DeleteShare(ctx context.Context, userID uuid.UUID, shareID uuid.UUID) *errors.AppError
}

func NewCalendarService(repo repository.CalendarRepositoryInterface, privilege *PrivilegeService) CalendarServiceInterface {
	return &CalendarService{repo: repo, privilege: privilege}
}

// validateCalendarInput trims and checks the name and color. A color is valid
// when it is a recognized SVG color name.
func validateCalendarInput(name string, color string) (string, string, *errors.AppError) {
	name = strings.TrimSpace(name)
	color = strings.ToLower(strings.TrimSpace(color))

	if len(name) < constants.NameMinLength || len(name) > constants.NameMaxLength {
		return "", "", errors.NewAppError(errors.ErrValidation, "Calendar name should have between 4 and 30 characters.", nil)
	}
	if _, ok := colornames.Map[color]; !ok {
		return "", "", errors.NewAppError(errors.ErrValidation, "Unknown calendar color.", nil)
	}
	return name, color, nil
}

func (s *CalendarService) CreateCalendar(ctx context.Context, userID uuid.UUID, req *dto.CalendarRequest) (*dto.CreateCalendarResponse, *errors.AppError) {
	name, color, appErr := validateCalendarInput(req.CalendarName, req.CalendarColor)
	if appErr != nil {
		return nil, appErr
	}

	id, err := s.repo.CreateCalendar(ctx, userID, name, color)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	logger.Info("CalendarService:CreateCalendar:Created", "calendar_id", id, "owner_id", userID)
	return &dto.CreateCalendarResponse{CalendarID: id}, nil
}

func (s *CalendarService) GetCalendars(ctx context.Context, userID uuid.UUID) (*dto.CalendarsResponse, *errors.AppError) {
	own, err := s.repo.GetOwnCalendars(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	shared, err := s.repo.GetSharedCalendars(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	return &dto.CalendarsResponse{MyCalendars: own, SharedWithMe: shared}, nil
}

func (s *CalendarService) EditCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.CalendarRequest) *errors.AppError {
	canEdit, appErr := s.privilege.CanEdit(ctx, userID, calendarID)
	if appErr != nil {
		return appErr
	}
	if !canEdit {
		return errors.NewAppError(errors.ErrPermission, "Calendar edit permission required to perform this action.", nil)
	}

	name, color, appErr := validateCalendarInput(req.CalendarName, req.CalendarColor)
	if appErr != nil {
		return appErr
	}

	rows, err := s.repo.UpdateCalendar(ctx, calendarID, name, color)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Calendar update affected no rows.", nil)
	}
	return nil
}

func (s *CalendarService) DeleteCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) *errors.AppError {
	isOwner, appErr := s.privilege.IsOwner(ctx, userID, calendarID)
	if appErr != nil {
		return appErr
	}
	if !isOwner {
		return errors.NewAppError(errors.ErrPermission, "Only the calendar owner can delete it.", nil)
	}

	rows, err := s.repo.DeleteCalendar(ctx, calendarID)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Calendar delete affected no rows.", nil)
	}

	logger.Info("CalendarService:DeleteCalendar:Deleted", "calendar_id", calendarID, "user_id", userID)
	return nil
}

func (s *CalendarService) ShareCalendar(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID, req *dto.ShareRequest) (*dto.CreateShareResponse, *errors.AppError) {
	isOwner, appErr := s.privilege.IsOwner(ctx, userID, calendarID)
	if appErr != nil {
		return nil, appErr
	}
	if !isOwner {
		return nil, errors.NewAppError(errors.ErrPermission, "Only calendar owner can further share it.", nil)
	}

	if req.UserID == userID {
		return nil, errors.NewAppError(errors.ErrValidation, "Calendar cannot be shared with its owner.", nil)
	}

	id, err := s.repo.CreateShare(ctx, calendarID, req.UserID, req.WritePermission)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrValidation, "Calendar already shared with this user.", err)
		}
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	logger.Info("CalendarService:ShareCalendar:Created",
		"share_id", id, "calendar_id", calendarID, "user_id", req.UserID, "write", req.WritePermission)
	return &dto.CreateShareResponse{ShareID: id}, nil
}

func (s *CalendarService) GetShares(ctx context.Context, userID uuid.UUID) (*dto.SharesResponse, *errors.AppError) {
	shares, err := s.repo.GetSharesForOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	return &dto.SharesResponse{Shares: shares}, nil
}

// shareCalendarOwnerGate resolves a share to its calendar and checks the
// acting user owns that calendar.
func (s *CalendarService) shareCalendarOwnerGate(ctx context.Context, userID uuid.UUID, shareID uuid.UUID) *errors.AppError {
	calendarID, found, err := s.repo.GetCalendarIDForShare(ctx, shareID)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if !found {
		return errors.NewAppError(errors.ErrStore, "Share not found.", nil)
	}

	isOwner, appErr := s.privilege.IsOwner(ctx, userID, calendarID)
	if appErr != nil {
		return appErr
	}
	if !isOwner {
		return errors.NewAppError(errors.ErrPermission, "Only the calendar owner can manage its shares.", nil)
	}
	return nil
}

func (s *CalendarService) UpdateShare(ctx context.Context, userID uuid.UUID, shareID uuid.UUID, req *dto.UpdateShareRequest) *errors.AppError {
	if appErr := s.shareCalendarOwnerGate(ctx, userID, shareID); appErr != nil {
		return appErr
	}

	rows, err := s.repo.UpdateShare(ctx, shareID, req.WritePermission)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Share update affected no rows.", nil)
	}
	return nil
}

func (s *CalendarService) DeleteShare(ctx context.Context, userID uuid.UUID, shareID uuid.UUID) *errors.AppError {
	if appErr := s.shareCalendarOwnerGate(ctx, userID, shareID); appErr != nil {
		return appErr
	}

	rows, err := s.repo.DeleteShare(ctx, shareID)
	if err != nil {
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if rows == 0 {
		return errors.NewAppError(errors.ErrUnknown, "Share delete affected no rows.", nil)
	}
	return nil
}
