package service

import (
	"context"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"

	"github.com/google/uuid"
)

// Privilege levels on a calendar. Exactly one user holds PrivilegeOwner.
const (
	PrivilegeNone  = 0
	PrivilegeRead  = 1
	PrivilegeWrite = 2
	PrivilegeOwner = 3
)

// PrivilegeService resolves a user's privilege on a calendar from the layered
// ownership/share model. Events and shares are resolved by first mapping them
// to their owning calendar.
type PrivilegeService struct {
	repo repository.CalendarRepositoryInterface
}

func NewPrivilegeService(repo repository.CalendarRepositoryInterface) *PrivilegeService {
	return &PrivilegeService{repo: repo}
}

// Privilege returns 3 for the owner, 2 for a writable share, 1 for a
// read-only share and 0 otherwise. A missing calendar is an error.
func (s *PrivilegeService) Privilege(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) (int, *errors.AppError) {
	lookup, err := s.repo.GetPrivilegeLookup(ctx, calendarID)
	if err != nil {
		return PrivilegeNone, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if lookup == nil {
		return PrivilegeNone, errors.NewAppError(errors.ErrStore, "Calendar not found.", nil)
	}

	if lookup.OwnerID == userID {
		return PrivilegeOwner, nil
	}
	for _, grant := range lookup.Shares {
		if grant.UserID == userID {
			if grant.WritePermission {
				return PrivilegeWrite, nil
			}
			return PrivilegeRead, nil
		}
	}
	return PrivilegeNone, nil
}

func (s *PrivilegeService) CanRead(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) (bool, *errors.AppError) {
	privilege, appErr := s.Privilege(ctx, userID, calendarID)
	return privilege > PrivilegeNone, appErr
}

func (s *PrivilegeService) CanEdit(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) (bool, *errors.AppError) {
	privilege, appErr := s.Privilege(ctx, userID, calendarID)
	return privilege > PrivilegeRead, appErr
}

func (s *PrivilegeService) IsOwner(ctx context.Context, userID uuid.UUID, calendarID uuid.UUID) (bool, *errors.AppError) {
	privilege, appErr := s.Privilege(ctx, userID, calendarID)
	return privilege == PrivilegeOwner, appErr
}
