package service

import (
	"context"
	"testing"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fakeCalendarRepo records writes and serves one calendar's privilege lookup.
type fakeCalendarRepo struct {
	repository.CalendarRepositoryInterface

	lookup         *entity.PrivilegeLookup
	createdName    string
	createdColor   string
	createShareErr error
	updateRows     int64
	deleteRows     int64
	shareCalendar  uuid.UUID
	shareFound     bool
}

func (f *fakeCalendarRepo) GetPrivilegeLookup(ctx context.Context, calendarID uuid.UUID) (*entity.PrivilegeLookup, error) {
	return f.lookup, nil
}

func (f *fakeCalendarRepo) CreateCalendar(ctx context.Context, ownerID uuid.UUID, name string, color string) (uuid.UUID, error) {
	f.createdName, f.createdColor = name, color
	return uuid.New(), nil
}

func (f *fakeCalendarRepo) UpdateCalendar(ctx context.Context, id uuid.UUID, name string, color string) (int64, error) {
	return f.updateRows, nil
}

func (f *fakeCalendarRepo) DeleteCalendar(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.deleteRows, nil
}

func (f *fakeCalendarRepo) CreateShare(ctx context.Context, calendarID uuid.UUID, userID uuid.UUID, write bool) (uuid.UUID, error) {
	if f.createShareErr != nil {
		return uuid.Nil, f.createShareErr
	}
	return uuid.New(), nil
}

func (f *fakeCalendarRepo) GetCalendarIDForShare(ctx context.Context, shareID uuid.UUID) (uuid.UUID, bool, error) {
	return f.shareCalendar, f.shareFound, nil
}

func (f *fakeCalendarRepo) UpdateShare(ctx context.Context, shareID uuid.UUID, write bool) (int64, error) {
	return f.updateRows, nil
}

func newCalendarFixture(lookup *entity.PrivilegeLookup) (*fakeCalendarRepo, CalendarServiceInterface) {
	repo := &fakeCalendarRepo{lookup: lookup}
	return repo, NewCalendarService(repo, NewPrivilegeService(repo))
}

func TestCreateCalendarValidation(t *testing.T) {
	cases := []struct {
		name     string
		request  dto.CalendarRequest
		wantMsg  string
		wantCode errors.ErrorCode
	}{
		{"name too short", dto.CalendarRequest{CalendarName: "abc", CalendarColor: "red"},
			"Calendar name should have between 4 and 30 characters.", errors.ErrValidation},
		{"name too long", dto.CalendarRequest{CalendarName: "abcdefghijabcdefghijabcdefghijX", CalendarColor: "red"},
			"Calendar name should have between 4 and 30 characters.", errors.ErrValidation},
		{"unknown color", dto.CalendarRequest{CalendarName: "Standup", CalendarColor: "sparkle"},
			"Unknown calendar color.", errors.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, svc := newCalendarFixture(nil)
			_, appErr := svc.CreateCalendar(context.Background(), uuid.New(), &tc.request)
			if appErr == nil {
				t.Fatal("expected validation error")
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tc.wantCode)
			}
			if appErr.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestCreateCalendarNormalizesColor(t *testing.T) {
	repo, svc := newCalendarFixture(nil)

	resp, appErr := svc.CreateCalendar(context.Background(), uuid.New(),
		&dto.CalendarRequest{CalendarName: "  Standup  ", CalendarColor: "DarkSlateBlue"})
	if appErr != nil {
		t.Fatalf("CreateCalendar: %v", appErr)
	}
	if resp.CalendarID == uuid.Nil {
		t.Error("expected a calendar id")
	}
	if repo.createdName != "Standup" {
		t.Errorf("stored name = %q, want trimmed", repo.createdName)
	}
	if repo.createdColor != "darkslateblue" {
		t.Errorf("stored color = %q, want lowercase", repo.createdColor)
	}
}

func TestEditCalendarRequiresWritePermission(t *testing.T) {
	owner := uuid.New()
	reader := uuid.New()
	calendarID := uuid.New()

	_, svc := newCalendarFixture(&entity.PrivilegeLookup{
		OwnerID: owner,
		Shares:  []entity.ShareGrant{{UserID: reader, WritePermission: false}},
	})

	appErr := svc.EditCalendar(context.Background(), reader, calendarID,
		&dto.CalendarRequest{CalendarName: "Standup", CalendarColor: "red"})
	if appErr == nil || appErr.Code != errors.ErrPermission {
		t.Fatalf("expected permission error, got %v", appErr)
	}
}

func TestDeleteCalendarRequiresOwner(t *testing.T) {
	owner := uuid.New()
	writer := uuid.New()
	calendarID := uuid.New()

	repo, svc := newCalendarFixture(&entity.PrivilegeLookup{
		OwnerID: owner,
		Shares:  []entity.ShareGrant{{UserID: writer, WritePermission: true}},
	})
	repo.deleteRows = 1

	appErr := svc.DeleteCalendar(context.Background(), writer, calendarID)
	if appErr == nil || appErr.Code != errors.ErrPermission {
		t.Fatalf("expected permission error, got %v", appErr)
	}

	if appErr := svc.DeleteCalendar(context.Background(), owner, calendarID); appErr != nil {
		t.Fatalf("owner delete: %v", appErr)
	}
}

func TestShareCalendarRejectsOwnerAndDuplicates(t *testing.T) {
	owner := uuid.New()
	invitee := uuid.New()
	calendarID := uuid.New()

	repo, svc := newCalendarFixture(&entity.PrivilegeLookup{OwnerID: owner})

	_, appErr := svc.ShareCalendar(context.Background(), owner, calendarID,
		&dto.ShareRequest{UserID: owner})
	if appErr == nil || appErr.Code != errors.ErrValidation {
		t.Fatalf("expected validation error for self-share, got %v", appErr)
	}

	repo.createShareErr = &pq.Error{Code: "23505"}
	_, appErr = svc.ShareCalendar(context.Background(), owner, calendarID,
		&dto.ShareRequest{UserID: invitee})
	if appErr == nil || appErr.Code != errors.ErrValidation {
		t.Fatalf("expected validation error for duplicate share, got %v", appErr)
	}
	if appErr.Message != "Calendar already shared with this user." {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestUpdateShareAffectingNoRowsIsUnknownError(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()

	repo, svc := newCalendarFixture(&entity.PrivilegeLookup{OwnerID: owner})
	repo.shareCalendar = calendarID
	repo.shareFound = true
	repo.updateRows = 0

	appErr := svc.UpdateShare(context.Background(), owner, uuid.New(),
		&dto.UpdateShareRequest{WritePermission: true})
	if appErr == nil || appErr.Code != errors.ErrUnknown {
		t.Fatalf("expected unknown error for zero-row update, got %v", appErr)
	}
}
