package service

import (
	"context"
	"testing"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/timeutil"
	calendarentity "github.com/MFrackowiak/mf-simple-calendar/modules/calendar/entity"
	calendarrepo "github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"
	calendarservice "github.com/MFrackowiak/mf-simple-calendar/modules/calendar/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/repository"
	inviteentity "github.com/MFrackowiak/mf-simple-calendar/modules/invite/entity"
	inviterepo "github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

type fakePrivilegeRepo struct {
	calendarrepo.CalendarRepositoryInterface
	lookup *calendarentity.PrivilegeLookup
}

func (f *fakePrivilegeRepo) GetPrivilegeLookup(ctx context.Context, calendarID uuid.UUID) (*calendarentity.PrivilegeLookup, error) {
	return f.lookup, nil
}

type fakeEventRepo struct {
	repository.EventRepositoryInterface

	created    *entity.Event
	stored     *entity.Event
	calendarID uuid.UUID
	found      bool
	updateRows int64
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	f.created = event
	return uuid.New(), nil
}

func (f *fakeEventRepo) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	return f.stored, nil
}

func (f *fakeEventRepo) GetCalendarIDForEvent(ctx context.Context, eventID uuid.UUID) (uuid.UUID, bool, error) {
	return f.calendarID, f.found, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, event *entity.Event) (int64, error) {
	f.stored = event
	return f.updateRows, nil
}

type fakeInviteRepo struct {
	inviterepo.InviteRepositoryInterface

	invitedEvent uuid.UUID
	invitedUser  uuid.UUID
	invitedOwner bool
	createErr    error
	guests       []inviteentity.Guest
}

func (f *fakeInviteRepo) CreateInvite(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, isOwner bool) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.invitedEvent, f.invitedUser, f.invitedOwner = eventID, userID, isOwner
	return uuid.New(), nil
}

func (f *fakeInviteRepo) GetGuestsForEvent(ctx context.Context, eventID uuid.UUID) ([]inviteentity.Guest, error) {
	return f.guests, nil
}

func newEventFixture(owner uuid.UUID, calendarID uuid.UUID) (*fakeEventRepo, *fakeInviteRepo, EventServiceInterface) {
	events := &fakeEventRepo{calendarID: calendarID, found: true, updateRows: 1}
	invites := &fakeInviteRepo{}
	privileges := calendarservice.NewPrivilegeService(&fakePrivilegeRepo{
		lookup: &calendarentity.PrivilegeLookup{OwnerID: owner},
	})
	return events, invites, NewEventService(events, invites, privileges)
}

func TestCreateEventStoresCanonicalUTCAndInvitesOwner(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()
	events, invites, svc := newEventFixture(owner, calendarID)

	resp, appErr := svc.CreateEvent(context.Background(), owner, calendarID, &dto.EventRequest{
		EventName: "Team sync",
		StartTime: "2024-03-10 09:00:00 +0400",
		EndTime:   "2024-03-10 10:00:00 +0400",
	})
	if appErr != nil {
		t.Fatalf("CreateEvent: %v", appErr)
	}
	if resp.EventID == uuid.Nil {
		t.Error("expected an event id")
	}

	if events.created.EventTimezone != 4 {
		t.Errorf("authoring offset = %d, want 4", events.created.EventTimezone)
	}
	wantStart := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	if !events.created.StartTime.Equal(wantStart) {
		t.Errorf("stored start = %v, want %v", events.created.StartTime, wantStart)
	}

	if invites.invitedUser != owner || !invites.invitedOwner {
		t.Error("creator should receive an owner invite")
	}
	if invites.invitedEvent != resp.EventID {
		t.Error("owner invite should point at the created event")
	}
}

func TestCreateEventValidation(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()
	_, _, svc := newEventFixture(owner, calendarID)

	cases := []struct {
		name     string
		request  dto.EventRequest
		wantCode errors.ErrorCode
	}{
		{"end before start", dto.EventRequest{
			EventName: "Team sync",
			StartTime: "2024-03-10 10:00:00 +0400",
			EndTime:   "2024-03-10 09:00:00 +0400",
		}, errors.ErrValidation},
		{"mismatched zones", dto.EventRequest{
			EventName: "Team sync",
			StartTime: "2024-03-10 09:00:00 +0400",
			EndTime:   "2024-03-10 10:00:00 +0200",
		}, errors.ErrMalformed},
		{"garbage date", dto.EventRequest{
			EventName: "Team sync",
			StartTime: "next tuesday",
			EndTime:   "2024-03-10 10:00:00 +0200",
		}, errors.ErrMalformed},
		{"offset out of range", dto.EventRequest{
			EventName:     "Team sync",
			StartTime:     "2024-03-10 09:00:00",
			EndTime:       "2024-03-10 10:00:00",
			EventTimezone: intPtr(15),
		}, errors.ErrValidation},
		{"name too short", dto.EventRequest{
			EventName: "abc",
			StartTime: "2024-03-10 09:00:00 +0400",
			EndTime:   "2024-03-10 10:00:00 +0400",
		}, errors.ErrValidation},
		{"missing end for timed", dto.EventRequest{
			EventName: "Team sync",
			StartTime: "2024-03-10 09:00:00 +0400",
		}, errors.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := svc.CreateEvent(context.Background(), owner, calendarID, &tc.request)
			if appErr == nil {
				t.Fatal("expected error")
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tc.wantCode)
			}
		})
	}
}

func TestCreateEventRequiresEditPermission(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()
	_, _, svc := newEventFixture(owner, calendarID)

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), calendarID, &dto.EventRequest{
		EventName: "Team sync",
		StartTime: "2024-03-10 09:00:00 +0400",
		EndTime:   "2024-03-10 10:00:00 +0400",
	})
	if appErr == nil || appErr.Code != errors.ErrPermission {
		t.Fatalf("expected permission error, got %v", appErr)
	}
}

func TestRenderEventConvertsForViewer(t *testing.T) {
	event := &entity.Event{
		ID:            uuid.New(),
		EventName:     "Team sync",
		StartTime:     time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC),
		EventTimezone: 4,
	}

	resp := RenderEvent(event, -5)

	if resp.StartTime != "2024-03-10 09:00:00 +0400" {
		t.Errorf("start = %q", resp.StartTime)
	}
	if resp.UserStartTime != "2024-03-10 00:00:00 -0500" {
		t.Errorf("user start = %q", resp.UserStartTime)
	}
	if resp.UserEndTime != "2024-03-10 01:00:00 -0500" {
		t.Errorf("user end = %q", resp.UserEndTime)
	}
	if resp.EventTimezone != 4 || resp.UserTimezone != -5 {
		t.Errorf("timezones = %d/%d", resp.EventTimezone, resp.UserTimezone)
	}
}

func TestRenderAllDayEventKeepsOrShiftsDate(t *testing.T) {
	newAllDay := func(offset int) *entity.Event {
		span, err := timeutil.ParseAllDay("2024-03-10 00:00:00", intPtr(offset))
		if err != nil {
			t.Fatalf("ParseAllDay: %v", err)
		}
		return &entity.Event{
			EventName:     "Conference",
			StartTime:     span.Start,
			EndTime:       span.End,
			EventTimezone: offset,
			AllDayEvent:   true,
		}
	}

	cases := []struct {
		name      string
		author    int
		viewer    int
		wantStart string
	}{
		{"nearby viewer keeps date", 4, -5, "2024-03-10 00:00:00 -0500"},
		{"far west viewer shifts back", 13, -11, "2024-03-09 00:00:00 -1100"},
		{"far east viewer shifts forward", -11, 14, "2024-03-11 00:00:00 +1400"},
		{"half day exactly keeps date", 0, 12, "2024-03-10 00:00:00 +1200"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := RenderEvent(newAllDay(tc.author), tc.viewer)
			if resp.UserStartTime != tc.wantStart {
				t.Errorf("user start = %q, want %q", resp.UserStartTime, tc.wantStart)
			}
		})
	}
}

func TestGetGuestsGroupsByAttendance(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()
	_, invites, svc := newEventFixture(owner, calendarID)

	invites.guests = []inviteentity.Guest{
		{Username: "alice", AttendanceStatus: AttendanceYes},
		{Username: "bob", AttendanceStatus: AttendanceNo},
		{Username: "carol", AttendanceStatus: AttendanceMaybe},
		{Username: "dave", AttendanceStatus: AttendanceUnknown},
	}

	resp, appErr := svc.GetGuests(context.Background(), owner, uuid.New())
	if appErr != nil {
		t.Fatalf("GetGuests: %v", appErr)
	}
	if len(resp.Yes) != 1 || resp.Yes[0] != "alice" {
		t.Errorf("yes = %v", resp.Yes)
	}
	if len(resp.No) != 1 || resp.No[0] != "bob" {
		t.Errorf("no = %v", resp.No)
	}
	if len(resp.Maybe) != 1 || resp.Maybe[0] != "carol" {
		t.Errorf("maybe = %v", resp.Maybe)
	}
	if len(resp.Unknown) != 1 || resp.Unknown[0] != "dave" {
		t.Errorf("unknown = %v", resp.Unknown)
	}
}
