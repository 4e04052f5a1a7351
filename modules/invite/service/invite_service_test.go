package service

import (
	"context"
	"testing"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	eventdto "github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"
	eventservice "github.com/MFrackowiak/mf-simple-calendar/modules/event/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"

	"github.com/google/uuid"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

type fakeInviteRepo struct {
	repository.InviteRepositoryInterface

	row          *entity.InviteRow
	override     *entity.Override
	restored     bool
	attendance   int
	affectedRows int64
}

func (f *fakeInviteRepo) GetInvite(ctx context.Context, inviteID uuid.UUID) (*entity.InviteRow, error) {
	return f.row, nil
}

func (f *fakeInviteRepo) UpdateInviteOverride(ctx context.Context, inviteID uuid.UUID, override *entity.Override) (int64, error) {
	f.override = override
	return f.affectedRows, nil
}

func (f *fakeInviteRepo) RestoreInviteOverride(ctx context.Context, inviteID uuid.UUID) (int64, error) {
	f.restored = true
	return f.affectedRows, nil
}

func (f *fakeInviteRepo) UpdateInviteAttendance(ctx context.Context, inviteID uuid.UUID, status int) (int64, error) {
	f.attendance = status
	return f.affectedRows, nil
}

type fakeEventService struct {
	eventservice.EventServiceInterface

	editedEvent uuid.UUID
	editedWith  *eventdto.EventRequest
}

func (f *fakeEventService) EditEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *eventdto.EventRequest) *errors.AppError {
	f.editedEvent = eventID
	f.editedWith = req
	return nil
}

func baseRow(userID uuid.UUID, isOwner bool) *entity.InviteRow {
	return &entity.InviteRow{
		Invite: entity.Invite{
			ID:      uuid.New(),
			EventID: uuid.New(),
			UserID:  userID,
			IsOwner: isOwner,
		},
		EventName:        "Team sync",
		EventDescription: "Weekly",
		StartTime:        time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC),
		EventTimezone:    4,
	}
}

func newInviteFixture(row *entity.InviteRow) (*fakeInviteRepo, *fakeEventService, InviteServiceInterface) {
	repo := &fakeInviteRepo{row: row, affectedRows: 1}
	events := &fakeEventService{}
	return repo, events, NewInviteService(repo, events)
}

func TestResolveViewMergesPerField(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	row.HasEdited = true
	row.OwnName = strPtr("My private name")
	ownStart := time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC)
	row.OwnStartTime = &ownStart

	view := resolveView(row)

	if view.EventName != "My private name" {
		t.Errorf("name = %q, want override", view.EventName)
	}
	if !view.StartTime.Equal(ownStart) {
		t.Errorf("start = %v, want override", view.StartTime)
	}
	// Untouched fields keep following the canonical event.
	if view.EventDescription != "Weekly" {
		t.Errorf("description = %q, want canonical", view.EventDescription)
	}
	if !view.EndTime.Equal(row.EndTime) {
		t.Errorf("end = %v, want canonical", view.EndTime)
	}
	if view.EventTimezone != 4 {
		t.Errorf("timezone = %d, want canonical", view.EventTimezone)
	}
}

func TestResolveViewIgnoresOverridesBeforeEdit(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	row.OwnName = strPtr("Stale override")

	if view := resolveView(row); view.EventName != "Team sync" {
		t.Errorf("name = %q, want canonical until the invitee edits", view.EventName)
	}
}

func TestEditOverrideStoresOnlyProvidedFields(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	repo, _, svc := newInviteFixture(row)

	appErr := svc.EditOverride(context.Background(), userID, row.ID,
		&dto.OverrideRequest{EventName: strPtr("My own title")})
	if appErr != nil {
		t.Fatalf("EditOverride: %v", appErr)
	}

	if repo.override.OwnName == nil || *repo.override.OwnName != "My own title" {
		t.Errorf("own name = %v", repo.override.OwnName)
	}
	if repo.override.OwnDescription != nil || repo.override.OwnStartTime != nil ||
		repo.override.OwnEndTime != nil || repo.override.OwnTimezone != nil ||
		repo.override.OwnAllDayEvent != nil {
		t.Error("untouched fields should stay nil so owner edits show through")
	}
}

func TestEditOverrideNormalizesTimes(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	repo, _, svc := newInviteFixture(row)

	appErr := svc.EditOverride(context.Background(), userID, row.ID, &dto.OverrideRequest{
		StartTime:     strPtr("2024-03-12 09:00:00"),
		EndTime:       strPtr("2024-03-12 10:00:00"),
		EventTimezone: intPtr(-5),
	})
	if appErr != nil {
		t.Fatalf("EditOverride: %v", appErr)
	}

	wantStart := time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)
	if repo.override.OwnStartTime == nil || !repo.override.OwnStartTime.Equal(wantStart) {
		t.Errorf("own start = %v, want %v", repo.override.OwnStartTime, wantStart)
	}
	if repo.override.OwnTimezone == nil || *repo.override.OwnTimezone != -5 {
		t.Errorf("own timezone = %v, want -5", repo.override.OwnTimezone)
	}
	if repo.override.OwnName != nil {
		t.Error("name should stay untouched")
	}
}

func TestEditOverrideValidation(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name     string
		request  dto.OverrideRequest
		wantCode errors.ErrorCode
	}{
		{"name too short", dto.OverrideRequest{EventName: strPtr("abc")}, errors.ErrValidation},
		{"end before start", dto.OverrideRequest{
			StartTime:     strPtr("2024-03-12 10:00:00"),
			EndTime:       strPtr("2024-03-12 09:00:00"),
			EventTimezone: intPtr(0),
		}, errors.ErrValidation},
		{"time change without start", dto.OverrideRequest{EventTimezone: intPtr(3)}, errors.ErrValidation},
		{"empty request", dto.OverrideRequest{}, errors.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := baseRow(userID, false)
			_, _, svc := newInviteFixture(row)

			appErr := svc.EditOverride(context.Background(), userID, row.ID, &tc.request)
			if appErr == nil {
				t.Fatal("expected error")
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tc.wantCode)
			}
		})
	}
}

func TestOwnerEditDelegatesToEvent(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, true)
	repo, events, svc := newInviteFixture(row)

	appErr := svc.EditOverride(context.Background(), userID, row.ID, &dto.OverrideRequest{
		EventName:   strPtr("Moved sync"),
		StartTime:   strPtr("2024-03-12 09:00:00 +0400"),
		EndTime:     strPtr("2024-03-12 10:00:00 +0400"),
		AllDayEvent: boolPtr(false),
	})
	if appErr != nil {
		t.Fatalf("EditOverride: %v", appErr)
	}

	if events.editedEvent != row.EventID {
		t.Error("owner edit should be delegated to the event")
	}
	if events.editedWith == nil || events.editedWith.EventName != "Moved sync" {
		t.Errorf("delegated request = %+v", events.editedWith)
	}
	if repo.override != nil {
		t.Error("owner edits must not write invite overrides")
	}
}

func TestOwnerEditRejectsPartialPayload(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, true)
	_, events, svc := newInviteFixture(row)

	appErr := svc.EditOverride(context.Background(), userID, row.ID,
		&dto.OverrideRequest{EventName: strPtr("Moved sync")})
	if appErr == nil || appErr.Code != errors.ErrMalformed {
		t.Fatalf("expected malformed error, got %v", appErr)
	}
	if events.editedWith != nil {
		t.Error("partial owner edit must not reach the event")
	}
}

func TestInviteBelongsToUser(t *testing.T) {
	owner := uuid.New()
	row := baseRow(owner, false)
	_, _, svc := newInviteFixture(row)

	intruder := uuid.New()
	if _, appErr := svc.GetInvite(context.Background(), intruder, 0, row.ID); appErr == nil || appErr.Code != errors.ErrPermission {
		t.Errorf("get: expected permission error, got %v", appErr)
	}
	if appErr := svc.RestoreInvite(context.Background(), intruder, row.ID); appErr == nil || appErr.Code != errors.ErrPermission {
		t.Errorf("restore: expected permission error, got %v", appErr)
	}
}

func TestRestoreInvite(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	row.HasEdited = true
	row.OwnName = strPtr("My own title")
	repo, _, svc := newInviteFixture(row)

	if appErr := svc.RestoreInvite(context.Background(), userID, row.ID); appErr != nil {
		t.Fatalf("RestoreInvite: %v", appErr)
	}
	if !repo.restored {
		t.Error("restore should clear the stored overrides")
	}
}

func TestSetAttendance(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	repo, _, svc := newInviteFixture(row)

	appErr := svc.SetAttendance(context.Background(), userID, row.ID,
		&dto.AttendanceRequest{AttendanceStatus: intPtr(eventservice.AttendanceMaybe)})
	if appErr != nil {
		t.Fatalf("SetAttendance: %v", appErr)
	}
	if repo.attendance != eventservice.AttendanceMaybe {
		t.Errorf("attendance = %d, want %d", repo.attendance, eventservice.AttendanceMaybe)
	}

	appErr = svc.SetAttendance(context.Background(), userID, row.ID,
		&dto.AttendanceRequest{AttendanceStatus: intPtr(5)})
	if appErr == nil || appErr.Code != errors.ErrValidation {
		t.Fatalf("expected validation error for unknown status, got %v", appErr)
	}
}

func TestRenderInviteUsesMergedView(t *testing.T) {
	userID := uuid.New()
	row := baseRow(userID, false)
	row.HasEdited = true
	row.OwnName = strPtr("My private name")

	resp := renderInvite(row, -5)

	if resp.EventName != "My private name" {
		t.Errorf("name = %q, want override", resp.EventName)
	}
	if resp.UserStartTime != "2024-03-10 00:00:00 -0500" {
		t.Errorf("user start = %q", resp.UserStartTime)
	}
	if resp.StartTime != "2024-03-10 09:00:00 +0400" {
		t.Errorf("start = %q", resp.StartTime)
	}
	if !resp.HasEdited {
		t.Error("has_edited should surface to the client")
	}
}
