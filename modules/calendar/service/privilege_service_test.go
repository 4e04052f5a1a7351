package service

import (
	"context"
	"testing"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"

	"github.com/google/uuid"
)

// fakePrivilegeRepo serves a fixed lookup table. Methods outside the
// privilege path are inherited from the nil interface and panic if reached.
type fakePrivilegeRepo struct {
	repository.CalendarRepositoryInterface
	lookups map[uuid.UUID]*entity.PrivilegeLookup
	err     error
}

func (f *fakePrivilegeRepo) GetPrivilegeLookup(ctx context.Context, calendarID uuid.UUID) (*entity.PrivilegeLookup, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lookups[calendarID], nil
}

func TestPrivilegeLevels(t *testing.T) {
	owner := uuid.New()
	writer := uuid.New()
	reader := uuid.New()
	stranger := uuid.New()
	calendarID := uuid.New()

	svc := NewPrivilegeService(&fakePrivilegeRepo{
		lookups: map[uuid.UUID]*entity.PrivilegeLookup{
			calendarID: {
				OwnerID: owner,
				Shares: []entity.ShareGrant{
					{UserID: writer, WritePermission: true},
					{UserID: reader, WritePermission: false},
				},
			},
		},
	})

	cases := []struct {
		name string
		user uuid.UUID
		want int
	}{
		{"owner", owner, PrivilegeOwner},
		{"writable share", writer, PrivilegeWrite},
		{"read-only share", reader, PrivilegeRead},
		{"stranger", stranger, PrivilegeNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, appErr := svc.Privilege(context.Background(), tc.user, calendarID)
			if appErr != nil {
				t.Fatalf("Privilege: %v", appErr)
			}
			if got != tc.want {
				t.Errorf("privilege = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPrivilegeOwnerWinsOverShare(t *testing.T) {
	owner := uuid.New()
	calendarID := uuid.New()

	// A share row for the owner should never downgrade them.
	svc := NewPrivilegeService(&fakePrivilegeRepo{
		lookups: map[uuid.UUID]*entity.PrivilegeLookup{
			calendarID: {
				OwnerID: owner,
				Shares:  []entity.ShareGrant{{UserID: owner, WritePermission: false}},
			},
		},
	})

	got, appErr := svc.Privilege(context.Background(), owner, calendarID)
	if appErr != nil {
		t.Fatalf("Privilege: %v", appErr)
	}
	if got != PrivilegeOwner {
		t.Errorf("privilege = %d, want %d", got, PrivilegeOwner)
	}
}

func TestPrivilegeMissingCalendar(t *testing.T) {
	svc := NewPrivilegeService(&fakePrivilegeRepo{lookups: map[uuid.UUID]*entity.PrivilegeLookup{}})

	_, appErr := svc.Privilege(context.Background(), uuid.New(), uuid.New())
	if appErr == nil {
		t.Fatal("expected error for missing calendar")
	}
	if appErr.Code != errors.ErrStore {
		t.Errorf("code = %d, want %d", appErr.Code, errors.ErrStore)
	}
}

func TestPrivilegeGates(t *testing.T) {
	owner := uuid.New()
	reader := uuid.New()
	calendarID := uuid.New()

	svc := NewPrivilegeService(&fakePrivilegeRepo{
		lookups: map[uuid.UUID]*entity.PrivilegeLookup{
			calendarID: {
				OwnerID: owner,
				Shares:  []entity.ShareGrant{{UserID: reader, WritePermission: false}},
			},
		},
	})
	ctx := context.Background()

	if ok, _ := svc.CanRead(ctx, reader, calendarID); !ok {
		t.Error("reader should be able to read")
	}
	if ok, _ := svc.CanEdit(ctx, reader, calendarID); ok {
		t.Error("reader should not be able to edit")
	}
	if ok, _ := svc.IsOwner(ctx, owner, calendarID); !ok {
		t.Error("owner should be recognized")
	}
	if ok, _ := svc.IsOwner(ctx, reader, calendarID); ok {
		t.Error("reader is not the owner")
	}
}
