package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/entity"

	"github.com/google/uuid"
)

// inviteColumns joins every invite with its event so the override merge has
// both the canonical fields and the own_* values in one row.
const inviteColumns = `
	i.id, i.event_id, i.user_id, i.is_owner, i.has_edited,
	i.own_name, i.own_description, i.own_start_time, i.own_end_time,
	i.own_timezone, i.own_all_day_event, i.attendance_status,
	e.calendar_id, e.event_name, e.event_description,
	e.start_time, e.end_time, e.event_timezone, e.all_day_event
`

type InviteRepository struct {
	db database.IDatabase
}

// InviteRepositoryInterface defines the invite store contract. Lookups return
// (nil, nil) when the record is absent; updates report affected rows.
type InviteRepositoryInterface interface {
	CreateInvite(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, isOwner bool) (uuid.UUID, error)
	GetInvite(ctx context.Context, inviteID uuid.UUID) (*entity.InviteRow, error)
	GetInvitesForUser(ctx context.Context, userID uuid.UUID, archived bool) ([]entity.InviteRow, error)
	GetGuestsForEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, error)
	UpdateInviteOverride(ctx context.Context, inviteID uuid.UUID, override *entity.Override) (int64, error)
	RestoreInviteOverride(ctx context.Context, inviteID uuid.UUID) (int64, error)
	UpdateInviteAttendance(ctx context.Context, inviteID uuid.UUID, status int) (int64, error)
}

func NewInviteRepository(db database.IDatabase) InviteRepositoryInterface {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) CreateInvite(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, isOwner bool) (uuid.UUID, error) {
	query := `
		INSERT INTO invites (event_id, user_id, is_owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, eventID, userID, isOwner).Scan(&id); err != nil {
		logger.Error("InviteRepository:CreateInvite:Error:", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *InviteRepository) GetInvite(ctx context.Context, inviteID uuid.UUID) (*entity.InviteRow, error) {
	query := `
		SELECT ` + inviteColumns + `
		FROM invites i
		JOIN events e ON e.id = i.event_id
		WHERE i.id = $1
	`
	var row entity.InviteRow
	err := r.db.GetContext(ctx, &row, query, inviteID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("InviteRepository:GetInvite:Error:", err)
		return nil, err
	}
	return &row, nil
}

// GetInvitesForUser splits invites by whether the event already ended. The
// override end time wins over the canonical one when present, so an invitee
// who moved an event into the past sees it archived.
func (r *InviteRepository) GetInvitesForUser(ctx context.Context, userID uuid.UUID, archived bool) ([]entity.InviteRow, error) {
	cmp := ">="
	if archived {
		cmp = "<"
	}
	query := `
		SELECT ` + inviteColumns + `
		FROM invites i
		JOIN events e ON e.id = i.event_id
		WHERE i.user_id = $1
		  AND COALESCE(i.own_end_time, e.end_time) ` + cmp + ` now()
		ORDER BY COALESCE(i.own_start_time, e.start_time)
	`
	var rows []entity.InviteRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("InviteRepository:GetInvitesForUser:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *InviteRepository) GetGuestsForEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, error) {
	query := `
		SELECT u.username, i.attendance_status
		FROM invites i
		JOIN users u ON u.id = i.user_id
		WHERE i.event_id = $1
		ORDER BY u.username
	`
	var guests []entity.Guest
	if err := r.db.SelectContext(ctx, &guests, query, eventID); err != nil {
		logger.Error("InviteRepository:GetGuestsForEvent:Error:", err)
		return nil, err
	}
	return guests, nil
}

// UpdateInviteOverride writes only the non-nil override fields, leaving the
// rest as previously stored, and flags the invite as edited.
func (r *InviteRepository) UpdateInviteOverride(ctx context.Context, inviteID uuid.UUID, override *entity.Override) (int64, error) {
	query := `
		UPDATE invites SET
			has_edited = TRUE,
			own_name = COALESCE($2, own_name),
			own_description = COALESCE($3, own_description),
			own_start_time = COALESCE($4, own_start_time),
			own_end_time = COALESCE($5, own_end_time),
			own_timezone = COALESCE($6, own_timezone),
			own_all_day_event = COALESCE($7, own_all_day_event)
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, inviteID,
		override.OwnName, override.OwnDescription,
		override.OwnStartTime, override.OwnEndTime,
		override.OwnTimezone, override.OwnAllDayEvent)
	if err != nil {
		logger.Error("InviteRepository:UpdateInviteOverride:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

// RestoreInviteOverride drops every override so the invite follows the
// canonical event again.
func (r *InviteRepository) RestoreInviteOverride(ctx context.Context, inviteID uuid.UUID) (int64, error) {
	query := `
		UPDATE invites SET
			has_edited = FALSE,
			own_name = NULL,
			own_description = NULL,
			own_start_time = NULL,
			own_end_time = NULL,
			own_timezone = NULL,
			own_all_day_event = NULL
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, inviteID)
	if err != nil {
		logger.Error("InviteRepository:RestoreInviteOverride:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *InviteRepository) UpdateInviteAttendance(ctx context.Context, inviteID uuid.UUID, status int) (int64, error) {
	query := `UPDATE invites SET attendance_status = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, inviteID, status)
	if err != nil {
		logger.Error("InviteRepository:UpdateInviteAttendance:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}
