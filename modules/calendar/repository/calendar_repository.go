package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepository struct {
	db database.IDatabase
}

// CalendarRepositoryInterface defines the calendar and share store contract.
// Lookups return (nil, nil) / (uuid.Nil, false, nil) when the record is
// absent; updates and deletes report the number of affected rows.
type CalendarRepositoryInterface interface {
	CreateCalendar(ctx context.Context, ownerID uuid.UUID, name string, color string) (uuid.UUID, error)
	GetPrivilegeLookup(ctx context.Context, calendarID uuid.UUID) (*entity.PrivilegeLookup, error)
	GetOwnCalendars(ctx context.Context, userID uuid.UUID) ([]entity.Calendar, error)
	GetSharedCalendars(ctx context.Context, userID uuid.UUID) ([]entity.SharedCalendarRow, error)
	UpdateCalendar(ctx context.Context, id uuid.UUID, name string, color string) (int64, error)
	DeleteCalendar(ctx context.Context, id uuid.UUID) (int64, error)

	CreateShare(ctx context.Context, calendarID uuid.UUID, userID uuid.UUID, write bool) (uuid.UUID, error)
	GetSharesForOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.ShareListRow, error)
	GetCalendarIDForShare(ctx context.Context, shareID uuid.UUID) (uuid.UUID, bool, error)
	UpdateShare(ctx context.Context, shareID uuid.UUID, write bool) (int64, error)
	DeleteShare(ctx context.Context, shareID uuid.UUID) (int64, error)
}

func NewCalendarRepository(db database.IDatabase) CalendarRepositoryInterface {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) CreateCalendar(ctx context.Context, ownerID uuid.UUID, name string, color string) (uuid.UUID, error) {
	query := `
		INSERT INTO calendars (owner_id, calendar_name, calendar_color)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, ownerID, name, color).Scan(&id); err != nil {
		logger.Error("CalendarRepository:CreateCalendar:Error:", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *CalendarRepository) GetPrivilegeLookup(ctx context.Context, calendarID uuid.UUID) (*entity.PrivilegeLookup, error) {
	var ownerID uuid.UUID
	err := r.db.GetContext(ctx, &ownerID, `SELECT owner_id FROM calendars WHERE id = $1`, calendarID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetPrivilegeLookup:Error:", err)
		return nil, err
	}

	var grants []entity.ShareGrant
	err = r.db.SelectContext(ctx, &grants,
		`SELECT user_id, write_permission FROM shares WHERE calendar_id = $1`, calendarID)
	if err != nil {
		logger.Error("CalendarRepository:GetPrivilegeLookup:Shares:Error:", err)
		return nil, err
	}

	return &entity.PrivilegeLookup{OwnerID: ownerID, Shares: grants}, nil
}

func (r *CalendarRepository) GetOwnCalendars(ctx context.Context, userID uuid.UUID) ([]entity.Calendar, error) {
	query := `
		SELECT id, owner_id, calendar_name, calendar_color
		FROM calendars
		WHERE owner_id = $1
		ORDER BY calendar_name
	`
	var calendars []entity.Calendar
	if err := r.db.SelectContext(ctx, &calendars, query, userID); err != nil {
		logger.Error("CalendarRepository:GetOwnCalendars:Error:", err)
		return nil, err
	}
	return calendars, nil
}

func (r *CalendarRepository) GetSharedCalendars(ctx context.Context, userID uuid.UUID) ([]entity.SharedCalendarRow, error) {
	query := `
		SELECT u.username AS owner, c.id AS calendar_id, c.calendar_name, c.calendar_color, s.write_permission
		FROM calendars c
		JOIN shares s ON s.calendar_id = c.id
		JOIN users u ON u.id = c.owner_id
		WHERE s.user_id = $1
		ORDER BY c.calendar_name
	`
	var rows []entity.SharedCalendarRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("CalendarRepository:GetSharedCalendars:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *CalendarRepository) UpdateCalendar(ctx context.Context, id uuid.UUID, name string, color string) (int64, error) {
	query := `UPDATE calendars SET calendar_name = $1, calendar_color = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, name, color, id)
	if err != nil {
		logger.Error("CalendarRepository:UpdateCalendar:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CalendarRepository) DeleteCalendar(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	if err != nil {
		logger.Error("CalendarRepository:DeleteCalendar:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CalendarRepository) CreateShare(ctx context.Context, calendarID uuid.UUID, userID uuid.UUID, write bool) (uuid.UUID, error) {
	query := `
		INSERT INTO shares (calendar_id, user_id, write_permission)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, calendarID, userID, write).Scan(&id); err != nil {
		logger.Error("CalendarRepository:CreateShare:Error:", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *CalendarRepository) GetSharesForOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.ShareListRow, error) {
	query := `
		SELECT s.id AS share_id, c.calendar_name, c.calendar_color, s.write_permission, u.username AS shared_with
		FROM shares s
		JOIN calendars c ON c.id = s.calendar_id
		JOIN users u ON u.id = s.user_id
		WHERE c.owner_id = $1
		ORDER BY c.calendar_name, u.username
	`
	var rows []entity.ShareListRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		logger.Error("CalendarRepository:GetSharesForOwner:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *CalendarRepository) GetCalendarIDForShare(ctx context.Context, shareID uuid.UUID) (uuid.UUID, bool, error) {
	var calendarID uuid.UUID
	err := r.db.GetContext(ctx, &calendarID, `SELECT calendar_id FROM shares WHERE id = $1`, shareID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetCalendarIDForShare:Error:", err)
		return uuid.Nil, false, err
	}
	return calendarID, true, nil
}

func (r *CalendarRepository) UpdateShare(ctx context.Context, shareID uuid.UUID, write bool) (int64, error) {
	query := `UPDATE shares SET write_permission = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, write, shareID)
	if err != nil {
		logger.Error("CalendarRepository:UpdateShare:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CalendarRepository) DeleteShare(ctx context.Context, shareID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE id = $1`, shareID)
	if err != nil {
		logger.Error("CalendarRepository:DeleteShare:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}
