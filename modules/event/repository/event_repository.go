package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepository struct {
	db database.IDatabase
}

// EventRepositoryInterface defines the event store contract. Lookups return
// (nil, nil) / (uuid.Nil, false, nil) when the record is absent; updates and
// deletes report the number of affected rows.
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (uuid.UUID, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	GetEventsForCalendar(ctx context.Context, calendarID uuid.UUID) ([]entity.Event, error)
	GetCalendarIDForEvent(ctx context.Context, eventID uuid.UUID) (uuid.UUID, bool, error)
	UpdateEvent(ctx context.Context, event *entity.Event) (int64, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}

func NewEventRepository(db database.IDatabase) EventRepositoryInterface {
	return &EventRepository{db: db}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	query := `
		INSERT INTO events (calendar_id, event_name, event_description,
			start_time, end_time, event_timezone, all_day_event)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query,
		event.CalendarID, event.EventName, event.EventDescription,
		event.StartTime, event.EndTime, event.EventTimezone, event.AllDayEvent,
	).Scan(&id)
	if err != nil {
		logger.Error("EventRepository:CreateEvent:Error:", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, calendar_id, event_name, event_description,
			start_time, end_time, event_timezone, all_day_event
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetEvent:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetEventsForCalendar(ctx context.Context, calendarID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, calendar_id, event_name, event_description,
			start_time, end_time, event_timezone, all_day_event
		FROM events
		WHERE calendar_id = $1
		ORDER BY start_time
	`
	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, calendarID); err != nil {
		logger.Error("EventRepository:GetEventsForCalendar:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetCalendarIDForEvent(ctx context.Context, eventID uuid.UUID) (uuid.UUID, bool, error) {
	var calendarID uuid.UUID
	err := r.db.GetContext(ctx, &calendarID, `SELECT calendar_id FROM events WHERE id = $1`, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetCalendarIDForEvent:Error:", err)
		return uuid.Nil, false, err
	}
	return calendarID, true, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) (int64, error) {
	query := `
		UPDATE events SET
			event_name = $2,
			event_description = $3,
			start_time = $4,
			end_time = $5,
			event_timezone = $6,
			all_day_event = $7
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, event.ID,
		event.EventName, event.EventDescription,
		event.StartTime, event.EndTime, event.EventTimezone, event.AllDayEvent)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *EventRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent:Error:", err)
		return 0, err
	}
	return result.RowsAffected()
}
