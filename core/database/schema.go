package database

import "context"

// Users own calendars, calendars hold events and shares, events hold
// invites. Deleting a parent cascades to its children.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      VARCHAR(30) NOT NULL,
		password      VARCHAR(60) NOT NULL,
		own_timezone  INTEGER NOT NULL,
		CONSTRAINT unique_username UNIQUE (username)
	)`,

	`CREATE TABLE IF NOT EXISTS calendars (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		calendar_name  VARCHAR(30) NOT NULL,
		calendar_color VARCHAR(25) NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		calendar_id       UUID NOT NULL REFERENCES calendars(id) ON DELETE CASCADE,
		event_name        VARCHAR(30) NOT NULL,
		event_description VARCHAR(200) NOT NULL,
		start_time        TIMESTAMPTZ NOT NULL,
		end_time          TIMESTAMPTZ NOT NULL,
		event_timezone    INTEGER NOT NULL,
		all_day_event     BOOLEAN NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shares (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		calendar_id      UUID NOT NULL REFERENCES calendars(id) ON DELETE CASCADE,
		user_id          UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		write_permission BOOLEAN NOT NULL,
		CONSTRAINT unique_shares UNIQUE (calendar_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS invites (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		event_id          UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_owner          BOOLEAN NOT NULL DEFAULT FALSE,
		has_edited        BOOLEAN NOT NULL DEFAULT FALSE,
		own_name          VARCHAR(30),
		own_description   VARCHAR(200),
		own_start_time    TIMESTAMPTZ,
		own_end_time      TIMESTAMPTZ,
		own_timezone      INTEGER,
		own_all_day_event BOOLEAN,
		attendance_status INTEGER NOT NULL DEFAULT 0,
		CONSTRAINT unique_invites UNIQUE (event_id, user_id)
	)`,
}

func (d *Database) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.sqlx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
