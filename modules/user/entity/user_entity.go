package entity

import "github.com/google/uuid"

// User is an account identity. The home timezone is a fixed signed-hour UTC
// offset and never changes after registration; only the credential may.
type User struct {
	ID          uuid.UUID `db:"id" json:"user_id"`
	Username    string    `db:"username" json:"username"`
	Password    string    `db:"password" json:"-"`
	OwnTimezone int       `db:"own_timezone" json:"timezone"`
}
