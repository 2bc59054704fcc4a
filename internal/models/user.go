package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Username       sql.NullString `db:"username"`
	Email          sql.NullString `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	Name           string         `db:"name"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	EmailVerified  bool           `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
