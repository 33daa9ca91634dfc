package models

import (
	"database/sql"
	"time"
)

// User represents a user row as stored in the database.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`

	AuthProvider   sql.NullString `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
