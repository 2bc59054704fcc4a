package domain

import "time"

// AuthProviderType identifies how a user signs in.
type AuthProviderType string

const (
	ProviderLocal  AuthProviderType = "local"
	ProviderGoogle AuthProviderType = "google"
)

// User represents a back-office operator.
type User struct {
	UserID         string
	Username       string
	Email          string
	Name           string
	PasswordHash   string
	AuthProvider   AuthProviderType
	ProviderUserID string
	EmailVerified  bool
	AuditFields
	DeletedAt *time.Time
}
