// Package auth implements users, password login and the explicit session
// lifecycle: issue, attach, invalidate.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/entity"
	"esteticar/internal/core/id"
)

// User is an operator of the admin console.
type User struct {
	entity.BaseEntity

	Email        string   `db:"email" json:"email"`
	Name         string   `db:"name" json:"name"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Roles        []string `db:"roles" json:"roles"`
	Active       bool     `db:"active" json:"active"`
}

// NewUser creates an active user with a hashed password.
func NewUser(email, name, password string) (*User, error) {
	u := &User{
		BaseEntity: entity.NewBaseEntity(),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Name:       name,
		Active:     true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return apperror.NewValidation("password must have at least 8 characters").
			WithDetail("field", "password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("valid email is required").
			WithDetail("field", "email")
	}
	if u.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").
			WithDetail("field", "password")
	}
	return nil
}

// Session is a stored refresh session. Logout marks it revoked; access
// tokens referencing a revoked session stop being accepted.
type Session struct {
	ID           id.ID      `db:"id" json:"id"`
	UserID       id.ID      `db:"user_id" json:"userId"`
	RefreshToken string     `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time  `db:"expires_at" json:"expiresAt"`
	RevokedAt    *time.Time `db:"revoked_at" json:"revokedAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

// NewSession creates a session for a user.
func NewSession(userID id.ID, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           id.New(),
		UserID:       userID,
		RefreshToken: id.New().String(),
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
	}
}

// Valid reports whether the session is usable at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Revoke invalidates the session.
func (s *Session) Revoke(now time.Time) {
	now = now.UTC()
	s.RevokedAt = &now
}
