package auth

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	appctx "esteticar/internal/core/context"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/pkg/logger"
)

// UserRepository is the user persistence contract.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionRepository is the session persistence contract.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID id.ID) (*Session, error)
	GetByRefreshToken(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	RevokeAllForUser(ctx context.Context, userID id.ID, now time.Time) error
}

// Service implements login, refresh and logout.
type Service struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     *TokenManager
	txManager  tx.Manager
	refreshTTL time.Duration

	now func() time.Time
}

// NewService creates the auth service.
func NewService(users UserRepository, sessions SessionRepository, tokens *TokenManager, txManager tx.Manager, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		txManager:  txManager,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	SessionID    string    `json:"sessionId"`
}

// Login verifies credentials and opens a session. Wrong email and wrong
// password produce the same error so the endpoint does not leak which
// accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !user.Active || !user.CheckPassword(password) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	now := s.now().UTC()
	session := NewSession(user.ID, s.refreshTTL)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.sessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	access, expiresAt, err := s.tokens.Issue(user, session.ID, now)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID.String(), "session_id", session.ID.String())

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    expiresAt,
		SessionID:    session.ID.String(),
	}, nil
}

// Refresh exchanges a live refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	session, err := s.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid refresh token")
		}
		return nil, err
	}

	now := s.now().UTC()
	if !session.Valid(now) {
		return nil, apperror.NewUnauthorized("session expired")
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid refresh token")
	}
	if !user.Active {
		return nil, apperror.NewUnauthorized("account disabled")
	}

	access, expiresAt, err := s.tokens.Issue(user, session.ID, now)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    expiresAt,
		SessionID:    session.ID.String(),
	}, nil
}

// Logout revokes the session named by the access token. Subsequent
// requests carrying tokens bound to it are rejected.
func (s *Service) Logout(ctx context.Context, sessionID id.ID) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Already gone; logout is idempotent.
			return nil
		}
		return err
	}

	if session.RevokedAt != nil {
		return nil
	}

	session.Revoke(s.now())
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.sessions.Update(ctx, session)
	})
}

// Authenticate validates a bearer token and resolves the user context the
// middleware attaches to the request.
func (s *Service) Authenticate(ctx context.Context, bearer string) (*appctx.UserContext, error) {
	claims, err := s.tokens.Validate(bearer)
	if err != nil {
		return nil, err
	}

	sessionID, err := id.Parse(claims.SessionID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid token")
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperror.NewUnauthorized("session not found")
	}
	if !session.Valid(s.now().UTC()) {
		return nil, apperror.NewUnauthorized("session expired")
	}

	if _, err := id.Parse(claims.Subject); err != nil {
		return nil, apperror.NewUnauthorized("invalid token")
	}

	isAdmin := false
	for _, r := range claims.Roles {
		if r == "admin" {
			isAdmin = true
		}
	}

	return &appctx.UserContext{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Roles:     claims.Roles,
		IsAdmin:   isAdmin,
		SessionID: claims.SessionID,
	}, nil
}

// Register creates a user account.
func (s *Service) Register(ctx context.Context, email, name, password string, roles []string) (*User, error) {
	user, err := NewUser(email, name, password)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicate("user", "email", user.Email)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
