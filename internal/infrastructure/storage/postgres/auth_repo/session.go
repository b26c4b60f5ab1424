package auth_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/auth"
	"esteticar/internal/infrastructure/storage/postgres"
)

const sessionTable = "sys_sessions"

var sessionCols = postgres.ExtractDBColumns[auth.Session]()

// SessionRepo implements auth.SessionRepository.
type SessionRepo struct {
	txManager *postgres.TxManager
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(txManager *postgres.TxManager) *SessionRepo {
	return &SessionRepo{txManager: txManager}
}

var _ auth.SessionRepository = (*SessionRepo)(nil)

func (r *SessionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new session.
func (r *SessionRepo) Create(ctx context.Context, session *auth.Session) error {
	data := postgres.StructToMap(session)

	filtered := make(map[string]any, len(sessionCols))
	for _, col := range sessionCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(sessionTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by ID.
func (r *SessionRepo) GetByID(ctx context.Context, sessionID id.ID) (*auth.Session, error) {
	q := r.builder().
		Select(sessionCols...).
		From(sessionTable).
		Where(squirrel.Eq{"id": sessionID}).
		Limit(1)

	return r.getOne(ctx, q, sessionID.String())
}

// GetByRefreshToken retrieves a session by its refresh token.
func (r *SessionRepo) GetByRefreshToken(ctx context.Context, token string) (*auth.Session, error) {
	q := r.builder().
		Select(sessionCols...).
		From(sessionTable).
		Where(squirrel.Eq{"refresh_token": token}).
		Limit(1)

	return r.getOne(ctx, q, "refresh token")
}

// Update rewrites a session record.
func (r *SessionRepo) Update(ctx context.Context, session *auth.Session) error {
	data := postgres.StructToMap(session)

	filtered := make(map[string]any, len(sessionCols))
	for _, col := range sessionCols {
		if col == "id" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(sessionTable).
		SetMap(filtered).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("session", session.ID.String())
	}
	return nil
}

// RevokeAllForUser marks every live session of a user revoked.
func (r *SessionRepo) RevokeAllForUser(ctx context.Context, userID id.ID, now time.Time) error {
	sql, args, err := r.builder().
		Update(sessionTable).
		Set("revoked_at", now.UTC()).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke all: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry, keeping the table lean.
func (r *SessionRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	sql, args, err := r.builder().
		Delete(sessionTable).
		Where(squirrel.Lt{"expires_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *SessionRepo) getOne(ctx context.Context, q squirrel.SelectBuilder, key string) (*auth.Session, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var session auth.Session
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &session, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("session", key)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}
