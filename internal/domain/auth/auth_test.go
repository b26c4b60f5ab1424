package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
)

// --- in-memory fakes ---

type fakeUsers struct {
	byEmail map[string]*User
	byID    map[id.ID]*User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*User{}, byID: map[id.ID]*User{}}
}

func (f *fakeUsers) Create(ctx context.Context, u *User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	if u, ok := f.byID[userID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (f *fakeUsers) Update(ctx context.Context, u *User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

type fakeSessions struct {
	byID    map[id.ID]*Session
	byToken map[string]*Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[id.ID]*Session{}, byToken: map[string]*Session{}}
}

func (f *fakeSessions) Create(ctx context.Context, s *Session) error {
	f.byID[s.ID] = s
	f.byToken[s.RefreshToken] = s
	return nil
}

func (f *fakeSessions) GetByID(ctx context.Context, sessionID id.ID) (*Session, error) {
	if s, ok := f.byID[sessionID]; ok {
		return s, nil
	}
	return nil, apperror.NewNotFound("session", sessionID.String())
}

func (f *fakeSessions) GetByRefreshToken(ctx context.Context, token string) (*Session, error) {
	if s, ok := f.byToken[token]; ok {
		return s, nil
	}
	return nil, apperror.NewNotFound("session", token)
}

func (f *fakeSessions) Update(ctx context.Context, s *Session) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessions) RevokeAllForUser(ctx context.Context, userID id.ID, now time.Time) error {
	for _, s := range f.byID {
		if s.UserID == userID {
			s.Revoke(now)
		}
	}
	return nil
}

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(t *testing.T) (*Service, *fakeUsers) {
	t.Helper()
	users := newFakeUsers()
	svc := NewService(
		users,
		newFakeSessions(),
		NewTokenManager("test-secret", "esteticar", 15*time.Minute),
		noopTx{},
		24*time.Hour,
	)
	return svc, users
}

// --- tests ---

func TestPasswordHashing(t *testing.T) {
	u, err := NewUser("admin@esteticar.com", "Admin", "s3cret-pass")
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.NotContains(t, u.PasswordHash, "s3cret")
}

func TestNewUser_ShortPassword(t *testing.T) {
	_, err := NewUser("admin@esteticar.com", "Admin", "short")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "esteticar", 15*time.Minute)
	u, err := NewUser("admin@esteticar.com", "Admin", "s3cret-pass")
	require.NoError(t, err)
	u.Roles = []string{"admin"}

	sessionID := id.New()
	now := time.Now().UTC()

	token, expiresAt, err := tm.Issue(u, sessionID, now)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(now))

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, sessionID.String(), claims.SessionID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestTokenRejectedWhenExpired(t *testing.T) {
	tm := NewTokenManager("secret", "esteticar", time.Minute)
	u, err := NewUser("admin@esteticar.com", "Admin", "s3cret-pass")
	require.NoError(t, err)

	// Issued an hour ago with a one-minute TTL.
	token, _, err := tm.Issue(u, id.New(), time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	_, err = tm.Validate(token)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "esteticar", time.Minute)
	validator := NewTokenManager("secret-b", "esteticar", time.Minute)

	u, err := NewUser("admin@esteticar.com", "Admin", "s3cret-pass")
	require.NoError(t, err)

	token, _, err := issuer.Issue(u, id.New(), time.Now().UTC())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestLoginAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "admin@esteticar.com", "Admin", "s3cret-pass", []string{"admin"})
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "admin@esteticar.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Token authenticates while the session lives.
	userCtx, err := svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@esteticar.com", userCtx.Email)
	assert.True(t, userCtx.IsAdmin)

	// Logout invalidates the session; the same token stops working.
	sessionID := id.MustParse(pair.SessionID)
	require.NoError(t, svc.Logout(ctx, sessionID))

	_, err = svc.Authenticate(ctx, pair.AccessToken)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	// Logout is idempotent.
	assert.NoError(t, svc.Logout(ctx, sessionID))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "admin@esteticar.com", "Admin", "s3cret-pass", nil)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@esteticar.com", "wrong-pass")
	require.Error(t, err)

	// Unknown email fails identically.
	_, err2 := svc.Login(ctx, "ghost@esteticar.com", "wrong-pass")
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "admin@esteticar.com", "Admin", "s3cret-pass", nil)
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "admin@esteticar.com", "s3cret-pass")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.SessionID, refreshed.SessionID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, "bogus-token")
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "admin@esteticar.com", "Admin", "s3cret-pass", nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "admin@esteticar.com", "Other", "another-pass", nil)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}
