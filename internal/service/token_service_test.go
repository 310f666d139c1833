package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notes-server/internal/apierrors"
	servermocks "github.com/dtroode/notes-server/internal/mocks"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/testutil"
	"github.com/dtroode/notes-server/internal/token"
)

func newTestManager(t *testing.T) *token.JWT {
	t.Helper()
	m, err := token.NewJWT(token.Options{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
	require.NoError(t, err)
	return m
}

func assertAPIError(t *testing.T, err error, kind apierrors.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	apiErr := apierrors.From(err)
	assert.Equal(t, kind, apiErr.Kind)
	assert.Equal(t, msg, apiErr.Message)
}

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	profile := model.Profile{ID: uuid.New(), Username: "alice"}

	manager := servermocks.NewTokenManager(t)
	users := servermocks.NewUserStore(t)

	manager.On("IssueAccess", model.NewAccessClaims(profile)).Return("access", nil).Once()
	manager.On("IssueRefresh", model.RefreshClaims{UserID: profile.ID}).Return("refresh", nil).Once()
	users.On("SetRefreshToken", ctx, profile.ID, "refresh").Return(nil).Once()

	svc := NewTokenService(manager, users, testutil.MakeNoopLogger())

	pair, err := svc.Issue(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestTokenService_Issue_Errors(t *testing.T) {
	ctx := context.Background()
	profile := model.Profile{ID: uuid.New()}

	t.Run("access", func(t *testing.T) {
		manager := servermocks.NewTokenManager(t)
		manager.On("IssueAccess", mock.Anything).Return("", assert.AnError).Once()

		svc := NewTokenService(manager, servermocks.NewUserStore(t), testutil.MakeNoopLogger())
		_, err := svc.Issue(ctx, profile)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("persist", func(t *testing.T) {
		manager := servermocks.NewTokenManager(t)
		users := servermocks.NewUserStore(t)
		manager.On("IssueAccess", mock.Anything).Return("a", nil).Once()
		manager.On("IssueRefresh", mock.Anything).Return("r", nil).Once()
		users.On("SetRefreshToken", ctx, profile.ID, "r").Return(assert.AnError).Once()

		svc := NewTokenService(manager, users, testutil.MakeNoopLogger())
		_, err := svc.Issue(ctx, profile)
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to persist refresh token")
	})
}

func TestTokenService_Refresh_Rejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := "stored"

	tests := []struct {
		name      string
		presented string
		setup     func(m *servermocks.TokenManager, u *servermocks.UserStore)
		wantKind  apierrors.Kind
		wantMsg   string
	}{
		{
			name:      "empty",
			presented: "",
			setup:     func(*servermocks.TokenManager, *servermocks.UserStore) {},
			wantKind:  apierrors.KindUnauthorized,
			wantMsg:   "Unauthorized request",
		},
		{
			name:      "expired",
			presented: "old",
			setup: func(m *servermocks.TokenManager, _ *servermocks.UserStore) {
				m.On("VerifyRefresh", "old").Return(model.RefreshClaims{}, model.ErrTokenExpired).Once()
			},
			wantKind: apierrors.KindUnauthorized,
			wantMsg:  "Invalid refresh token",
		},
		{
			name:      "user gone",
			presented: "tok",
			setup: func(m *servermocks.TokenManager, u *servermocks.UserStore) {
				m.On("VerifyRefresh", "tok").Return(model.RefreshClaims{UserID: userID}, nil).Once()
				u.On("GetByID", ctx, userID).Return(model.User{}, model.ErrNotFound).Once()
			},
			wantKind: apierrors.KindUnauthorized,
			wantMsg:  "Invalid refresh token",
		},
		{
			name:      "superseded",
			presented: "tok",
			setup: func(m *servermocks.TokenManager, u *servermocks.UserStore) {
				m.On("VerifyRefresh", "tok").Return(model.RefreshClaims{UserID: userID}, nil).Once()
				u.On("GetByID", ctx, userID).Return(model.User{ID: userID, RefreshToken: &stored}, nil).Once()
			},
			wantKind: apierrors.KindUnauthorized,
			wantMsg:  "Refresh token is expired or used",
		},
		{
			name:      "logged out",
			presented: "tok",
			setup: func(m *servermocks.TokenManager, u *servermocks.UserStore) {
				m.On("VerifyRefresh", "tok").Return(model.RefreshClaims{UserID: userID}, nil).Once()
				u.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil).Once()
			},
			wantKind: apierrors.KindUnauthorized,
			wantMsg:  "Refresh token is expired or used",
		},
		{
			name:      "lost race",
			presented: stored,
			setup: func(m *servermocks.TokenManager, u *servermocks.UserStore) {
				m.On("VerifyRefresh", stored).Return(model.RefreshClaims{UserID: userID}, nil).Once()
				u.On("GetByID", ctx, userID).Return(model.User{ID: userID, RefreshToken: &stored}, nil).Once()
				m.On("IssueAccess", mock.Anything).Return("a2", nil).Once()
				m.On("IssueRefresh", mock.Anything).Return("r2", nil).Once()
				u.On("SwapRefreshToken", ctx, userID, stored, "r2").Return(model.ErrRefreshTokenMismatch).Once()
			},
			wantKind: apierrors.KindUnauthorized,
			wantMsg:  "Refresh token is expired or used",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			users := servermocks.NewUserStore(t)
			tt.setup(manager, users)

			svc := NewTokenService(manager, users, testutil.MakeNoopLogger())
			_, err := svc.Refresh(ctx, tt.presented)
			assertAPIError(t, err, tt.wantKind, tt.wantMsg)
		})
	}
}

func TestTokenService_Refresh_StoreError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	users := servermocks.NewUserStore(t)
	manager.On("VerifyRefresh", "tok").Return(model.RefreshClaims{UserID: userID}, nil).Once()
	users.On("GetByID", ctx, userID).Return(model.User{}, assert.AnError).Once()

	svc := NewTokenService(manager, users, testutil.MakeNoopLogger())
	_, err := svc.Refresh(ctx, "tok")
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, apierrors.KindInternal, apierrors.From(err).Kind)
}

func TestTokenService_Refresh_RotatesOnce(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	profile, err := users.Create(ctx, model.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	svc := NewTokenService(newTestManager(t), users, testutil.MakeNoopLogger())

	first, err := svc.Issue(ctx, profile)
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	stored, err := users.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, second.RefreshToken, *stored.RefreshToken)

	_, err = svc.Refresh(ctx, first.RefreshToken)
	assertAPIError(t, err, apierrors.KindUnauthorized, "Refresh token is expired or used")

	_, err = svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestTokenService_Refresh_Concurrent(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	profile, err := users.Create(ctx, model.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	svc := NewTokenService(newTestManager(t), users, testutil.MakeNoopLogger())
	pair, err := svc.Issue(ctx, profile)
	require.NoError(t, err)

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Refresh(ctx, pair.RefreshToken); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else {
				assert.True(t, apierrors.IsKind(err, apierrors.KindUnauthorized))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestTokenService_Authenticate(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	profile, err := users.Create(ctx, model.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	manager := newTestManager(t)
	svc := NewTokenService(manager, users, testutil.MakeNoopLogger())

	pair, err := svc.Issue(ctx, profile)
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	other, err := token.NewJWT(token.Options{AccessSecret: "x", RefreshSecret: "y", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	require.NoError(t, err)
	foreign, err := other.IssueAccess(model.NewAccessClaims(profile))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		msg   string
	}{
		{name: "no token", token: "", msg: "Unauthorized request"},
		{name: "malformed", token: "garbage", msg: "Invalid access token"},
		{name: "wrong secret", token: foreign, msg: "Invalid access token"},
		{name: "refresh used as access", token: pair.RefreshToken, msg: "Invalid access token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.token)
			assertAPIError(t, err, apierrors.KindUnauthorized, tt.msg)
		})
	}

	t.Run("deleted user", func(t *testing.T) {
		users.delete(profile.ID)
		_, err := svc.Authenticate(ctx, pair.AccessToken)
		assertAPIError(t, err, apierrors.KindUnauthorized, "Invalid access token")
	})
}

func TestTokenService_Authenticate_Expired(t *testing.T) {
	ctx := context.Background()
	manager := servermocks.NewTokenManager(t)
	manager.On("VerifyAccess", "old").Return(model.AccessClaims{}, model.ErrTokenExpired).Once()

	svc := NewTokenService(manager, servermocks.NewUserStore(t), testutil.MakeNoopLogger())
	_, err := svc.Authenticate(ctx, "old")
	assertAPIError(t, err, apierrors.KindUnauthorized, "Invalid access token")
}

func TestTokenService_Revoke(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := servermocks.NewUserStore(t)
	users.On("ClearRefreshToken", ctx, userID).Return(nil).Once()
	svc := NewTokenService(servermocks.NewTokenManager(t), users, testutil.MakeNoopLogger())
	require.NoError(t, svc.Revoke(ctx, userID))

	failing := servermocks.NewUserStore(t)
	failing.On("ClearRefreshToken", ctx, userID).Return(assert.AnError).Once()
	svc = NewTokenService(servermocks.NewTokenManager(t), failing, testutil.MakeNoopLogger())
	require.ErrorIs(t, svc.Revoke(ctx, userID), assert.AnError)
}
