package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// TokenService issues, rotates and checks tokens. It composes the TokenManager
// with the single refresh-token slot kept on each user row.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

func (s *TokenService) sign(profile model.Profile) (model.TokenPair, error) {
	access, err := s.manager.IssueAccess(model.NewAccessClaims(profile))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.manager.IssueRefresh(model.RefreshClaims{UserID: profile.ID})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Issue signs a new pair and stores the refresh token, replacing any previous session.
func (s *TokenService) Issue(ctx context.Context, profile model.Profile) (model.TokenPair, error) {
	pair, err := s.sign(profile)
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := s.users.SetRefreshToken(ctx, profile.ID, pair.RefreshToken); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair. The presented token is
// single-use: the slot is swapped only if it still holds the presented value.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.TokenPair, error) {
	if presented == "" {
		return model.TokenPair{}, apierrors.NewErrMissingAuthorizationToken()
	}

	claims, err := s.manager.VerifyRefresh(presented)
	if err != nil {
		s.logger.Debug("Token service: refresh token rejected", "error", err.Error())
		return model.TokenPair{}, apierrors.NewErrInvalidRefreshToken()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, apierrors.NewErrInvalidRefreshToken()
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != presented {
		s.logger.Info("Token service: stale refresh token presented", "user_id", user.ID)
		return model.TokenPair{}, apierrors.NewErrRefreshTokenUsed()
	}

	pair, err := s.sign(user.Profile())
	if err != nil {
		return model.TokenPair{}, err
	}

	err = s.users.SwapRefreshToken(ctx, user.ID, presented, pair.RefreshToken)
	if errors.Is(err, model.ErrRefreshTokenMismatch) {
		s.logger.Info("Token service: lost refresh race", "user_id", user.ID)
		return model.TokenPair{}, apierrors.NewErrRefreshTokenUsed()
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	s.logger.Debug("Token service: refresh token rotated", "user_id", user.ID)

	return pair, nil
}

// Revoke empties the user's refresh slot.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Authenticate turns an access token into the profile of a user that still exists.
func (s *TokenService) Authenticate(ctx context.Context, accessToken string) (model.Profile, error) {
	if accessToken == "" {
		return model.Profile{}, apierrors.NewErrMissingAuthorizationToken()
	}

	claims, err := s.manager.VerifyAccess(accessToken)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			s.logger.Debug("Token service: access token expired", "error", err.Error())
		} else {
			s.logger.Debug("Token service: access token invalid", "error", err.Error())
		}
		return model.Profile{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	profile, err := s.users.GetProfileByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Token service: token subject not found", "user_id", claims.UserID)
		return model.Profile{}, apierrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}
