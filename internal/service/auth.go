package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/password"
)

const defaultAvatarURL = "https://ui-avatars.com/api/?name="

// RegisterParams holds sign-up input. Avatar is optional.
type RegisterParams struct {
	Username string
	Email    string
	FullName string
	Password string
	Avatar   *model.Upload
}

// LoginParams holds login input. Either Username or Email identifies the user.
type LoginParams struct {
	Username string
	Email    string
	Password string
}

// UpdateAccountParams holds profile changes. Empty fields are ignored.
type UpdateAccountParams struct {
	Username string
	FullName string
	Avatar   *model.Upload
}

// Session is the result of a successful login.
type Session struct {
	User model.Profile `json:"user"`
	model.TokenPair
}

// AuthOptions controls password and session policy.
type AuthOptions struct {
	RevokeOnPasswordChange bool
}

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	storage      model.Storage
	tokenService *TokenService
	logger       *logger.Logger
	opts         AuthOptions
}

// NewAuth creates the account service. storage may be nil, in which case uploaded avatars are ignored.
func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	storage model.Storage,
	tokenService *TokenService,
	logger *logger.Logger,
	opts AuthOptions,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		storage:      storage,
		tokenService: tokenService,
		logger:       logger,
		opts:         opts,
	}
}

func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func fallbackAvatar(fullName string) string {
	return defaultAvatarURL + url.QueryEscape(fullName)
}

func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.Profile, error) {
	username := normalizeIdentifier(params.Username)
	email := normalizeIdentifier(params.Email)
	fullName := strings.TrimSpace(params.FullName)

	a.logger.Debug("Auth service: starting user registration",
		"username", username,
		"email", email)

	if username == "" || email == "" || fullName == "" || strings.TrimSpace(params.Password) == "" {
		return model.Profile{}, apierrors.NewErrBadRequest("All fields are required")
	}

	exists, err := a.userStore.Exists(ctx, username, email)
	if err != nil {
		a.logger.Error("Auth service: failed to check existing user",
			"username", username,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		a.logger.Info("Auth service: user already exists",
			"username", username,
			"email", email)
		return model.Profile{}, apierrors.NewErrUserExists()
	}

	hash, err := a.hasher.Hash(params.Password)
	if errors.Is(err, password.ErrTooLong) {
		return model.Profile{}, apierrors.NewErrBadRequest("Password is too long")
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.New()
	avatar := fallbackAvatar(fullName)
	if params.Avatar != nil {
		uploaded, err := a.uploadAvatar(ctx, userID, params.Avatar)
		if err != nil {
			a.logger.Error("Auth service: avatar upload failed, using generated avatar",
				"user_id", userID,
				"error", err.Error())
		} else {
			avatar = uploaded
		}
	}

	profile, err := a.userStore.Create(ctx, model.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       avatar,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Profile{}, apierrors.NewErrUserExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", profile.ID)

	return profile, nil
}

func (a *Auth) Login(ctx context.Context, params LoginParams) (Session, error) {
	username := normalizeIdentifier(params.Username)
	email := normalizeIdentifier(params.Email)

	a.logger.Debug("Auth service: starting user login",
		"username", username,
		"email", email)

	if username == "" && email == "" {
		return Session{}, apierrors.NewErrBadRequest("Username or email required")
	}
	if params.Password == "" {
		return Session{}, apierrors.NewErrBadRequest("Password is required")
	}

	user, err := a.userStore.GetByUsernameOrEmail(ctx, username, email)
	if errors.Is(err, model.ErrNotFound) {
		return Session{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !a.hasher.Verify(params.Password, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return Session{}, apierrors.NewErrInvalidCredentials()
	}

	profile := user.Profile()
	pair, err := a.tokenService.Issue(ctx, profile)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return Session{User: profile, TokenPair: pair}, nil
}

func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		a.logger.Error("Auth service: failed to logout",
			"user_id", userID,
			"error", err.Error())
		return err
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)

	return nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}

func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return apierrors.NewErrBadRequest("Fields not provided")
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if !a.hasher.Verify(current, user.PasswordHash) {
		return apierrors.NewErrUnauthorized("Wrong password")
	}

	hash, err := a.hasher.Hash(next)
	if errors.Is(err, password.ErrTooLong) {
		return apierrors.NewErrBadRequest("Password is too long")
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, userID, hash, a.opts.RevokeOnPasswordChange); err != nil {
		a.logger.Error("Auth service: failed to update password",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID,
		"sessions_revoked", a.opts.RevokeOnPasswordChange)

	return nil
}

func (a *Auth) CurrentUser(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	profile, err := a.userStore.GetProfileByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

func (a *Auth) UpdateAccount(ctx context.Context, userID uuid.UUID, params UpdateAccountParams) (model.Profile, error) {
	var update model.ProfileUpdate
	if username := normalizeIdentifier(params.Username); username != "" {
		update.Username = &username
	}
	if fullName := strings.TrimSpace(params.FullName); fullName != "" {
		update.FullName = &fullName
	}
	if params.Avatar != nil {
		avatar, err := a.uploadAvatar(ctx, userID, params.Avatar)
		if err != nil {
			a.logger.Error("Auth service: avatar upload failed",
				"user_id", userID,
				"error", err.Error())
			return model.Profile{}, fmt.Errorf("failed to upload avatar: %w", err)
		}
		update.Avatar = &avatar
	}

	if update.Empty() {
		return a.CurrentUser(ctx, userID)
	}

	profile, err := a.userStore.UpdateProfile(ctx, userID, update)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apierrors.NewErrUserNotFound()
	}
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Profile{}, apierrors.NewErrUserExists()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	a.logger.Info("Auth service: account updated",
		"user_id", userID)

	return profile, nil
}

func (a *Auth) uploadAvatar(ctx context.Context, userID uuid.UUID, upload *model.Upload) (string, error) {
	if a.storage == nil {
		return "", errors.New("object storage is not configured")
	}

	key := path.Join("avatars", userID.String(), uuid.NewString()+path.Ext(upload.Filename))
	if err := a.storage.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return "", err
	}
	return a.storage.URL(key), nil
}
