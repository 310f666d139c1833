package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/middleware"
	"github.com/dtroode/notes-server/internal/api/http/response"
	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/service"
)

// Auth serves the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	cookies        CookieOptions
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, cookies CookieOptions, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		cookies:        cookies,
		logger:         logger,
	}
}

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"fullName" form:"fullName"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
}

type updateAccountRequest struct {
	Username string `json:"username" form:"username"`
	FullName string `json:"fullName" form:"fullName"`
}

func (h *Auth) user(c *gin.Context) (model.Profile, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		response.Error(c, h.logger, apierrors.NewErrMissingAuthorizationToken())
	}
	return user, ok
}

// Register handles POST /api/auth/signup.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	avatar, closeAvatar, err := formFile(c, "avatar")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer closeAvatar()

	profile, err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Avatar:   avatar,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, profile, "User registered successfully")
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), service.LoginParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	h.cookies.setTokens(c, session.TokenPair)
	response.Success(c, session, "User logged in successfully")
}

// Logout handles POST /api/auth/logout.
func (h *Auth) Logout(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user.ID); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	h.cookies.clearTokens(c)
	response.Success(c, nil, "User logged out successfully")
}

// Refresh handles POST /api/auth/refresh-token. The cookie takes precedence over the body.
func (h *Auth) Refresh(c *gin.Context) {
	presented, _ := c.Cookie(middleware.RefreshTokenCookie)
	if presented == "" {
		var req refreshRequest
		if err := bind(c, &req); err != nil {
			response.Error(c, h.logger, err)
			return
		}
		presented = req.RefreshToken
	}

	pair, err := h.authService.Refresh(c.Request.Context(), presented)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	h.cookies.setTokens(c, pair)
	response.Success(c, pair, "Access token refreshed")
}

// ChangePassword handles POST /api/auth/change-password.
func (h *Auth) ChangePassword(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, nil, "Password changed successfully")
}

// CurrentUser handles GET /api/auth/current-user.
func (h *Auth) CurrentUser(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}

	profile, err := h.authService.CurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, profile, "User fetched successfully")
}

// UpdateAccount handles PATCH /api/auth/update-account.
func (h *Auth) UpdateAccount(c *gin.Context) {
	user, ok := h.user(c)
	if !ok {
		return
	}

	var req updateAccountRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	avatar, closeAvatar, err := formFile(c, "avatar")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer closeAvatar()

	profile, err := h.authService.UpdateAccount(c.Request.Context(), user.ID, service.UpdateAccountParams{
		Username: req.Username,
		FullName: req.FullName,
		Avatar:   avatar,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, profile, "User details updated successfully")
}
