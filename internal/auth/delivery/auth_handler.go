package delivery

import (
	"net/http"

	authdomain "taskdeck-backend/internal/auth/domain"
	authdto "taskdeck-backend/internal/auth/dto"
	"taskdeck-backend/internal/auth/usecase"
	"taskdeck-backend/pkg/config"
	"taskdeck-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Register creates a new account and logs it in
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.authUsecase.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setTokenCookie(c, res.Token)
	response.Created(c, res)
}

// Login verifies credentials and issues a token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setTokenCookie(c, res.Token)
	response.OK(c, res)
}

// Logout clears the token cookie
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", h.config.CookieSecure, true)
	response.Message(c, "logged out")
}

// Profile returns the authenticated user's own record
// GET /profile
func (h *AuthHandler) Profile(c *gin.Context) {
	principal := c.MustGet("user").(*authdomain.PublicUser)

	user, err := h.authUsecase.Profile(principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateProfile applies a partial name/email update
// PUT /profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principal := c.MustGet("user").(*authdomain.PublicUser)

	var req authdto.UpdateProfileRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authUsecase.UpdateProfile(principal.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(h.config.TokenExpiry.Seconds()), "/", "", h.config.CookieSecure, true)
}
