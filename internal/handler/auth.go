package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nasirisan/AirlinePro-sub000/internal/utils"
)

// AuthHandler implements the admin session surface.  There is a single
// env-configured admin account; a successful login issues a short-lived
// access token for the read-only admin endpoints.
type AuthHandler struct {
	AdminEmail        string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	AccessTTLMin      int
}

// NewAuthHandler constructs an AuthHandler from the resolved config.
func NewAuthHandler(adminEmail, adminPasswordHash, jwtSecret string, accessTTLMin int) *AuthHandler {
	return &AuthHandler{
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		JWTSecret:         jwtSecret,
		AccessTTLMin:      accessTTLMin,
	}
}

// Login handles POST /v1/auth/login.  The body must contain email and
// password; on success it returns a bearer token and its expiry.
// Wrong credentials always answer a uniform 401 so the endpoint leaks
// nothing about which half was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !strings.EqualFold(strings.TrimSpace(body.Email), h.AdminEmail) ||
		!utils.VerifyPassword(h.AdminPasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, h.AdminEmail, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}
