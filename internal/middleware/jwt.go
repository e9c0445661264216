package middleware // reusable HTTP middleware for the API

import (
	"net/http" // HTTP status codes for responses
	"strings"  // prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
	"github.com/labstack/echo/v4"  // Echo framework middleware types
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token with the ADMIN role and injects the token subject into the
// request context under "admin_email".  It wraps the read-only admin
// surface (system log, flight stats); the booking endpoints are public
// and never pass through here.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			if role, _ := claims["role"].(string); role != "ADMIN" {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin role required"})
			}
			c.Set("admin_email", claims["sub"])
			return next(c)
		}
	}
}
