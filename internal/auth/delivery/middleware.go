package delivery

import (
	"log/slog"
	"strings"

	"taskdeck-backend/internal/auth/usecase"
	"taskdeck-backend/pkg/apperror"
	"taskdeck-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the gate in front of every protected route. A request
// either leaves it with a resolved principal attached to the context, or is
// rejected; there is no retry within a request.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			response.Error(c, apperror.Authentication("no token provided"))
			c.Abort()
			return
		}

		user, err := authUsecase.Authenticate(tokenString)
		if err != nil {
			// Expired vs invalid matters for diagnostics, not for the client.
			slog.Debug("token rejected", "path", c.FullPath(), "reason", err)
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// tokenFromRequest prefers the signed cookie; a Bearer header is accepted as
// a fallback for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
