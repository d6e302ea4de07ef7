package middleware

import (
	"net/http"
	"strings"

	"github.com/atahmasb/trivia-api/internal/response"
	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// EditorAuth requires a bearer token issued by authService. A nil
// authService lets every request through.
func EditorAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized)
			return
		}

		subject, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized)
			return
		}

		c.Set("editor", subject)
		c.Next()
	}
}
