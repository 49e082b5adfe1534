package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrMsgNotAuthenticated is the fixed message every unauthorized mutation gets.
const ErrMsgNotAuthenticated = "User not authenticated"

// RequireUser blocks mutating routes when no authenticated identity can be
// resolved. A nil verifier (no Firebase credentials configured) rejects
// everything rather than failing open. Read routes never pass through here —
// listing is public.
func RequireUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			abortUnauthenticated(c)
			return
		}

		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(CtxUserID, decoded.UID)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": ErrMsgNotAuthenticated})
	c.Abort()
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
