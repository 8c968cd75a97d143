package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// FirebaseAuthMiddleware verifies the Firebase ID token from the
// Authorization header and exposes the caller's verified email address on the
// request context. Authentication mechanics stay with the identity provider;
// this only consumes "current authenticated identity or none".
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("ID token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		email, _ := token.Claims["email"].(string)
		verified, _ := token.Claims["email_verified"].(bool)
		if email == "" || !verified {
			logger.Warn("token carries no verified email", zap.String("uid", token.UID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		c.Set("userEmail", email)
		c.Set("userUID", token.UID)
		c.Next()
	}
}
