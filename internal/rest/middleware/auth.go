package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/adapter/httpclient"
)

// Authenticate forwards the caller's bearer token upstream and resolves who is acting.
// On success the user is stored under "user" and its id under "user_id".
func Authenticate(users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		ctx := httpclient.WithBearerToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)

		user, err := users.GetCurrent(ctx)
		if err != nil {
			logrus.Warnf("authenticate: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID())
		c.Next()
	}
}
