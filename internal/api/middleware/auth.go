package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/pkg/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequireRoles rejects callers whose role is not in the allowed set.
// Runs after JWTAuthMiddleware.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if !allowed[actor.Role] {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this role"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoggingMiddleware tags every request with an id and logs its outcome.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}

// CORSMiddleware allows the known frontend origins.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:") ||
				strings.HasSuffix(origin, ".ehsworks.local")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
