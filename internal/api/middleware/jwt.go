package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ehsworks/safety-go/internal/config"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token carrying the user's role and zone.
var GenerateToken = func(u user.User, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID: int(u.ID),
		RoleID: int(u.RoleID),
		Zone:   u.Zone,
		Email:  u.Email,
		Name:   u.FullName(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	return claims, nil
}

// JWTAuthMiddleware validates Bearer token in Authorization header or cookie.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				c.Abort()
				return
			}
			tokenStr = parts[1]
		} else {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenStr = cookie
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required (header or cookie)"})
				c.Abort()
				return
			}
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Explicitly enforce expiration to avoid lax parser behavior
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentUser resolves the authenticated caller from the parsed claims.
func CurrentUser(c *gin.Context) (user.Context, bool) {
	val, ok := c.Get("claims")
	if !ok {
		return user.Context{}, false
	}
	claims, ok := val.(*types.Claims)
	if !ok {
		return user.Context{}, false
	}
	return user.Context{
		ID:    uint(claims.UserID),
		Role:  user.Role(claims.RoleID),
		Zone:  claims.Zone,
		Email: claims.Email,
		Name:  claims.Name,
	}, true
}
