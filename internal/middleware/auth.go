package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const (
	ContextUserID = "userID"
	ContextRole   = "userRole"

	roleAdmin = "admin"
)

// Claims mirrors the token the auth provider issues. The provider owns
// sign-in; this service only verifies the shared-secret signature.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func bearerToken(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// Auth requires a valid token and puts the caller's id and role in the
// context.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		claims, err := parseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// OptionalAuth extracts the caller's identity when a token is present
// but lets anonymous requests through.
func OptionalAuth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := parseToken(token, secret); err == nil {
				c.Set(ContextUserID, claims.Subject)
				c.Set(ContextRole, claims.Role)
			}
		}

		c.Next()
	}
}

// AdminOnly requires a valid token carrying the admin role.
func AdminOnly(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		claims, err := parseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		if claims.Role != roleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}
