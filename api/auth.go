package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// adminAuthMiddleware gates the simulation triggers behind an HS256
// bearer token with role=admin. A missing secret disables the check,
// which is only acceptable for local development.
func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	if m.AdminJwtSecret == "" {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.AdminJwtSecret), nil
	})
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, 401)
		return
	}
	if !token.Valid {
		returnErrorJsonCode(fmt.Errorf("invalid token"), c, 401)
		return
	}

	role, _ := claims["role"].(string)
	if role != "admin" {
		returnErrorJsonCode(fmt.Errorf("insufficient role"), c, 403)
		return
	}

	c.Next()
}
