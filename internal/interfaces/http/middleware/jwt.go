package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

const jwtSubjectKey = "jwt_subject"

// JWTAuth validates Bearer tokens signed with the shared secret. An empty
// secret turns the middleware into a pass-through, which keeps local
// development friction-free; config validation refuses that in production.
func JWTAuth(secret, issuer string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		token, err := jwt.Parse(raw, keyFunc, opts...)
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid token")
			return
		}

		if subject, err := token.Claims.GetSubject(); err == nil {
			c.Set(jwtSubjectKey, subject)
		}
		c.Next()
	}
}

// GetJWTSubject returns the authenticated subject, empty when unauthenticated
func GetJWTSubject(c *gin.Context) string {
	return c.GetString(jwtSubjectKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}
