package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"
	"github.com/JaSamMarko/back-office/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware verifies an HS256 access token issued by the identity
// provider and exposes its user_id and role claims. Tokens are read from
// the Authorization header or the access_token cookie.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				message = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User ID not found in token", nil)
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}
