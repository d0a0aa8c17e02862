package middleware

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	autherrors "github.com/KATBlackCoder/rapportflow/internal/auth/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID             = "user_id"
	ContextUsername           = "username"
	ContextMustChangePassword = "must_change_password"
)

func AuthMiddleware() gin.HandlerFunc {
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
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.CodeUnauthorized, "Token not found")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Abort(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, autherrors.ErrInvalidToken.HTTPStatus, autherrors.ErrInvalidToken.Code, "Invalid token claims")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Abort(c, autherrors.ErrInvalidToken.HTTPStatus, autherrors.ErrInvalidToken.Code, "User ID not found in token")
			return
		}
		if id, err := strconv.ParseUint(userID, 10, 64); err != nil || id == 0 {
			response.Abort(c, autherrors.ErrInvalidToken.HTTPStatus, autherrors.ErrInvalidToken.Code, "Invalid user ID in token")
			return
		}

		// refresh tokens carry a type claim and are not accepted here
		if typ, _ := claims["typ"].(string); typ == "refresh" {
			response.Abort(c, autherrors.ErrInvalidToken.HTTPStatus, autherrors.ErrInvalidToken.Code, autherrors.ErrInvalidToken.Message)
			return
		}

		username, _ := claims["username"].(string)
		mustChange, _ := claims["must_change_password"].(bool)

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, username)
		c.Set(ContextMustChangePassword, mustChange)

		c.Next()
	}
}

// RequirePasswordChanged blocks accounts still on their generated default
// password. Mount it after AuthMiddleware on every route except me,
// first-login and logout.
func RequirePasswordChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool(ContextMustChangePassword) {
			errObj := autherrors.ErrPasswordChangeRequired
			response.Abort(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}
		c.Next()
	}
}
