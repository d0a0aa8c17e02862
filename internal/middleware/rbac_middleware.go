package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetString(ContextUserID), 10, 64)
		if err != nil || userID == 0 {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context")
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), domain.EnforceRequest{
			UserID:   uint(userID),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed")
			return
		}

		if !allowed {
			response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message)
			return
		}
		c.Next()
	}
}
