package auth

import (
	"net/http"
	"os"
	"time"

	autherrors "github.com/KATBlackCoder/rapportflow/internal/auth/errors"
	"github.com/KATBlackCoder/rapportflow/internal/provisioning"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/request"
	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service Service
	tokens  TokenConfig
	logger  *zap.Logger
}

func NewHandler(s Service, tokens TokenConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, tokens: tokens, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWeb(c *gin.Context) bool {
	return request.IsWebClient(request.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if value == "" {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, resp AuthResponse) {
	if isWeb(c) {
		h.setCookie(c, accessCookie, resp.AccessToken, h.tokens.AccessTTL)
		h.setCookie(c, refreshCookie, resp.RefreshToken, h.tokens.RefreshTTL)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeTokens(c, resp)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var token string
	if isWeb(c) {
		cookie, err := c.Cookie(refreshCookie)
		if err != nil {
			h.writeServiceError(c, autherrors.ErrMissingRefreshToken)
			return
		}
		token = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		token = req.RefreshToken
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeTokens(c, resp)
}

func (h *Handler) Me(c *gin.Context) {
	userID, ok := request.UserID(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) FirstLogin(c *gin.Context) {
	userID, ok := request.UserID(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req FirstLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.FirstLogin(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeTokens(c, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, accessCookie, "", 0)
	h.setCookie(c, refreshCookie, "", 0)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req provisioning.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}
