package report

import (
	"net/http"
	"strings"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	reporterrors "github.com/KATBlackCoder/rapportflow/internal/report/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/request"
	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseFilter reads the listing filters. Unknown statuses are ignored.
func parseFilter(c *gin.Context) Filter {
	f := Filter{
		QuestionnaireID: request.UintQuery(c, "questionnaire_id"),
		RespondentID:    request.UintQuery(c, "respondent_id"),
		DateFrom:        request.DateQuery(c, "date_from"),
		DateTo:          request.DateQuery(c, "date_to"),
	}
	if status := strings.TrimSpace(c.Query("status")); domain.ResponseStatus(status).Valid() {
		f.Status = &status
	}
	return f
}

// caller returns the user id and the path id. It writes the error response
// itself when either is missing.
func (h *Handler) caller(c *gin.Context, withID bool) (uint, uint, bool) {
	userID, ok := request.UserID(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return 0, 0, false
	}
	if !withID {
		return userID, 0, true
	}
	id, ok := request.UintParam(c, "id")
	if !ok {
		h.writeServiceError(c, reporterrors.ErrInvalidResponseID)
		return 0, 0, false
	}
	return userID, id, true
}

func (h *Handler) Menu(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	opts, err := h.service.Menu(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts, nil)
}

func (h *Handler) Questionnaires(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	p := request.ParsePagination(c)

	items, total, err := h.service.AvailableQuestionnaires(c.Request.Context(), userID, p.Page, p.PageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, p.Page, p.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Form(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}
	resp, err := h.service.Form(c.Request.Context(), userID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	p := request.ParsePagination(c)

	items, total, err := h.service.Mine(c.Request.Context(), userID, parseFilter(c), p.Page, p.PageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, p.Page, p.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ShowMine(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}
	resp, err := h.service.ShowMine(c.Request.Context(), userID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Corrections(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	p := request.ParsePagination(c)

	items, total, err := h.service.Corrections(c.Request.Context(), userID, p.Page, p.PageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, p.Page, p.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ShowCorrection(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}
	resp, err := h.service.ShowCorrection(c.Request.Context(), userID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Resubmit(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Resubmit(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Analysis(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	p := request.ParsePagination(c)

	resp, total, err := h.service.Analysis(c.Request.Context(), userID, parseFilter(c), p.Page, p.PageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, p.Page, p.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) ShowAnalysis(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}
	resp, err := h.service.ShowAnalysis(c.Request.Context(), userID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Return(c *gin.Context) {
	userID, id, ok := h.caller(c, true)
	if !ok {
		return
	}

	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ReturnForCorrection(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	userID, _, ok := h.caller(c, false)
	if !ok {
		return
	}
	rows, err := h.service.Export(c.Request.Context(), userID, parseFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}
