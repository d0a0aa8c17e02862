package position

import (
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	options []PositionOption
}

func NewHandler() *Handler {
	return &Handler{options: Options()}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.options, nil)
}
