package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(31, 2, 15)

	assert.Equal(t, int64(31), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 15, meta.PageSize)

	assert.Equal(t, 0, response.NewPaginationMeta(10, 1, 0).TotalPages)
}

func TestError_WritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Abort(c, http.StatusForbidden, "FORBIDDEN", "nope")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"FORBIDDEN","message":"nope","details":null}}`, w.Body.String())
}

func TestSuccess_OmitsEmptyMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Success(c, http.StatusOK, []string{"Commercial"}, nil)

	assert.JSONEq(t, `{"ok":true,"data":["Commercial"]}`, w.Body.String())
}
