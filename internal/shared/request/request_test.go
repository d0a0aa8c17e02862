package request_test

import (
	"net/http/httptest"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestResolveClientType(t *testing.T) {
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("WEB", ""))
	assert.Equal(t, request.ClientMobile, request.ResolveClientType("", "okhttp/4.9"))
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("", "Mozilla/5.0"))
	assert.Equal(t, request.ClientAPI, request.ResolveClientType("", ""))
	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientAPI))
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := request.ParsePagination(newContext("/x"))
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, request.DefaultPageSize, p.PageSize)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("clamps", func(t *testing.T) {
		p := request.ParsePagination(newContext("/x?page=-3&page_size=1000"))
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 100, p.PageSize)
	})

	t.Run("offset", func(t *testing.T) {
		p := request.ParsePagination(newContext("/x?page=3&page_size=15"))
		assert.Equal(t, 30, p.Offset())
	})
}

func TestQueryHelpers(t *testing.T) {
	c := newContext("/x?questionnaire_id=7&respondent_id=abc&date_from=2026-01-31&date_to=31/01/2026")

	qid := request.UintQuery(c, "questionnaire_id")
	if assert.NotNil(t, qid) {
		assert.Equal(t, uint(7), *qid)
	}
	assert.Nil(t, request.UintQuery(c, "respondent_id"))
	assert.Nil(t, request.UintQuery(c, "missing"))

	from := request.DateQuery(c, "date_from")
	if assert.NotNil(t, from) {
		assert.Equal(t, 31, from.Day())
	}
	assert.Nil(t, request.DateQuery(c, "date_to"))

	c.Set("user_id", "42")
	uid, ok := request.UserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), uid)
}
