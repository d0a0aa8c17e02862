package position_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/position"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok   bool                      `json:"ok"`
	Data []position.PositionOption `json:"data"`
}

func TestOptions(t *testing.T) {
	opts := position.Options()

	assert.Len(t, opts, len(domain.Positions))
	assert.Equal(t, position.PositionOption{Value: domain.PositionEmployer, Label: "Employé"}, opts[0])
	assert.Equal(t, position.PositionOption{Value: domain.PositionManager, Label: "Manager", CanExport: true}, opts[3])
}

func TestPositionHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/positions", position.NewHandler().List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/positions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	if assert.Len(t, env.Data, 4) {
		assert.Equal(t, domain.PositionChefSuperviseur, env.Data[2].Value)
		assert.Equal(t, "Chef Superviseur", env.Data[2].Label)
	}
}
