package report_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/report"
	reporterrors "github.com/KATBlackCoder/rapportflow/internal/report/errors"
	reportMock "github.com/KATBlackCoder/rapportflow/internal/report/mock"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*gin.Engine, *reportMock.MockService) {
	apperror.Init()
	gin.SetMode(gin.TestMode)

	svc := reportMock.NewMockService(gomock.NewController(t))
	h := report.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "5")
		c.Next()
	})
	r.GET("/reports/menu", h.Menu)
	r.POST("/reports", h.Submit)
	r.GET("/reports/mine", h.Mine)
	r.GET("/reports/mine/:id", h.ShowMine)
	r.PUT("/reports/corrections/:id", h.Resubmit)
	r.GET("/reports/analysis", h.Analysis)
	r.GET("/reports/analysis/export", h.Export)
	r.POST("/reports/analysis/:id/return", h.Return)
	return r, svc
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandler_Submit(t *testing.T) {
	t.Run("keeps the raw answers", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Submit(gomock.Any(), uint(5), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uint, req report.SubmitRequest) (report.SubmitResult, error) {
				assert.Len(t, req.Responses, 2)
				assert.JSONEq(t, `["nord","sud"]`, string(req.Responses[1].Response))
				assert.Equal(t, "Boutique 2", *req.Responses[0].RowIdentifier)
				return report.SubmitResult{QuestionnaireID: 3, ResponseIDs: []uint{1, 2}}, nil
			})

		w := do(r, http.MethodPost, "/reports", `{
			"questionnaire_id": 3,
			"responses": [
				{"question_id": 31, "row_identifier": "Boutique 2", "response": "RAS"},
				{"question_id": 33, "row_identifier": "Boutique 2", "response": ["nord", "sud"]}
			]
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"response_ids":[1,2]`)
	})

	t.Run("requires at least one answer", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := do(r, http.MethodPost, "/reports", `{"questionnaire_id":3,"responses":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires a response value", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := do(r, http.MethodPost, "/reports", `{"questionnaire_id":3,"responses":[{"question_id":31}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_MineFilters(t *testing.T) {
	r, svc := setupHandler(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	status := "returned_for_correction"
	svc.EXPECT().Mine(gomock.Any(), uint(5), report.Filter{
		QuestionnaireID: uintPtr(3),
		Status:          &status,
		DateFrom:        &from,
	}, 2, 15).Return([]report.ReportGroup{}, int64(20), nil)

	w := do(r, http.MethodGet, "/reports/mine?questionnaire_id=3&status=returned_for_correction&date_from=2026-03-01&page=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestReportHandler_UnknownStatusIsIgnored(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().Mine(gomock.Any(), uint(5), report.Filter{}, 1, 15).Return(nil, int64(0), nil)

	w := do(r, http.MethodGet, "/reports/mine?status=draft", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportHandler_ShowMine(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().ShowMine(gomock.Any(), uint(5), uint(9)).Return(report.ReportDetail{}, apperror.ErrForbidden)
	svc.EXPECT().ShowMine(gomock.Any(), uint(5), uint(10)).Return(report.ReportDetail{}, reporterrors.ErrResponseNotFound)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/reports/mine/abc", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/reports/mine/9", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/reports/mine/10", "").Code)
}

func TestReportHandler_Return(t *testing.T) {
	t.Run("binds reason and ids", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().ReturnForCorrection(gomock.Any(), uint(5), uint(100), report.ReturnRequest{
			CorrectionReason: "Montant manquant",
			ResponseIDs:      []uint{100, 101},
		}).Return(report.ReturnResult{ResponseIDs: []uint{100, 101}}, nil)

		w := do(r, http.MethodPost, "/reports/analysis/100/return", `{"correction_reason":"Montant manquant","response_ids":[100,101]}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reason is required", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := do(r, http.MethodPost, "/reports/analysis/100/return", `{"response_ids":[100]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "correction_reason")
	})

	t.Run("ids are required", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := do(r, http.MethodPost, "/reports/analysis/100/return", `{"correction_reason":"x","response_ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_AnalysisAndExport(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().Analysis(gomock.Any(), uint(5), report.Filter{RespondentID: uintPtr(11)}, 1, 15).
		Return(report.AnalysisResponse{Reports: []report.ReportGroup{}, Respondents: []report.RespondentOption{}, CanExport: true}, int64(0), nil)
	svc.EXPECT().Export(gomock.Any(), uint(5), report.Filter{}).Return(nil, apperror.ErrForbidden)

	w := do(r, http.MethodGet, "/reports/analysis?respondent_id=11", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"can_export":true`)

	w = do(r, http.MethodGet, "/reports/analysis/export", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
