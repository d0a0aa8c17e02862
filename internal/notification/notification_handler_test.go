package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/events"
	"github.com/KATBlackCoder/rapportflow/internal/notification"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeNotificationService struct {
	ListFn     func(ctx context.Context, userID uint, page, pageSize int) ([]notification.NotificationResponse, int64, error)
	MarkReadFn func(ctx context.Context, userID, id uint) (notification.NotificationResponse, error)
}

func (f *fakeNotificationService) List(ctx context.Context, userID uint, page, pageSize int) ([]notification.NotificationResponse, int64, error) {
	return f.ListFn(ctx, userID, page, pageSize)
}
func (f *fakeNotificationService) MarkRead(ctx context.Context, userID, id uint) (notification.NotificationResponse, error) {
	return f.MarkReadFn(ctx, userID, id)
}
func (f *fakeNotificationService) HandleReportEvent(context.Context, events.ReportLifecycleEvent) error {
	return nil
}
func (f *fakeNotificationService) HandleEmployeeProvisioned(context.Context, events.EmployeeProvisionedEvent) error {
	return nil
}

func setupRouter(h *notification.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "4")
		c.Next()
	})
	r.GET("/notifications", h.List)
	r.POST("/notifications/:id/read", h.MarkRead)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	svc := &fakeNotificationService{
		ListFn: func(_ context.Context, userID uint, page, pageSize int) ([]notification.NotificationResponse, int64, error) {
			assert.Equal(t, uint(4), userID)
			assert.Equal(t, 2, page)
			assert.Equal(t, 15, pageSize)
			return []notification.NotificationResponse{{ID: 1}}, 16, nil
		},
	}
	r := setupRouter(notification.NewHandler(svc))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications?page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r := setupRouter(notification.NewHandler(&fakeNotificationService{}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/notifications/abc/read", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &fakeNotificationService{
			MarkReadFn: func(context.Context, uint, uint) (notification.NotificationResponse, error) {
				return notification.NotificationResponse{}, apperror.ErrForbidden
			},
		}
		r := setupRouter(notification.NewHandler(svc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/notifications/9/read", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeForbidden)
	})
}
