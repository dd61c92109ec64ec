package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
	"github.com/dumeirei/taskmall-admin/internal/models"
	consumerService "github.com/dumeirei/taskmall-admin/internal/service/consumer"
)

func setupRouter(loggedIn bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTaskOrderHandler(consumerService.NewTaskOrderService(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	r := gin.New()
	g := r.Group("/api/v1", func(c *gin.Context) {
		if loggedIn {
			c.Set(middleware.ContextKeySession, &session.Session{ID: "s1", Kind: session.KindConsumer, Authenticated: true})
		}
		c.Next()
	})
	g.GET("/task-orders", h.List)
	g.GET("/task-orders/summary", h.Summary)
	return r
}

func get(t *testing.T, r http.Handler, path string) (int, json.RawMessage) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp.Data
}

func TestTaskOrderHandler_List(t *testing.T) {
	r := setupRouter(true)

	code, data := get(t, r, "/api/v1/task-orders?status=pending")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		List  []models.TaskOrder `json:"list"`
		Total int64              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, int64(2), list.Total)
	for _, o := range list.List {
		assert.Equal(t, models.TaskStatusPending, o.Status)
	}

	_, data = get(t, r, "/api/v1/task-orders?status=all")
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, int64(5), list.Total)
	for i := 1; i < len(list.List); i++ {
		assert.False(t, list.List[i].CreatedAt.After(list.List[i-1].CreatedAt))
	}
}

func TestTaskOrderHandler_Summary(t *testing.T) {
	r := setupRouter(true)

	_, data := get(t, r, "/api/v1/task-orders/summary")
	var sum consumerService.TaskOrderSummary
	require.NoError(t, json.Unmarshal(data, &sum))
	assert.Equal(t, consumerService.TaskOrderSummary{Total: 5, Pending: 2, InProgress: 1, Completed: 2}, sum)
}

func TestTaskOrderHandler_RequiresSession(t *testing.T) {
	r := setupRouter(false)

	code, _ := get(t, r, "/api/v1/task-orders")
	assert.Equal(t, http.StatusUnauthorized, code)
}
