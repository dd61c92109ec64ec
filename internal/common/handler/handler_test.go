package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 辅助函数：创建测试上下文
func createTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

// 辅助函数：解析响应
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ============================================================================
// 错误处理测试
// ============================================================================

func TestHandleError_NilError(t *testing.T) {
	c, _ := createTestContext("/")
	assert.False(t, HandleError(c, nil))
}

func TestHandleError_AppError(t *testing.T) {
	c, w := createTestContext("/")

	assert.True(t, HandleError(c, errors.ErrFetchFailed))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, 1101, resp.Code)
	assert.Equal(t, "数据加载失败", resp.Message)
}

func TestHandleError_ValidationFields(t *testing.T) {
	c, w := createTestContext("/")

	err := errors.ErrValidationFailed.WithFields(map[string]string{"name": "必填"})
	assert.True(t, HandleError(c, err))

	resp := parseResponse(t, w)
	assert.Equal(t, 1100, resp.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "必填", data["fields"].(map[string]interface{})["name"])
}

func TestHandleError_SessionInvalid(t *testing.T) {
	c, w := createTestContext("/")

	assert.True(t, HandleError(c, errors.ErrSessionInvalid))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleError_GenericError(t *testing.T) {
	c, w := createTestContext("/")

	assert.True(t, HandleError(c, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "服务器内部错误", parseResponse(t, w).Message)
}

func TestMustSucceed(t *testing.T) {
	c, w := createTestContext("/")
	MustSucceed(c, nil, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
}

func TestMustSucceedList(t *testing.T) {
	c, w := createTestContext("/")
	MustSucceedList(c, nil, []int{1, 2}, 2)

	resp := parseResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
}

// ============================================================================
// 会话检查测试
// ============================================================================

func TestRequireSession(t *testing.T) {
	t.Run("未登录", func(t *testing.T) {
		c, w := createTestContext("/")
		_, ok := RequireSession(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("已登录", func(t *testing.T) {
		c, _ := createTestContext("/")
		c.Set(middleware.ContextKeySession, &session.Session{ID: "s1", User: "admin"})
		sess, ok := RequireSession(c)
		require.True(t, ok)
		assert.Equal(t, "admin", sess.User)
	})
}

// ============================================================================
// 参数解析测试
// ============================================================================

func TestParseID(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		id    int64
	}{
		{"12", true, 12},
		{"abc", false, 0},
		{"0", false, 0},
		{"-3", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, w := createTestContext("/")
			c.Params = gin.Params{{Key: "id", Value: tt.value}}
			id, ok := ParseID(c, "分类")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, "无效的分类ID", parseResponse(t, w).Message)
			}
		})
	}
}

func TestQueryFilters(t *testing.T) {
	c, _ := createTestContext("/?search=vip&is_open=true&type=all&page=2")
	filters := QueryFilters(c, "search", "page")

	assert.Equal(t, map[string]string{"is_open": "true", "type": "all"}, filters)
}

func TestBindPagination(t *testing.T) {
	c, _ := createTestContext("/?page=3&page_size=500")
	offset, limit := BindPagination(c)
	assert.Equal(t, 200, offset)
	assert.Equal(t, 100, limit)

	c, _ = createTestContext("/")
	offset, limit = BindPagination(c)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)
}
