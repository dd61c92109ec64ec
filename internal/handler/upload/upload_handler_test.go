package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
	uploadService "github.com/dumeirei/taskmall-admin/internal/service/upload"
	"github.com/dumeirei/taskmall-admin/pkg/oss"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R', 0, 0, 0, 1}

type apiResponse struct {
	Code    int                               `json:"code"`
	Message string                            `json:"message"`
	Data    uploadService.UploadImageResponse `json:"data"`
}

func setupRouter(t *testing.T, withSession bool) (*gin.Engine, string) {
	root := t.TempDir()
	u, err := oss.NewLocalUploader(root, "/static", "uploads")
	require.NoError(t, err)
	h := NewHandler(uploadService.NewUploadService(u, 0))

	r := gin.New()
	if withSession {
		sess := &session.Session{ID: "sess-admin", Kind: session.KindAdmin, Authenticated: true, User: "admin"}
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeySession, sess)
			c.Next()
		})
	}
	r.POST("/api/admin/upload/image", h.UploadImage)
	return r, root
}

func multipartBody(t *testing.T, filename string, content []byte, category string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if category != "" {
		require.NoError(t, w.WriteField("category", category))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	t.Run("上传成功", func(t *testing.T) {
		r, root := setupRouter(t, true)
		body, contentType := multipartBody(t, "banner.png", pngBytes, "activities")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp apiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Code)
		assert.True(t, strings.HasPrefix(resp.Data.ObjectKey, "activities/"))

		_, err := os.Stat(filepath.Join(root, "uploads", resp.Data.ObjectKey))
		assert.NoError(t, err)
	})

	t.Run("缺少文件", func(t *testing.T) {
		r, _ := setupRouter(t, true)
		body, contentType := multipartBody(t, "", nil, "images")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("非图片内容", func(t *testing.T) {
		r, _ := setupRouter(t, true)
		body, contentType := multipartBody(t, "fake.png", []byte("plain text"), "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		var resp apiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1001, resp.Code)
	})

	t.Run("未登录", func(t *testing.T) {
		r, _ := setupRouter(t, false)
		body, contentType := multipartBody(t, "banner.png", pngBytes, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
