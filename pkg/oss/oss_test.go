// Package oss 对象存储服务单元测试
package oss

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestLocalUploader(t *testing.T) {
	root := t.TempDir()
	u, err := NewLocalUploader(root, "/static/", "uploads")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := u.Upload(ctx, "levels/icon.png", bytes.NewReader(pngHeader), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/levels/icon.png", url)

	data, err := os.ReadFile(filepath.Join(root, "uploads", "levels", "icon.png"))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	require.NoError(t, u.Delete(ctx, "levels/icon.png"))
	_, err = os.Stat(filepath.Join(root, "uploads", "levels", "icon.png"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, u.Delete(ctx, "levels/icon.png"))
}

func TestLocalUploader_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	u, err := NewLocalUploader(root, "/static", "")
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "../../escape.png", bytes.NewReader(pngHeader), "")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "escape.png"))
	assert.NoError(t, err)
}

func TestNew(t *testing.T) {
	u, err := New(&Config{Provider: "local", LocalRoot: t.TempDir(), LocalURLPrefix: "/static"})
	require.NoError(t, err)
	assert.IsType(t, &LocalUploader{}, u)

	_, err = New(&Config{Provider: "s3"})
	assert.Error(t, err)
}

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("activities", "Banner.PNG")
	pattern := `^activities/` + time.Now().Format("2006/01/02") + `/[0-9a-f]{32}\.png$`
	assert.Regexp(t, regexp.MustCompile(pattern), key)
	assert.NotEqual(t, key, GenerateObjectKey("activities", "Banner.PNG"))
}

func TestDetectImage(t *testing.T) {
	ct, err := DetectImage("a.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = DetectImage("a.exe", pngHeader)
	assert.Error(t, err)

	_, err = DetectImage("a.png", []byte("plain text"))
	assert.Error(t, err)
}
