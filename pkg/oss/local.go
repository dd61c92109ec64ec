package oss

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader 本地磁盘存储，用于开发环境
type LocalUploader struct {
	root      string
	urlPrefix string
	basePath  string
}

// NewLocalUploader 创建本地存储
func NewLocalUploader(root, urlPrefix, basePath string) (*LocalUploader, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}
	return &LocalUploader{
		root:      root,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		basePath:  basePath,
	}, nil
}

// Root 存储根目录
func (u *LocalUploader) Root() string {
	return u.root
}

func (u *LocalUploader) path(objectKey string) (string, error) {
	key := filepath.Clean("/" + joinKey(u.basePath, objectKey))
	if key == "/" {
		return "", fmt.Errorf("无效的对象键: %s", objectKey)
	}
	return filepath.Join(u.root, key), nil
}

// Upload 写入文件
func (u *LocalUploader) Upload(ctx context.Context, objectKey string, reader io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := u.path(objectKey)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return u.GetURL(objectKey), nil
}

// Delete 删除文件，文件不存在时不报错
func (u *LocalUploader) Delete(_ context.Context, objectKey string) error {
	p, err := u.path(objectKey)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GetURL 获取访问地址
func (u *LocalUploader) GetURL(objectKey string) string {
	return u.urlPrefix + "/" + joinKey(u.basePath, objectKey)
}
