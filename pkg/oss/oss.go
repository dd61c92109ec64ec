// Package oss 对象存储服务
package oss

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader 上传器接口
type Uploader interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, objectKey string) error
	GetURL(objectKey string) string
}

// Config 存储配置，Provider 为 aliyun 或 local
type Config struct {
	Provider        string
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	Domain          string
	BasePath        string
	LocalRoot       string
	LocalURLPrefix  string
}

// New 按配置创建上传器
func New(cfg *Config) (Uploader, error) {
	switch cfg.Provider {
	case "aliyun":
		return NewAliyunUploader(cfg)
	case "local", "":
		return NewLocalUploader(cfg.LocalRoot, cfg.LocalURLPrefix, cfg.BasePath)
	default:
		return nil, fmt.Errorf("未知的存储类型: %s", cfg.Provider)
	}
}

// GenerateObjectKey 生成对象键，格式为 前缀/年/月/日/uuid.扩展名
func GenerateObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s",
		prefix,
		time.Now().Format("2006/01/02"),
		strings.ReplaceAll(uuid.New().String(), "-", ""),
		ext,
	)
}

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// DetectImage 校验扩展名和文件头，返回真实的 Content-Type
func DetectImage(filename string, header []byte) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := imageTypes[ext]; !ok {
		return "", fmt.Errorf("不支持的图片格式: %s", ext)
	}

	contentType := http.DetectContentType(header)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("文件不是有效的图片")
	}
	return contentType, nil
}

func joinKey(basePath, objectKey string) string {
	if basePath == "" {
		return objectKey
	}
	return path.Join(basePath, objectKey)
}
