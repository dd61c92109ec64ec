// Package upload 提供图片上传服务
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/pkg/oss"
)

// DefaultMaxSize 默认图片大小上限（5MB）
const DefaultMaxSize = 5 << 20

// 允许的图片分类
var categories = map[string]bool{
	"activities": true,
	"levels":     true,
	"channels":   true,
	"images":     true,
}

// UploadService 上传服务
type UploadService struct {
	uploader oss.Uploader
	maxSize  int64
}

// NewUploadService 创建上传服务
func NewUploadService(uploader oss.Uploader, maxSize int64) *UploadService {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &UploadService{uploader: uploader, maxSize: maxSize}
}

// UploadImageRequest 上传图片请求
type UploadImageRequest struct {
	File     *multipart.FileHeader
	Category string // activities, levels, channels, images
}

// UploadImageResponse 上传图片响应
type UploadImageResponse struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	FileName  string `json:"file_name"`
	Size      int64  `json:"size"`
}

// UploadImage 上传图片
func (s *UploadService) UploadImage(ctx context.Context, req *UploadImageRequest) (*UploadImageResponse, error) {
	if req.File == nil {
		return nil, errors.ErrInvalidParams.WithMessage("请选择要上传的文件")
	}

	category := req.Category
	if category == "" {
		category = "images"
	}
	if !categories[category] {
		return nil, errors.ErrInvalidParams.WithMessage("不支持的图片分类")
	}

	if req.File.Size > s.maxSize {
		return nil, s.tooLarge()
	}

	file, err := req.File.Open()
	if err != nil {
		return nil, errors.ErrOperationFailed.WithMessage("无法打开文件").WithError(err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(file, s.maxSize+1)); err != nil {
		return nil, errors.ErrOperationFailed.WithMessage("读取文件失败").WithError(err)
	}
	if int64(buf.Len()) > s.maxSize {
		return nil, s.tooLarge()
	}

	header := buf.Bytes()
	if len(header) > 512 {
		header = header[:512]
	}
	contentType, err := oss.DetectImage(req.File.Filename, header)
	if err != nil {
		return nil, errors.ErrInvalidParams.WithMessage("文件格式不正确：仅支持 jpg/jpeg/png/gif/webp 格式").WithError(err)
	}

	objectKey := oss.GenerateObjectKey(category, req.File.Filename)
	url, err := s.uploader.Upload(ctx, objectKey, bytes.NewReader(buf.Bytes()), contentType)
	if err != nil {
		logger.Error("上传图片失败", logger.String("object_key", objectKey), logger.Err(err))
		return nil, errors.ErrOperationFailed.WithMessage("上传失败").WithError(err)
	}

	return &UploadImageResponse{
		URL:       url,
		ObjectKey: objectKey,
		FileName:  req.File.Filename,
		Size:      int64(buf.Len()),
	}, nil
}

func (s *UploadService) tooLarge() error {
	if s.maxSize >= 1<<20 {
		return errors.ErrInvalidParams.WithMessage(fmt.Sprintf("图片大小不能超过 %dMB", s.maxSize>>20))
	}
	return errors.ErrInvalidParams.WithMessage(fmt.Sprintf("图片大小不能超过 %d 字节", s.maxSize))
}
