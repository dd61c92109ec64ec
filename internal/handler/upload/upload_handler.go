// Package upload 提供文件上传相关的 HTTP Handler
package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	oplog "github.com/dumeirei/taskmall-admin/internal/common/middleware"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	uploadService "github.com/dumeirei/taskmall-admin/internal/service/upload"
)

// Handler 上传处理器
type Handler struct {
	uploadService *uploadService.UploadService
}

// NewHandler 创建上传处理器
func NewHandler(uploadSvc *uploadService.UploadService) *Handler {
	return &Handler{uploadService: uploadSvc}
}

// UploadImage 上传图片
// @Summary 上传图片
// @Description 上传活动图、等级图标等图片，支持 jpg/jpeg/png/gif/webp 格式
// @Tags 文件上传
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "图片文件"
// @Param category formData string false "图片分类" default(images) Enums(images, activities, levels, channels)
// @Success 200 {object} response.Response{data=uploadService.UploadImageResponse}
// @Router /api/admin/upload/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if _, ok := handler.RequireSession(c); !ok {
		return
	}
	c.Set(oplog.ContextKeyCollection, "uploads")

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "请选择要上传的文件")
		return
	}

	result, err := h.uploadService.UploadImage(c.Request.Context(), &uploadService.UploadImageRequest{
		File:     file,
		Category: c.PostForm("category"),
	})
	handler.MustSucceed(c, err, result)
}
