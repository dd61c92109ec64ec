// Package payment 提供充值与提现相关的 HTTP Handler
package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	consumerService "github.com/dumeirei/taskmall-admin/internal/service/consumer"
)

// Handler 钱包处理器
type Handler struct {
	channelService *consumerService.ChannelService
	walletService  *consumerService.WalletService
}

// NewHandler 创建钱包处理器
func NewHandler(channelSvc *consumerService.ChannelService, walletSvc *consumerService.WalletService) *Handler {
	return &Handler{
		channelService: channelSvc,
		walletService:  walletSvc,
	}
}

// ListChannels 获取充值通道
// @Summary 获取充值通道
// @Tags 钱包
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=[]models.DepositChannel}
// @Router /api/v1/deposit-channels [get]
func (h *Handler) ListChannels(c *gin.Context) {
	response.Success(c, h.channelService.List())
}

// ChannelQRCode 获取充值地址二维码
// @Summary 获取充值地址二维码
// @Tags 钱包
// @Produce png
// @Security Bearer
// @Param id path string true "通道ID"
// @Success 200 {file} file
// @Router /api/v1/deposit-channels/{id}/qrcode [get]
func (h *Handler) ChannelQRCode(c *gin.Context) {
	png, err := h.channelService.QRCode(c.Param("id"))
	if handler.HandleError(c, err) {
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// Deposit 提交充值申请
// @Summary 提交充值申请
// @Tags 钱包
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body consumerService.DepositRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RechargeRecord}
// @Router /api/v1/deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}

	var req consumerService.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.walletService.Deposit(c.Request.Context(), sess, &req)
	handler.MustSucceed(c, err, result)
}

// ListDeposits 获取我的充值记录
// @Summary 获取我的充值记录
// @Tags 钱包
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/deposits [get]
func (h *Handler) ListDeposits(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}

	list, err := h.walletService.Deposits(c.Request.Context(), sess)
	handler.MustSucceedList(c, err, list, int64(len(list)))
}

// Withdraw 提交提现申请
// @Summary 提交提现申请
// @Tags 钱包
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body consumerService.WithdrawRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.WithdrawalRecord}
// @Router /api/v1/withdrawals [post]
func (h *Handler) Withdraw(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}

	var req consumerService.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.walletService.Withdraw(c.Request.Context(), sess, &req)
	handler.MustSucceed(c, err, result)
}

// ListWithdrawals 获取我的提现记录
// @Summary 获取我的提现记录
// @Tags 钱包
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/withdrawals [get]
func (h *Handler) ListWithdrawals(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}

	list, err := h.walletService.Withdrawals(c.Request.Context(), sess)
	handler.MustSucceedList(c, err, list, int64(len(list)))
}
