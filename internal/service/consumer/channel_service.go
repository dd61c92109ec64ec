// Package consumer 提供用户端充值、提现与任务订单服务
package consumer

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/qrcode"
	"github.com/dumeirei/taskmall-admin/internal/models"
)

// depositChannels 固定充值通道
var depositChannels = []models.DepositChannel{
	{
		ID:            "usdt-trc20",
		Name:          "USDT-TRC20",
		MinAmount:     decimal.NewFromInt(10),
		MaxAmount:     decimal.NewFromInt(50000),
		WalletAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE",
		Network:       "TRC20",
	},
	{
		ID:            "usdt-erc20",
		Name:          "USDT-ERC20",
		MinAmount:     decimal.NewFromInt(50),
		MaxAmount:     decimal.NewFromInt(100000),
		WalletAddress: "0x8Ba1f109551bD432803012645Ac136ddd64DBA72",
		Network:       "ERC20",
	},
	{
		ID:            "usdt-bep20",
		Name:          "USDT-BEP20",
		MinAmount:     decimal.NewFromInt(10),
		MaxAmount:     decimal.NewFromInt(50000),
		WalletAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		Network:       "BEP20",
	},
}

// ChannelService 充值通道服务
type ChannelService struct {
	channels []models.DepositChannel
	qr       *qrcode.Generator
}

// NewChannelService 创建充值通道服务
func NewChannelService(qr *qrcode.Generator) *ChannelService {
	if qr == nil {
		qr = qrcode.NewGenerator()
	}
	return &ChannelService{channels: depositChannels, qr: qr}
}

// List 返回全部通道
func (s *ChannelService) List() []models.DepositChannel {
	out := make([]models.DepositChannel, len(s.channels))
	copy(out, s.channels)
	return out
}

// Get 按 ID 获取通道
func (s *ChannelService) Get(id string) (models.DepositChannel, error) {
	for _, ch := range s.channels {
		if ch.ID == id {
			return ch, nil
		}
	}
	return models.DepositChannel{}, apperrors.ErrChannelNotFound
}

// QRCode 通道收款地址二维码 PNG
func (s *ChannelService) QRCode(id string) ([]byte, error) {
	ch, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	data, err := s.qr.GeneratePNG(qrcode.WalletContent(ch.Network, ch.WalletAddress))
	if err != nil {
		return nil, apperrors.ErrInternalError.WithError(err)
	}
	return data, nil
}
