package consumer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/internal/common/cache"
	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/common/utils"
	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
	"github.com/dumeirei/taskmall-admin/internal/service/admin"
)

// WalletService 充值与提现申请，只追加流水，不维护余额
type WalletService struct {
	deposits    *repository.Store[models.RechargeRecord]
	withdrawals *repository.Store[models.WithdrawalRecord]
	channels    *ChannelService
	cache       *cache.QueryCache
	notifier    notice.Notifier
}

// NewWalletService 创建钱包服务
func NewWalletService(db *gorm.DB, channels *ChannelService, qc *cache.QueryCache, notifier notice.Notifier) *WalletService {
	if notifier == nil {
		notifier = notice.Nop
	}
	return &WalletService{
		deposits:    repository.NewStore[models.RechargeRecord](db),
		withdrawals: repository.NewStore[models.WithdrawalRecord](db),
		channels:    channels,
		cache:       qc,
		notifier:    notifier,
	}
}

// DepositRequest 充值申请
type DepositRequest struct {
	ChannelID string          `json:"channel_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	TxHash    string          `json:"tx_hash" binding:"max=128"`
}

// WithdrawRequest 提现申请
type WithdrawRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method" binding:"required,max=50"`
	Account string          `json:"account" binding:"required,max=255"`
}

// Deposit 校验通道限额后追加一条待处理充值记录
func (s *WalletService) Deposit(ctx context.Context, sess *session.Session, req *DepositRequest) (*models.RechargeRecord, error) {
	ch, err := s.channels.Get(req.ChannelID)
	if err != nil {
		return nil, err
	}
	if !ch.Accepts(req.Amount) {
		s.notifier.Notify(ctx, notice.Failure("充值失败", "金额超出通道限额"))
		return nil, apperrors.ErrAmountOutOfRange.WithMessage(
			fmt.Sprintf("充值金额需在 %s - %s 之间", ch.MinAmount.StringFixed(2), ch.MaxAmount.StringFixed(2)),
		)
	}

	record := &models.RechargeRecord{
		Username: sess.Actor(),
		OrderNo:  utils.GenerateOrderNo("R"),
		Amount:   req.Amount,
		Status:   models.StatusPending,
		Method:   ch.Name,
		Network:  ch.Network,
		TxHash:   req.TxHash,
	}
	if err := s.deposits.Create(ctx, record); err != nil {
		s.notifier.Notify(ctx, notice.Failure("充值失败", "提交充值申请失败，请稍后重试"))
		return nil, apperrors.ErrMutationFailed.WithError(err)
	}

	s.appended(ctx, admin.CollectionRechargeRecords, record.OrderNo)
	s.notifier.Notify(ctx, notice.Success("充值申请已提交", "订单号 "+record.OrderNo))
	return record, nil
}

// Withdraw 追加一条待处理提现记录
func (s *WalletService) Withdraw(ctx context.Context, sess *session.Session, req *WithdrawRequest) (*models.WithdrawalRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrValidationFailed.WithFields(map[string]string{"amount": "金额必须大于0"})
	}

	record := &models.WithdrawalRecord{
		Username: sess.Actor(),
		OrderNo:  utils.GenerateOrderNo("W"),
		Amount:   req.Amount,
		Status:   models.StatusPending,
		Method:   req.Method,
		Account:  req.Account,
	}
	if err := s.withdrawals.Create(ctx, record); err != nil {
		s.notifier.Notify(ctx, notice.Failure("提现失败", "提交提现申请失败，请稍后重试"))
		return nil, apperrors.ErrMutationFailed.WithError(err)
	}

	s.appended(ctx, admin.CollectionWithdrawalRecords, record.OrderNo)
	s.notifier.Notify(ctx, notice.Success("提现申请已提交", "订单号 "+record.OrderNo))
	return record, nil
}

// Deposits 当前用户的充值记录
func (s *WalletService) Deposits(ctx context.Context, sess *session.Session) ([]models.RechargeRecord, error) {
	items, err := s.deposits.FindAll(ctx, map[string]interface{}{"username": sess.Actor()}, "created_at DESC, id DESC")
	if err != nil {
		return nil, apperrors.ErrFetchFailed.WithError(err)
	}
	return items, nil
}

// Withdrawals 当前用户的提现记录
func (s *WalletService) Withdrawals(ctx context.Context, sess *session.Session) ([]models.WithdrawalRecord, error) {
	items, err := s.withdrawals.FindAll(ctx, map[string]interface{}{"username": sess.Actor()}, "created_at DESC, id DESC")
	if err != nil {
		return nil, apperrors.ErrFetchFailed.WithError(err)
	}
	return items, nil
}

// appended 新流水写入后失效后台列表缓存
func (s *WalletService) appended(ctx context.Context, collection, orderNo string) {
	if err := s.cache.Invalidate(ctx, collection); err != nil {
		logger.Warn("query cache invalidate failed", logger.Collection(collection), logger.Err(err))
	}
	logger.Info("record appended",
		logger.Collection(collection),
		logger.String("order_no", orderNo),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
	)
}
