// Package admin 提供后台管理服务
package admin

import (
	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

// NewResources 注册后台全部集合
func NewResources(db *gorm.DB, deps resource.Deps) *resource.Registry {
	if deps.Tracker == nil {
		deps.Tracker = resource.NewTracker()
	}

	reg := resource.NewRegistry()
	register(reg, db, CategoryDescriptor(), deps)
	register(reg, db, CustomerServiceDescriptor(), deps)
	register(reg, db, EventActivityDescriptor(), deps)
	register(reg, db, UserLevelDescriptor(), deps)
	register(reg, db, LuckyWheelDescriptor(), deps)
	register(reg, db, PaymentMerchantDescriptor(), deps)
	register(reg, db, PayoutChannelDescriptor(), deps)
	register(reg, db, SystemSettingDescriptor(), deps)
	register(reg, db, DictionaryItemDescriptor(), deps)
	register(reg, db, PaymentRecordDescriptor(), deps)
	register(reg, db, RechargeRecordDescriptor(), deps)
	register(reg, db, WithdrawalRecordDescriptor(), deps)
	register(reg, db, DrawRecordDescriptor(), deps)
	return reg
}

func register[T models.Entity](reg *resource.Registry, db *gorm.DB, desc *resource.Descriptor[T], deps resource.Deps) {
	svc := resource.NewService(desc, repository.NewStore[T](db), deps)
	reg.Register(resource.Erase(svc))
}
