// Package notice 提供一次请求内的瞬时提示收集与分发
package notice

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Variant 提示样式
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice 瞬时提示
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant"`
}

// Success 构造成功提示
func Success(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDefault}
}

// Failure 构造失败提示
func Failure(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDestructive}
}

// Notifier 提示分发接口
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc 函数适配器
type NotifierFunc func(ctx context.Context, n Notice)

// Notify 实现 Notifier
func (f NotifierFunc) Notify(ctx context.Context, n Notice) {
	f(ctx, n)
}

// Collector 收集单次请求产生的提示
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

// Add 追加提示
func (c *Collector) Add(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

// Drain 取出并清空已收集的提示
func (c *Collector) Drain() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	return out
}

type collectorKey struct{}

// WithCollector 在 context 中安装收集器
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

// FromContext 取出收集器，没有时返回 nil
func FromContext(ctx context.Context) *Collector {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

// Dispatcher 把提示写入请求收集器并记录日志
type Dispatcher struct {
	log *zap.Logger
}

// NewDispatcher 创建分发器
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{log: log.Named("notice")}
}

// Notify 实现 Notifier
func (d *Dispatcher) Notify(ctx context.Context, n Notice) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if c := FromContext(ctx); c != nil {
		c.Add(n)
	}

	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("description", n.Description),
		zap.String("variant", string(n.Variant)),
	}
	if n.Variant == VariantDestructive {
		d.log.Warn("notice", fields...)
		return
	}
	d.log.Debug("notice", fields...)
}

// Nop 丢弃所有提示
var Nop Notifier = NotifierFunc(func(context.Context, Notice) {})
