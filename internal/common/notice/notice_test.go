package notice

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_CollectsIntoContext(t *testing.T) {
	ctx, collector := WithCollector(context.Background())
	d := NewDispatcher(zap.NewNop())

	d.Notify(ctx, Success("已保存", "分类已创建"))
	d.Notify(ctx, Failure("保存失败", "数据库错误"))

	got := collector.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, VariantDefault, got[0].Variant)
	assert.Equal(t, VariantDestructive, got[1].Variant)
	assert.Empty(t, collector.Drain())
}

func TestDispatcher_WithoutCollector(t *testing.T) {
	d := NewDispatcher(nil)
	assert.NotPanics(t, func() {
		d.Notify(context.Background(), Notice{Title: "orphan"})
	})
	assert.Nil(t, FromContext(context.Background()))
}

func TestDispatcher_DefaultsVariantAndLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx, collector := WithCollector(context.Background())
	d := NewDispatcher(zap.New(core))

	d.Notify(ctx, Notice{Title: "no variant"})
	d.Notify(ctx, Failure("删除失败", "记录不存在"))

	assert.Equal(t, VariantDefault, collector.Drain()[0].Variant)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "删除失败", warnings[0].ContextMap()["title"])
}

func TestCollector_ConcurrentAdd(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(Success("ok", ""))
		}()
	}
	wg.Wait()
	assert.Len(t, c.Drain(), 50)
}

func TestNotifierFunc(t *testing.T) {
	var seen []Notice
	n := NotifierFunc(func(_ context.Context, n Notice) { seen = append(seen, n) })
	n.Notify(context.Background(), Success("a", "b"))
	Nop.Notify(context.Background(), Success("ignored", ""))
	assert.Equal(t, []Notice{{Title: "a", Description: "b", Variant: VariantDefault}}, seen)
}
