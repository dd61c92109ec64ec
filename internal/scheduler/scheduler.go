// Package scheduler 提供定时任务调度
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dumeirei/taskmall-admin/internal/common/logger"
)

// taskTimeout 单次任务执行上限
const taskTimeout = 5 * time.Minute

// Scheduler 定时任务调度器
type Scheduler struct {
	cron   *cron.Cron
	tasks  []*Task
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Task 定时任务
type Task struct {
	Name    string
	Spec    string
	Handler func(ctx context.Context) error
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	log := logger.Named("scheduler")
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{log.Sugar()}),
			cron.SkipIfStillRunning(cronLogger{log.Sugar()}),
		)),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddTask 添加任务，spec 支持标准 cron 表达式与 @every 写法
func (s *Scheduler) AddTask(name, spec string, handler func(ctx context.Context) error) error {
	task := &Task{Name: name, Spec: spec, Handler: handler}
	if _, err := s.cron.AddFunc(spec, func() { s.executeTask(task) }); err != nil {
		return err
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Tasks 已登记的任务
func (s *Scheduler) Tasks() []*Task {
	return s.tasks
}

// Start 启动调度器，启动时每个任务立即执行一次
func (s *Scheduler) Start() {
	s.log.Info("scheduler starting", logger.Int("tasks", len(s.tasks)))

	for _, task := range s.tasks {
		s.wg.Add(1)
		go func(t *Task) {
			defer s.wg.Done()
			s.executeTask(t)
		}(task)
	}
	s.cron.Start()
}

// Stop 停止调度器并等待运行中的任务结束
func (s *Scheduler) Stop() {
	s.log.Info("scheduler stopping")
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

// executeTask 执行任务
func (s *Scheduler) executeTask(task *Task) {
	ctx, cancel := context.WithTimeout(s.ctx, taskTimeout)
	defer cancel()

	start := time.Now()
	if err := task.Handler(ctx); err != nil {
		s.log.Error("task failed", logger.String("task", task.Name), logger.Err(err))
		return
	}
	s.log.Debug("task completed", logger.String("task", task.Name), logger.Latency(time.Since(start)))
}

// cronLogger 把 cron 内部日志转给 zap
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
