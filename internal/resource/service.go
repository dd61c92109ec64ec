package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/internal/common/cache"
	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/metrics"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/tracing"
	"github.com/dumeirei/taskmall-admin/internal/export"
	"github.com/dumeirei/taskmall-admin/internal/form"
	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
)

// 操作名
const (
	ActionList   = "list"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
)

// ListQuery 列表查询
type ListQuery struct {
	Search  string
	Filters map[string]string
	// QueryKey 相同键的新请求会取代旧请求，为空时不参与取代
	QueryKey string
}

// Deps 服务依赖，均可为空
type Deps struct {
	Cache     *cache.QueryCache
	Tracker   *Tracker
	Notifier  notice.Notifier
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	ExportBOM bool
	Now       func() time.Time
}

// Service 实体通用服务
type Service[T models.Entity] struct {
	desc     *Descriptor[T]
	store    *repository.Store[T]
	cache    *cache.QueryCache
	tracker  *Tracker
	notifier notice.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
	bom      bool
	now      func() time.Time
}

// NewService 创建实体通用服务
func NewService[T models.Entity](desc *Descriptor[T], store *repository.Store[T], deps Deps) *Service[T] {
	s := &Service[T]{
		desc:     desc,
		store:    store,
		cache:    deps.Cache,
		tracker:  deps.Tracker,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		log:      deps.Logger,
		bom:      deps.ExportBOM,
		now:      deps.Now,
	}
	if s.tracker == nil {
		s.tracker = NewTracker()
	}
	if s.notifier == nil {
		s.notifier = notice.Nop
	}
	if s.log == nil {
		s.log = logger.Named("resource")
	}
	s.log = s.log.With(logger.Collection(desc.Collection))
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Descriptor 实体描述
func (s *Service[T]) Descriptor() *Descriptor[T] {
	return s.desc
}

// List 查询集合并按搜索词过滤
func (s *Service[T]) List(ctx context.Context, q ListQuery) (items []T, err error) {
	ctx, span := tracing.Start(ctx, "resource.list",
		tracing.WithCollection(s.desc.Collection),
		tracing.AttrQueryKey.String(q.QueryKey),
	)
	defer func() { tracing.End(span, err) }()

	eq, err := s.filters(q.Filters)
	if err != nil {
		return nil, err
	}

	var ticket *Ticket
	if q.QueryKey != "" {
		ctx, ticket = s.tracker.Begin(ctx, q.QueryKey)
		defer ticket.Done()
	}

	all, hit, err := s.fetch(ctx, eq)
	if ticket != nil && ticket.Superseded() {
		s.metrics.RecordSuperseded(s.desc.Collection)
		s.log.Debug("stale fetch discarded",
			logger.QueryKey(q.QueryKey),
			logger.RequestID(logger.RequestIDFromContext(ctx)),
		)
		return nil, apperrors.ErrQuerySuperseded
	}
	s.metrics.RecordFetch(s.desc.Collection, err)
	if err != nil {
		s.log.Error("fetch failed",
			logger.Action(ActionList),
			logger.RequestID(logger.RequestIDFromContext(ctx)),
			logger.Err(err),
		)
		return nil, apperrors.ErrFetchFailed.WithError(err)
	}

	span.SetAttributes(tracing.AttrCacheHit.Bool(hit), tracing.AttrRows.Int(len(all)))
	return Search(all, q.Search, s.desc.SearchFields), nil
}

// filters 仅保留声明过的过滤列，"all" 与空值视为不过滤
func (s *Service[T]) filters(raw map[string]string) (map[string]interface{}, error) {
	eq := map[string]interface{}{}
	for name, v := range raw {
		if v == "" || v == "all" || !s.desc.filterable(name) {
			continue
		}
		val := interface{}(v)
		if s.desc.Form != nil {
			coerced, ok := s.desc.Form.CoerceFilter(name, v)
			if !ok {
				return nil, apperrors.ErrInvalidParams.WithMessage(fmt.Sprintf("无效的过滤条件: %s", name))
			}
			val = coerced
		}
		eq[name] = val
	}
	return eq, nil
}

// fetch 优先读取查询缓存，未命中时查询数据库并回填
func (s *Service[T]) fetch(ctx context.Context, eq map[string]interface{}) ([]T, bool, error) {
	params := cacheParams(eq)

	// 键在查询数据库之前确定，查询期间的失效会让回填落在旧版本上
	var key string
	if s.cache.Enabled() {
		var (
			cached []T
			hit    bool
			err    error
		)
		key, hit, err = s.cache.Lookup(ctx, s.desc.Collection, params, &cached)
		if err != nil {
			s.log.Warn("query cache read failed", logger.Err(err))
		}
		if hit {
			s.metrics.RecordCacheHit(s.desc.Collection)
			return cached, true, nil
		}
		s.metrics.RecordCacheMiss(s.desc.Collection)
	}

	items, err := s.store.FindAll(ctx, eq, s.desc.order())
	if err != nil {
		return nil, false, err
	}
	if items == nil {
		items = []T{}
	}

	if s.cache.Enabled() && ctx.Err() == nil {
		if err := s.cache.SetKey(ctx, key, items); err != nil {
			s.log.Warn("query cache write failed", logger.Err(err))
		}
	}
	return items, false, nil
}

func cacheParams(eq map[string]interface{}) string {
	v := url.Values{}
	for k, val := range eq {
		v.Set(k, fmt.Sprint(val))
	}
	return v.Encode()
}

// Get 获取单条记录
func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, apperrors.ErrFetchFailed.WithError(err)
	}
	return item, nil
}

// Create 校验并创建记录，raw 中未声明的字段被忽略
func (s *Service[T]) Create(ctx context.Context, raw map[string]interface{}) (*T, error) {
	if s.desc.ReadOnly {
		return nil, apperrors.ErrReadOnlyResource
	}

	draft := form.NewDraft(s.desc.Form)
	draft.Open(nil)
	draft.Apply(raw)

	sub := &submitter[T]{svc: s}
	if err := draft.Submit(ctx, sub); err != nil {
		return nil, s.mutationError(ctx, ActionCreate, 0, err)
	}
	return sub.result, nil
}

// Update 以现有记录为底稿合并 raw 后保存
func (s *Service[T]) Update(ctx context.Context, id int64, raw map[string]interface{}) (*T, error) {
	if s.desc.ReadOnly {
		return nil, apperrors.ErrReadOnlyResource
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.ErrFetchFailed.WithError(err)
		}
		return nil, s.mutationError(ctx, ActionUpdate, id, err)
	}

	seed, err := toMap(existing)
	if err != nil {
		return nil, s.mutationError(ctx, ActionUpdate, id, err)
	}

	draft := form.NewDraft(s.desc.Form)
	draft.Open(seed)
	draft.Apply(raw)

	sub := &submitter[T]{svc: s, existing: existing}
	if err := draft.Submit(ctx, sub); err != nil {
		return nil, s.mutationError(ctx, ActionUpdate, id, err)
	}
	return sub.result, nil
}

// Delete 删除一条记录，记录不存在时返回错误
func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if s.desc.ReadOnly {
		return apperrors.ErrReadOnlyResource
	}

	ctx, span := tracing.Start(ctx, "resource.delete",
		tracing.WithCollection(s.desc.Collection),
		tracing.WithRecordID(id),
	)
	err := s.store.Delete(ctx, id)
	tracing.End(span, err)
	if err != nil {
		return s.mutationError(ctx, ActionDelete, id, err)
	}

	s.succeeded(ctx, ActionDelete, id)
	return nil
}

// Export 导出当前查询结果为 CSV
func (s *Service[T]) Export(ctx context.Context, q ListQuery) ([]byte, string, error) {
	items, err := s.List(ctx, q)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if err := export.WriteCSV(buf, items, s.desc.Columns, export.Options{BOM: s.bom}); err != nil {
		return nil, "", apperrors.ErrOperationFailed.WithError(err)
	}

	s.log.Info("collection exported",
		logger.Action(ActionExport),
		logger.Int("rows", len(items)),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
	)
	return buf.Bytes(), export.Filename(s.desc.Collection, s.now()), nil
}

// Count 统计记录数
func (s *Service[T]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// persist 写入数据库，existing 为空时新建
func (s *Service[T]) persist(ctx context.Context, action string, existing *T, values map[string]interface{}) (*T, error) {
	item := existing
	if item == nil {
		item = new(T)
	}
	if err := merge(item, values); err != nil {
		return nil, err
	}

	ctx, span := tracing.Start(ctx, "resource."+action, tracing.WithCollection(s.desc.Collection))
	var err error
	if existing == nil {
		err = s.store.Create(ctx, item)
	} else {
		err = s.store.Save(ctx, item)
	}
	tracing.End(span, err)
	if err != nil {
		return nil, err
	}

	s.succeeded(ctx, action, (*item).GetID())
	return item, nil
}

// succeeded 变更成功后失效缓存并发出提示
func (s *Service[T]) succeeded(ctx context.Context, action string, id int64) {
	if err := s.cache.Invalidate(ctx, s.desc.Collection); err != nil {
		s.log.Warn("query cache invalidate failed", logger.Err(err))
	}
	s.metrics.RecordMutation(s.desc.Collection, action, nil)
	s.log.Info("mutation succeeded",
		logger.Action(action),
		logger.RecordID(id),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
	)
	s.notifier.Notify(ctx, notice.Success(successTitle(action), s.desc.Title+successVerb(action)))
}

// mutationError 记录失败并转换为对外错误，校验失败不发提示
func (s *Service[T]) mutationError(ctx context.Context, action string, id int64, err error) error {
	if errors.Is(err, apperrors.ErrValidationFailed) {
		return err
	}

	out := apperrors.ErrMutationFailed.WithError(err)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		out = apperrors.ErrRecordNotFound.WithError(err)
	case apperrors.IsAppError(err):
		out = apperrors.GetAppError(err)
	}

	s.metrics.RecordMutation(s.desc.Collection, action, err)
	s.log.Error("mutation failed",
		logger.Action(action),
		logger.RecordID(id),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
		logger.Err(err),
	)
	s.notifier.Notify(ctx, notice.Failure(failureTitle(action), out.Message))
	return out
}

func successTitle(action string) string {
	switch action {
	case ActionCreate:
		return "创建成功"
	case ActionUpdate:
		return "更新成功"
	case ActionDelete:
		return "删除成功"
	}
	return "操作成功"
}

func successVerb(action string) string {
	switch action {
	case ActionCreate:
		return "已创建"
	case ActionUpdate:
		return "已更新"
	case ActionDelete:
		return "已删除"
	}
	return "已保存"
}

func failureTitle(action string) string {
	switch action {
	case ActionCreate:
		return "创建失败"
	case ActionUpdate:
		return "更新失败"
	case ActionDelete:
		return "删除失败"
	}
	return "操作失败"
}

// submitter 把草稿提交接到仓储
type submitter[T models.Entity] struct {
	svc      *Service[T]
	existing *T
	result   *T
}

func (s *submitter[T]) Create(ctx context.Context, values map[string]interface{}) error {
	item, err := s.svc.persist(ctx, ActionCreate, nil, values)
	s.result = item
	return err
}

func (s *submitter[T]) Update(ctx context.Context, _ int64, values map[string]interface{}) error {
	item, err := s.svc.persist(ctx, ActionUpdate, s.existing, values)
	s.result = item
	return err
}

// toMap 把记录转换为以 json 标签为键的 map
func toMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// merge 把字段值覆盖到记录上，未出现的字段保持原值
func merge(dst interface{}, values map[string]interface{}) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
