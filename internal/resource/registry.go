package resource

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/models"
)

// Resource 去除类型参数后的实体服务，供路由与统计统一使用
type Resource interface {
	Collection() string
	Schema() Schema
	List(ctx context.Context, q ListQuery) (interface{}, int64, error)
	Get(ctx context.Context, id int64) (interface{}, error)
	Create(ctx context.Context, raw map[string]interface{}) (interface{}, error)
	Update(ctx context.Context, id int64, raw map[string]interface{}) (interface{}, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, q ListQuery) ([]byte, string, error)
	Count(ctx context.Context) (int64, error)
}

type erased[T models.Entity] struct {
	svc *Service[T]
}

// Erase 包装为 Resource
func Erase[T models.Entity](svc *Service[T]) Resource {
	return &erased[T]{svc: svc}
}

func (e *erased[T]) Collection() string {
	return e.svc.desc.Collection
}

func (e *erased[T]) Schema() Schema {
	return e.svc.desc.Schema()
}

func (e *erased[T]) List(ctx context.Context, q ListQuery) (interface{}, int64, error) {
	items, err := e.svc.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return items, int64(len(items)), nil
}

func (e *erased[T]) Get(ctx context.Context, id int64) (interface{}, error) {
	return e.svc.Get(ctx, id)
}

func (e *erased[T]) Create(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
	return e.svc.Create(ctx, raw)
}

func (e *erased[T]) Update(ctx context.Context, id int64, raw map[string]interface{}) (interface{}, error) {
	return e.svc.Update(ctx, id, raw)
}

func (e *erased[T]) Delete(ctx context.Context, id int64) error {
	return e.svc.Delete(ctx, id)
}

func (e *erased[T]) Export(ctx context.Context, q ListQuery) ([]byte, string, error) {
	return e.svc.Export(ctx, q)
}

func (e *erased[T]) Count(ctx context.Context) (int64, error) {
	return e.svc.Count(ctx)
}

// Registry 集合名到实体服务的登记表
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

// NewRegistry 创建登记表
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]Resource)}
}

// Register 登记实体服务，同名覆盖
func (r *Registry) Register(res Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[res.Collection()] = res
}

// Lookup 按集合名查找
func (r *Registry) Lookup(collection string) (Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[collection]
	if !ok {
		return nil, apperrors.ErrUnknownCollection
	}
	return res, nil
}

// Collections 已登记的集合名，按名称排序
func (r *Registry) Collections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
