package form

import (
	"context"
	"fmt"
	"maps"

	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
)

// Submitter 草稿提交目标
type Submitter interface {
	Create(ctx context.Context, values map[string]interface{}) error
	Update(ctx context.Context, id int64, values map[string]interface{}) error
}

// Draft 一个实体实例的表单草稿
type Draft struct {
	desc    *Descriptor
	id      int64
	values  map[string]interface{}
	invalid FieldErrors
	errors  FieldErrors
	open    bool
}

// NewDraft 创建关闭状态的草稿
func NewDraft(desc *Descriptor) *Draft {
	return &Draft{desc: desc}
}

// Open 打开草稿，existing 为 nil 时使用字段默认值，否则从实例取值
// 每次打开都会丢弃上一次的草稿内容
func (d *Draft) Open(existing map[string]interface{}) {
	d.reset()
	d.open = true
	d.values = d.desc.Defaults()
	if existing == nil {
		return
	}
	if id, ok := toInt(existing["id"]); ok {
		d.id = int64(id)
	}
	d.Apply(existing)
}

// Close 关闭草稿并清空内容
func (d *Draft) Close() {
	d.reset()
}

func (d *Draft) reset() {
	d.id = 0
	d.values = nil
	d.invalid = FieldErrors{}
	d.errors = FieldErrors{}
	d.open = false
}

// IsOpen 草稿是否已打开
func (d *Draft) IsOpen() bool {
	return d.open
}

// ID 草稿对应的实例ID，新建时为 0
func (d *Draft) ID() int64 {
	return d.id
}

// Set 设置单个字段，未声明的字段返回错误
func (d *Draft) Set(name string, raw interface{}) error {
	f, ok := d.desc.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if !d.open {
		d.Open(nil)
	}

	v, err := f.Coerce(raw)
	d.values[name] = v
	delete(d.errors, name)
	if err != nil {
		d.invalid[name] = "格式不正确"
		return nil
	}
	delete(d.invalid, name)
	return nil
}

// Apply 批量设置字段，忽略未声明的键（如 id、created_at）
func (d *Draft) Apply(raw map[string]interface{}) {
	for _, f := range d.desc.Fields {
		if v, ok := raw[f.Name]; ok {
			_ = d.Set(f.Name, v)
		}
	}
}

// Values 返回草稿值的副本
func (d *Draft) Values() map[string]interface{} {
	return maps.Clone(d.values)
}

// Errors 最近一次校验的字段错误
func (d *Draft) Errors() FieldErrors {
	return maps.Clone(d.errors)
}

// Validate 校验全部字段并记录错误
func (d *Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	for _, f := range d.desc.Fields {
		if msg, ok := d.invalid[f.Name]; ok {
			errs[f.Name] = msg
			continue
		}
		if msg := f.check(d.values[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	d.errors = errs
	return maps.Clone(errs)
}

// Submit 校验通过后按是否有ID调用创建或更新
// 校验失败时不调用 Submitter；提交失败时保留草稿；成功后关闭草稿
func (d *Draft) Submit(ctx context.Context, s Submitter) error {
	if !d.open {
		d.Open(nil)
	}
	if errs := d.Validate(); len(errs) > 0 {
		return apperrors.ErrValidationFailed.WithFields(errs)
	}

	var err error
	if d.id == 0 {
		err = s.Create(ctx, d.Values())
	} else {
		err = s.Update(ctx, d.id, d.Values())
	}
	if err != nil {
		return err
	}

	d.Close()
	return nil
}
