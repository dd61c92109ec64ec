package form

// Descriptor 实体表单描述
type Descriptor struct {
	Fields []Field `json:"fields"`
}

// NewDescriptor 创建表单描述
func NewDescriptor(fields ...Field) *Descriptor {
	return &Descriptor{Fields: fields}
}

// Field 按名称查找字段
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults 返回全部字段的初始值
func (d *Descriptor) Defaults() map[string]interface{} {
	out := make(map[string]interface{}, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Name] = f.initial()
	}
	return out
}

// CoerceFilter 把查询串中的筛选值转换为字段类型，供精确匹配使用
func (d *Descriptor) CoerceFilter(name, raw string) (interface{}, bool) {
	f, ok := d.Field(name)
	if !ok {
		return raw, true
	}
	// 筛选值不走替代值，无法解析时视为无效筛选
	f.Fallback = nil
	f.Nullable = false
	v, err := f.Coerce(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}
