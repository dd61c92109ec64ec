// Package form 提供声明式表单描述、草稿状态与字段校验
package form

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldType 字段类型
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeText    FieldType = "text"
	TypeURL     FieldType = "url"
	TypeEnum    FieldType = "enum"
	TypeInt     FieldType = "int"
	TypeFloat   FieldType = "float"
	TypeDecimal FieldType = "decimal"
	TypeBool    FieldType = "bool"
)

// Numeric 是否为数值类型
func (t FieldType) Numeric() bool {
	return t == TypeInt || t == TypeFloat || t == TypeDecimal
}

// FallbackPolicy 字段原始输入无法解析时使用的替代值
// 命中替代值属于静默转换，不产生校验错误
type FallbackPolicy struct {
	Value interface{} `json:"value"`
}

// FallbackTo 声明替代值
func FallbackTo(v interface{}) *FallbackPolicy {
	return &FallbackPolicy{Value: v}
}

// Field 字段描述
type Field struct {
	Name     string          `json:"name"`
	Label    string          `json:"label"`
	Type     FieldType       `json:"type"`
	Required bool            `json:"required"`
	Nullable bool            `json:"nullable,omitempty"`
	Default  interface{}     `json:"default,omitempty"`
	Fallback *FallbackPolicy `json:"fallback,omitempty"`
	Rules    string          `json:"rules,omitempty"`
	Options  []string        `json:"options,omitempty"`
}

// errUnparsable 原始值无法转换为字段类型
type errUnparsable struct {
	field Field
	raw   interface{}
}

func (e *errUnparsable) Error() string {
	return fmt.Sprintf("%s: cannot parse %v as %s", e.field.Name, e.raw, e.field.Type)
}

// Coerce 把原始输入转换为字段类型
// 数值与布尔字段解析失败时，存在替代值则返回替代值，否则返回错误
// 空输入：可空字段返回 nil，其余字段返回替代值或零值
func (f Field) Coerce(raw interface{}) (interface{}, error) {
	if isBlank(raw) && f.Type != TypeString && f.Type != TypeText && f.Type != TypeURL && f.Type != TypeEnum {
		if f.Nullable {
			return nil, nil
		}
		if f.Fallback != nil {
			return f.fallbackValue(), nil
		}
		return f.zero(), nil
	}

	var (
		v  interface{}
		ok bool
	)
	switch f.Type {
	case TypeInt:
		v, ok = toInt(raw)
	case TypeFloat:
		v, ok = toFloat(raw)
	case TypeDecimal:
		v, ok = toDecimal(raw)
	case TypeBool:
		v, ok = toBool(raw)
	default:
		v, ok = toString(raw), true
	}
	if ok {
		return v, nil
	}
	if f.Fallback != nil {
		return f.fallbackValue(), nil
	}
	return raw, &errUnparsable{field: f, raw: raw}
}

// fallbackValue 把声明的替代值规范为字段类型
func (f Field) fallbackValue() interface{} {
	v := f.Fallback.Value
	switch f.Type {
	case TypeInt:
		if n, ok := toInt(v); ok {
			return n
		}
	case TypeFloat:
		if n, ok := toFloat(v); ok {
			return n
		}
	case TypeDecimal:
		if d, ok := toDecimal(v); ok {
			return d
		}
	case TypeBool:
		if b, ok := toBool(v); ok {
			return b
		}
	}
	return v
}

func (f Field) zero() interface{} {
	switch f.Type {
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeDecimal:
		return decimal.Zero
	case TypeBool:
		return false
	default:
		return ""
	}
}

// initial 草稿新建时的初始值
func (f Field) initial() interface{} {
	if f.Default == nil {
		if f.Nullable {
			return nil
		}
		return f.zero()
	}
	v, err := f.Coerce(f.Default)
	if err != nil {
		return f.zero()
	}
	return v
}

func isBlank(raw interface{}) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

func toString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case decimal.Decimal:
		if !v.IsInteger() || !v.BigInt().IsInt64() {
			return 0, false
		}
		return int(v.IntPart()), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func toFloat(raw interface{}) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case decimal.Decimal:
		f = v.InexactFloat64()
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toDecimal(raw interface{}) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	}
	return decimal.Zero, false
}

func toBool(raw interface{}) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case int:
		return v != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on", "open":
			return true, true
		case "false", "0", "no", "off", "closed":
			return false, true
		}
	}
	return false, false
}
