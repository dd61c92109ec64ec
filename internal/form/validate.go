package form

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// FieldErrors 字段名到错误说明
type FieldErrors map[string]string

// check 校验单个字段的已转换值
func (f Field) check(v interface{}) string {
	if f.Required && missing(v) {
		return "必填"
	}
	if missing(v) {
		return ""
	}

	rules := f.rules()
	if rules == "" {
		return ""
	}

	target := v
	if d, ok := v.(decimal.Decimal); ok {
		target = d.InexactFloat64()
	}
	err := validate.Var(target, rules)
	if err == nil {
		return ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return message(verrs[0])
	}
	return "格式不正确"
}

// rules 合并类型隐含规则与声明规则
func (f Field) rules() string {
	var parts []string
	switch f.Type {
	case TypeURL:
		parts = append(parts, "url")
	case TypeEnum:
		if len(f.Options) > 0 {
			parts = append(parts, "oneof="+strings.Join(f.Options, " "))
		}
	}
	if f.Rules != "" {
		parts = append(parts, f.Rules)
	}
	return strings.Join(parts, ",")
}

func missing(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "url":
		return "请输入有效的链接"
	case "email":
		return "请输入有效的邮箱"
	case "oneof":
		return "可选值: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("长度不能少于 %s", fe.Param())
		}
		return fmt.Sprintf("不能小于 %s", fe.Param())
	case "max", "lte":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("长度不能超过 %s", fe.Param())
		}
		return fmt.Sprintf("不能大于 %s", fe.Param())
	case "gt":
		return fmt.Sprintf("必须大于 %s", fe.Param())
	default:
		return "格式不正确"
	}
}
