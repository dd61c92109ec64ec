// Package export 提供集合数据的 CSV 导出
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind 列类型，决定空值的输出
type Kind int

const (
	// Text 文本列，空值输出空字符串
	Text Kind = iota
	// Number 数值列，空值输出 0
	Number
)

// bom UTF-8 BOM，Excel 依赖它识别中文
var bom = []byte{0xEF, 0xBB, 0xBF}

// Column 导出列
type Column[T any] struct {
	Header string
	Kind   Kind
	Value  func(T) interface{}
}

// TextColumn 文本列
func TextColumn[T any](header string, value func(T) interface{}) Column[T] {
	return Column[T]{Header: header, Kind: Text, Value: value}
}

// NumberColumn 数值列
func NumberColumn[T any](header string, value func(T) interface{}) Column[T] {
	return Column[T]{Header: header, Kind: Number, Value: value}
}

// Options 导出选项
type Options struct {
	BOM bool
}

// WriteCSV 按列顺序写出表头与数据行，字段按 RFC 4180 转义
func WriteCSV[T any](w io.Writer, rows []T, cols []Column[T], opts Options) error {
	if opts.BOM {
		if _, err := w.Write(bom); err != nil {
			return err
		}
	}

	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			record[i] = Cell(c.Kind, c.Value(row))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Cell 把单元格值格式化为字符串
func Cell(kind Kind, v interface{}) string {
	if isNil(v) {
		if kind == Number {
			return "0"
		}
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case *string:
		return *t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case *int:
		return strconv.Itoa(*t)
	case *int64:
		return strconv.FormatInt(*t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.StringFixed(2)
	case *decimal.Decimal:
		return t.StringFixed(2)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case *time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}

func isNil(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *int:
		return t == nil
	case *int64:
		return t == nil
	case *string:
		return t == nil
	case *decimal.Decimal:
		return t == nil
	case *time.Time:
		return t == nil
	}
	return false
}

// Filename 导出文件名，包含导出当天日期
func Filename(collection string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", collection, now.Format("2006-01-02"))
}
