package resource

import "strings"

// Search 返回任一指定字段包含搜索词（不区分大小写）的记录，保持原有顺序
// 搜索词为空或全为空白时原样返回，否则按原样匹配
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" || fields == nil {
		return items
	}

	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, v := range fields(item) {
			if strings.Contains(strings.ToLower(v), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
