// Package utils 通用工具函数单元测试
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNo(t *testing.T) {
	for _, prefix := range []string{"R", "W", ""} {
		t.Run("prefix_"+prefix, func(t *testing.T) {
			orderNo := GenerateOrderNo(prefix)
			assert.True(t, strings.HasPrefix(orderNo, prefix))
			// 前缀 + 14位时间戳 + 6位随机数
			assert.Equal(t, len(prefix)+20, len(orderNo))
		})
	}
}

func TestGenerateOrderNo_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateOrderNo("R")] = true
	}
	// 同一秒内依赖随机段区分，允许极少量碰撞
	assert.Greater(t, len(seen), 95)
}

func TestGenerateRandomNumber(t *testing.T) {
	n := GenerateRandomNumber(8)
	assert.Len(t, n, 8)
	for _, c := range n {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"13800138000", true},
		{"+84 912-345-678", true},
		{"12345", false},
		{"phone", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(NormalizePhone(tt.raw)))
		})
	}
}
