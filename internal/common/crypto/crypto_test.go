// Package crypto 加密工具单元测试
package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, VerifyPassword("123456", hash))
	assert.False(t, VerifyPassword("1234567", hash))
	assert.False(t, VerifyPassword("123456", "not-a-hash"))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("secret", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestEqualString(t *testing.T) {
	assert.True(t, EqualString("admin", "admin"))
	assert.False(t, EqualString("admin", "Admin"))
	assert.False(t, EqualString("admin", "admin "))
	assert.True(t, EqualString("", ""))
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"13812345678", "138****5678"},
		{"+8613812345678", "+86*******5678"},
		{"1234567", "1234567"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.in))
		})
	}
}

func TestMaskAccount(t *testing.T) {
	assert.Equal(t, "TQn9****CxYz", MaskAccount("TQn9Y2khEsLJW1ChVWFMSMeRDow5KcCxYz"))
	assert.Equal(t, "short", MaskAccount("short"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "us***@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "no-at-sign", MaskEmail("no-at-sign"))
}
