// internal/pkg/auth/otp_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP()
	require.NoError(t, err)

	assert.Len(t, code, OTPLength)
	for _, ch := range code {
		assert.GreaterOrEqual(t, ch, '0')
		assert.LessOrEqual(t, ch, '9')
	}
}

func TestHashAndCheckOTP(t *testing.T) {
	hash, err := HashOTP("123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, CheckOTP(hash, "123456"))
	assert.False(t, CheckOTP(hash, "654321"))
	assert.False(t, CheckOTP(hash, ""))
}
