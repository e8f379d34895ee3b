package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)

	assert.True(t, CheckPasswordHash("Secret@123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
