package utils_test

import (
	"testing"

	"github.com/jklassic/logistics/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("secret124", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}
