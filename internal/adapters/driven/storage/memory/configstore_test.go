package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Empty(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("output.style")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("output.style"))
	assert.False(t, store.GetBool("log.verbose"))
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("output.style", "glm"))
	require.NoError(t, store.Set("log.verbose", true))

	val, ok := store.Get("output.style")
	assert.True(t, ok)
	assert.Equal(t, "glm", val)
	assert.Equal(t, "glm", store.GetString("output.style"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("output.style", 42))
	require.NoError(t, store.Set("log.verbose", "yes"))

	assert.Empty(t, store.GetString("output.style"))
	assert.False(t, store.GetBool("log.verbose"))
}
