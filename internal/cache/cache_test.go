package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	store := NewStore(time.Minute)

	_, ok := store.Get(EntityRecyclingItems, "/api/v1/recycling-items?page=1")
	assert.False(t, ok)

	store.Set(EntityRecyclingItems, "/api/v1/recycling-items?page=1", []byte(`{"data":[]}`))

	body, ok := store.Get(EntityRecyclingItems, "/api/v1/recycling-items?page=1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"data":[]}`), body)
}

func TestInvalidateEntityIsScoped(t *testing.T) {
	store := NewStore(time.Minute)
	store.Set(EntityRecyclingItems, "/api/v1/recycling-items", []byte("items"))
	store.Set(EntityRecyclingItems, "/api/v1/recycling-items?page=2", []byte("items-2"))
	store.Set(EntityCategories, "/api/v1/categories", []byte("categories"))

	store.InvalidateEntity(EntityRecyclingItems)

	_, ok := store.Get(EntityRecyclingItems, "/api/v1/recycling-items")
	assert.False(t, ok)
	_, ok = store.Get(EntityRecyclingItems, "/api/v1/recycling-items?page=2")
	assert.False(t, ok)

	body, ok := store.Get(EntityCategories, "/api/v1/categories")
	require.True(t, ok)
	assert.Equal(t, []byte("categories"), body)
}
