package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheValues(t *testing.T) {
	c := NewMemoryCache()

	_, found, err := c.Get("missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set("key", "value"))
	v, found, err := c.Get("key")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "value", v)

	require.NoError(t, c.Delete("key"))
	_, found, err = c.Get("key")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryCacheLists(t *testing.T) {
	c := NewMemoryCache()

	ids, err := c.GetList("missing")
	require.NoError(t, err)
	require.Nil(t, ids)

	require.NoError(t, c.AddToList("list", 1, 2))
	require.NoError(t, c.AddToList("list", 2, 3))
	ids, err = c.GetList("list")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)

	require.NoError(t, c.RemoveFromList("list", 2, 99))
	ids, err = c.GetList("list")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, ids)

	// removing from an absent list is a no-op
	require.NoError(t, c.RemoveFromList("absent", 1))
}

func TestDeleteKeysMapperIdempotent(t *testing.T) {
	c := NewMemoryCache()
	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))

	mapper := NewDeleteKeysMapper(c)
	keys := []string{"a", "b", "never-existed"}
	require.NoError(t, mapper.Execute(keys))
	require.NoError(t, mapper.Execute(keys))

	_, found, err := c.Get("a")
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = c.Get("b")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRemoveIdsFromListsMapper(t *testing.T) {
	c := NewMemoryCache()
	require.NoError(t, c.AddToList("x", 1, 2, 3))
	require.NoError(t, c.AddToList("y", 2, 4))

	mapper := NewRemoveIdsFromListsMapper(c)
	require.NoError(t, mapper.Execute([]string{"x", "y"}, []int64{2}))

	ids, err := c.GetList("x")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, ids)
	ids, err = c.GetList("y")
	require.NoError(t, err)
	require.Equal(t, []int64{4}, ids)
}
