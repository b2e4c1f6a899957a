package executor

import (
	"testing"

	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/notification"
	"github.com/stretchr/testify/require"
)

type fakeIndexer struct {
	indexed [][2]any
	removed map[string][]int64
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{removed: make(map[string][]int64)}
}

func (f *fakeIndexer) Index(entityType string, id int64) error {
	f.indexed = append(f.indexed, [2]any{entityType, id})
	return nil
}

func (f *fakeIndexer) Remove(entityType string, ids []int64) error {
	f.removed[entityType] = append(f.removed[entityType], ids...)
	return nil
}

type fakeDispatcher struct {
	dispatched []notification.Request
}

func (f *fakeDispatcher) Dispatch(req notification.Request) error {
	f.dispatched = append(f.dispatched, req)
	return nil
}

func builtinFixture() (*Registry, cache.Cache, *fakeIndexer, *fakeDispatcher) {
	registry := NewRegistry()
	cacheTier := cache.NewMemoryCache()
	indexer := newFakeIndexer()
	dispatcher := &fakeDispatcher{}
	RegisterBuiltinHandlers(registry, cacheTier, indexer, dispatcher)
	return registry, cacheTier, indexer, dispatcher
}

func TestDeleteCacheKeysHandler(t *testing.T) {
	registry, cacheTier, _, _ := builtinFixture()
	require.NoError(t, cacheTier.Set("GroupById:1", "cached"))

	handler, found := registry.Get(model.ACTION_DELETE_CACHE_KEYS)
	require.True(t, found)

	// params as decoded from the wire
	require.NoError(t, handler(map[string]any{"keys": []any{"GroupById:1", "GroupByShortName:shortname"}}))

	_, present, err := cacheTier.Get("GroupById:1")
	require.NoError(t, err)
	require.False(t, present)
}

func TestDeleteIdsFromListsHandler(t *testing.T) {
	registry, cacheTier, _, _ := builtinFixture()
	require.NoError(t, cacheTier.AddToList("GroupsFollowedByPerson:7", 1, 2))

	handler, found := registry.Get(model.ACTION_DELETE_IDS_FROM_LISTS)
	require.True(t, found)
	require.NoError(t, handler(map[string]any{
		"keys": []any{"GroupsFollowedByPerson:7"},
		"ids":  []any{float64(1)},
	}))

	ids, err := cacheTier.GetList("GroupsFollowedByPerson:7")
	require.NoError(t, err)
	require.Equal(t, []int64{2}, ids)
}

func TestIndexHandlers(t *testing.T) {
	registry, _, indexer, _ := builtinFixture()

	scenarios := map[string]string{
		model.ACTION_INDEX_PERSON:       "PERSON",
		model.ACTION_INDEX_GROUP:        "GROUP",
		model.ACTION_INDEX_ORGANIZATION: "ORGANIZATION",
		model.ACTION_INDEX_ACTIVITY:     "ACTIVITY",
	}
	for actionKey, entityType := range scenarios {
		handler, found := registry.Get(actionKey)
		require.True(t, found, actionKey)
		require.NoError(t, handler(map[string]any{"id": float64(9)}))
		require.Contains(t, indexer.indexed, [2]any{entityType, int64(9)})
	}
}

func TestDeleteFromSearchIndexHandler(t *testing.T) {
	registry, _, indexer, _ := builtinFixture()

	handler, found := registry.Get(model.ACTION_DELETE_FROM_SEARCH_INDEX)
	require.True(t, found)
	require.NoError(t, handler(map[string]any{
		"entityType": "GROUP",
		"ids":        []any{float64(1), float64(2)},
	}))
	require.Equal(t, []int64{1, 2}, indexer.removed["GROUP"])
}

func TestCreateNotificationsHandler(t *testing.T) {
	registry, _, _, dispatcher := builtinFixture()

	handler, found := registry.Get(model.ACTION_CREATE_NOTIFICATIONS)
	require.True(t, found)
	require.NoError(t, handler(map[string]any{
		"type":          "GROUP_FOLLOWER",
		"actorId":       float64(7),
		"destinationId": float64(1),
	}))
	require.Equal(t, []notification.Request{{
		Type:          "GROUP_FOLLOWER",
		ActorId:       7,
		DestinationId: 1,
	}}, dispatcher.dispatched)
}

func TestHandlerRejectsMalformedParams(t *testing.T) {
	registry, _, _, _ := builtinFixture()

	handler, _ := registry.Get(model.ACTION_DELETE_CACHE_KEYS)
	require.Error(t, handler(map[string]any{"keys": "not-a-list"}))

	handler, _ = registry.Get(model.ACTION_INDEX_PERSON)
	require.Error(t, handler(map[string]any{}))
}
