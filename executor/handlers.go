package executor

import (
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/notification"
	"github.com/mohitkumar/streamhub/search"
)

// RegisterBuiltinHandlers wires the handlers behind the action keys the
// execution strategies enqueue. All of them are idempotent.
func RegisterBuiltinHandlers(registry *Registry, cacheTier cache.Cache, indexer search.Indexer, dispatcher notification.Dispatcher) {
	deleteKeys := cache.NewDeleteKeysMapper(cacheTier)
	removeIds := cache.NewRemoveIdsFromListsMapper(cacheTier)

	registry.Register(model.ACTION_DELETE_CACHE_KEYS, func(params map[string]any) error {
		keys, err := stringSliceParam(params, "keys")
		if err != nil {
			return err
		}
		return deleteKeys.Execute(keys)
	})

	registry.Register(model.ACTION_DELETE_IDS_FROM_LISTS, func(params map[string]any) error {
		keys, err := stringSliceParam(params, "keys")
		if err != nil {
			return err
		}
		ids, err := int64SliceParam(params, "ids")
		if err != nil {
			return err
		}
		return removeIds.Execute(keys, ids)
	})

	indexHandler := func(entityType model.EntityType) HandlerFunc {
		return func(params map[string]any) error {
			id, err := int64Param(params, "id")
			if err != nil {
				return err
			}
			return indexer.Index(string(entityType), id)
		}
	}
	registry.Register(model.ACTION_INDEX_PERSON, indexHandler(model.ENTITY_TYPE_PERSON))
	registry.Register(model.ACTION_INDEX_GROUP, indexHandler(model.ENTITY_TYPE_GROUP))
	registry.Register(model.ACTION_INDEX_ORGANIZATION, indexHandler(model.ENTITY_TYPE_ORGANIZATION))
	registry.Register(model.ACTION_INDEX_ACTIVITY, indexHandler(model.ENTITY_TYPE_ACTIVITY))

	registry.Register(model.ACTION_DELETE_FROM_SEARCH_INDEX, func(params map[string]any) error {
		entityType, err := stringParam(params, "entityType")
		if err != nil {
			return err
		}
		ids, err := int64SliceParam(params, "ids")
		if err != nil {
			return err
		}
		return indexer.Remove(entityType, ids)
	})

	registry.Register(model.ACTION_CREATE_NOTIFICATIONS, func(params map[string]any) error {
		notifType, err := stringParam(params, "type")
		if err != nil {
			return err
		}
		actorId, err := int64Param(params, "actorId")
		if err != nil {
			return err
		}
		destinationId, err := int64Param(params, "destinationId")
		if err != nil {
			return err
		}
		return dispatcher.Dispatch(notification.Request{
			Type:          notifType,
			ActorId:       actorId,
			DestinationId: destinationId,
		})
	})
}
