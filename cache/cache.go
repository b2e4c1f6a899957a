package cache

import "fmt"

type CacheLayerError struct {
	Message string
}

func (e CacheLayerError) Error() string {
	return fmt.Sprintf("cache layer error %s", e.Message)
}

// Cache is a shared, mutable, keyed store. Concurrent writers on the same key
// race with last-writer-wins semantics; deleting an absent key is a no-op.
type Cache interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(keys ...string) error
	GetList(key string) ([]int64, error)
	AddToList(key string, ids ...int64) error
	RemoveFromList(key string, ids ...int64) error
}
