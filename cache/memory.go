package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

var _ Cache = new(memoryCache)

func NewMemoryCache() *memoryCache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

func (c *memoryCache) Get(key string) (string, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, CacheLayerError{Message: "value is not a string"}
	}
	return s, true, nil
}

func (c *memoryCache) Set(key string, value string) error {
	c.store.Set(key, value, gocache.NoExpiration)
	return nil
}

func (c *memoryCache) Delete(keys ...string) error {
	for _, key := range keys {
		c.store.Delete(key)
	}
	return nil
}

func (c *memoryCache) GetList(key string) ([]int64, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, nil
	}
	ids, ok := v.([]int64)
	if !ok {
		return nil, CacheLayerError{Message: "value is not a list"}
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	return out, nil
}

func (c *memoryCache) AddToList(key string, ids ...int64) error {
	existing, err := c.GetList(key)
	if err != nil {
		return err
	}
	present := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			existing = append(existing, id)
			present[id] = struct{}{}
		}
	}
	c.store.Set(key, existing, gocache.NoExpiration)
	return nil
}

func (c *memoryCache) RemoveFromList(key string, ids ...int64) error {
	existing, err := c.GetList(key)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	remove := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}
	kept := make([]int64, 0, len(existing))
	for _, id := range existing {
		if _, ok := remove[id]; !ok {
			kept = append(kept, id)
		}
	}
	c.store.Set(key, kept, gocache.NoExpiration)
	return nil
}
