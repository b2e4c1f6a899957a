package cache

import (
	"context"
	"fmt"
	"strconv"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
)

type redisCache struct {
	redisClient rd.UniversalClient
	namespace   string
}

var _ Cache = new(redisCache)

func NewRedisCache(conf config.RedisConfig) *redisCache {
	redisClient := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisCache{
		redisClient: redisClient,
		namespace:   conf.Namespace,
	}
}

func (c *redisCache) getNamespaceKey(key string) string {
	return fmt.Sprintf("%s:%s", c.namespace, key)
}

func (c *redisCache) Get(key string) (string, bool, error) {
	ctx := context.Background()
	val, err := c.redisClient.Get(ctx, c.getNamespaceKey(key)).Result()
	if err == rd.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, CacheLayerError{Message: err.Error()}
	}
	return val, true, nil
}

func (c *redisCache) Set(key string, value string) error {
	ctx := context.Background()
	if err := c.redisClient.Set(ctx, c.getNamespaceKey(key), value, 0).Err(); err != nil {
		return CacheLayerError{Message: err.Error()}
	}
	return nil
}

func (c *redisCache) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	nsKeys := make([]string, len(keys))
	for i, key := range keys {
		nsKeys[i] = c.getNamespaceKey(key)
	}
	ctx := context.Background()
	if err := c.redisClient.Del(ctx, nsKeys...).Err(); err != nil {
		return CacheLayerError{Message: err.Error()}
	}
	return nil
}

func (c *redisCache) GetList(key string) ([]int64, error) {
	ctx := context.Background()
	members, err := c.redisClient.SMembers(ctx, c.getNamespaceKey(key)).Result()
	if err != nil {
		return nil, CacheLayerError{Message: err.Error()}
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, CacheLayerError{Message: err.Error()}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *redisCache) AddToList(key string, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = strconv.FormatInt(id, 10)
	}
	ctx := context.Background()
	if err := c.redisClient.SAdd(ctx, c.getNamespaceKey(key), members...).Err(); err != nil {
		return CacheLayerError{Message: err.Error()}
	}
	return nil
}

func (c *redisCache) RemoveFromList(key string, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = strconv.FormatInt(id, 10)
	}
	ctx := context.Background()
	if err := c.redisClient.SRem(ctx, c.getNamespaceKey(key), members...).Err(); err != nil {
		return CacheLayerError{Message: err.Error()}
	}
	return nil
}
