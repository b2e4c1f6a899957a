package search

import (
	"context"
	"fmt"
	"strconv"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
)

// Indexer is the search-index writer. It is reachable only through enqueued
// follow-up tasks; the synchronous action path never calls it.
type Indexer interface {
	Index(entityType string, id int64) error
	Remove(entityType string, ids []int64) error
}

const SEARCH_INDEX string = "SEARCH_INDEX"

// redisIndexer keeps one id set per entity type. It stands in for a full text
// index; the contract the core relies on is only membership add/remove.
type redisIndexer struct {
	redisClient rd.UniversalClient
	namespace   string
}

var _ Indexer = new(redisIndexer)

func NewRedisIndexer(conf config.RedisConfig) *redisIndexer {
	redisClient := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisIndexer{
		redisClient: redisClient,
		namespace:   conf.Namespace,
	}
}

func (ix *redisIndexer) indexKey(entityType string) string {
	return fmt.Sprintf("%s:%s:%s", ix.namespace, SEARCH_INDEX, entityType)
}

func (ix *redisIndexer) Index(entityType string, id int64) error {
	ctx := context.Background()
	return ix.redisClient.SAdd(ctx, ix.indexKey(entityType), strconv.FormatInt(id, 10)).Err()
}

func (ix *redisIndexer) Remove(entityType string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = strconv.FormatInt(id, 10)
	}
	ctx := context.Background()
	return ix.redisClient.SRem(ctx, ix.indexKey(entityType), members...).Err()
}
