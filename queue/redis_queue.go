package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/spaolacci/murmur3"
	"go.uber.org/zap"
)

const TASK_QUEUE string = "TASK_QUEUE"

type redisQueue struct {
	redisClient    rd.UniversalClient
	namespace      string
	partitionCount int

	mu               sync.Mutex
	currentPartition int
}

var _ Queue = new(redisQueue)

func NewRedisQueue(conf config.RedisConfig, partitionCount int) *redisQueue {
	redisClient := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisQueue{
		redisClient:    redisClient,
		namespace:      conf.Namespace,
		partitionCount: partitionCount,
	}
}

func (rq *redisQueue) queueKey(partition int) string {
	return fmt.Sprintf("%s:%s:%s", rq.namespace, TASK_QUEUE, strconv.Itoa(partition))
}

func (rq *redisQueue) getPartition(taskId string) int {
	return int(murmur3.Sum32([]byte(taskId)) % uint32(rq.partitionCount))
}

func (rq *redisQueue) Push(taskId string, message []byte) error {
	queueName := rq.queueKey(rq.getPartition(taskId))
	ctx := context.Background()
	err := rq.redisClient.LPush(ctx, queueName, message).Err()
	if err != nil {
		logger.Error("error while push to redis list", zap.String("queue", queueName), zap.Error(err))
		return err
	}
	return nil
}

// Pop drains up to batchSize messages, cycling the partitions round-robin. It
// returns fewer (possibly zero) messages when the partitions are empty.
func (rq *redisQueue) Pop(batchSize int) ([]string, error) {
	result := make([]string, 0, batchSize)
	for i := 0; i < rq.partitionCount && len(result) < batchSize; i++ {
		partition := rq.getNextPartition()
		items, err := rq.pop(rq.queueKey(partition), batchSize-len(result))
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

func (rq *redisQueue) pop(queueName string, batchSize int) ([]string, error) {
	ctx := context.Background()
	res, err := rq.redisClient.LPopCount(ctx, queueName, batchSize).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return []string{}, nil
		}
		logger.Error("error while pop from redis list", zap.String("queue", queueName), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (rq *redisQueue) getNextPartition() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	rq.currentPartition = (rq.currentPartition + 1) % rq.partitionCount
	return rq.currentPartition
}
