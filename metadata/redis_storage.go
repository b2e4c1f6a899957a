package metadata

import (
	"context"
	"fmt"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/util"
	"go.uber.org/zap"
)

const SCRIPT_TASK string = "SCRIPT_TASK"

type redisMetadataStorage struct {
	redisClient rd.UniversalClient
	namespace   string
	encDec      util.EncoderDecoder[ScriptTaskDef]
}

var _ Storage = new(redisMetadataStorage)

func NewRedisMetadataStorage(conf config.RedisConfig) *redisMetadataStorage {
	redisClient := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisMetadataStorage{
		redisClient: redisClient,
		namespace:   conf.Namespace,
		encDec:      util.NewJsonEncoderDecoder[ScriptTaskDef](),
	}
}

func (s *redisMetadataStorage) hashKey() string {
	return fmt.Sprintf("%s:%s", s.namespace, SCRIPT_TASK)
}

func (s *redisMetadataStorage) SaveScriptTask(def ScriptTaskDef) error {
	data, err := s.encDec.Encode(def)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := s.redisClient.HSet(ctx, s.hashKey(), []string{def.Name, string(data)}).Err(); err != nil {
		logger.Error("error in saving script task definition", zap.String("task", def.Name), zap.Error(err))
		return err
	}
	return nil
}

func (s *redisMetadataStorage) DeleteScriptTask(name string) error {
	ctx := context.Background()
	if err := s.redisClient.HDel(ctx, s.hashKey(), name).Err(); err != nil {
		logger.Error("error in deleting script task definition", zap.String("task", name), zap.Error(err))
		return err
	}
	return nil
}

func (s *redisMetadataStorage) GetScriptTask(name string) (*ScriptTaskDef, error) {
	ctx := context.Background()
	defStr, err := s.redisClient.HGet(ctx, s.hashKey(), name).Result()
	if err == rd.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error("error in getting script task definition", zap.String("task", name), zap.Error(err))
		return nil, err
	}
	return s.encDec.Decode([]byte(defStr))
}
