package config

type CacheType string

const CACHE_TYPE_REDIS CacheType = "redis"
const CACHE_TYPE_INMEM CacheType = "memory"

type QueueType string

const QUEUE_TYPE_REDIS QueueType = "redis"
const QUEUE_TYPE_INMEM QueueType = "memory"

type Config struct {
	RedisConfig        RedisConfig
	HttpPort           int
	CacheType          CacheType
	QueueType          QueueType
	TaskRunnerCapacity int
	TaskPollInterval   int
	QueuePartitions    int
	MaxCacheListSize   int
}

type RedisConfig struct {
	Addrs     []string
	Namespace string
}
