package agent

import (
	"sync"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/executor"
	"github.com/mohitkumar/streamhub/metadata"
	"github.com/mohitkumar/streamhub/notification"
	"github.com/mohitkumar/streamhub/persistence"
	redisdao "github.com/mohitkumar/streamhub/persistence/redis"
	"github.com/mohitkumar/streamhub/queue"
	"github.com/mohitkumar/streamhub/rest"
	"github.com/mohitkumar/streamhub/search"
	"github.com/mohitkumar/streamhub/service"
)

type Agent struct {
	Config config.Config

	cacheTier      cache.Cache
	taskQueue      queue.Queue
	groupDao       persistence.GroupDao
	orgDao         persistence.OrganizationDao
	personDao      persistence.PersonDao
	taskRunner     *executor.TaskRunner
	profileService *service.ProfileActionService
	httpServer     *rest.Server

	shutdown     bool
	shutdownLock sync.Mutex
	wg           sync.WaitGroup
}

func New(conf config.Config) (*Agent, error) {
	a := &Agent{
		Config: conf,
	}
	setup := []func() error{
		a.setupStorage,
		a.setupTaskRunner,
		a.setupProfileService,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupStorage() error {
	switch a.Config.CacheType {
	case config.CACHE_TYPE_INMEM:
		a.cacheTier = cache.NewMemoryCache()
	default:
		a.cacheTier = cache.NewRedisCache(a.Config.RedisConfig)
	}
	switch a.Config.QueueType {
	case config.QUEUE_TYPE_INMEM:
		a.taskQueue = queue.NewMemoryQueue()
	default:
		a.taskQueue = queue.NewRedisQueue(a.Config.RedisConfig, a.Config.QueuePartitions)
	}
	a.groupDao = redisdao.NewRedisGroupDao(a.Config.RedisConfig)
	a.orgDao = redisdao.NewRedisOrganizationDao(a.Config.RedisConfig)
	a.personDao = redisdao.NewRedisPersonDao(a.Config.RedisConfig)
	return nil
}

func (a *Agent) setupTaskRunner() error {
	registry := executor.NewRegistry()
	indexer := search.NewRedisIndexer(a.Config.RedisConfig)
	dispatcher := notification.NewRedisDispatcher(a.Config.RedisConfig)
	executor.RegisterBuiltinHandlers(registry, a.cacheTier, indexer, dispatcher)
	scriptTasks := metadata.NewRedisMetadataStorage(a.Config.RedisConfig)
	a.taskRunner = executor.NewTaskRunner(a.taskQueue, registry, scriptTasks,
		a.Config.TaskRunnerCapacity, a.Config.TaskPollInterval, &a.wg)
	return nil
}

func (a *Agent) setupProfileService() error {
	controller := action.NewController(executor.NewQueueSubmitter(a.taskQueue))
	a.profileService = service.NewProfileActionService(controller, a.groupDao, a.orgDao,
		a.personDao, a.cacheTier, a.Config.MaxCacheListSize)
	return nil
}

func (a *Agent) setupHttpServer() error {
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.profileService)
	if err != nil {
		return err
	}
	return nil
}

func (a *Agent) Start() error {
	if err := a.taskRunner.Start(); err != nil {
		return err
	}
	go func() {
		if err := a.httpServer.Start(); err != nil {
			_ = a.Shutdown()
		}
	}()
	return nil
}

func (a *Agent) Shutdown() error {
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	a.shutdown = true

	if err := a.httpServer.Stop(); err != nil {
		return err
	}
	if err := a.taskRunner.Stop(); err != nil {
		return err
	}
	a.wg.Wait()
	return nil
}
