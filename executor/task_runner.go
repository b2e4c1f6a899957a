package executor

import (
	"fmt"
	"sync"

	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/metadata"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/queue"
	"github.com/mohitkumar/streamhub/util"
	"go.uber.org/zap"
)

var _ Executor = new(TaskRunner)

// TaskRunner dequeues follow-up task descriptors out-of-band from the original
// request and executes them through the handler registry. A handler failure is
// logged and the task dropped; retry, if any, belongs to the queue feeding us.
type TaskRunner struct {
	queue        queue.Queue
	registry     *Registry
	scriptTasks  metadata.Storage
	taskEncDec   util.EncoderDecoder[model.UserActionRequest]
	worker       *util.Worker
	tickWorker   *util.TickWorker
	stop         chan struct{}
	wg           *sync.WaitGroup
	capacity     int
	pollInterval int
}

func NewTaskRunner(q queue.Queue, registry *Registry, scriptTasks metadata.Storage, capacity int, pollInterval int, wg *sync.WaitGroup) *TaskRunner {
	return &TaskRunner{
		queue:        q,
		registry:     registry,
		scriptTasks:  scriptTasks,
		taskEncDec:   util.NewJsonEncoderDecoder[model.UserActionRequest](),
		stop:         make(chan struct{}),
		wg:           wg,
		capacity:     capacity,
		pollInterval: pollInterval,
	}
}

func (tr *TaskRunner) handle(task util.Task) error {
	req, ok := task.(model.UserActionRequest)
	if !ok {
		return fmt.Errorf("can not handle task of type other than model.UserActionRequest")
	}
	handler, found := tr.registry.Get(req.ActionKey)
	if found {
		return handler(req.Params)
	}
	if tr.scriptTasks != nil {
		def, err := tr.scriptTasks.GetScriptTask(req.ActionKey)
		if err != nil {
			return err
		}
		if def != nil {
			return runScriptTask(def, req.Params)
		}
	}
	return fmt.Errorf("no handler registered for action key %s", req.ActionKey)
}

func (tr *TaskRunner) poll() {
	messages, err := tr.queue.Pop(tr.capacity)
	if err != nil {
		logger.Error("error polling task queue", zap.Error(err))
		return
	}
	for _, message := range messages {
		req, err := tr.taskEncDec.Decode([]byte(message))
		if err != nil {
			logger.Error("error decoding task", zap.Error(err))
			continue
		}
		tr.worker.Sender() <- *req
	}
}

func (tr *TaskRunner) Start() error {
	tr.worker = util.NewWorker("task-runner", tr.wg, tr.handle, tr.capacity)
	tr.worker.Start()
	tr.tickWorker = util.NewTickWorker("task-poller", tr.pollInterval, tr.stop, tr.poll, tr.wg)
	tr.tickWorker.Start()
	logger.Info("task runner started")
	return nil
}

func (tr *TaskRunner) Stop() error {
	tr.tickWorker.Stop()
	tr.worker.Stop()
	return nil
}

func (tr *TaskRunner) Name() string {
	return "task-runner"
}
