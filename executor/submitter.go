package executor

import (
	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/queue"
	"github.com/mohitkumar/streamhub/util"
)

// QueueSubmitter hands follow-up task descriptors off to the task queue. Each
// descriptor is handed off exactly once per successful top-level execution.
type QueueSubmitter struct {
	queue      queue.Queue
	taskEncDec util.EncoderDecoder[model.UserActionRequest]
}

var _ action.TaskSubmitter = new(QueueSubmitter)

func NewQueueSubmitter(q queue.Queue) *QueueSubmitter {
	return &QueueSubmitter{
		queue:      q,
		taskEncDec: util.NewJsonEncoderDecoder[model.UserActionRequest](),
	}
}

func (s *QueueSubmitter) Submit(req model.UserActionRequest) error {
	data, err := s.taskEncDec.Encode(req)
	if err != nil {
		return err
	}
	return s.queue.Push(req.TaskId, data)
}
